package refsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/graphbio/helix/internal/core/model"
)

// PubChemClient fetches compound and drug descriptions from the PubChem PUG
// REST API. Native pubchem.compound identifiers resolve by CID; chembl,
// chebi and drugbank identifiers resolve through the registry-id
// cross-reference path.
type PubChemClient struct {
	BaseURL string
	client  *http.Client
}

func NewPubChemClient(baseURL string, timeout time.Duration) *PubChemClient {
	if baseURL == "" {
		baseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	}
	return &PubChemClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

type pubChemDescriptionResponse struct {
	InformationList struct {
		Information []struct {
			CID         int    `json:"CID"`
			Title       string `json:"Title"`
			Description string `json:"Description"`
			Source      string `json:"DescriptionSourceName"`
		} `json:"Information"`
	} `json:"InformationList"`
}

func (c *PubChemClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	ns := model.IdentifierNamespace(id)
	local := model.IdentifierLocal(id)

	var endpoint string
	if ns == "pubchem.compound" {
		endpoint = fmt.Sprintf("%s/compound/cid/%s/description/JSON", c.BaseURL, url.PathEscape(local))
	} else {
		endpoint = fmt.Sprintf("%s/compound/xref/RegistryID/%s/description/JSON", c.BaseURL, url.PathEscape(local))
	}

	var resp pubChemDescriptionResponse
	if err := getJSON(ctx, c.client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("pubchem lookup for %s: %w", id, err)
	}
	if len(resp.InformationList.Information) == 0 {
		return nil, fmt.Errorf("pubchem has no description for %s", id)
	}

	// The first block carries the title; the description often arrives in a
	// later block.
	title := ""
	description := ""
	cid := 0
	for _, info := range resp.InformationList.Information {
		if title == "" && info.Title != "" {
			title = info.Title
		}
		if description == "" && info.Description != "" {
			description = info.Description
		}
		if cid == 0 && info.CID != 0 {
			cid = info.CID
		}
	}
	if description == "" {
		description = title
	}

	data := map[string]interface{}{}
	if cid != 0 {
		data["cid"] = cid
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        title,
		Source:      "pubchem",
		Data:        data,
	}, nil
}
