package refsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/graphbio/helix/internal/core/model"
)

// OLSClient fetches ontology terms from the EBI Ontology Lookup Service.
// Covers the ontology-backed namespaces: mondo, go, hp and ncbitaxon.
type OLSClient struct {
	BaseURL string
	client  *http.Client
}

func NewOLSClient(baseURL string, timeout time.Duration) *OLSClient {
	if baseURL == "" {
		baseURL = "https://www.ebi.ac.uk/ols4"
	}
	return &OLSClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

type olsTermsResponse struct {
	Embedded struct {
		Terms []struct {
			Label       string   `json:"label"`
			Description []string `json:"description"`
			OboID       string   `json:"obo_id"`
			Ontology    string   `json:"ontology_name"`
			Synonyms    []string `json:"synonym"`
			IsObsolete  bool     `json:"is_obsolete"`
		} `json:"terms"`
	} `json:"_embedded"`
}

func (c *OLSClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	oboID := strings.ToUpper(model.IdentifierNamespace(id)) + ":" + model.IdentifierLocal(id)
	endpoint := fmt.Sprintf("%s/api/terms?obo_id=%s", c.BaseURL, url.QueryEscape(oboID))

	var resp olsTermsResponse
	if err := getJSON(ctx, c.client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("ols lookup for %s: %w", id, err)
	}
	if len(resp.Embedded.Terms) == 0 {
		return nil, fmt.Errorf("ols has no term for %s", oboID)
	}

	term := resp.Embedded.Terms[0]
	description := term.Label
	if len(term.Description) > 0 {
		description = term.Description[0]
	}

	data := map[string]interface{}{}
	if term.Ontology != "" {
		data["ontology"] = term.Ontology
	}
	if len(term.Synonyms) > 0 {
		data["synonyms"] = term.Synonyms
	}
	if term.IsObsolete {
		data["obsolete"] = true
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        term.Label,
		Source:      "ols",
		Data:        data,
	}, nil
}
