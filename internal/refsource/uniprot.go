package refsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/graphbio/helix/internal/core/model"
)

// UniProtClient fetches protein entries from the UniProt REST API.
type UniProtClient struct {
	BaseURL string
	client  *http.Client
}

func NewUniProtClient(baseURL string, timeout time.Duration) *UniProtClient {
	if baseURL == "" {
		baseURL = "https://rest.uniprot.org"
	}
	return &UniProtClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

type uniProtEntry struct {
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
	Organism struct {
		ScientificName string   `json:"scientificName"`
		Lineage        []string `json:"lineage"`
	} `json:"organism"`
	Sequence struct {
		Length   int `json:"length"`
		MolWeight int `json:"molWeight"`
	} `json:"sequence"`
	Comments []struct {
		CommentType string `json:"commentType"`
		Texts       []struct {
			Value string `json:"value"`
		} `json:"texts"`
	} `json:"comments"`
	Genes []struct {
		GeneName struct {
			Value string `json:"value"`
		} `json:"geneName"`
	} `json:"genes"`
}

func (c *UniProtClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	accession := model.IdentifierLocal(id)
	endpoint := fmt.Sprintf("%s/uniprotkb/%s.json", c.BaseURL, url.PathEscape(accession))

	var entry uniProtEntry
	if err := getJSON(ctx, c.client, endpoint, &entry); err != nil {
		return nil, fmt.Errorf("uniprot lookup for %s: %w", id, err)
	}

	// The FUNCTION comment is the closest thing UniProt has to a summary.
	description := ""
	for _, comment := range entry.Comments {
		if comment.CommentType == "FUNCTION" && len(comment.Texts) > 0 {
			description = comment.Texts[0].Value
			break
		}
	}
	name := entry.ProteinDescription.RecommendedName.FullName.Value
	if description == "" {
		description = name
	}

	data := map[string]interface{}{}
	if entry.Organism.ScientificName != "" {
		data["organism"] = entry.Organism.ScientificName
	}
	if len(entry.Organism.Lineage) > 0 {
		data["lineage"] = entry.Organism.Lineage
	}
	if entry.Sequence.Length > 0 {
		data["sequence_length"] = entry.Sequence.Length
	}
	if entry.Sequence.MolWeight > 0 {
		data["molecular_weight"] = entry.Sequence.MolWeight
	}
	if len(entry.Genes) > 0 && entry.Genes[0].GeneName.Value != "" {
		data["gene"] = entry.Genes[0].GeneName.Value
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        name,
		Source:      "uniprot",
		Data:        data,
	}, nil
}
