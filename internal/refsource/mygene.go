package refsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/graphbio/helix/internal/core/model"
)

// MyGeneClient fetches gene summaries from MyGene.info. Handles both
// ncbigene and ensembl identifiers, which the service accepts directly.
type MyGeneClient struct {
	BaseURL string
	client  *http.Client
}

func NewMyGeneClient(baseURL string, timeout time.Duration) *MyGeneClient {
	if baseURL == "" {
		baseURL = "https://mygene.info/v3"
	}
	return &MyGeneClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

type myGeneResponse struct {
	Symbol  string      `json:"symbol"`
	Name    string      `json:"name"`
	Summary string      `json:"summary"`
	TaxID   interface{} `json:"taxid"`
	Alias   interface{} `json:"alias"`
	Type    string      `json:"type_of_gene"`
}

func (c *MyGeneClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	local := model.IdentifierLocal(id)
	endpoint := fmt.Sprintf("%s/gene/%s?fields=symbol,name,summary,taxid,alias,type_of_gene",
		c.BaseURL, url.PathEscape(local))

	var resp myGeneResponse
	if err := getJSON(ctx, c.client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("mygene lookup for %s: %w", id, err)
	}

	description := resp.Summary
	if description == "" {
		description = resp.Name
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        firstNonEmpty(resp.Name, resp.Symbol),
		Source:      "mygene.info",
		Data: dropEmpty(map[string]interface{}{
			"symbol":       resp.Symbol,
			"taxid":        resp.TaxID,
			"alias":        resp.Alias,
			"type_of_gene": resp.Type,
		}),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func dropEmpty(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		if v == nil || v == "" {
			delete(m, k)
		}
	}
	return m
}
