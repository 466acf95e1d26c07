package refsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/graphbio/helix/internal/core/model"
)

// ReactomeClient fetches pathway summaries from the Reactome ContentService.
type ReactomeClient struct {
	BaseURL string
	client  *http.Client
}

func NewReactomeClient(baseURL string, timeout time.Duration) *ReactomeClient {
	if baseURL == "" {
		baseURL = "https://reactome.org/ContentService"
	}
	return &ReactomeClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

type reactomeEntry struct {
	DisplayName string `json:"displayName"`
	StID        string `json:"stId"`
	Species     []struct {
		DisplayName string `json:"displayName"`
	} `json:"species"`
	Summation []struct {
		Text string `json:"text"`
	} `json:"summation"`
}

func (c *ReactomeClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	local := model.IdentifierLocal(id)
	endpoint := fmt.Sprintf("%s/data/query/%s", c.BaseURL, url.PathEscape(local))

	var entry reactomeEntry
	if err := getJSON(ctx, c.client, endpoint, &entry); err != nil {
		return nil, fmt.Errorf("reactome lookup for %s: %w", id, err)
	}

	description := entry.DisplayName
	if len(entry.Summation) > 0 && entry.Summation[0].Text != "" {
		description = entry.Summation[0].Text
	}

	data := map[string]interface{}{}
	if entry.StID != "" {
		data["stable_id"] = entry.StID
	}
	if len(entry.Species) > 0 {
		data["species"] = entry.Species[0].DisplayName
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        entry.DisplayName,
		Source:      "reactome",
		Data:        data,
	}, nil
}
