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

// KEGGClient fetches pathway entries from the KEGG REST API, which serves
// flat text records rather than JSON.
type KEGGClient struct {
	BaseURL string
	client  *http.Client
}

func NewKEGGClient(baseURL string, timeout time.Duration) *KEGGClient {
	if baseURL == "" {
		baseURL = "https://rest.kegg.jp"
	}
	return &KEGGClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

func (c *KEGGClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	local := model.IdentifierLocal(id)
	endpoint := fmt.Sprintf("%s/get/%s", c.BaseURL, url.PathEscape(local))

	body, err := getText(ctx, c.client, endpoint)
	if err != nil {
		return nil, fmt.Errorf("kegg lookup for %s: %w", id, err)
	}

	fields := parseKEGGRecord(body)
	name := fields["NAME"]
	description := fields["DESCRIPTION"]
	if description == "" {
		description = name
	}
	if description == "" {
		return nil, fmt.Errorf("kegg record for %s carries no name or description", id)
	}

	data := map[string]interface{}{}
	if class := fields["CLASS"]; class != "" {
		data["class"] = class
	}
	if organism := fields["ORGANISM"]; organism != "" {
		data["organism"] = organism
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        name,
		Source:      "kegg",
		Data:        data,
	}, nil
}

// parseKEGGRecord reads the column-aligned KEGG flat format: a 12-character
// field label, continuation lines indented with spaces.
func parseKEGGRecord(body string) map[string]string {
	fields := make(map[string]string)
	current := ""
	for _, line := range strings.Split(body, "\n") {
		if line == "///" || line == "" {
			continue
		}
		if !strings.HasPrefix(line, " ") {
			parts := strings.SplitN(line, " ", 2)
			current = parts[0]
			if len(parts) == 2 {
				fields[current] = strings.TrimSpace(parts[1])
			}
			continue
		}
		if current != "" {
			fields[current] = strings.TrimSpace(fields[current] + " " + strings.TrimSpace(line))
		}
	}
	return fields
}
