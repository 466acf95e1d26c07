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

// InterProClient fetches protein-domain entries from the EBI InterPro API.
// Serves both interpro and pfam accessions.
type InterProClient struct {
	BaseURL string
	client  *http.Client
}

func NewInterProClient(baseURL string, timeout time.Duration) *InterProClient {
	if baseURL == "" {
		baseURL = "https://www.ebi.ac.uk/interpro/api"
	}
	return &InterProClient{BaseURL: baseURL, client: newHTTPClient(timeout)}
}

type interProEntry struct {
	Metadata struct {
		Accession string `json:"accession"`
		Name      struct {
			Name  string `json:"name"`
			Short string `json:"short"`
		} `json:"name"`
		Type        string        `json:"type"`
		Description []interface{} `json:"description"`
	} `json:"metadata"`
}

func (c *InterProClient) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	ns := model.IdentifierNamespace(id)
	local := model.IdentifierLocal(id)

	database := "interpro"
	if ns == "pfam" {
		database = "pfam"
	}
	endpoint := fmt.Sprintf("%s/entry/%s/%s", c.BaseURL, database, url.PathEscape(local))

	var entry interProEntry
	if err := getJSON(ctx, c.client, endpoint, &entry); err != nil {
		return nil, fmt.Errorf("interpro lookup for %s: %w", id, err)
	}

	description := entry.Metadata.Name.Name
	if len(entry.Metadata.Description) > 0 {
		// Description blocks are either plain strings or {text: ...} objects
		// depending on the entry.
		switch d := entry.Metadata.Description[0].(type) {
		case string:
			description = stripMarkup(d)
		case map[string]interface{}:
			if text, ok := d["text"].(string); ok && text != "" {
				description = stripMarkup(text)
			}
		}
	}

	data := map[string]interface{}{}
	if entry.Metadata.Type != "" {
		data["entry_type"] = entry.Metadata.Type
	}
	if entry.Metadata.Name.Short != "" {
		data["short_name"] = entry.Metadata.Name.Short
	}

	return &model.SummaryRecord{
		Description: description,
		Name:        entry.Metadata.Name.Name,
		Source:      "interpro",
		Data:        data,
	}, nil
}

// stripMarkup removes the lightweight XML tags InterPro embeds in
// description text.
func stripMarkup(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
