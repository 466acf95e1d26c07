package refsource

import (
	"time"

	"github.com/graphbio/helix/internal/config"
)

// BuildRegistry wires one fetcher per supported identifier namespace. The
// map is the dispatch table the enrichment dispatcher consults; registering
// a new namespace means adding one entry here, nothing else changes.
func BuildRegistry(cfg config.SourcesConfig) map[string]Fetcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	mygene := NewMyGeneClient(cfg.MyGeneURL, timeout)
	uniprot := NewUniProtClient(cfg.UniProtURL, timeout)
	ols := NewOLSClient(cfg.OLSURL, timeout)
	pubchem := NewPubChemClient(cfg.PubChemURL, timeout)
	kegg := NewKEGGClient(cfg.KEGGURL, timeout)
	reactome := NewReactomeClient(cfg.ReactomeURL, timeout)
	interpro := NewInterProClient(cfg.InterProURL, timeout)

	return map[string]Fetcher{
		"ncbigene":         mygene,
		"ensembl":          mygene,
		"uniprot":          uniprot,
		"mondo":            ols,
		"go":               ols,
		"hp":               ols,
		"ncbitaxon":        ols,
		"pubchem.compound": pubchem,
		"chembl":           pubchem,
		"chebi":            pubchem,
		"drugbank":         pubchem,
		"kegg":             kegg,
		"kegg.pathway":     kegg,
		"reactome":         reactome,
		"interpro":         interpro,
		"pfam":             interpro,
	}
}

// NewSummarizer builds the optional LLM fallback from config, or nil when no
// provider is configured. Only OpenAI-compatible endpoints are supported;
// Ollama qualifies through its /v1 API.
func NewSummarizer(cfg config.LLMConfig) Summarizer {
	if cfg.Provider == "" {
		return nil
	}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = "unused"
	}
	return NewLLMSummarizer(apiKey, cfg.Model, cfg.BaseURL)
}
