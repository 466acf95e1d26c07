package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type SourcesConfig struct {
	MyGeneURL      string `toml:"mygene_url"`
	UniProtURL     string `toml:"uniprot_url"`
	OLSURL         string `toml:"ols_url"`
	PubChemURL     string `toml:"pubchem_url"`
	KEGGURL        string `toml:"kegg_url"`
	ReactomeURL    string `toml:"reactome_url"`
	InterProURL    string `toml:"interpro_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LLMConfig drives the optional fallback summarizer for namespaces without
// a dedicated reference service. Empty provider disables it.
type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Neo4j   Neo4jConfig   `toml:"neo4j"`
	Sources SourcesConfig `toml:"sources"`
	LLM     LLMConfig     `toml:"llm"`
	Server  ServerConfig  `toml:"server"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Default returns a usable configuration when no config file is present:
// public reference-service endpoints, no graph store, no LLM fallback.
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			TimeoutSeconds: 15,
		},
		Server: ServerConfig{
			Port: "8080",
		},
	}
}

// ApplyEnv overrides config values from environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}
