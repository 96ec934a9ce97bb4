// Package config holds the toolkit configuration: where the docs tree
// lives, which navigation tab the toolkit owns, and the project metadata
// interpolated into the generated summaries.
//
// Values resolve in precedence order: DOCSMITH_* environment variables,
// then an HCL config file, then built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultFile is the config file looked up when none is given explicitly.
const DefaultFile = "docsmith.hcl"

// Project is the static metadata woven into the summary reports.
type Project struct {
	Name    string `hcl:"name,optional" env:"NAME"`
	Tagline string `hcl:"tagline,optional" env:"TAGLINE"`
	BaseURL string `hcl:"base_url,optional" env:"BASE_URL"`
	SpecURL string `hcl:"spec_url,optional" env:"SPEC_URL"`
}

// Config is the full toolkit configuration. Paths other than DocsRoot are
// relative to DocsRoot.
type Config struct {
	DocsRoot       string   `hcl:"docs_root,optional" env:"DOCSMITH_DOCS_ROOT"`
	NavigationFile string   `hcl:"navigation_file,optional" env:"DOCSMITH_NAVIGATION_FILE"`
	BackupFile     string   `hcl:"backup_file,optional" env:"DOCSMITH_BACKUP_FILE"`
	TabName        string   `hcl:"tab_name,optional" env:"DOCSMITH_TAB_NAME"`
	EndpointDir    string   `hcl:"endpoint_dir,optional" env:"DOCSMITH_ENDPOINT_DIR"`
	SplitDir       string   `hcl:"split_dir,optional" env:"DOCSMITH_SPLIT_DIR"`
	AccordionLimit int      `hcl:"accordion_limit,optional" env:"DOCSMITH_ACCORDION_LIMIT"`
	Project        *Project `hcl:"project,block" envPrefix:"DOCSMITH_PROJECT_"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DocsRoot:       "docs",
		NavigationFile: "docs.json",
		BackupFile:     "docs.json.backup",
		TabName:        "API reference",
		EndpointDir:    "api-reference/endpoint",
		SplitDir:       "api-reference/openapi-split",
		AccordionLimit: 10,
		Project: &Project{
			Name:    "Developer Documentation",
			Tagline: "Developer documentation and API reference for the platform.",
			BaseURL: "https://api.example.com",
			SpecURL: "https://api.example.com/api/openapi/public.json",
		},
	}
}

// Load resolves the configuration. An explicitly given path must exist; the
// default file is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	} else if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if cfg.Project == nil {
		cfg.Project = Default().Project
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
