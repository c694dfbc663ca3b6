// Package config loads service configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr        string `yaml:"http_addr"`
	DatabaseURL     string `yaml:"database_url"`
	CORSAllowOrigin string `yaml:"cors_allow_origin"`
	CatalogPath     string `yaml:"catalog_path"`
	BrandingPath    string `yaml:"branding_path"`
	ProviderName    string `yaml:"provider_name"`
	ProviderContact string `yaml:"provider_contact"`
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		CORSAllowOrigin: "*",
		CatalogPath:     "service-details.json",
		BrandingPath:    "assets/logo.png",
		ProviderName:    "Seccomply",
		ProviderContact: "Shivani Tikadia, CEO",
	}
}

// Load builds the config: defaults, then the YAML file (explicit path or
// $PROPOSAL_CONFIG), then env vars. Env wins over file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PROPOSAL_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.HTTPAddr = env("HTTP_ADDR", cfg.HTTPAddr)
	cfg.DatabaseURL = env("DATABASE_URL", cfg.DatabaseURL)
	cfg.CORSAllowOrigin = env("CORS_ALLOW_ORIGIN", cfg.CORSAllowOrigin)
	cfg.CatalogPath = env("CATALOG_PATH", cfg.CatalogPath)
	cfg.BrandingPath = env("BRANDING_PATH", cfg.BrandingPath)
	cfg.ProviderName = env("PROVIDER_NAME", cfg.ProviderName)
	cfg.ProviderContact = env("PROVIDER_CONTACT", cfg.ProviderContact)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("http_addr is required")
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path is required")
	}
	if c.ProviderName == "" {
		return fmt.Errorf("provider_name is required")
	}
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
