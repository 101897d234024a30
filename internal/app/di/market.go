// Package di provides dependency injection factories for creating application components.
package di

import (
	"cac40_backend/internal/config"
	"cac40_backend/internal/platform/externalapi/yahoo"
	infrahttp "cac40_backend/internal/platform/http"
)

// NewQuoteSource creates a fully configured Yahoo Finance client with its
// HTTP client, from the application configuration.
func NewQuoteSource(cfg *config.Config) *yahoo.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.QuoteTimeout())
	return yahoo.NewClient(yahoo.Config{
		BaseURL: cfg.QuoteSource.BaseURL,
		Timeout: cfg.QuoteTimeout(),
	}, httpClient)
}
