// go_jobmatch: portfolio-to-jobs matching MCP server.
//
// Exposes two MCP tools: job_match and candidate_profile.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobmatch/internal/jobserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	c := loadConfig()
	if err := c.Validate(); err != nil {
		slog.Error("config invalid", slog.Any("error", err))
		os.Exit(1)
	}

	provider, closeCache, err := newProvider(c)
	if err != nil {
		slog.Error("search provider init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeCache()

	slog.Info("starting go_jobmatch",
		slog.String("port", mcpPort),
		slog.String("provider", c.ProviderURL),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_jobmatch",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server, jobs.NewMatcherFromConfig(provider, c))
	slog.Info("tools registered", slog.Int("count", 2))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_jobmatch",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func loadConfig() engine.Config {
	d := engine.DefaultConfig()
	return engine.Config{
		ProviderURL:          env.Str("SEARCH_API_URL", d.ProviderURL),
		ProviderAPIKey:       env.Str("SEARCH_API_KEY", ""),
		ProviderTimeout:      env.Duration("SEARCH_TIMEOUT", d.ProviderTimeout),
		ProviderRPS:          env.Float("SEARCH_RPS", d.ProviderRPS),
		ProviderBurst:        env.Int("SEARCH_BURST", d.ProviderBurst),
		MaxConcurrency:       env.Int("SEARCH_MAX_CONCURRENCY", d.MaxConcurrency),
		DateWindow:           env.Duration("SEARCH_DATE_WINDOW", d.DateWindow),
		MaxResults:           env.Int("MAX_RESULTS", d.MaxResults),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", d.CacheTTL),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", d.CacheMaxEntries),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", d.CacheCleanupInterval),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
}

// newProvider builds the HTTP provider and, when CacheTTL > 0, wraps it with
// the tiered response cache.
func newProvider(c engine.Config) (engine.Provider, func(), error) {
	hp, err := engine.NewHTTPProvider(c.ProviderURL, c.ProviderAPIKey,
		engine.WithHTTPClient(c.HTTPClient),
		engine.WithRateLimit(c.ProviderRPS, c.ProviderBurst),
	)
	if err != nil {
		return nil, nil, err
	}
	if c.CacheTTL <= 0 {
		return hp, func() {}, nil
	}
	cache := engine.NewTieredCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
	return engine.NewCachingProvider(hp, cache), func() { _ = cache.Close() }, nil
}
