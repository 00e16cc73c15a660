// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CacheConfig provides settings for the Redis-backed response cache.
type CacheConfig interface {
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	IsRedisEnabled() bool
}

// StatisticsConfig provides settings for the statistics module: upstream
// open-data endpoints, cache TTLs and the scoring override asset.
type StatisticsConfig interface {
	GetCBSBaseURL() string
	GetRIVMBaseURL() string
	GetPolitieBaseURL() string
	GetScoringConfigPath() string
	GetDatasetCacheTTL() time.Duration
	GetNationalCacheTTL() time.Duration
	GetUpstreamTimeout() time.Duration
}

// LocationsConfig provides settings for the location resolution module.
type LocationsConfig interface {
	GetLocatieserverBaseURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	CBSBaseURL           string
	RIVMBaseURL          string
	PolitieBaseURL       string
	LocatieserverBaseURL string
	ScoringConfigPath    string
	DatasetCacheTTL      time.Duration
	NationalCacheTTL     time.Duration
	UpstreamTimeout      time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CacheConfig implementation
func (c *Config) GetRedisAddr() string     { return c.RedisAddr }
func (c *Config) GetRedisPassword() string { return c.RedisPassword }
func (c *Config) GetRedisDB() int          { return c.RedisDB }
func (c *Config) IsRedisEnabled() bool     { return c.RedisAddr != "" }

// StatisticsConfig implementation
func (c *Config) GetCBSBaseURL() string              { return c.CBSBaseURL }
func (c *Config) GetRIVMBaseURL() string             { return c.RIVMBaseURL }
func (c *Config) GetPolitieBaseURL() string          { return c.PolitieBaseURL }
func (c *Config) GetScoringConfigPath() string       { return c.ScoringConfigPath }
func (c *Config) GetDatasetCacheTTL() time.Duration  { return c.DatasetCacheTTL }
func (c *Config) GetNationalCacheTTL() time.Duration { return c.NationalCacheTTL }
func (c *Config) GetUpstreamTimeout() time.Duration  { return c.UpstreamTimeout }

// LocationsConfig implementation
func (c *Config) GetLocatieserverBaseURL() string { return c.LocatieserverBaseURL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              mustInt(getEnv("REDIS_DB", "0")),
		CBSBaseURL:           getEnv("CBS_BASE_URL", "https://opendata.cbs.nl/ODataApi/odata"),
		RIVMBaseURL:          getEnv("RIVM_BASE_URL", "https://statline.rivm.nl/ODataApi/odata"),
		PolitieBaseURL:       getEnv("POLITIE_BASE_URL", "https://dataderden.cbs.nl/ODataApi/odata"),
		LocatieserverBaseURL: getEnv("LOCATIESERVER_BASE_URL", "https://api.pdok.nl/bzk/locatieserver/search/v3_1"),
		ScoringConfigPath:    getEnv("SCORING_CONFIG_PATH", "config/scoring.yaml"),
		DatasetCacheTTL:      mustDuration(getEnv("DATASET_CACHE_TTL", "1h")),
		NationalCacheTTL:     mustDuration(getEnv("NATIONAL_CACHE_TTL", "24h")),
		UpstreamTimeout:      mustDuration(getEnv("UPSTREAM_TIMEOUT", "10s")),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, errCORSCredsWithWildcard
	}

	return cfg, nil
}
