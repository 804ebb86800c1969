package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"gundem_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" default:"gundem_password" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"gundem_feed" description:"Database name"`

	// Application configuration
	SourcesDir        string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory containing source configuration files"`
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SiteBaseURL       string `long:"site-base-url" env:"SITE_BASE_URL" default:"https://karasuemlak.net" description:"Base URL of the site canonical links point to"`
	FeedURL           string `long:"feed-url" env:"GUNDEM_FEED_URL" default:"https://karasugundem.com/feed" description:"Feed URL used when no source configuration files exist"`
	WorkerCount       int    `long:"worker-count" env:"WORKER_COUNT" default:"5" description:"Number of background workers for feed processing"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"30" description:"Scheduler interval in seconds"`
	APIAccessKey      string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Fetching
	UserAgent       string `long:"user-agent" env:"USER_AGENT" default:"KarasuEmlakBot/1.0 (+https://karasuemlak.net)" description:"User agent string for HTTP requests"`
	RedisAddr       string `long:"redis-addr" env:"REDIS_ADDR" description:"Redis address for the fetch cache (optional, caching disabled when unset)"`
	FeedCacheTTL    int    `long:"feed-cache-ttl" env:"FEED_CACHE_TTL" default:"3600" description:"Feed fetch cache TTL in seconds"`
	PageFetchBudget int    `long:"page-fetch-budget" env:"PAGE_FETCH_BUDGET" default:"5" description:"Max article pages fetched per feed load for missing images"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBHost:            raw.DBHost,
		DBPort:            raw.DBPort,
		DBUser:            raw.DBUser,
		DBPassword:        raw.DBPassword,
		DBName:            raw.DBName,
		SourcesDir:        raw.SourcesDir,
		Port:              raw.Port,
		SiteBaseURL:       raw.SiteBaseURL,
		FeedURL:           raw.FeedURL,
		WorkerCount:       raw.WorkerCount,
		SchedulerInterval: raw.SchedulerInterval,
		APIAccessKey:      raw.APIAccessKey,
		UserAgent:         raw.UserAgent,
		RedisAddr:         raw.RedisAddr,
		FeedCacheTTL:      raw.FeedCacheTTL,
		PageFetchBudget:   raw.PageFetchBudget,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
