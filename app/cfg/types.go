package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	SourcesDir        string
	Port              string
	SiteBaseURL       string
	FeedURL           string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Fetching
	UserAgent       string
	RedisAddr       string
	FeedCacheTTL    int
	PageFetchBudget int

	// Application metadata
	Debug   bool
	Version string
}
