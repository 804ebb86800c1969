package config

// Source is one feed to ingest, loaded from a YAML file in the sources
// directory. The Name is derived from the filename.
type Source struct {
	Name        string          `yaml:"-"`
	URL         string          `yaml:"url"`
	SiteBaseURL string          `yaml:"site_base_url"`
	Settings    SourceSettings  `yaml:"settings"`
	Keywords    KeywordSettings `yaml:"keywords"`
}

type SourceSettings struct {
	Enabled         bool `yaml:"enabled"`
	RefreshInterval int  `yaml:"refresh_interval"` // seconds
	Timeout         int  `yaml:"timeout"`          // seconds
	MaxItems        int  `yaml:"max_items"`
	PageFetchBudget int  `yaml:"page_fetch_budget"`
	ExtractContent  bool `yaml:"extract_content"`
	AutoPublish     bool `yaml:"auto_publish"` // publish real-estate-related articles automatically
}

// KeywordSettings overrides the built-in classification lists for this
// source. Empty lists keep the defaults.
type KeywordSettings struct {
	RealEstate    []string `yaml:"real_estate"`
	Neighborhoods []string `yaml:"neighborhoods"`
}
