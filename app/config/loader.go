package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultRefreshInterval = 3600
	defaultTimeout         = 30
	defaultMaxItems        = 50
	defaultPageFetchBudget = 5
)

// Loader reads source configurations from a directory of YAML files.
type Loader struct {
	sourcesDir string
}

func NewLoader(sourcesDir string) *Loader {
	return &Loader{sourcesDir: sourcesDir}
}

// LoadAll loads every *.yml / *.yaml file in the sources directory. A
// missing directory yields an empty map, not an error; the caller decides
// whether to fall back to a default source.
func (l *Loader) LoadAll() (map[string]*Source, error) {
	sources := make(map[string]*Source)

	if _, err := os.Stat(l.sourcesDir); os.IsNotExist(err) {
		return sources, nil
	}

	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join(l.sourcesDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to find source files: %w", err)
		}
		files = append(files, matches...)
	}

	for _, file := range files {
		source, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(source); err != nil {
			return nil, fmt.Errorf("invalid source %s: %w", file, err)
		}

		sources[source.Name] = source
		slog.Debug("Source configuration loaded",
			"source", source.Name,
			"url", source.URL,
			"enabled", source.Settings.Enabled)
	}

	return sources, nil
}

// DefaultSource builds the single built-in source used when the sources
// directory has no configuration files.
func DefaultSource(feedURL, siteBaseURL string) *Source {
	source := &Source{
		Name:        "karasugundem",
		URL:         feedURL,
		SiteBaseURL: siteBaseURL,
		Settings: SourceSettings{
			Enabled:     true,
			AutoPublish: true,
		},
	}
	setDefaults(source)
	return source
}

func (l *Loader) loadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var source Source
	if err := yaml.Unmarshal(data, &source); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	source.Name = name

	setDefaults(&source)

	return &source, nil
}

func setDefaults(source *Source) {
	if source.Settings.RefreshInterval == 0 {
		source.Settings.RefreshInterval = defaultRefreshInterval
	}
	if source.Settings.Timeout == 0 {
		source.Settings.Timeout = defaultTimeout
	}
	if source.Settings.MaxItems == 0 {
		source.Settings.MaxItems = defaultMaxItems
	}
	if source.Settings.PageFetchBudget == 0 {
		source.Settings.PageFetchBudget = defaultPageFetchBudget
	}
}

func (l *Loader) validate(source *Source) error {
	if source.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if source.SiteBaseURL == "" {
		return fmt.Errorf("site base URL is required")
	}
	if source.Settings.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must be non-negative")
	}
	if source.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if source.Settings.MaxItems < 0 {
		return fmt.Errorf("max items must be non-negative")
	}
	if source.Settings.PageFetchBudget < 0 {
		return fmt.Errorf("page fetch budget must be non-negative")
	}
	return nil
}
