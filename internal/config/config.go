// Package config builds the process configuration once at start-up from
// defaults, an optional config file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Source modes.
const (
	SourceScrape = "scrape"
	SourceMirror = "mirror"
)

// Ranking page parsers.
const (
	ParserRegex    = "regex"
	ParserDocument = "document"
)

// Metadata match policies.
const (
	MatchFirst = "first"
	MatchExact = "exact"
)

// Datasette export modes.
const (
	DatasetteLocal  = "local"
	DatasetteRemote = "remote"
)

// Rating lookup keys.
const (
	RatingsByTitle = "title"
	RatingsByIMDb  = "imdb"
)

// Config is the complete runtime configuration. It is built once and passed
// by pointer to every component; nothing mutates it afterwards.
type Config struct {
	TMDBAPIKey   string
	TMDBLanguage string
	TMDBBaseURL  string
	RPDBAPIKey   string
	RPDBBaseURL  string

	Port int

	Source SourceConfig

	Parallel    bool
	MatchPolicy string
	RatingsBy   string

	OutputDir string
	Datasette DatasetteConfig
	Log       LogConfig
}

// SourceConfig selects where ranked titles come from.
type SourceConfig struct {
	Mode      string
	Parser    string
	Country   string
	BaseURL   string
	MirrorURL string // template with {platform} and {category} placeholders
}

// DatasetteConfig controls the optional export of scrape runs, either to a
// local SQLite file or to a remote Datasette instance.
type DatasetteConfig struct {
	Enabled   bool
	Mode      string
	DBFile    string
	RemoteURL string
	APIToken  string
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string
	File  string
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tmdb.language", "fr-FR")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("rpdb.base_url", "https://api.ratingposterdb.com")
	v.SetDefault("port", 7000)

	v.SetDefault("source.mode", SourceScrape)
	v.SetDefault("source.parser", ParserRegex)
	v.SetDefault("source.country", "france")
	v.SetDefault("source.base_url", "https://flixpatrol.com")

	v.SetDefault("pipeline.parallel", false)
	v.SetDefault("match.policy", MatchFirst)
	v.SetDefault("ratings.by", RatingsByTitle)

	v.SetDefault("output.dir", "data")

	v.SetDefault("datasette.enabled", false)
	v.SetDefault("datasette.mode", DatasetteLocal)
	v.SetDefault("datasette.dbfile", "./top10.db")

	v.SetDefault("log.level", "info")
}

// BindEnv binds the environment variables the deployment provides.
func BindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"tmdb.api_key":        "TMDB_API_KEY",
		"tmdb.language":       "TMDB_LANGUAGE",
		"rpdb.api_key":        "RPDB_API_KEY",
		"port":                "PORT",
		"source.mode":         "TOP10_SOURCE",
		"source.mirror_url":   "TOP10_MIRROR_URL",
		"datasette.api_token": "DATASETTE_API_TOKEN",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", env, key, err)
		}
	}
	return nil
}

// ReadFile reads the config file at path. A missing file is not an error
// because the service must start from the environment alone.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && path == "" {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TMDBAPIKey:   strings.TrimSpace(v.GetString("tmdb.api_key")),
		TMDBLanguage: v.GetString("tmdb.language"),
		TMDBBaseURL:  v.GetString("tmdb.base_url"),
		RPDBAPIKey:   strings.TrimSpace(v.GetString("rpdb.api_key")),
		RPDBBaseURL:  v.GetString("rpdb.base_url"),
		Port:         v.GetInt("port"),
		Source: SourceConfig{
			Mode:      strings.ToLower(v.GetString("source.mode")),
			Parser:    strings.ToLower(v.GetString("source.parser")),
			Country:   v.GetString("source.country"),
			BaseURL:   v.GetString("source.base_url"),
			MirrorURL: v.GetString("source.mirror_url"),
		},
		Parallel:    v.GetBool("pipeline.parallel"),
		MatchPolicy: strings.ToLower(v.GetString("match.policy")),
		RatingsBy:   strings.ToLower(v.GetString("ratings.by")),
		OutputDir:   v.GetString("output.dir"),
		Datasette: DatasetteConfig{
			Enabled:   v.GetBool("datasette.enabled"),
			Mode:      strings.ToLower(v.GetString("datasette.mode")),
			DBFile:    v.GetString("datasette.dbfile"),
			RemoteURL: v.GetString("datasette.remote_url"),
			APIToken:  v.GetString("datasette.api_token"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and impossible settings.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if !oneOf(c.Source.Mode, SourceScrape, SourceMirror) {
		errs = append(errs, fmt.Errorf("unknown source mode %q", c.Source.Mode))
	}
	if !oneOf(c.Source.Parser, ParserRegex, ParserDocument) {
		errs = append(errs, fmt.Errorf("unknown source parser %q", c.Source.Parser))
	}
	if c.Source.Mode == SourceMirror && c.Source.MirrorURL == "" {
		errs = append(errs, errors.New("source.mirror_url is required in mirror mode"))
	}
	if !oneOf(c.MatchPolicy, MatchFirst, MatchExact) {
		errs = append(errs, fmt.Errorf("unknown match policy %q", c.MatchPolicy))
	}
	if !oneOf(c.RatingsBy, RatingsByTitle, RatingsByIMDb) {
		errs = append(errs, fmt.Errorf("unknown ratings lookup key %q", c.RatingsBy))
	}
	if c.Datasette.Enabled {
		if !oneOf(c.Datasette.Mode, DatasetteLocal, DatasetteRemote) {
			errs = append(errs, fmt.Errorf("unknown datasette mode %q", c.Datasette.Mode))
		}
		if c.Datasette.Mode == DatasetteRemote && c.Datasette.RemoteURL == "" {
			errs = append(errs, errors.New("datasette.remote_url is required in remote mode"))
		}
	}

	return errors.Join(errs...)
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
