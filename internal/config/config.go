// Package config loads the optional caretaker.yaml next to the project
// being maintained, and carries the process exit codes.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/caretaker-cli/caretaker/internal/fs"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitPreconditionFailed
	ExitInvalidInput
)

// FileName is the optional per-project configuration file.
const FileName = "caretaker.yaml"

// Config describes the project a caretaker binary operates on. Every field
// has a default matching the news-delivery deployment the tools grew up in.
type Config struct {
	// Database is the D1 database name passed to wrangler.
	Database string `mapstructure:"database" yaml:"database"`

	// Manifest is the file whose presence marks the project root.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	Tables []Table   `mapstructure:"tables" yaml:"tables"`
	Git    GitConfig `mapstructure:"git" yaml:"git"`
}

// Table is one maintained database table.
type Table struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Description string `mapstructure:"description" yaml:"description"`
}

// GitConfig configures the shipping workflow.
type GitConfig struct {
	// Remote is the push target.
	Remote string `mapstructure:"remote" yaml:"remote"`
}

// TableNames returns the configured table names in declaration order.
func (c Config) TableNames() []string {
	names := make([]string, 0, len(c.Tables))
	for _, t := range c.Tables {
		names = append(names, t.Name)
	}
	return names
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: "telegram_news_db",
		Manifest: "wrangler.jsonc",
		Tables: []Table{
			{Name: "deliveries", Description: "delivery log"},
			{Name: "posts", Description: "news posts"},
			{Name: "subscriptions", Description: "subscriber records"},
		},
		Git: GitConfig{Remote: "origin"},
	}
}

// Load reads caretaker.yaml from dir when present, layered over the
// defaults. CARETAKER_DATABASE, CARETAKER_MANIFEST, and CARETAKER_GIT_REMOTE
// take precedence over both. A missing file is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("caretaker")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("CARETAKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees env values for keys viper knows about, so the
	// scalar keys are bound explicitly. Tables stay file-only.
	for _, key := range []string{"database", "manifest", "git.remote"} {
		v.MustBindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading %s: %w", FileName, err)
		}
	}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	return cfg, nil
}

// Save writes cfg to caretaker.yaml in dir.
func Save(fsys fs.FS, dir string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := []byte("# caretaker project configuration\n")
	path := filepath.Join(dir, FileName)
	if err := fsys.WriteFile(path, append(header, data...), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}

	return nil
}
