// Package config loads quickdna defaults from an optional config file and
// QUICKDNA_* environment variables. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"quickdna/core/fasta"
	"quickdna/core/transtable"
	"quickdna/internal/output"
)

// Config is the resolved set of defaults.
type Config struct {
	Table         transtable.Table
	Output        string
	Threads       int
	MaxExpansions uint64
	Header        bool
	Color         string // auto | always | never
	FASTA         fasta.Settings
}

const (
	envPrefix = "QUICKDNA"
	fileName  = "quickdna"
)

func defaults(v *viper.Viper) {
	v.SetDefault("table", 1)
	v.SetDefault("output", output.FormatText)
	v.SetDefault("threads", 0)
	v.SetDefault("max_expansions", 1<<20)
	v.SetDefault("header", false)
	v.SetDefault("color", "auto")
	v.SetDefault("fasta.concatenate_headers", true)
	v.SetDefault("fasta.allow_preceding_comment", false)
}

// Load reads path when given, otherwise looks for quickdna.{yaml,toml,json}
// in the working directory and $HOME/.config/quickdna. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", fileName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	table, err := transtable.FromID(v.GetInt("table"))
	if err != nil {
		return Config{}, fmt.Errorf("config: table: %w", err)
	}
	c := Config{
		Table:         table,
		Output:        v.GetString("output"),
		Threads:       v.GetInt("threads"),
		MaxExpansions: v.GetUint64("max_expansions"),
		Header:        v.GetBool("header"),
		Color:         v.GetString("color"),
		FASTA: fasta.Settings{
			ConcatenateHeaders:    v.GetBool("fasta.concatenate_headers"),
			AllowPrecedingComment: v.GetBool("fasta.allow_preceding_comment"),
		},
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that flags may also set.
func (c Config) Validate() error {
	known := false
	for _, f := range output.Formats {
		if c.Output == f {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("config: output: unknown format %q (want one of %s)", c.Output, strings.Join(output.Formats, ", "))
	}
	if c.Threads < 0 {
		return fmt.Errorf("config: threads: must be >= 0, got %d", c.Threads)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: color: want auto, always or never, got %q", c.Color)
	}
	return nil
}
