package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dgallion1/mdtoc/internal/parser"
)

type Config struct {
	// Documentation tree
	Root       string
	Extensions []string
	Exclude    []string

	// Section the TOC is injected into
	Marker string
	Title  string

	FrontMatterTitles bool

	// Logging
	LogLevel  string
	LogFormat string

	// Preview server
	Port   string
	APIKey string
}

func Load() Config {
	cfg := Config{
		Root:       envOr("MDTOC_ROOT", "docs"),
		Extensions: envList("MDTOC_EXTENSIONS", []string{".md"}),
		Exclude:    envList("MDTOC_EXCLUDE", nil),

		Marker: envOr("MDTOC_MARKER", "##"),
		Title:  envOr("MDTOC_SECTION", "Contents"),

		FrontMatterTitles: envBool("MDTOC_FRONTMATTER_TITLES", false),

		LogLevel:  envOr("MDTOC_LOG_LEVEL", "info"),
		LogFormat: envOr("MDTOC_LOG_FORMAT", "text"),

		Port:   envOr("PORT", "8090"),
		APIKey: os.Getenv("MDTOC_API_KEY"),
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".md"}
	}

	return cfg
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Marker, validation.Required, validation.By(func(value any) error {
			if strings.ContainsAny(value.(string), " \t\n") {
				return validation.NewError("mdtoc.config.marker_whitespace", "must not contain whitespace")
			}
			return nil
		})),
		validation.Field(&c.Title, validation.Required, validation.By(func(value any) error {
			if strings.Contains(value.(string), "\n") {
				return validation.NewError("mdtoc.config.title_multiline", "must be a single line")
			}
			return nil
		})),
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.By(func(value any) error {
			ext, _ := value.(string)
			if !strings.HasPrefix(ext, ".") || !parser.IsSupportedExtension("x"+ext) {
				return validation.NewError("mdtoc.config.extension", "unsupported markdown extension "+strconv.Quote(ext))
			}
			return nil
		}))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.Port, validation.Required, validation.By(func(value any) error {
			if n, err := strconv.Atoi(value.(string)); err != nil || n <= 0 || n > 65535 {
				return errors.New("must be a TCP port number")
			}
			return nil
		})),
	)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envList reads a comma-separated list, dropping empty items.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
