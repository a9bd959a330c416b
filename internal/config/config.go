package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name   string `envconfig:"APP_NAME" default:"Struk"`
		Port   int    `envconfig:"APP_PORT" default:"8080"`
		Sample bool   `envconfig:"APP_SAMPLE" default:"false"`
	}

	Shop struct {
		Name    string `envconfig:"SHOP_NAME" default:"Ruang Service"`
		Phone   string `envconfig:"SHOP_PHONE" default:"081234567890"`
		Address string `envconfig:"SHOP_ADDRESS" default:"Jl. Merdeka No. 10, Bandung"`
	}

	Export struct {
		Dir          string        `envconfig:"EXPORT_DIR" default:"."`
		Scale        float64       `envconfig:"EXPORT_SCALE" default:"2.5"`
		Background   string        `envconfig:"EXPORT_BACKGROUND" default:"#ffffff"`
		HandoffDelay time.Duration `envconfig:"EXPORT_HANDOFF_DELAY" default:"300ms"`
	}

	Messaging struct {
		URL         string `envconfig:"MESSAGING_URL" default:"https://api.whatsapp.com/send/"`
		CountryCode string `envconfig:"MESSAGING_COUNTRY_CODE" default:"62"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"SERVER_ALLOWED_ORIGINS" default:"*"`
	}
}

// Background parses Export.Background, a hex color written as #rgb or #rrggbb.
func (c *Config) Background() (color.Color, error) {
	return parseHexColor(c.Export.Background)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Export.Scale <= 0 {
		return nil, fmt.Errorf("invalid EXPORT_SCALE %v: must be positive", cfg.Export.Scale)
	}

	if _, err := cfg.Background(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
