package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Browser BrowserConfig
	Scraper ScraperConfig
	Logging LoggingConfig
	Debug   bool
}

type BrowserConfig struct {
	Headless        bool
	Timeout         time.Duration
	DriverDirectory string
	Locale          string
	TimezoneID      string
}

type ScraperConfig struct {
	DryersTimeout time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Browser: BrowserConfig{
			Headless:        getBoolOrDefault("BROWSER_HEADLESS", true),
			Timeout:         getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			DriverDirectory: getEnvOrDefault("BROWSER_DRIVER_DIR", ""),
			Locale:          getEnvOrDefault("BROWSER_LOCALE", "en-GB"),
			TimezoneID:      getEnvOrDefault("BROWSER_TIMEZONE", "Europe/London"),
		},
		Scraper: ScraperConfig{
			DryersTimeout: getDurationOrDefault("SCRAPER_DRYERS_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "warn"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
		Debug: getBoolOrDefault("LAUNDRY_DEBUG", false),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Browser.Timeout <= 0 {
		return fmt.Errorf("BROWSER_TIMEOUT must be positive")
	}

	if c.Scraper.DryersTimeout <= 0 {
		return fmt.Errorf("SCRAPER_DRYERS_TIMEOUT must be positive")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// IsMobile reports whether we are running on a phone, where the driver is
// found on its own and must not be passed explicitly.
func IsMobile() bool {
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}

// DriverDirectory is the driver location to hand to the browser, if any.
func (c *Config) DriverDirectory() string {
	if IsMobile() {
		return ""
	}
	return c.Browser.DriverDirectory
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
