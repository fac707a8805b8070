package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/maltedev/laundry-status/internal/browser"
	"github.com/maltedev/laundry-status/internal/config"
	"github.com/maltedev/laundry-status/internal/logger"
	"github.com/maltedev/laundry-status/internal/scraper"
	"github.com/maltedev/laundry-status/internal/sites"
)

type flags struct {
	site          int
	url           string
	fromFile      string
	debug         bool
	install       bool
	dryersTimeout time.Duration
	logLevel      string
	logFormat     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, sites.ErrInvalidSelection) {
			fmt.Println(err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "laundry-status",
		Short: "Show which washers and dryers are free in a Circuit laundry room.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&f.site, "site", 0, "laundry room number from the menu (prompts when unset)")
	cmd.Flags().StringVar(&f.url, "url", "", "circuit-view page URL to scrape instead of a known room")
	cmd.Flags().StringVar(&f.fromFile, "from-file", "", "parse a saved circuit-view page instead of opening a browser")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "show the browser window and keep GPU acceleration")
	cmd.Flags().BoolVar(&f.install, "install", false, "install the playwright driver and Chromium, then exit")
	cmd.Flags().DurationVar(&f.dryersTimeout, "dryers-timeout", 0, "how long to wait for the View Dryers link")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "text or json")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()).
		With("run_id", uuid.NewString())
	slog.SetDefault(log)

	browserOpts := browserOptions(cfg)
	if f.install {
		log.Info("installing browser")
		return browser.Install(browserOpts)
	}

	opts := scraper.Options{DryersTimeout: cfg.Scraper.DryersTimeout}
	out := cmd.OutOrStdout()

	if f.fromFile != "" {
		file, err := os.Open(f.fromFile)
		if err != nil {
			return fmt.Errorf("failed to open saved page: %w", err)
		}
		defer file.Close()

		opts.SiteURL = "file://" + f.fromFile
		_, err = scraper.RunDocument(cmd.Context(), file, opts, out, log)
		return err
	}

	opts.SiteURL, err = resolveURL(f, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	_, err = scraper.Run(cmd.Context(), browserOpts, opts, out, log)
	return err
}

func loadConfig(f *flags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f.debug {
		cfg.Debug = true
	}
	if f.dryersTimeout > 0 {
		cfg.Scraper.DryersTimeout = f.dryersTimeout
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func browserOptions(cfg *config.Config) *browser.Options {
	opts := browser.DefaultOptions()
	if cfg.Debug {
		opts = browser.DebugOptions()
	}

	opts.Headless = opts.Headless && cfg.Browser.Headless
	opts.Timeout = cfg.Browser.Timeout
	opts.Locale = cfg.Browser.Locale
	opts.TimezoneID = cfg.Browser.TimezoneID
	opts.DriverDirectory = cfg.DriverDirectory()

	return opts
}

func resolveURL(f *flags, in io.Reader, out io.Writer) (string, error) {
	if f.url != "" {
		return f.url, nil
	}

	if f.site != 0 {
		site, err := sites.Lookup(f.site)
		if err != nil {
			return "", sites.ErrInvalidSelection
		}
		return site.URL(), nil
	}

	site, err := sites.Prompt(in, out)
	if err != nil {
		return "", err
	}
	return site.URL(), nil
}
