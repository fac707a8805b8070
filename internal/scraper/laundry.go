package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/maltedev/laundry-status/internal/browser"
	"github.com/maltedev/laundry-status/internal/models"
)

type Options struct {
	SiteURL       string
	DryersTimeout time.Duration
}

type Result struct {
	Washers *SectionResult
	Dryers  *SectionResult
}

// Scraper reads one laundry room's washers and dryers from a circuit-view page.
type Scraper struct {
	page     Page
	section  *Section
	reporter *Reporter
	opts     Options
	logger   *slog.Logger
}

func New(page Page, out io.Writer, logger *slog.Logger, opts Options) *Scraper {
	if opts.DryersTimeout <= 0 {
		opts.DryersTimeout = DefaultDryersTimeout
	}

	reporter := NewReporter(out)
	return &Scraper{
		page:     page,
		section:  NewSection(reporter, logger),
		reporter: reporter,
		opts:     opts,
		logger:   logger.With("component", "scraper"),
	}
}

func (s *Scraper) Scrape(ctx context.Context) (*Result, error) {
	s.reporter.Starting()
	s.logger.Info("scraping laundry room", "url", s.opts.SiteURL)

	if err := s.page.Goto(s.opts.SiteURL); err != nil {
		return nil, fmt.Errorf("failed to open site: %w", err)
	}

	washers, err := s.scrapeSection(ctx, models.Washer, washerSelector)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.page.ClickLink(viewDryersText, s.opts.DryersTimeout); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDryersControlNotFound, err)
	}

	dryers, err := s.scrapeSection(ctx, models.Dryer, dryerSelector)
	if err != nil {
		return nil, err
	}

	result := &Result{Washers: washers, Dryers: dryers}
	s.reporter.Summary(result)

	s.logger.Info("scrape finished",
		"washers", washers.Tally.Total(),
		"dryers", dryers.Tally.Total())

	return result, nil
}

func (s *Scraper) scrapeSection(ctx context.Context, kind models.MachineType, selector string) (*SectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	elements, err := s.page.Machines(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s sections: %w", kind, err)
	}
	s.logger.Debug("found machines", "type", kind, "count", len(elements))

	return s.section.Process(kind, elements)
}

// Run scrapes opts.SiteURL in a fresh browser session. The session is closed
// before Run returns, whether or not the scrape succeeded.
func Run(ctx context.Context, browserOpts *browser.Options, opts Options, out io.Writer, logger *slog.Logger) (*Result, error) {
	var result *Result
	err := browser.WithPage(browserOpts, func(b *browser.Browser, page playwright.Page) error {
		var err error
		result, err = New(NewPlaywrightPage(b, page), out, logger, opts).Scrape(ctx)
		return err
	})
	return result, err
}

// RunDocument scrapes a saved circuit-view page without starting a browser.
func RunDocument(ctx context.Context, r io.Reader, opts Options, out io.Writer, logger *slog.Logger) (*Result, error) {
	page, err := NewDocumentPage(r)
	if err != nil {
		return nil, err
	}
	return New(page, out, logger, opts).Scrape(ctx)
}
