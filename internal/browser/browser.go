package browser

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	timeout time.Duration
	logger  *slog.Logger
}

type Options struct {
	Headless        bool
	DisableGPU      bool
	Timeout         time.Duration
	UserAgent       string
	ViewportWidth   int
	ViewportHeight  int
	Locale          string
	TimezoneID      string
	DriverDirectory string
}

func DefaultOptions() *Options {
	return &Options{
		Headless:       true,
		DisableGPU:     true,
		Timeout:        30 * time.Second,
		UserAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		ViewportWidth:  1280,
		ViewportHeight: 900,
		Locale:         "en-GB",
		TimezoneID:     "Europe/London",
	}
}

// DebugOptions runs a visible browser with GPU acceleration left on.
func DebugOptions() *Options {
	opts := DefaultOptions()
	opts.Headless = false
	opts.DisableGPU = false
	return opts
}

func (o *Options) launchArgs() []string {
	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
	}
	if o.DisableGPU {
		args = append(args, "--disable-gpu")
	}
	return args
}

func (o *Options) runOptions() *playwright.RunOptions {
	return &playwright.RunOptions{
		DriverDirectory: o.DriverDirectory,
		Browsers:        []string{"chromium"},
	}
}

// Install downloads the playwright driver and Chromium.
func Install(opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := playwright.Install(opts.runOptions()); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

func New(opts *Options) (*Browser, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	pw, err := playwright.Run(opts.runOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     opts.launchArgs(),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:         &opts.UserAgent,
		AcceptDownloads:   playwright.Bool(false),
		JavaScriptEnabled: playwright.Bool(true),
		Locale:            &opts.Locale,
		TimezoneId:        &opts.TimezoneID,
		Viewport: &playwright.Size{
			Width:  opts.ViewportWidth,
			Height: opts.ViewportHeight,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	return &Browser{
		pw:      pw,
		browser: browser,
		context: context,
		timeout: opts.Timeout,
		logger:  slog.Default().With("component", "browser"),
	}, nil
}

func (b *Browser) NewPage() (playwright.Page, error) {
	page, err := b.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create new page: %w", err)
	}

	page.SetDefaultTimeout(float64(b.timeout.Milliseconds()))

	return page, nil
}

// Navigate loads url once and waits for the DOM to be ready. There is no retry.
func (b *Browser) Navigate(page playwright.Page, url string) error {
	b.logger.Debug("navigating", "url", url)

	_, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(b.timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (b *Browser) Close() error {
	var errs []error

	if b.context != nil {
		if err := b.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %w", errors.Join(errs...))
	}

	return nil
}

// WithPage starts a browser, opens a page and runs fn against it. The browser
// is closed on every return path, and a close failure is joined to fn's error.
func WithPage(opts *Options, fn func(b *Browser, page playwright.Page) error) (err error) {
	b, err := New(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := b.Close(); closeErr != nil {
			b.logger.Error("failed to close browser", "error", closeErr)
			err = errors.Join(err, closeErr)
		}
	}()

	page, err := b.NewPage()
	if err != nil {
		return err
	}

	return fn(b, page)
}
