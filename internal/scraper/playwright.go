package scraper

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/maltedev/laundry-status/internal/browser"
)

type playwrightPage struct {
	browser *browser.Browser
	page    playwright.Page
}

// NewPlaywrightPage adapts a live browser page.
func NewPlaywrightPage(b *browser.Browser, page playwright.Page) Page {
	return &playwrightPage{browser: b, page: page}
}

func (p *playwrightPage) Goto(url string) error {
	if err := p.browser.Navigate(p.page, url); err != nil {
		return err
	}

	err := p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
	if err != nil {
		return fmt.Errorf("page did not settle: %w", err)
	}
	return nil
}

func (p *playwrightPage) Machines(selector string) ([]Element, error) {
	locators, err := p.page.Locator(selector).All()
	if err != nil {
		return nil, fmt.Errorf("failed to locate %q: %w", selector, err)
	}

	elements := make([]Element, 0, len(locators))
	for _, loc := range locators {
		elements = append(elements, &locatorElement{loc: loc})
	}
	return elements, nil
}

func (p *playwrightPage) ClickLink(text string, timeout time.Duration) error {
	link := p.page.Locator(fmt.Sprintf("xpath=//a[contains(text(), %q)]", text)).First()

	err := link.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return fmt.Errorf("%w: link %q after %s", ErrElementNotFound, text, timeout)
		}
		return fmt.Errorf("failed waiting for link %q: %w", text, err)
	}

	if err := link.Click(); err != nil {
		return fmt.Errorf("failed to click link %q: %w", text, err)
	}
	return nil
}

type locatorElement struct {
	loc playwright.Locator
}

func (e *locatorElement) Title() (string, error) {
	return e.loc.Locator(titleSelector).First().InnerText()
}

func (e *locatorElement) TitleClass() (string, error) {
	return e.loc.Locator(titleSelector).First().GetAttribute("class")
}

func (e *locatorElement) ParagraphHTML() (string, error) {
	return e.loc.Locator(paragraphSelector).First().InnerHTML()
}

// Fragments reads textContent, which is returned for hidden spans as well.
func (e *locatorElement) Fragments() ([]string, error) {
	return e.loc.Locator(fragmentSelector).AllTextContents()
}
