package scraper

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// documentPage serves a saved circuit-view page. Both machine sections are
// already in the markup, so following the dryers link only checks it exists.
type documentPage struct {
	doc *goquery.Document
}

func NewDocumentPage(r io.Reader) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &documentPage{doc: doc}, nil
}

func (p *documentPage) Goto(string) error {
	return nil
}

func (p *documentPage) Machines(selector string) ([]Element, error) {
	var elements []Element
	p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &selectionElement{sel: s})
	})
	return elements, nil
}

func (p *documentPage) ClickLink(text string, _ time.Duration) error {
	link := p.doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), text)
	})
	if link.Length() == 0 {
		return fmt.Errorf("%w: link %q", ErrElementNotFound, text)
	}
	return nil
}

type selectionElement struct {
	sel *goquery.Selection
}

func (e *selectionElement) find(selector string) (*goquery.Selection, error) {
	s := e.sel.Find(selector).First()
	if s.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	return s, nil
}

func (e *selectionElement) Title() (string, error) {
	s, err := e.find(titleSelector)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s.Text()), nil
}

func (e *selectionElement) TitleClass() (string, error) {
	s, err := e.find(titleSelector)
	if err != nil {
		return "", err
	}
	class, _ := s.Attr("class")
	return class, nil
}

func (e *selectionElement) ParagraphHTML() (string, error) {
	s, err := e.find(paragraphSelector)
	if err != nil {
		return "", err
	}
	return s.Html()
}

func (e *selectionElement) Fragments() ([]string, error) {
	var fragments []string
	e.sel.Find(fragmentSelector).Each(func(_ int, s *goquery.Selection) {
		fragments = append(fragments, s.Text())
	})
	return fragments, nil
}
