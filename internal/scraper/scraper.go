package scraper

import (
	"errors"
	"time"
)

var (
	ErrDryersControlNotFound = errors.New("View Dryers control not found")
	ErrElementNotFound       = errors.New("element not found")
)

const (
	washerSelector    = "section.accordions--circuit-view:nth-of-type(1) div.accordion"
	dryerSelector     = "section.accordions--circuit-view:nth-of-type(2) div.accordion"
	titleSelector     = "div.accordion__title"
	paragraphSelector = "p"
	fragmentSelector  = "p span"

	viewDryersText = "View Dryers"

	DefaultDryersTimeout = 10 * time.Second
)

// Element is one machine's accordion card.
type Element interface {
	Title() (string, error)
	TitleClass() (string, error)
	ParagraphHTML() (string, error)
	// Fragments returns the text content of the inline spans in the paragraph.
	Fragments() ([]string, error)
}

// Page is the part of a loaded circuit-view page the scraper drives.
type Page interface {
	Goto(url string) error
	Machines(selector string) ([]Element, error)
	// ClickLink waits up to timeout for a link containing text and clicks it.
	ClickLink(text string, timeout time.Duration) error
}
