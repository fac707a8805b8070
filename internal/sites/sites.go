// Package sites lists the laundry rooms that can be checked and handles
// choosing one from a numbered menu.
package sites

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const circuitViewURL = "https://www.circuit.co.uk/circuit-view/laundry-site/?site="

var (
	ErrInvalidSelection = errors.New("Invalid selection")
	ErrUnknownSite      = errors.New("unknown laundry site")
)

type Site struct {
	Option int
	Name   string
	SiteID string
}

func (s Site) URL() string {
	return circuitViewURL + s.SiteID
}

var rooms = []Site{
	{Option: 1, Name: "Murano Street Csb Laundry", SiteID: "6240"},
	{Option: 2, Name: "Murano Street Cheviot Laundry", SiteID: "6239"},
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	optionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func All() []Site {
	all := make([]Site, len(rooms))
	copy(all, rooms)
	return all
}

func Lookup(option int) (Site, error) {
	for _, site := range rooms {
		if site.Option == option {
			return site, nil
		}
	}
	return Site{}, fmt.Errorf("%w: %d", ErrUnknownSite, option)
}

func PrintMenu(w io.Writer) {
	fmt.Fprintln(w, headingStyle.Render("Laundry Scraper"))
	fmt.Fprintln(w, "Supported Laundry Rooms:")
	for _, site := range rooms {
		fmt.Fprintf(w, "%s : %s\n", optionStyle.Render(strconv.Itoa(site.Option)), site.Name)
	}
}

// Prompt shows the menu on w and reads one selection from r.
func Prompt(r io.Reader, w io.Writer) (Site, error) {
	PrintMenu(w)
	fmt.Fprint(w, "Select an option: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Site{}, fmt.Errorf("failed to read selection: %w", err)
	}

	option, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Site{}, ErrInvalidSelection
	}

	site, err := Lookup(option)
	if err != nil {
		return Site{}, ErrInvalidSelection
	}
	return site, nil
}
