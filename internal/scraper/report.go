package scraper

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/maltedev/laundry-status/internal/models"
)

// Reporter writes the human readable scrape report.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Starting() {
	fmt.Fprintln(r.out, "Starting scraping")
}

func (r *Reporter) Machine(m models.Machine) {
	fmt.Fprintf(r.out, "\n%s, Status: %s\n", m.Title, m.Status)
	fmt.Fprintln(r.out, m.Description)
	if m.HasDuration() {
		fmt.Fprintf(r.out, "Duration: %s\n", m.Duration)
	}
}

func (r *Reporter) StatusCounts(section *SectionResult) {
	fmt.Fprintf(r.out, "\n%s Status Counts:\n", section.Type.DisplayName())

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Status", "Count"})
	for _, status := range section.Tally.Statuses() {
		t.AppendRow(table.Row{string(status), section.Tally.Count(status)})
	}
	t.AppendFooter(table.Row{"Total", section.Tally.Total()})

	fmt.Fprintln(r.out, t.Render())
}

func (r *Reporter) NextFree(section *SectionResult) {
	earliest, ok := section.NextFree()
	if !ok {
		return
	}
	fmt.Fprintf(r.out, "\nEarliest Expected %s Completion Time: %s\n", section.Type.DisplayName(), earliest)
}

func (r *Reporter) Summary(result *Result) {
	r.StatusCounts(result.Washers)
	r.StatusCounts(result.Dryers)
	r.NextFree(result.Washers)
	r.NextFree(result.Dryers)
}
