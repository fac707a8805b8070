package scraper

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/maltedev/laundry-status/internal/models"
	"github.com/maltedev/laundry-status/internal/parser"
)

type SectionResult struct {
	Type            models.MachineType
	Machines        []models.Machine
	Tally           *models.Tally
	CompletionTimes []models.CompletionTime
}

func newSectionResult(kind models.MachineType) *SectionResult {
	return &SectionResult{
		Type:  kind,
		Tally: models.NewTally(),
	}
}

func (r *SectionResult) add(m models.Machine) {
	r.Machines = append(r.Machines, m)
	r.Tally.Add(m.Status)
	if m.CompletionTime != nil {
		r.CompletionTimes = append(r.CompletionTimes, *m.CompletionTime)
	}
}

// NextFree reports the earliest expected completion time, but only when no
// machine of this type is currently available.
func (r *SectionResult) NextFree() (models.CompletionTime, bool) {
	if r.Tally.Has(r.Type.AvailableStatus()) {
		return models.CompletionTime{}, false
	}
	return models.Earliest(r.CompletionTimes)
}

// Section turns the machine cards of one accordion group into records.
type Section struct {
	reporter *Reporter
	logger   *slog.Logger
}

func NewSection(reporter *Reporter, logger *slog.Logger) *Section {
	return &Section{
		reporter: reporter,
		logger:   logger.With("component", "section"),
	}
}

// Process handles elements in document order and reports each machine as it
// is read. Only failures to read the page are returned; missing durations or
// completion times are not errors.
func (s *Section) Process(kind models.MachineType, elements []Element) (*SectionResult, error) {
	result := newSectionResult(kind)

	for i, el := range elements {
		machine, err := readMachine(kind, el)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s %d: %w", kind, i+1, err)
		}

		s.logger.Debug("machine read",
			"type", kind,
			"title", machine.Title,
			"status", machine.Status,
			"duration", machine.Duration)

		result.add(machine)
		s.reporter.Machine(machine)
	}

	return result, nil
}

func readMachine(kind models.MachineType, el Element) (models.Machine, error) {
	title, err := el.Title()
	if err != nil {
		return models.Machine{}, fmt.Errorf("title: %w", err)
	}

	class, err := el.TitleClass()
	if err != nil {
		return models.Machine{}, fmt.Errorf("title class: %w", err)
	}

	machine := models.Machine{
		Title:  strings.TrimSpace(title),
		Type:   kind,
		Status: parser.ClassifyClass(class),
	}

	if machine.Status == models.StatusInUse {
		fragments, err := el.Fragments()
		if err != nil {
			return models.Machine{}, fmt.Errorf("fragments: %w", err)
		}
		if duration, ok := parser.FindDuration(fragments); ok {
			machine.Duration = duration
		}
	}

	html, err := el.ParagraphHTML()
	if err != nil {
		return models.Machine{}, fmt.Errorf("description: %w", err)
	}
	machine.Description = parser.CleanContents(html, machine.Duration)

	if t, ok := parser.ParseCompletionTime(machine.Description); ok {
		machine.CompletionTime = &t
	}

	return machine, nil
}
