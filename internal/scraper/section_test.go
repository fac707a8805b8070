package scraper

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltedev/laundry-status/internal/models"
)

type fakeElement struct {
	title     string
	class     string
	html      string
	fragments []string
	err       error
}

func (e *fakeElement) Title() (string, error) { return e.title, e.err }
func (e *fakeElement) TitleClass() (string, error) { return e.class, nil }
func (e *fakeElement) ParagraphHTML() (string, error) { return e.html, nil }
func (e *fakeElement) Fragments() ([]string, error) { return e.fragments, nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSectionProcess(t *testing.T) {
	var out bytes.Buffer
	section := NewSection(NewReporter(&out), discardLogger())

	elements := []Element{
		&fakeElement{
			title: "Machine 1",
			class: "accordion__title accordion__title--idle",
			html:  "<small>Cycle complete</small><br>Please remove your laundry",
		},
		&fakeElement{
			title:     "Machine 2",
			class:     "accordion__title accordion__title--in-use",
			html:      `<span>32 mins left</span><br><a href="#">Report a fault</a>`,
			fragments: []string{"32 mins left"},
		},
		&fakeElement{
			title:     "Machine 3",
			class:     "accordion__title",
			html:      "Available",
			fragments: []string{"10 mins ago"},
		},
	}

	result, err := section.Process(models.Washer, elements)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Tally.Count(models.StatusCycleComplete))
	assert.Equal(t, 1, result.Tally.Count(models.StatusInUse))
	assert.Equal(t, 1, result.Tally.Count(models.StatusWasherAvailable))
	assert.Equal(t, 3, result.Tally.Total())

	expected := []models.Machine{
		{Title: "Machine 1", Type: models.Washer, Status: models.StatusCycleComplete, Description: "Cycle complete\nPlease remove your laundry"},
		{Title: "Machine 2", Type: models.Washer, Status: models.StatusInUse, Duration: "32 mins left"},
		{Title: "Machine 3", Type: models.Washer, Status: models.StatusWasherAvailable, Description: "Available"},
	}
	if diff := cmp.Diff(expected, result.Machines); diff != "" {
		t.Errorf("machines mismatch (-want +got):\n%s", diff)
	}

	report := out.String()
	assert.Contains(t, report, "\nMachine 2, Status: In Use\n")
	assert.Contains(t, report, "Duration: 32 mins left\n")
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("Duration:")))
}

func TestSectionProcessCollectsCompletionTimes(t *testing.T) {
	section := NewSection(NewReporter(io.Discard), discardLogger())

	elements := []Element{
		&fakeElement{title: "A", class: "accordion__title accordion__title--in-use", html: "Expected completion time 14:35"},
		&fakeElement{title: "B", class: "accordion__title accordion__title--in-use", html: "Expected completion time 09:10"},
		&fakeElement{title: "C", class: "accordion__title accordion__title--in-use", html: "Expected completion time 22:00"},
		&fakeElement{title: "D", class: "accordion__title accordion__title--in-use", html: "Expected completion time soon"},
	}

	result, err := section.Process(models.Washer, elements)
	require.NoError(t, err)
	require.Len(t, result.CompletionTimes, 3)

	earliest, ok := result.NextFree()
	require.True(t, ok)
	assert.Equal(t, "09:10", earliest.String())
}

func TestSectionResultNextFreeSkippedWhenAvailable(t *testing.T) {
	result := newSectionResult(models.Dryer)
	result.add(models.Machine{Status: models.StatusDryerAvailable})
	result.add(models.Machine{Status: models.StatusInUse, CompletionTime: &models.CompletionTime{Hour: 10, Minute: 0}})

	_, ok := result.NextFree()
	assert.False(t, ok)
}

func TestSectionResultNextFreeEmpty(t *testing.T) {
	result := newSectionResult(models.Washer)
	result.add(models.Machine{Status: models.StatusInUse})

	_, ok := result.NextFree()
	assert.False(t, ok)
}

func TestSectionProcessReadError(t *testing.T) {
	section := NewSection(NewReporter(io.Discard), discardLogger())
	readErr := errors.New("element detached")

	elements := []Element{
		&fakeElement{title: "Machine 1", class: "accordion__title"},
		&fakeElement{err: readErr},
	}

	result, err := section.Process(models.Dryer, elements)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "dryer 2")
}
