package parser

import (
	"regexp"
	"strings"

	"github.com/maltedev/laundry-status/internal/models"
)

const (
	durationMarker       = "mins"
	completionTimePhrase = "Expected completion time"
)

var clockPattern = regexp.MustCompile(`\d{2}:\d{2}`)

// FindDuration returns the first fragment mentioning minutes, trimmed.
func FindDuration(fragments []string) (string, bool) {
	for _, fragment := range fragments {
		if strings.Contains(fragment, durationMarker) {
			return strings.TrimSpace(fragment), true
		}
	}
	return "", false
}

// ParseCompletionTime extracts the expected completion time from cleaned
// description text. Text without the completion phrase, or without a valid
// HH:MM value, yields nothing.
func ParseCompletionTime(text string) (models.CompletionTime, bool) {
	if !strings.Contains(text, completionTimePhrase) {
		return models.CompletionTime{}, false
	}

	match := clockPattern.FindString(text)
	if match == "" {
		return models.CompletionTime{}, false
	}

	t, err := models.ParseClock(match)
	if err != nil {
		return models.CompletionTime{}, false
	}
	return t, true
}
