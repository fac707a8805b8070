package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltedev/laundry-status/internal/models"
)

func TestFindDuration(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		expected  string
		found     bool
	}{
		{"No fragments", nil, "", false},
		{"No minutes", []string{"In use", "Expected completion time 14:35"}, "", false},
		{"Single match", []string{"In use", "  32 mins left \n"}, "32 mins left", true},
		{"First match wins", []string{"12 mins left", "40 mins total"}, "12 mins left", true},
		{"Substring match", []string{"about 3mins"}, "about 3mins", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration, found := FindDuration(tt.fragments)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, duration)
		})
	}
}

func TestParseCompletionTime(t *testing.T) {
	result, ok := ParseCompletionTime("Expected completion time 14:35")
	require.True(t, ok)
	assert.Equal(t, models.CompletionTime{Hour: 14, Minute: 35}, result)
}

func TestParseCompletionTimeMisses(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"No phrase", "Finishes at 14:35"},
		{"No time", "Expected completion time unavailable"},
		{"Single digit hour", "Expected completion time 9:35"},
		{"Out of range", "Expected completion time 27:90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseCompletionTime(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestParseCompletionTimeFirstMatch(t *testing.T) {
	result, ok := ParseCompletionTime("Started 13:05\nExpected completion time 14:35")
	require.True(t, ok)
	assert.Equal(t, "13:05", result.String())
}
