package models

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusWasherAvailable Status = "Washer Available"
	StatusDryerAvailable  Status = "Dryer Available"
	StatusInUse           Status = "In Use"
	StatusCycleComplete   Status = "Cycle Complete"
	StatusUnknown         Status = "Unknown"
)

type MachineType string

const (
	Washer MachineType = "washer"
	Dryer  MachineType = "dryer"
)

// AvailableStatus is the status a free machine of this type reports.
func (t MachineType) AvailableStatus() Status {
	if t == Dryer {
		return StatusDryerAvailable
	}
	return StatusWasherAvailable
}

func (t MachineType) DisplayName() string {
	if t == Dryer {
		return "Dryer"
	}
	return "Washer"
}

type Machine struct {
	Title          string          `json:"title"`
	Type           MachineType     `json:"type"`
	Status         Status          `json:"status"`
	Description    string          `json:"description"`
	Duration       string          `json:"duration,omitempty"`
	CompletionTime *CompletionTime `json:"completion_time,omitempty"`
}

func (m *Machine) HasDuration() bool {
	return m.Duration != ""
}

// CompletionTime is a time of day without a date component.
type CompletionTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseClock parses a 24-hour "HH:MM" value.
func ParseClock(value string) (CompletionTime, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return CompletionTime{}, fmt.Errorf("invalid completion time %q: %w", value, err)
	}
	return CompletionTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c CompletionTime) Before(other CompletionTime) bool {
	if c.Hour != other.Hour {
		return c.Hour < other.Hour
	}
	return c.Minute < other.Minute
}

func (c CompletionTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Earliest returns the minimum time of day. Times are compared without any
// cross-midnight adjustment.
func Earliest(times []CompletionTime) (CompletionTime, bool) {
	if len(times) == 0 {
		return CompletionTime{}, false
	}

	earliest := times[0]
	for _, t := range times[1:] {
		if t.Before(earliest) {
			earliest = t
		}
	}
	return earliest, true
}
