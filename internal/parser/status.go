package parser

import (
	"strings"

	"github.com/maltedev/laundry-status/internal/models"
)

const (
	titleToken = "accordion__title"
	idleToken  = "accordion__title--idle"
	inUseToken = "accordion__title--in-use"
	dryerToken = "accordion__title--dryer"
)

// statusRules is checked in order and the first matching token wins. The
// dryer modifier must come before the bare title token, since every dryer
// title also carries accordion__title.
var statusRules = []struct {
	token  string
	status models.Status
}{
	{idleToken, models.StatusCycleComplete},
	{inUseToken, models.StatusInUse},
	{dryerToken, models.StatusDryerAvailable},
	{titleToken, models.StatusWasherAvailable},
}

// ClassifyStatus maps the class tokens of a machine's title element to a status.
func ClassifyStatus(tokens []string) models.Status {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}

	for _, rule := range statusRules {
		if _, ok := set[rule.token]; ok {
			return rule.status
		}
	}
	return models.StatusUnknown
}

// ClassifyClass classifies a raw class attribute value.
func ClassifyClass(class string) models.Status {
	return ClassifyStatus(strings.Fields(class))
}
