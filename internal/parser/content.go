package parser

import (
	"regexp"
	"strings"
)

const reportFaultPhrase = "Report a fault"

var (
	// Non-greedy; an unterminated tag swallows everything up to the next '>'.
	tagPattern   = regexp.MustCompile(`<.*?>`)
	breakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// CleanContents turns the inner HTML of a machine's description paragraph into
// display text. If duration is non-empty its first occurrence is removed.
func CleanContents(innerHTML, duration string) string {
	text := breakPattern.ReplaceAllString(innerHTML, "")
	text = strings.ReplaceAll(text, "</small>", "</small>\n")
	text = tagPattern.ReplaceAllString(text, "")

	for strings.Contains(text, reportFaultPhrase) {
		text = strings.ReplaceAll(text, reportFaultPhrase, "")
	}

	if duration != "" {
		text = strings.Replace(text, duration, "", 1)
	}

	return strings.TrimSpace(text)
}
