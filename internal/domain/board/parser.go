package board

import "strings"

// Parser extracts candidate player names from freeform pasted text. New
// paste formats get their own Parser; the removal state machine never
// changes for them.
type Parser interface {
	// Names returns the candidate names found in text, in paste order.
	// Unparseable lines are skipped, never an error.
	Names(text string) []string
}

// SlashParser handles the draft-history paste format where each entry
// looks like "Name / Team / Position": the text before the first slash is
// the name. Lines without a slash carry no reliable name and are silently
// ignored.
type SlashParser struct{}

func (SlashParser) Names(text string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		before, _, found := strings.Cut(line, "/")
		if !found {
			continue
		}
		name := strings.TrimSpace(before)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
