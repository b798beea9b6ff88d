package aggregation

import (
	"strings"

	"peilbuis/pkg/contracts/domain"
)

// Annotate merges notices into one message per well. Identical texts are kept
// once, in the order they were first seen.
func Annotate(notices []domain.Notice) map[string]string {
	texts := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, n := range notices {
		if n.Text == "" {
			continue
		}
		if seen[n.WellID] == nil {
			seen[n.WellID] = make(map[string]bool)
		}
		if seen[n.WellID][n.Text] {
			continue
		}
		seen[n.WellID][n.Text] = true
		texts[n.WellID] = append(texts[n.WellID], n.Text)
	}

	messages := make(map[string]string, len(texts))
	for wellID, t := range texts {
		messages[wellID] = strings.Join(t, MessageSeparator)
	}
	return messages
}
