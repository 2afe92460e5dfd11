package commands

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// candidate pairs an item id with its display name for matching.
type candidate struct {
	id   string
	name string
}

const maxEditDistance = 2

// matchCandidate resolves free-text player input against display names:
// case-insensitive substring first, then closest levenshtein distance within
// a small tolerance for typos. Returns the matched id.
func matchCandidate(cands []candidate, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(cands) == 0 {
		return "", false
	}

	for _, c := range cands {
		if strings.Contains(strings.ToLower(c.name), q) || c.id == q {
			return c.id, true
		}
	}

	bestId := ""
	bestDist := maxEditDistance + 1
	for _, c := range cands {
		d := levenshtein.ComputeDistance(q, strings.ToLower(c.name))
		if d < bestDist {
			bestDist = d
			bestId = c.id
		}
	}
	if bestId != "" {
		return bestId, true
	}
	return "", false
}
