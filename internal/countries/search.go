package countries

import (
	"sort"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type match struct {
	name     string
	isPrefix bool
}

// Search returns up to limit countries containing query, case-insensitively.
// Prefix matches sort before substring matches. An empty query returns the
// head of the list.
func Search(query string, limit int) []string {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if len(names) <= limit {
			return All()
		}
		return append([]string(nil), names[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]match, 0, 16)
	for _, name := range names {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, match{name: name, isPrefix: strings.HasPrefix(lower, q)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}
