package outline

import (
	"fmt"
	"strings"

	"lister-cli/internal/model"
)

// Less orders two notes.
type Less = func(a, b model.Note) bool

var sortKeys = map[string]Less{
	"title":   func(a, b model.Note) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) },
	"done":    func(a, b model.Note) bool { return !a.Done && b.Done },
	"created": func(a, b model.Note) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"updated": func(a, b model.Note) bool { return a.UpdatedAt.Before(b.UpdatedAt) },
}

// ParseSort turns "done,-title" into a comparator chain. A leading "-"
// reverses a key.
func ParseSort(keys string) ([]Less, error) {
	var out []Less
	for _, part := range strings.Split(keys, ",") {
		key := strings.ToLower(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		desc := strings.HasPrefix(key, "-")
		key = strings.TrimPrefix(key, "-")
		less, ok := sortKeys[key]
		if !ok {
			return nil, fmt.Errorf("unknown sort key: %s", key)
		}
		if desc {
			asc := less
			less = func(a, b model.Note) bool { return asc(b, a) }
		}
		out = append(out, less)
	}
	return out, nil
}

// HideUnless returns a filter hiding every note that does not match q. An
// empty q hides nothing.
func HideUnless(q string) func(model.Note) bool {
	if strings.TrimSpace(q) == "" {
		return nil
	}
	return func(n model.Note) bool { return !n.Matches(q) }
}
