package diff

import (
	"fmt"
	"strings"
)

// Summarize renders a one-line count of changes by type, e.g.
// "2 additions, 1 removal, 3 modifications".
func Summarize(changes []Change) string {
	if len(changes) == 0 {
		return "No changes detected"
	}

	var additions, removals, modifications int
	for _, c := range changes {
		switch c.Type {
		case Added:
			additions++
		case Removed:
			removals++
		case Modified:
			modifications++
		}
	}

	var parts []string
	if additions > 0 {
		parts = append(parts, plural(additions, "addition"))
	}
	if removals > 0 {
		parts = append(parts, plural(removals, "removal"))
	}
	if modifications > 0 {
		parts = append(parts, plural(modifications, "modification"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
