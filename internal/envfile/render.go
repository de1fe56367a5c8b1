// Where: cli/internal/envfile/render.go
// What: Pure dotenv text rendering from ordered descriptors.
// Why: Keep .env output deterministic and independent of any I/O.
package envfile

import "strings"

// Descriptor is one logical environment variable entry. An empty string
// means the field is absent: a descriptor with no Name contributes only its
// Description lines, and a named descriptor with no Value is emitted as a
// commented placeholder for the user to fill in.
type Descriptor struct {
	Name        string
	Description string
	Value       string
}

// Render folds the descriptors, strictly in input order, into dotenv text.
// Duplicate names are rendered twice; nothing is reordered, deduplicated,
// validated, or escaped. Render never fails.
func Render(entries []Descriptor) string {
	var b strings.Builder
	for _, entry := range entries {
		if entry.Description != "" {
			for _, line := range strings.Split(entry.Description, "\n") {
				b.WriteString("# ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		if entry.Name == "" {
			continue
		}
		if entry.Value != "" {
			b.WriteString(entry.Name)
			b.WriteString("=")
			b.WriteString(entry.Value)
		} else {
			b.WriteString("# ")
			b.WriteString(entry.Name)
			b.WriteString("=")
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
