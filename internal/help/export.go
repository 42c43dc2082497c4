package help

import "strings"

// ExportText renders l as plain text, for clients that cannot show images.
func ExportText(l *HelpList) string {
	lines := []string{}
	if l.Title != "" {
		lines = append(lines, "# "+l.Title)
	}
	for _, g := range l.Groups {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "## "+g.Name)
		for _, it := range g.Items {
			line := "- " + it.Name
			if it.Desc != "" {
				line += ": " + it.Desc
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return strings.Join(lines, "\n")
}
