package pdf

import "strings"

// WrapText performs greedy word wrap. A line is broken at the last space
// before it would exceed maxWidth; a single word wider than maxWidth is
// placed alone on its own line and never split. Explicit newlines start a
// new line and blank lines inside the text are kept as empty strings.
// Blank input yields no lines.
func WrapText(text string, maxWidth float64, width func(string) float64) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if width(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
