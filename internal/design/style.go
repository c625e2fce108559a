package design

import (
	"strings"

	"golang.org/x/text/cases"
)

// Confidence levels reported alongside the selected style.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// InferStyle scores every catalog style by keyword hits across the brief and
// the image descriptors, and returns the best match. Ties resolve to the
// earliest catalog entry; no hits at all fall back to "contemporary".
func InferStyle(brief string, imageDescriptions []string) string {
	// Keywords are lower-case; fold the combined input once before matching.
	folded := cases.Fold().String(brief + " " + strings.Join(imageDescriptions, " "))

	selected := fallbackStyle
	bestScore := 0
	for _, pkg := range styleCatalog {
		score := 0
		for _, keyword := range pkg.Keywords {
			if strings.Contains(folded, keyword) {
				score++
			}
		}
		if score > bestScore {
			selected = pkg.Name
			bestScore = score
		}
	}
	return selected
}

// Confidence is high only when image descriptors informed the inference.
func Confidence(imageDescriptions []string) string {
	if len(imageDescriptions) > 0 {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}
