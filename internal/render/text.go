// Package render writes a design concept to an output stream, either as a
// human-readable report or as JSON. Both renderings are pure functions of the
// concept, so identical concepts produce byte-identical output.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homedraft/homedraft/pkg/concept"
)

const (
	// Width of the report's horizontal rule.
	ruleWidth = 72

	// Generated guidance wraps at this width, continuation lines indented.
	noteWidth  = 68
	noteIndent = "    "
)

// section pairs a report heading with its bullet entries. User-supplied
// entries are printed verbatim; generated ones are wrapped for readability.
type section struct {
	Title string
	Items []string
	Wrap  bool
}

// Text writes the concept as a readable report. Room names and the brief
// appear exactly as the user supplied them.
func Text(w io.Writer, c *concept.Concept) error {
	titleCaser := cases.Title(language.English)

	var b strings.Builder
	b.WriteString("\nHOUSE DESIGN PROPOSAL\n")
	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Concept: %s\n", c.ConceptID)
	fmt.Fprintf(&b, "Brief: %s\n", c.Brief)
	if len(c.ImageDescriptions) > 0 {
		fmt.Fprintf(&b, "Inspiration: %s\n", strings.Join(c.ImageDescriptions, ", "))
	}
	fmt.Fprintf(&b, "Style: %s (confidence: %s)\n", titleCaser.String(c.SelectedStyle), c.StyleConfidence)

	sections := []section{
		{Title: "Room Plan", Items: c.RequiredRooms},
		{Title: "Exterior Finishes", Items: c.ExteriorFinishes, Wrap: true},
		{Title: "Interior Finishes", Items: c.InteriorFinishes, Wrap: true},
		{Title: "Suggested Features", Items: c.SuggestedFeatures, Wrap: true},
		{Title: "Site Strategy", Items: c.SiteStrategy, Wrap: true},
		{Title: "Room Planning Notes", Items: c.RoomPlanningNotes, Wrap: true},
	}

	for _, s := range sections {
		if len(s.Items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", s.Title)
		for _, item := range s.Items {
			if s.Wrap {
				item = wrapText(item, noteWidth, noteIndent)
			}
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// wrapText greedily wraps s at width, prefixing continuation lines with
// indent. The indent counts toward the width. Words longer than a full line
// are kept intact.
func wrapText(s string, width int, indent string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var out strings.Builder
	line := words[0]
	limit := width
	for _, word := range words[1:] {
		if len(line)+1+len(word) > limit {
			out.WriteString(line)
			out.WriteString("\n")
			out.WriteString(indent)
			line = word
			limit = width - len(indent)
			continue
		}
		line += " " + word
	}
	out.WriteString(line)
	return out.String()
}
