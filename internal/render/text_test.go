package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homedraft/homedraft/pkg/concept"
)

func sampleConcept() *concept.Concept {
	return &concept.Concept{
		ConceptID:         "2b6a5ed1-9d3e-5f4a-8c71-0b2d4e6f8a90",
		Brief:             "A modern family home with clean lines and lots of glass",
		ImageDescriptions: []string{"dark metal roof", "floor-to-ceiling windows"},
		RequiredRooms:     []string{"4 bedrooms", "3 bathrooms", "home office", "mudroom"},
		Plot: concept.Plot{
			WidthM:      18,
			DepthM:      32,
			Slope:       "flat",
			Climate:     "temperate",
			Orientation: "north-facing street",
		},
		SelectedStyle:   "modern",
		StyleConfidence: "high",
		ExteriorFinishes: []string{
			"Standing seam metal roof in charcoal",
			"Black anodized aluminum windows",
		},
		InteriorFinishes: []string{"Matte engineered oak flooring"},
		SuggestedFeatures: []string{
			"Double-height living room glazing",
		},
		SiteStrategy: []string{
			"Plot measures 18 m wide by 32 m deep (approximately 576 m²); reserve 35-45% for landscaped open space.",
		},
		RoomPlanningNotes: []string{
			"Keep kitchen, dining, and family spaces connected; isolate acoustic-sensitive spaces.",
		},
	}
}

func renderText(t *testing.T, c *concept.Concept) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Text(&b, c))
	return b.String()
}

func TestTextReportHeader(t *testing.T) {
	out := renderText(t, sampleConcept())

	assert.True(t, strings.HasPrefix(out, "\nHOUSE DESIGN PROPOSAL\n"), "report should open with the proposal banner")
	assert.Contains(t, out, strings.Repeat("=", 72)+"\n")
	assert.Contains(t, out, "Concept: 2b6a5ed1-9d3e-5f4a-8c71-0b2d4e6f8a90\n")
	assert.Contains(t, out, "Brief: A modern family home with clean lines and lots of glass\n")
	assert.Contains(t, out, "Inspiration: dark metal roof, floor-to-ceiling windows\n")
	assert.Contains(t, out, "Style: Modern (confidence: high)\n", "the style name should be title-cased")
}

func TestTextReportListsRoomsVerbatimAndInOrder(t *testing.T) {
	out := renderText(t, sampleConcept())

	last := -1
	for _, room := range sampleConcept().RequiredRooms {
		entry := "  - " + room + "\n"
		idx := strings.Index(out, entry)
		require.GreaterOrEqualf(t, idx, 0, "room %q missing from the report", room)
		assert.Greaterf(t, idx, last, "room %q out of order", room)
		last = idx
	}
}

func TestTextReportSections(t *testing.T) {
	out := renderText(t, sampleConcept())

	for _, title := range []string{
		"Room Plan:",
		"Exterior Finishes:",
		"Interior Finishes:",
		"Suggested Features:",
		"Site Strategy:",
		"Room Planning Notes:",
	} {
		assert.Contains(t, out, "\n"+title+"\n", "expected section heading")
	}
}

func TestTextReportOmitsEmptySections(t *testing.T) {
	c := sampleConcept()
	c.ImageDescriptions = []string{}
	c.RequiredRooms = []string{}
	out := renderText(t, c)

	assert.NotContains(t, out, "Inspiration:")
	assert.NotContains(t, out, "Room Plan:")
}

func TestTextReportWrapsLongNotes(t *testing.T) {
	c := sampleConcept()
	c.SiteStrategy = []string{
		"Specify envelope and shading details suitable for a temperate climate with pronounced seasonal swings and frequent driving rain from the southwest.",
	}
	out := renderText(t, c)

	start := strings.Index(out, "Site Strategy:\n")
	require.GreaterOrEqual(t, start, 0)
	body := out[start+len("Site Strategy:\n"):]
	if end := strings.Index(body, "\n\n"); end >= 0 {
		body = body[:end]
	}

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Greater(t, len(lines), 1, "a long note should wrap onto continuation lines")
	for i, line := range lines {
		if i == 0 {
			assert.True(t, strings.HasPrefix(line, "  - "), "first line should carry the bullet")
			continue
		}
		assert.Truef(t, strings.HasPrefix(line, noteIndent), "continuation line %d should be indented", i)
		assert.LessOrEqualf(t, len(line), noteWidth, "continuation line %d too long", i)
	}
}

func TestTextReportNeverWrapsRoomNames(t *testing.T) {
	c := sampleConcept()
	c.RequiredRooms = []string{
		"an unusually long room label that would exceed any reasonable wrap width if the renderer touched it",
	}
	out := renderText(t, c)

	assert.Contains(t, out, "  - "+c.RequiredRooms[0]+"\n", "user-supplied room names must appear verbatim on one line")
}

func TestTextReportDeterministic(t *testing.T) {
	first := renderText(t, sampleConcept())
	second := renderText(t, sampleConcept())
	assert.Equal(t, first, second, "identical concepts must render to identical bytes")
}

func TestWrapText(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "a short note", wrapText("a short note", 68, "    "))
	})

	t.Run("long text wraps at the limit", func(t *testing.T) {
		in := strings.Repeat("word ", 30) + "end"
		out := wrapText(in, 68, "    ")

		lines := strings.Split(out, "\n")
		require.Greater(t, len(lines), 1)
		for i, line := range lines {
			assert.LessOrEqualf(t, len(line), 68, "line %d exceeds the wrap width", i)
			if i > 0 {
				assert.True(t, strings.HasPrefix(line, "    "), "continuation lines carry the indent")
			}
		}

		// No words lost or reordered.
		assert.Equal(t, strings.Fields(in), strings.Fields(out))
	})

	t.Run("overlong word kept intact", func(t *testing.T) {
		word := strings.Repeat("x", 90)
		assert.Equal(t, word, wrapText(word, 68, "    "))
	})
}
