package design

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/homedraft/homedraft/pkg/concept"
)

// conceptNamespace seeds the UUIDv5 fingerprint of a request. Changing it
// changes every concept ID.
var conceptNamespace = uuid.MustParse("8c7d5a31-9f2e-4b62-a1d4-6c3f0b8e5a97")

type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// Propose assembles the full design concept for a validated request. The
// result depends only on the request, so identical inputs yield identical
// concepts.
func (p *Planner) Propose(req *Request) (*concept.Concept, error) {
	style := InferStyle(req.Brief, req.ImageDescriptions)
	pkg, ok := styleByName(style)
	if !ok {
		return nil, fmt.Errorf("style %q missing from catalog", style)
	}

	confidence := Confidence(req.ImageDescriptions)
	slog.Debug("Inferred style", "style", style, "confidence", confidence)

	return &concept.Concept{
		ConceptID:         fingerprint(req),
		Brief:             req.Brief,
		ImageDescriptions: req.ImageDescriptions,
		RequiredRooms:     req.RequiredRooms,
		Plot:              req.Plot,
		SelectedStyle:     style,
		StyleConfidence:   confidence,
		ExteriorFinishes:  pkg.Exterior,
		InteriorFinishes:  pkg.Interior,
		SuggestedFeatures: pkg.Features,
		SiteStrategy:      siteStrategy(req.Plot),
		RoomPlanningNotes: roomPlanningNotes(req.RequiredRooms),
	}, nil
}

func siteStrategy(plot concept.Plot) []string {
	area := plot.WidthM * plot.DepthM
	return []string{
		fmt.Sprintf("Plot measures %s m wide by %s m deep (approximately %s m²); reserve 35-45%% for landscaped open space.",
			formatMeters(plot.WidthM), formatMeters(plot.DepthM), formatArea(area)),
		fmt.Sprintf("Align main living spaces for %s with controlled glazing for daylight comfort.", plot.Orientation),
		fmt.Sprintf("Use a %s slope strategy: stepped slab and drainage channels if not flat.", plot.Slope),
		fmt.Sprintf("Specify envelope and shading details suitable for %s climate.", plot.Climate),
	}
}

func roomPlanningNotes(rooms []string) []string {
	notes := []string{}
	if len(rooms) > 0 {
		notes = append(notes, fmt.Sprintf("Prioritize adjacency planning for: %s.", strings.Join(rooms, ", ")))
	}
	notes = append(notes,
		"Keep kitchen, dining, and family spaces connected; isolate acoustic-sensitive spaces.",
		"Plan storage early: pantry, linen, utility, and integrated wardrobes.",
	)
	return notes
}

// fingerprint derives the concept ID from the canonical JSON form of the
// normalized request.
func fingerprint(req *Request) string {
	canonical, _ := json.Marshal(req)
	return uuid.NewSHA1(conceptNamespace, canonical).String()
}

func formatMeters(meters float64) string {
	return strconv.FormatFloat(meters, 'f', -1, 64)
}

func formatArea(squareMeters float64) string {
	return strconv.FormatFloat(squareMeters, 'f', 0, 64)
}
