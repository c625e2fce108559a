// Package design validates raw request input and turns it into a full house
// design concept: inferred style, curated finish packages, site strategy and
// room planning notes.
package design

import (
	"math"
	"strings"

	"github.com/homedraft/homedraft/pkg/concept"
)

// Fallback labels for the optional site inputs. BuildRequest applies them
// when the resolved value is blank, so a config layer that passes empty
// strings through still yields a usable plot.
const (
	DefaultSlope       = "flat"
	DefaultClimate     = "temperate"
	DefaultOrientation = "north-facing street"
)

type RawInput struct {
	// Brief is the written description of the desired house
	Brief string

	// Images holds comma-separated inspiration image descriptors
	Images string

	// Rooms holds comma-separated required rooms/spaces
	Rooms string

	// Plot dimensions in meters; both must be positive
	PlotWidthM float64
	PlotDepthM float64

	// Optional site labels; blanks fall back to the package defaults
	Slope       string
	Climate     string
	Orientation string
}

// Request is the validated, normalized input for one planning run.
type Request struct {
	Brief             string
	ImageDescriptions []string
	RequiredRooms     []string
	Plot              concept.Plot
}

// BuildRequest validates raw input and normalizes it into a Request. All
// failures are reported as *InputError.
func BuildRequest(raw RawInput) (*Request, error) {
	brief := strings.TrimSpace(raw.Brief)
	if brief == "" {
		return nil, NewMissingInputError("brief")
	}

	if err := validateDimension("plot-width", raw.PlotWidthM); err != nil {
		return nil, err
	}
	if err := validateDimension("plot-depth", raw.PlotDepthM); err != nil {
		return nil, err
	}

	return &Request{
		Brief:             brief,
		ImageDescriptions: SplitList(raw.Images),
		RequiredRooms:     SplitList(raw.Rooms),
		Plot: concept.Plot{
			WidthM:      raw.PlotWidthM,
			DepthM:      raw.PlotDepthM,
			Slope:       labelOrDefault(raw.Slope, DefaultSlope),
			Climate:     labelOrDefault(raw.Climate, DefaultClimate),
			Orientation: labelOrDefault(raw.Orientation, DefaultOrientation),
		},
	}, nil
}

func validateDimension(field string, meters float64) error {
	if math.IsInf(meters, 0) {
		return NewInvalidInputError(field, "must be a finite number of meters")
	}
	// The negated form also rejects NaN, which compares false to everything.
	if !(meters > 0) {
		return NewInvalidInputError(field, "must be a positive number of meters")
	}
	return nil
}

// SplitList turns a comma-separated field into an ordered list, trimming
// whitespace and dropping empty entries. It never returns nil so the result
// marshals as a JSON array.
func SplitList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func labelOrDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
