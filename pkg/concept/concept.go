// Package concept defines the design concept document produced for a single
// request. The JSON shape of these types is the CLI's --json output format.
package concept

type Concept struct {
	// Stable fingerprint of the normalized request; identical inputs
	// always produce the same ID
	ConceptID string `json:"concept_id"`

	// The design brief exactly as supplied
	Brief string `json:"brief"`

	// Inspiration image descriptors, in input order
	ImageDescriptions []string `json:"image_descriptions"`

	// Requested rooms and spaces, in input order
	RequiredRooms []string `json:"required_rooms"`

	// Site parameters the concept was planned against
	Plot Plot `json:"plot"`

	// Style key selected by inference (e.g. "modern")
	SelectedStyle string `json:"selected_style"`

	// "high" when image descriptors informed the inference, else "medium"
	StyleConfidence string `json:"style_confidence"`

	// Curated finish and feature suggestions for the selected style
	ExteriorFinishes  []string `json:"exterior_finishes"`
	InteriorFinishes  []string `json:"interior_finishes"`
	SuggestedFeatures []string `json:"suggested_features"`

	// Guidance derived from the plot and the room program
	SiteStrategy      []string `json:"site_strategy"`
	RoomPlanningNotes []string `json:"room_planning_notes"`
}

type Plot struct {
	// Width of the plot in meters
	WidthM float64 `json:"width_m"`

	// Depth of the plot in meters
	DepthM float64 `json:"depth_m"`

	// Site slope label, e.g. "flat" or "gentle"
	Slope string `json:"slope"`

	// Climate label used for envelope guidance
	Climate string `json:"climate"`

	// Street orientation of the plot
	Orientation string `json:"orientation"`
}
