package design

// stylePackage bundles the keyword triggers and curated suggestions for one
// architectural style.
type stylePackage struct {
	Name     string
	Keywords []string
	Exterior []string
	Interior []string
	Features []string
}

const (
	modernStyle       = "modern"
	farmhouseStyle    = "farmhouse"
	contemporaryStyle = "contemporary"
	traditionalStyle  = "traditional"
	coastalStyle      = "coastal"
	craftsmanStyle    = "craftsman"
)

// fallbackStyle is selected when no keyword matches the brief or imagery.
const fallbackStyle = contemporaryStyle

// styleCatalog order matters: scoring ties resolve to the earliest entry.
var styleCatalog = []stylePackage{
	{
		Name:     modernStyle,
		Keywords: []string{"modern", "minimal", "clean lines", "glass", "sleek"},
		Exterior: []string{
			"Standing seam metal roof in charcoal",
			"Smooth stucco with dark fiber-cement accent panels",
			"Black anodized aluminum windows",
		},
		Interior: []string{
			"Matte engineered oak flooring",
			"Flat-panel cabinetry in warm walnut and soft white",
			"Large-format porcelain tile in wet areas",
		},
		Features: []string{
			"Double-height living room glazing",
			"Hidden pantry wall",
			"Integrated linear fireplace",
		},
	},
	{
		Name:     farmhouseStyle,
		Keywords: []string{"farmhouse", "rustic", "barn", "country", "cozy"},
		Exterior: []string{
			"Board-and-batten siding in off-white",
			"Gable roof with black architectural shingles",
			"Natural stone skirt at base and porch columns",
		},
		Interior: []string{
			"Wide-plank white oak floors",
			"Shaker cabinetry with brass hardware",
			"Apron-front kitchen sink with bridge faucet",
		},
		Features: []string{
			"Wrap-around front porch",
			"Mudroom with built-in cubbies",
			"Exposed reclaimed wood ceiling beams",
		},
	},
	{
		Name:     contemporaryStyle,
		Keywords: []string{"contemporary", "open concept", "bright", "bold"},
		Exterior: []string{
			"Mixed cladding: fiber-cement, wood-look panels, and stone",
			"Asymmetrical massing with strong horizontal lines",
			"Dark bronze window frames",
		},
		Interior: []string{
			"Neutral polished concrete or microcement floors",
			"High-gloss lacquer and veneer cabinet mix",
			"Statement staircase with glass balustrade",
		},
		Features: []string{
			"Skylight strip over circulation spine",
			"Flexible home office / guest suite",
			"Smart lighting scenes and occupancy controls",
		},
	},
	{
		Name:     traditionalStyle,
		Keywords: []string{"traditional", "classic", "timeless", "formal"},
		Exterior: []string{
			"Painted brick with stone lintel detailing",
			"Symmetrical façade and multi-light windows",
			"Slate-look roof and classic cornice profile",
		},
		Interior: []string{
			"Herringbone wood flooring in main hall",
			"Raised-panel cabinetry",
			"Crown molding and paneled feature walls",
		},
		Features: []string{
			"Formal dining room with butler pantry",
			"Library / study with built-ins",
			"Generous foyer with central stair",
		},
	},
	{
		Name:     coastalStyle,
		Keywords: []string{"coastal", "beach", "light", "airy", "ocean"},
		Exterior: []string{
			"Light horizontal lap siding in sand tone",
			"White trim and composite shutters",
			"Metal roof accents over porches",
		},
		Interior: []string{
			"Bleached oak flooring",
			"Soft blue-gray cabinetry accents",
			"Textured handmade-look ceramic backsplash",
		},
		Features: []string{
			"Indoor-outdoor sliding wall",
			"Covered lanai with summer kitchen",
			"Window benches for view-focused seating",
		},
	},
	{
		Name:     craftsmanStyle,
		Keywords: []string{"craftsman", "handmade", "wood", "detail", "broad porch"},
		Exterior: []string{
			"Tapered porch columns on stone piers",
			"Earth-tone shingle + lap siding combination",
			"Deep overhangs with exposed rafter tails",
		},
		Interior: []string{
			"Quarter-sawn oak floors and trim",
			"Built-in benches and bookcases",
			"Artisan tile around fireplace and kitchen",
		},
		Features: []string{
			"Defined entry with covered porch",
			"Window seat nooks",
			"Handcrafted millwork and door casings",
		},
	},
}

func styleByName(name string) (stylePackage, bool) {
	for _, pkg := range styleCatalog {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return stylePackage{}, false
}

// StyleNames lists every style key in catalog order.
func StyleNames() []string {
	names := make([]string, 0, len(styleCatalog))
	for _, pkg := range styleCatalog {
		names = append(names, pkg.Name)
	}
	return names
}
