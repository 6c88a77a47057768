package annotate

// Type is the rough-notation annotation type.
type Type string

const (
	TypeBox       Type = "box"
	TypeBracket   Type = "bracket"
	TypeHighlight Type = "highlight"
	TypeUnderline Type = "underline"
)

// Bracket sides for TypeBracket.
const (
	BracketLeft  = "left"
	BracketRight = "right"
)

// DefaultHighlightColor refers to the CSS variable defined by the page
// stylesheet.
const DefaultHighlightColor = "var(--highlight-color)"

// Style mirrors the rough-notation config object. Zero fields are omitted so
// the library default applies.
type Style struct {
	Type        Type     `json:"type"`
	StrokeWidth int      `json:"strokeWidth,omitempty"`
	Iterations  int      `json:"iterations,omitempty"`
	Brackets    []string `json:"brackets,omitempty"`
	Color       string   `json:"color,omitempty"`
}

// StyleFor returns the visual treatment for role.
func StyleFor(role Role, highlightColor string) (Style, error) {
	if highlightColor == "" {
		highlightColor = DefaultHighlightColor
	}
	switch role {
	case RoleHeader:
		return Style{Type: TypeBox, StrokeWidth: 2, Iterations: 2}, nil
	case RoleBadgeRow:
		return Style{
			Type:        TypeBracket,
			StrokeWidth: 2,
			Iterations:  2,
			Brackets:    []string{BracketRight, BracketLeft},
		}, nil
	case RoleSectionHeading:
		return Style{Type: TypeHighlight, Color: highlightColor, Iterations: 2}, nil
	case RoleInlineEmphasis:
		return Style{Type: TypeUnderline, Color: highlightColor, Iterations: 2}, nil
	default:
		return Style{}, &RoleError{Index: -1, Role: role}
	}
}
