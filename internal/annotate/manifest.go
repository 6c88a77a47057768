package annotate

// Annotation is one recorded annotate() call.
type Annotation struct {
	Selector string `json:"selector"`
	Style    Style  `json:"style"`
}

// Manifest is an Annotator that records annotations instead of drawing
// them. The page script replays the visible groups with rough-notation.
type Manifest struct {
	groups []*ManifestGroup
}

// NewManifest returns an empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// ManifestGroup is the Group created by a Manifest.
type ManifestGroup struct {
	annotations []Annotation
	visible     bool
}

func (g *ManifestGroup) Show() { g.visible = true }
func (g *ManifestGroup) Hide() { g.visible = false }

// Visible reports whether the group is currently shown.
func (g *ManifestGroup) Visible() bool { return g.visible }

// Annotate implements Annotator.
func (m *Manifest) Annotate(region Region, style Style) Handle {
	return Annotation{Selector: region.Selector, Style: style}
}

// Group implements Annotator. Handles not created by this Manifest are
// ignored. Groups that are hidden at this point are forgotten.
func (m *Manifest) Group(handles []Handle) Group {
	live := m.groups[:0]
	for _, g := range m.groups {
		if g.visible {
			live = append(live, g)
		}
	}
	m.groups = live

	g := &ManifestGroup{annotations: make([]Annotation, 0, len(handles))}
	for _, h := range handles {
		if a, ok := h.(Annotation); ok {
			g.annotations = append(g.annotations, a)
		}
	}
	m.groups = append(m.groups, g)
	return g
}

// VisibleGroups counts the groups currently shown.
func (m *Manifest) VisibleGroups() int {
	n := 0
	for _, g := range m.groups {
		if g.visible {
			n++
		}
	}
	return n
}

// Visible returns the annotations of every shown group in creation order.
func (m *Manifest) Visible() []Annotation {
	var out []Annotation
	for _, g := range m.groups {
		if g.visible {
			out = append(out, g.annotations...)
		}
	}
	return out
}
