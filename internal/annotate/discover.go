package annotate

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markup hooks recognized by Discover.
const (
	ClassHeader      = "header"
	ClassBadges      = "badges"
	ClassUnderlineMe = "underline-me"

	// AttrRole overrides class-based classification with an explicit role
	// name.
	AttrRole = "data-annotate"
	// AttrID is written by Discover so the page script can find each region.
	AttrID = "data-annotation"
)

// Discover classifies the annotation regions of a parsed page and tags each
// element with an AttrID attribute. Regions are returned header first, then
// the badge row, then headings and inline emphasis in document order.
//
// An AttrRole value that names no known role yields a region with the zero
// Role; Controller.Mount rejects it.
func Discover(doc *html.Node) []Region {
	var headers, badges, rest []*classified
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if c, ok := classify(n); ok {
				switch c.role {
				case RoleHeader:
					headers = append(headers, c)
				case RoleBadgeRow:
					badges = append(badges, c)
				default:
					rest = append(rest, c)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	ordered := make([]*classified, 0, len(headers)+len(badges)+len(rest))
	ordered = append(ordered, headers...)
	ordered = append(ordered, badges...)
	ordered = append(ordered, rest...)

	regions := make([]Region, len(ordered))
	for i, c := range ordered {
		id := strconv.Itoa(i)
		setAttr(c.node, AttrID, id)
		regions[i] = Region{
			Selector: fmt.Sprintf("[%s=%q]", AttrID, id),
			Role:     c.role,
			Label:    c.label,
		}
	}
	return regions
}

type classified struct {
	node  *html.Node
	role  Role
	label string
}

func classify(n *html.Node) (*classified, bool) {
	label := describe(n)
	if v, ok := attr(n, AttrRole); ok {
		role, _ := ParseRole(v)
		return &classified{node: n, role: role, label: label}, true
	}
	switch {
	case hasClass(n, ClassHeader):
		return &classified{node: n, role: RoleHeader, label: label}, true
	case hasClass(n, ClassBadges):
		return &classified{node: n, role: RoleBadgeRow, label: label}, true
	case n.DataAtom == atom.H2:
		return &classified{node: n, role: RoleSectionHeading, label: label}, true
	case hasClass(n, ClassUnderlineMe):
		return &classified{node: n, role: RoleInlineEmphasis, label: label}, true
	}
	return nil, false
}

func describe(n *html.Node) string {
	if cls, ok := attr(n, "class"); ok && cls != "" {
		return n.Data + "." + strings.Join(strings.Fields(cls), ".")
	}
	return n.Data
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}
