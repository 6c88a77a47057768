// Package annotate decides which regions of the landing page get a
// hand-drawn annotation and owns the show/hide lifecycle of the resulting
// annotation group.
//
// Drawing is delegated to an Annotator. In the browser that is the
// rough-notation library; at build time it is a Manifest that records what
// the page script has to draw.
package annotate

import (
	"errors"
	"fmt"
)

// ErrUnknownRegionRole is returned when a region's role is outside the
// closed set of recognized roles.
var ErrUnknownRegionRole = errors.New("unknown region role")

// Role classifies an annotation region. The zero value is not a valid role.
type Role int

const (
	RoleHeader Role = iota + 1
	RoleBadgeRow
	RoleSectionHeading
	RoleInlineEmphasis
)

var roleNames = map[Role]string{
	RoleHeader:         "header",
	RoleBadgeRow:       "badge-row",
	RoleSectionHeading: "section-heading",
	RoleInlineEmphasis: "inline-emphasis",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole maps a role name such as "badge-row" to its Role. Unknown names
// yield the zero Role together with ErrUnknownRegionRole.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegionRole, name)
}

// RoleError identifies the region that stopped a mount.
type RoleError struct {
	Index int
	Role  Role
	Label string
}

func (e *RoleError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %q", ErrUnknownRegionRole, e.Role)
	}
	if e.Label != "" {
		return fmt.Sprintf("%s: region %d (%s) has role %q", ErrUnknownRegionRole, e.Index, e.Label, e.Role)
	}
	return fmt.Sprintf("%s: region %d has role %q", ErrUnknownRegionRole, e.Index, e.Role)
}

func (e *RoleError) Unwrap() error { return ErrUnknownRegionRole }
