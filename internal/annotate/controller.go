package annotate

import (
	"errors"
	"fmt"
)

// Region is one element of the rendered page that receives an annotation.
type Region struct {
	// Selector locates the element in the rendered document.
	Selector string
	Role     Role
	// Label is a short human description used in errors.
	Label string
}

// Handle is an opaque annotation created by an Annotator.
type Handle any

// Group shows or hides a set of annotations as one unit.
type Group interface {
	Show()
	Hide()
}

// Annotator draws annotations. It is the black-box drawing library.
type Annotator interface {
	Annotate(region Region, style Style) Handle
	Group(handles []Handle) Group
}

// State is the lifecycle state of a Controller.
type State int

const (
	StateIdle State = iota
	StateAttaching
	StateShown
	StateHidden
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttaching:
		return "attaching"
	case StateShown:
		return "shown"
	case StateHidden:
		return "hidden"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller owns at most one visible annotation group. Each page instance
// holds its own Controller; there is no shared "last group".
//
// A Controller is not safe for concurrent use.
type Controller struct {
	annotator      Annotator
	highlightColor string
	group          Group
	state          State
}

// NewController creates a Controller drawing through a. An empty
// highlightColor selects DefaultHighlightColor.
func NewController(a Annotator, highlightColor string) *Controller {
	return &Controller{annotator: a, highlightColor: highlightColor}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Mount annotates regions and shows them as one group. A group left over from
// an earlier Mount is hidden before anything new is drawn.
//
// Every region is styled before the first annotation is created, so an
// unrecognized role aborts the mount with nothing shown.
func (c *Controller) Mount(regions []Region) error {
	c.release()
	c.state = StateAttaching

	styles := make([]Style, len(regions))
	for i, r := range regions {
		s, err := StyleFor(r.Role, c.highlightColor)
		if err != nil {
			c.state = StateIdle
			var re *RoleError
			if errors.As(err, &re) {
				re.Index = i
				re.Label = r.Label
			}
			return err
		}
		styles[i] = s
	}

	handles := make([]Handle, len(regions))
	for i, r := range regions {
		handles[i] = c.annotator.Annotate(r, styles[i])
	}

	group := c.annotator.Group(handles)
	group.Show()
	c.group = group
	c.state = StateShown
	return nil
}

// Unmount hides the owned group. It is a no-op when nothing is shown.
func (c *Controller) Unmount() {
	c.release()
}

func (c *Controller) release() {
	if c.group == nil {
		return
	}
	c.group.Hide()
	c.group = nil
	c.state = StateHidden
}
