package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}
	r.Start(2)
	r.Step("resolving version")
	r.Step("rendering pages")
	r.Finish()

	out := buf.String()
	for _, want := range []string{
		"Building site (2 steps)",
		"[1/2] resolving version",
		"[2/2] rendering pages",
		"Site build complete",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*LineReporter); !ok {
		t.Error("expected LineReporter when CI is set")
	}
}
