package release

import (
	"context"
	"errors"
	"testing"
)

type staticSource struct {
	tags  []Tag
	err   error
	calls int
}

func (s *staticSource) ListTags(ctx context.Context) ([]Tag, error) {
	s.calls++
	return s.tags, s.err
}

func tagsOf(names ...string) []Tag {
	tags := make([]Tag, len(names))
	for i, n := range names {
		tags[i] = Tag{Name: ReleaseTag(n)}
	}
	return tags
}

func TestResolveNewestFirst(t *testing.T) {
	src := &staticSource{tags: tagsOf("v2.3.1", "v2.2.0")}
	got, err := NewResolver(src).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "2.3.1" {
		t.Errorf("Resolve = %q, want %q", got, "2.3.1")
	}
	if src.calls != 1 {
		t.Errorf("ListTags called %d times, want 1", src.calls)
	}
}

func TestResolveTrustsListOrder(t *testing.T) {
	// Out of order on purpose: the first entry wins even though it is older.
	src := &staticSource{tags: tagsOf("v1.0.0", "v3.0.0", "v2.0.0")}
	got, err := NewResolver(src).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "1.0.0" {
		t.Errorf("Resolve = %q, want %q (first entry, not re-sorted)", got, "1.0.0")
	}
}

func TestResolveMissingPrefix(t *testing.T) {
	src := &staticSource{tags: tagsOf("2.3.1")}
	_, err := NewResolver(src).Resolve(context.Background())
	if !errors.Is(err, ErrInvalidReleaseFormat) {
		t.Fatalf("err = %v, want ErrInvalidReleaseFormat", err)
	}
	var fe *FormatError
	if !errors.As(err, &fe) || fe.Tag != "2.3.1" {
		t.Errorf("FormatError tag = %v, want 2.3.1", fe)
	}
}

func TestResolveOnlyFirstTagValidated(t *testing.T) {
	src := &staticSource{tags: tagsOf("v0.9.0", "nightly")}
	if _, err := NewResolver(src).Resolve(context.Background()); err != nil {
		t.Errorf("Resolve: %v", err)
	}

	src = &staticSource{tags: tagsOf("nightly", "v0.9.0")}
	if _, err := NewResolver(src).Resolve(context.Background()); !errors.Is(err, ErrInvalidReleaseFormat) {
		t.Errorf("err = %v, want ErrInvalidReleaseFormat", err)
	}
}

func TestResolveEmptyList(t *testing.T) {
	_, err := NewResolver(&staticSource{}).Resolve(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
}

func TestResolveSourceError(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := NewResolver(&staticSource{err: cause}).Resolve(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want cause preserved", err)
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		tag     ReleaseTag
		want    VersionName
		wantErr bool
	}{
		{"v1.0.0", "1.0.0", false},
		{"v0.25.4", "0.25.4", false},
		{"vnext", "next", false},
		{"vv1", "v1", false},
		{"v", "", true},
		{"", "", true},
		{"1.0.0", "", true},
		{"V1.0.0", "", true},
		{"release-v1", "", true},
	}
	for _, tt := range tests {
		got, err := StripPrefix(tt.tag)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidReleaseFormat) {
				t.Errorf("StripPrefix(%q) err = %v, want ErrInvalidReleaseFormat", tt.tag, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("StripPrefix(%q) unexpected error: %v", tt.tag, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
