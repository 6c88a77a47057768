package release

import (
	"context"
	"errors"
	"strings"
)

// Resolver turns the newest tag of a TagSource into a VersionName.
type Resolver struct {
	source TagSource
}

// NewResolver creates a Resolver reading from source.
func NewResolver(source TagSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve performs one tag listing and returns the first entry stripped of
// its prefix. There is no retry and no fallback version.
func (r *Resolver) Resolve(ctx context.Context) (VersionName, error) {
	tags, err := r.source.ListTags(ctx)
	if err != nil {
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			return "", err
		}
		return "", &NetworkError{Op: "listing tags", Err: err}
	}
	if len(tags) == 0 {
		return "", &NetworkError{Op: "tag listing is empty"}
	}
	return StripPrefix(tags[0].Name)
}

// StripPrefix removes the "v" prefix from tag.
func StripPrefix(tag ReleaseTag) (VersionName, error) {
	s := string(tag)
	if !strings.HasPrefix(s, TagPrefix) || len(s) == len(TagPrefix) {
		return "", &FormatError{Tag: tag}
	}
	return VersionName(strings.TrimPrefix(s, TagPrefix)), nil
}
