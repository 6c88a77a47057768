package release

import "context"

// TagPrefix is the literal prefix every release tag carries.
const TagPrefix = "v"

// ReleaseTag is a version-control tag such as "v1.2.3".
type ReleaseTag string

// VersionName is a ReleaseTag with its prefix removed. It is only ever
// substituted into templates and never parsed further.
type VersionName string

// Tag is one entry of a tag listing.
type Tag struct {
	Name ReleaseTag `json:"name"`
}

// TagSource lists the tags of a repository.
//
// Implementations must return tags newest-first. The resolver trusts this
// order and does not sort.
type TagSource interface {
	ListTags(ctx context.Context) ([]Tag, error)
}
