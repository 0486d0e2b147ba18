// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"github.com/Masterminds/semver/v3"

	"github.com/pdiddy/github-datacite/pkg/types"
)

// Version derives the document version from the highest tag name that
// parses as a semantic version (a leading "v" is tolerated and stripped).
// Non-semantic tags are ignored; no matching tag yields the empty string,
// which the serializer omits.
func Version(tags []types.Tag) string {
	var best *semver.Version
	for _, tag := range tags {
		v, err := semver.NewVersion(tag.Name)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	if best == nil {
		return ""
	}
	return best.String()
}
