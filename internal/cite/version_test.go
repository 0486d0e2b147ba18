// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/github-datacite/pkg/types"
)

func tagNames(names ...string) []types.Tag {
	tags := make([]types.Tag, len(names))
	for i, n := range names {
		tags[i] = types.Tag{Name: n}
	}
	return tags
}

func TestVersion(t *testing.T) {
	cases := []struct {
		name string
		tags []types.Tag
		want string
	}{
		{"highest semver wins, non-semver ignored", tagNames("v1.0.0", "v1.2.0", "beta"), "1.2.0"},
		{"no tags", nil, ""},
		{"no semver tags", tagNames("nightly", "release"), ""},
		{"order independent", tagNames("v2.0.0", "v10.1.0", "v9.9.9"), "10.1.0"},
		{"prerelease of a higher version wins", tagNames("1.2.0-rc.1", "1.1.0"), "1.2.0-rc.1"},
		{"bare prefix stripped", tagNames("v3.1.4"), "3.1.4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Version(tc.tags))
		})
	}
}
