// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/github-datacite/internal/datacite"
	"github.com/pdiddy/github-datacite/pkg/types"
)

func TestCreatorEntry(t *testing.T) {
	cases := []struct {
		name  string
		entry datacite.Creator
		want  datacite.Creator
	}{
		{
			"display name split into given and family",
			creatorEntry("Alice B. Liddell", "alice", ""),
			datacite.Creator{
				CreatorName: datacite.CreatorName{NameType: "Personal", Value: "Alice B. Liddell"},
				GivenName:   "Alice",
				FamilyName:  "Liddell",
			},
		},
		{
			"single-word name is not split",
			creatorEntry("Cher", "cher", ""),
			datacite.Creator{
				CreatorName: datacite.CreatorName{NameType: "Personal", Value: "Cher"},
			},
		},
		{
			"missing name falls back to login",
			creatorEntry("", "octo", ""),
			datacite.Creator{
				CreatorName: datacite.CreatorName{NameType: "Personal", Value: "octo"},
			},
		},
		{
			"orcid becomes a nameIdentifier",
			creatorEntry("Alice Liddell", "alice", "0000-0002-1825-0097"),
			datacite.Creator{
				CreatorName: datacite.CreatorName{NameType: "Personal", Value: "Alice Liddell"},
				GivenName:   "Alice",
				FamilyName:  "Liddell",
				NameIdentifiers: []datacite.NameIdentifier{{
					NameIdentifierScheme: "ORCID",
					SchemeURI:            "https://orcid.org",
					Value:                "0000-0002-1825-0097",
				}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry)
		})
	}
}

func TestGenerateEmitsContributorORCID(t *testing.T) {
	src := baseSource()
	src.contributors = []types.Contributor{
		{Login: "alice", Name: "Alice Liddell", ORCID: "0000-0002-1825-0097", Contributions: 5},
	}
	g := &Generator{Source: src}

	xml, err := g.Generate(context.Background(), src.repo.Identity)
	require.NoError(t, err)

	assert.Contains(t, xml,
		`<nameIdentifier nameIdentifierScheme="ORCID" schemeURI="https://orcid.org">0000-0002-1825-0097</nameIdentifier>`)
}
