// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package datacite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "github.com/pdiddy/github-datacite/pkg/errors"
)

func minimalResource() *Resource {
	r := NewResource()
	r.Identifier = Identifier{IdentifierType: IdentifierTypeURL, Value: "https://github.example/o/r"}
	r.Creators = []Creator{{CreatorName: CreatorName{NameType: "Personal", Value: "Alice Liddell"}}}
	r.Titles = []Title{{Value: "r"}}
	r.Publisher = PublisherGitHub
	r.PublicationYear = "2021"
	r.ResourceType = ResourceType{ResourceTypeGeneral: ResourceSoftware, Value: ResourceSoftware}
	return r
}

func TestSerializeMinimal(t *testing.T) {
	xml, err := Serialize(minimalResource())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(xml, "</resource>\n"))
	assert.Contains(t, xml, `xmlns="http://datacite.org/schema/kernel-4"`)
	assert.Contains(t, xml, `kernel-4.5/metadata.xsd`)
	assert.Contains(t, xml, `<identifier identifierType="URL">https://github.example/o/r</identifier>`)
	assert.Contains(t, xml, `<creatorName nameType="Personal">Alice Liddell</creatorName>`)
	assert.Contains(t, xml, `<publicationYear>2021</publicationYear>`)
	// Empty optional groups must not appear at all.
	assert.NotContains(t, xml, "<relatedIdentifiers>")
	assert.NotContains(t, xml, "<rightsList>")
	assert.NotContains(t, xml, "<version>")
}

func TestSerializeElementOrder(t *testing.T) {
	r := minimalResource()
	r.Subjects = []Subject{{Value: "metadata"}}
	r.Dates = []Date{{DateType: "Created", Value: "2021-03-04"}}
	r.RelatedIdentifiers = []RelatedIdentifier{{
		RelatedIdentifierType: IdentifierTypeURL,
		RelationType:          RelationDerived,
		Value:                 "https://github.example/up/stream",
	}}
	r.Version = "1.2.0"
	r.RightsList = []Rights{{RightsIdentifier: "MIT", RightsIdentifierScheme: "spdx", Value: "MIT License"}}

	xml, err := Serialize(r)
	require.NoError(t, err)

	// Optional groups must follow resourceType in kernel sequence order.
	order := []string{
		"<identifier", "<creators>", "<titles>", "<publisher>",
		"<publicationYear>", "<resourceType", "<subjects>", "<dates>",
		"<relatedIdentifiers>", "<version>", "<rightsList>",
	}
	last := -1
	for _, tag := range order {
		idx := strings.Index(xml, tag)
		require.NotEqual(t, -1, idx, "missing %s", tag)
		assert.Greater(t, idx, last, "%s out of schema order", tag)
		last = idx
	}
}

func TestSerializeDeterministic(t *testing.T) {
	a, err := Serialize(minimalResource())
	require.NoError(t, err)
	b, err := Serialize(minimalResource())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Resource)
	}{
		{"no identifier", func(r *Resource) { r.Identifier.Value = "" }},
		{"no creators", func(r *Resource) { r.Creators = nil }},
		{"empty creator name", func(r *Resource) { r.Creators[0].CreatorName.Value = "" }},
		{"no titles", func(r *Resource) { r.Titles = nil }},
		{"no publisher", func(r *Resource) { r.Publisher = "" }},
		{"bad year", func(r *Resource) { r.PublicationYear = "21" }},
		{"no resource type", func(r *Resource) { r.ResourceType.ResourceTypeGeneral = "" }},
		{"bare related identifier", func(r *Resource) {
			r.RelatedIdentifiers = []RelatedIdentifier{{Value: "https://x"}}
		}},
		{"date without type", func(r *Resource) {
			r.Dates = []Date{{Value: "2021-01-01"}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := minimalResource()
			tc.mutate(r)
			_, err := Serialize(r)
			assert.True(t, apierr.Is(err, apierr.KindSchemaViolation))
		})
	}
}

func TestSerializeEscapesMarkup(t *testing.T) {
	r := minimalResource()
	r.Titles = append(r.Titles, Title{TitleType: "Subtitle", Value: "tags & <forks>"})

	xml, err := Serialize(r)
	require.NoError(t, err)
	assert.Contains(t, xml, "tags &amp; &lt;forks&gt;")
}
