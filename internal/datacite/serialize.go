// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package datacite

import (
	"encoding/xml"
	"regexp"

	apierr "github.com/pdiddy/github-datacite/pkg/errors"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Validate checks the structural constraints the kernel schema imposes on
// the subset of elements this engine emits. A violation is an internal
// defect: the mapper assembled a tree it should never produce, so the
// error is always surfaced and never silently dropped.
func Validate(r *Resource) error {
	switch {
	case r.Identifier.Value == "" || r.Identifier.IdentifierType == "":
		return apierr.New(apierr.KindSchemaViolation, "identifier and identifierType are mandatory")
	case len(r.Creators) == 0:
		return apierr.New(apierr.KindSchemaViolation, "at least one creator is mandatory")
	case len(r.Titles) == 0 || r.Titles[0].Value == "":
		return apierr.New(apierr.KindSchemaViolation, "at least one non-empty title is mandatory")
	case r.Publisher == "":
		return apierr.New(apierr.KindSchemaViolation, "publisher is mandatory")
	case !yearPattern.MatchString(r.PublicationYear):
		return apierr.New(apierr.KindSchemaViolation, "publicationYear %q is not a four-digit year", r.PublicationYear)
	case r.ResourceType.ResourceTypeGeneral == "":
		return apierr.New(apierr.KindSchemaViolation, "resourceTypeGeneral is mandatory")
	}

	for _, c := range r.Creators {
		if c.CreatorName.Value == "" {
			return apierr.New(apierr.KindSchemaViolation, "creatorName must not be empty")
		}
	}
	for _, ri := range r.RelatedIdentifiers {
		if ri.Value == "" || ri.RelatedIdentifierType == "" || ri.RelationType == "" {
			return apierr.New(apierr.KindSchemaViolation,
				"relatedIdentifier requires a value, relatedIdentifierType and relationType")
		}
	}
	for _, d := range r.Dates {
		if d.DateType == "" {
			return apierr.New(apierr.KindSchemaViolation, "date requires a dateType")
		}
	}
	return nil
}

// Serialize validates the tree and renders it as an indented UTF-8 XML
// document with the standard XML header and a trailing newline. Element
// order is fixed by the Resource struct, so the same tree always yields
// byte-identical output.
func Serialize(r *Resource) (string, error) {
	if err := Validate(r); err != nil {
		return "", err
	}
	out, err := xml.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", apierr.Wrap(apierr.KindSchemaViolation, err, "marshaling resource")
	}
	return xml.Header + string(out) + "\n", nil
}
