// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datacite models the DataCite metadata kernel 4.5 as an
// in-memory tree and serializes it to schema-valid XML. Field order in
// Resource follows the kernel's sequence constraints; encoding/xml emits
// elements in struct order, so the order here is load-bearing.
package datacite

import "encoding/xml"

// Schema constants for the kernel 4.5 resource root.
const (
	XMLNamespace      = "http://datacite.org/schema/kernel-4"
	XSINamespace      = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation    = "http://datacite.org/schema/kernel-4 http://schema.datacite.org/meta/kernel-4.5/metadata.xsd"
	PublisherGitHub   = "GitHub"
	ResourceSoftware  = "Software"
	RelationDerived   = "IsDerivedFrom"
	IdentifierTypeURL = "URL"
)

// Resource is the root of a DataCite document. Construct it once per
// request and do not mutate it after serialization.
type Resource struct {
	XMLName           xml.Name `xml:"resource"`
	Xmlns             string   `xml:"xmlns,attr"`
	XmlnsXSI          string   `xml:"xmlns:xsi,attr"`
	XSISchemaLocation string   `xml:"xsi:schemaLocation,attr"`

	Identifier         Identifier          `xml:"identifier"`
	Creators           []Creator           `xml:"creators>creator"`
	Titles             []Title             `xml:"titles>title"`
	Publisher          string              `xml:"publisher"`
	PublicationYear    string              `xml:"publicationYear"`
	ResourceType       ResourceType        `xml:"resourceType"`
	Subjects           []Subject           `xml:"subjects>subject,omitempty"`
	Dates              []Date              `xml:"dates>date,omitempty"`
	RelatedIdentifiers []RelatedIdentifier `xml:"relatedIdentifiers>relatedIdentifier,omitempty"`
	Version            string              `xml:"version,omitempty"`
	RightsList         []Rights            `xml:"rightsList>rights,omitempty"`
}

// NewResource returns a Resource with the kernel 4.5 namespace attributes set.
func NewResource() *Resource {
	return &Resource{
		Xmlns:             XMLNamespace,
		XmlnsXSI:          XSINamespace,
		XSISchemaLocation: SchemaLocation,
	}
}

type Identifier struct {
	IdentifierType string `xml:"identifierType,attr"`
	Value          string `xml:",chardata"`
}

type Creator struct {
	CreatorName     CreatorName      `xml:"creatorName"`
	GivenName       string           `xml:"givenName,omitempty"`
	FamilyName      string           `xml:"familyName,omitempty"`
	NameIdentifiers []NameIdentifier `xml:"nameIdentifier,omitempty"`
}

type CreatorName struct {
	NameType string `xml:"nameType,attr,omitempty"`
	Value    string `xml:",chardata"`
}

type NameIdentifier struct {
	NameIdentifierScheme string `xml:"nameIdentifierScheme,attr"`
	SchemeURI            string `xml:"schemeURI,attr,omitempty"`
	Value                string `xml:",chardata"`
}

type Title struct {
	TitleType string `xml:"titleType,attr,omitempty"`
	Value     string `xml:",chardata"`
}

type ResourceType struct {
	ResourceTypeGeneral string `xml:"resourceTypeGeneral,attr"`
	Value               string `xml:",chardata"`
}

type Subject struct {
	Value string `xml:",chardata"`
}

type Date struct {
	DateType string `xml:"dateType,attr"`
	Value    string `xml:",chardata"`
}

type RelatedIdentifier struct {
	RelatedIdentifierType string `xml:"relatedIdentifierType,attr"`
	RelationType          string `xml:"relationType,attr"`
	Value                 string `xml:",chardata"`
}

type Rights struct {
	RightsURI              string `xml:"rightsURI,attr,omitempty"`
	RightsIdentifier       string `xml:"rightsIdentifier,attr,omitempty"`
	RightsIdentifierScheme string `xml:"rightsIdentifierScheme,attr,omitempty"`
	Value                  string `xml:",chardata"`
}
