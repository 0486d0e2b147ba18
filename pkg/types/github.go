// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the github-datacite engine:
// the typed records the API client returns and the request shape the wrapper
// layers (CLI, REST server, GitHub Action) hand to the mapper.
package types

import "time"

// RepoIdentity is the unique key for all repository lookups. It is
// immutable once constructed; every fork ancestor appearing in the output
// document is identified by one of these.
type RepoIdentity struct {
	// Owner is the user or organization login.
	Owner string `json:"owner" yaml:"owner"`

	// Name is the repository name without the owner prefix.
	Name string `json:"name" yaml:"name"`
}

// String returns the canonical "owner/name" form.
func (id RepoIdentity) String() string {
	return id.Owner + "/" + id.Name
}

// IsZero reports whether the identity is unset.
func (id RepoIdentity) IsZero() bool {
	return id.Owner == "" && id.Name == ""
}

// Repository holds the repository facts the mapper consumes. Parent is
// non-nil exactly when IsFork is true.
type Repository struct {
	// Identity is the owner/name key this record was fetched under.
	Identity RepoIdentity `json:"identity" yaml:"identity"`

	// Description is the repository description, possibly empty.
	Description string `json:"description" yaml:"description"`

	// CreatedAt is the repository creation time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// PushedAt is the time of the last push to any branch.
	PushedAt time.Time `json:"pushed_at" yaml:"pushed_at"`

	// DefaultBranch is the default branch name (e.g. "main").
	DefaultBranch string `json:"default_branch" yaml:"default_branch"`

	// HTMLURL is the repository's web URL.
	HTMLURL string `json:"html_url" yaml:"html_url"`

	// IsFork reports whether the repository is a fork of another.
	IsFork bool `json:"is_fork" yaml:"is_fork"`

	// Parent identifies the immediate fork parent, nil for non-forks.
	Parent *RepoIdentity `json:"parent,omitempty" yaml:"parent,omitempty"`

	// Archived reports whether the repository is archived.
	Archived bool `json:"archived" yaml:"archived"`

	// OwnerLogin is the owner's login, OwnerName the display name if set.
	OwnerLogin string `json:"owner_login" yaml:"owner_login"`
	OwnerName  string `json:"owner_name,omitempty" yaml:"owner_name,omitempty"`

	// Topics lists the repository topics in API order.
	Topics []string `json:"topics,omitempty" yaml:"topics,omitempty"`
}

// Contributor is one entry of a repository's contributor ranking.
// The client returns contributors ordered by Contributions descending,
// ties broken by Login ascending, so repeated generations are stable.
type Contributor struct {
	// Login is the contributor's account login.
	Login string `json:"login" yaml:"login"`

	// HTMLURL is the contributor's profile URL.
	HTMLURL string `json:"html_url" yaml:"html_url"`

	// Name is the display name from the user record, empty if unset.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// ORCID is the contributor's ORCID iD when one is known, empty
	// otherwise. The REST API does not expose it, so the client leaves it
	// empty; callers enriching contributors from an external registry set
	// it and the mapper emits it as a nameIdentifier.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`

	// Contributions is the commit count the ranking is based on.
	Contributions int `json:"contributions" yaml:"contributions"`
}

// Tag is a repository tag; the mapper derives the document version from
// the highest semantic-version-like tag name.
type Tag struct {
	Name      string `json:"name" yaml:"name"`
	CommitSHA string `json:"commit_sha" yaml:"commit_sha"`
}

// License describes a repository's declared license. The zero value means
// no license is declared (or none with a recognized SPDX identifier).
type License struct {
	// SPDXID is the SPDX short code, e.g. "MIT".
	SPDXID string `json:"spdx_id" yaml:"spdx_id"`

	// Name is the human-readable license name.
	Name string `json:"name" yaml:"name"`

	// URL points at the license text.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// IsZero reports whether no usable license is declared.
func (l License) IsZero() bool {
	return l.SPDXID == ""
}

// User is a platform user record, fetched to enrich contributor entries
// with display names.
type User struct {
	Login   string `json:"login" yaml:"login"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	HTMLURL string `json:"html_url" yaml:"html_url"`
}
