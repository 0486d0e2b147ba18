// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"context"
	"strings"

	"github.com/pdiddy/github-datacite/internal/datacite"
	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"
)

const orcidSchemeURI = "https://orcid.org"

// creators projects the contributor ranking onto DataCite creator
// entries. A repository with no recorded contributors still gets exactly
// one creator, derived from the owner, so the document is never
// creator-less.
func (g *Generator) creators(ctx context.Context, repo types.Repository, contributors []types.Contributor) ([]datacite.Creator, error) {
	if len(contributors) == 0 {
		return g.ownerCreator(ctx, repo)
	}

	out := make([]datacite.Creator, 0, len(contributors))
	for _, c := range contributors {
		out = append(out, creatorEntry(c.Name, c.Login, c.ORCID))
	}
	return out, nil
}

// ownerCreator derives the fallback creator from the repository owner,
// using the owner's display name when the user record has one.
func (g *Generator) ownerCreator(ctx context.Context, repo types.Repository) ([]datacite.Creator, error) {
	name := repo.OwnerName
	if name == "" {
		user, err := g.Source.GetUser(ctx, repo.OwnerLogin)
		switch {
		case err == nil:
			name = user.Name
		case apierr.Is(err, apierr.KindNotFound):
			// An organization or deleted account; the login still names it.
		default:
			return nil, err
		}
	}
	return []datacite.Creator{creatorEntry(name, repo.OwnerLogin, "")}, nil
}

// creatorEntry builds one creator, splitting a two-or-more-word display
// name into given and family parts the way the DataCite kernel expects.
func creatorEntry(name, login, orcid string) datacite.Creator {
	display := name
	if display == "" {
		display = login
	}
	creator := datacite.Creator{
		CreatorName: datacite.CreatorName{NameType: "Personal", Value: display},
	}
	if parts := strings.Fields(name); len(parts) > 1 {
		creator.GivenName = parts[0]
		creator.FamilyName = parts[len(parts)-1]
	}
	if orcid != "" {
		creator.NameIdentifiers = []datacite.NameIdentifier{{
			NameIdentifierScheme: "ORCID",
			SchemeURI:            orcidSchemeURI,
			Value:                orcid,
		}}
	}
	return creator
}
