// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite is the metadata mapper: it turns the typed records the API
// client fetches for one repository into a serialized DataCite document.
// The mapping itself is a pure transformation; all network access happens
// through the Source interface, once per required fact.
package cite

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/github-datacite/internal/datacite"
	"github.com/pdiddy/github-datacite/internal/github"
	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"
)

// Source is the slice of the API client the mapper consumes.
type Source interface {
	GetRepository(ctx context.Context, id types.RepoIdentity) (types.Repository, error)
	ListContributors(ctx context.Context, id types.RepoIdentity) ([]types.Contributor, error)
	ListTags(ctx context.Context, id types.RepoIdentity) ([]types.Tag, error)
	GetLicense(ctx context.Context, id types.RepoIdentity) (types.License, error)
	GetUser(ctx context.Context, login string) (types.User, error)
	ResolveForkChain(ctx context.Context, repo types.Repository) ([]types.Repository, error)
}

// Generator maps one repository to a DataCite document per request.
type Generator struct {
	Source Source
}

// FromRequest builds a Generator backed by a GitHub client configured for
// the request's endpoints and token.
func FromRequest(req types.GenerateRequest) *Generator {
	req.ApplyDefaults()
	return &Generator{Source: github.NewClient(github.Options{
		APIBaseURL: req.GitHubAPIURL,
		WebBaseURL: req.GitHubURL,
		Token:      req.APIToken,
	})}
}

// Generate fetches the repository facts and returns the serialized
// DataCite XML. The four independent fetches run concurrently and the
// first failure cancels the rest; fork-chain resolution follows
// sequentially because each step depends on the previous parent.
func (g *Generator) Generate(ctx context.Context, id types.RepoIdentity) (string, error) {
	var (
		repo         types.Repository
		contributors []types.Contributor
		tags         []types.Tag
		license      types.License
	)

	eg, fctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		repo, err = g.Source.GetRepository(fctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		contributors, err = g.Source.ListContributors(fctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		tags, err = g.Source.ListTags(fctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		license, err = g.Source.GetLicense(fctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return "", err
	}

	// The chain walk runs on the caller's context: the errgroup context
	// is cancelled once Wait returns.
	var ancestors []types.Repository
	if repo.IsFork {
		var err error
		ancestors, err = g.Source.ResolveForkChain(ctx, repo)
		if err != nil {
			// The root resolved fine, so an unresolvable or cyclic
			// ancestor is a distinct condition from a missing root.
			if apierr.Is(err, apierr.KindNotFound) || apierr.Is(err, apierr.KindForkChainTooDeep) {
				return "", apierr.Wrap(apierr.KindIncompleteForkChain, err,
					"resolving fork ancestors of %s", id)
			}
			return "", err
		}
	}

	creators, err := g.creators(ctx, repo, contributors)
	if err != nil {
		return "", err
	}

	doc := assemble(repo, creators, tags, license, ancestors)
	return datacite.Serialize(doc)
}

// assemble applies the mapping rules to the fetched records. It performs
// no I/O, so an unchanged repository state always yields the same tree.
func assemble(repo types.Repository, creators []datacite.Creator, tags []types.Tag, license types.License, ancestors []types.Repository) *datacite.Resource {
	doc := datacite.NewResource()
	doc.Identifier = datacite.Identifier{
		IdentifierType: datacite.IdentifierTypeURL,
		Value:          repo.HTMLURL,
	}
	doc.Creators = creators

	doc.Titles = []datacite.Title{{Value: repo.Identity.Name}}
	if repo.Description != "" {
		doc.Titles = append(doc.Titles, datacite.Title{TitleType: "Subtitle", Value: repo.Description})
	}

	doc.Publisher = datacite.PublisherGitHub
	doc.PublicationYear = fmt.Sprintf("%04d", repo.CreatedAt.UTC().Year())
	doc.ResourceType = datacite.ResourceType{
		ResourceTypeGeneral: datacite.ResourceSoftware,
		Value:               datacite.ResourceSoftware,
	}

	for _, topic := range repo.Topics {
		doc.Subjects = append(doc.Subjects, datacite.Subject{Value: topic})
	}

	doc.Dates = []datacite.Date{{DateType: "Created", Value: repo.CreatedAt.UTC().Format(time.RFC3339)}}
	if !repo.PushedAt.IsZero() {
		doc.Dates = append(doc.Dates, datacite.Date{DateType: "Updated", Value: repo.PushedAt.UTC().Format(time.RFC3339)})
	}

	// Nearest parent first, matching chain order.
	for _, ancestor := range ancestors {
		doc.RelatedIdentifiers = append(doc.RelatedIdentifiers, datacite.RelatedIdentifier{
			RelatedIdentifierType: datacite.IdentifierTypeURL,
			RelationType:          datacite.RelationDerived,
			Value:                 ancestor.HTMLURL,
		})
	}

	doc.Version = Version(tags)

	if !license.IsZero() {
		name := license.Name
		if name == "" {
			name = license.SPDXID
		}
		doc.RightsList = []datacite.Rights{{
			RightsURI:              license.URL,
			RightsIdentifier:       license.SPDXID,
			RightsIdentifierScheme: "spdx",
			Value:                  name,
		}}
	}
	return doc
}
