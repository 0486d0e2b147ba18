// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package github

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"
)

// ListContributors returns the repository's contributor ranking,
// following pagination links exhaustively. An empty result is valid.
// Each entry is enriched with the user's display name; a contributor
// whose user record has since vanished keeps an empty name.
func (c *Client) ListContributors(ctx context.Context, id types.RepoIdentity) ([]types.Contributor, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contributors?per_page=%d", c.apiBase, id.Owner, id.Name, c.pageSize)

	var contributors []types.Contributor
	for url != "" {
		var page []contributorResponse
		header, err := c.getJSON(ctx, url, &page)
		if err != nil {
			return nil, err
		}
		for _, cr := range page {
			if cr.Type == "Bot" {
				continue
			}
			contributors = append(contributors, types.Contributor{
				Login:         cr.Login,
				HTMLURL:       cr.HTMLURL,
				Contributions: cr.Contributions,
			})
		}
		url = nextLink(header)
	}

	for i := range contributors {
		user, err := c.GetUser(ctx, contributors[i].Login)
		if err != nil {
			if apierr.Is(err, apierr.KindNotFound) {
				continue
			}
			return nil, err
		}
		contributors[i].Name = user.Name
	}

	// The API ranks by contributions; pin the order for equal counts so
	// repeated generations emit byte-identical documents.
	sort.SliceStable(contributors, func(i, j int) bool {
		if contributors[i].Contributions != contributors[j].Contributions {
			return contributors[i].Contributions > contributors[j].Contributions
		}
		return contributors[i].Login < contributors[j].Login
	})
	return contributors, nil
}

// ListTags returns all tags of the repository, following pagination
// links exhaustively.
func (c *Client) ListTags(ctx context.Context, id types.RepoIdentity) ([]types.Tag, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/tags?per_page=%d", c.apiBase, id.Owner, id.Name, c.pageSize)

	var tags []types.Tag
	for url != "" {
		var page []tagResponse
		header, err := c.getJSON(ctx, url, &page)
		if err != nil {
			return nil, err
		}
		for _, tr := range page {
			tags = append(tags, types.Tag{Name: tr.Name, CommitSHA: tr.Commit.SHA})
		}
		url = nextLink(header)
	}
	return tags, nil
}

// nextLink extracts the rel="next" target from an RFC 5988 Link header.
// Returns "" on the last page.
func nextLink(header http.Header) string {
	for _, field := range header.Values("Link") {
		for _, link := range strings.Split(field, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}
			target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
			for _, param := range parts[1:] {
				if strings.TrimSpace(param) == `rel="next"` {
					return target
				}
			}
		}
	}
	return ""
}

type contributorResponse struct {
	Login         string `json:"login"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
}

type tagResponse struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}
