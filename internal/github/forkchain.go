// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package github

import (
	"context"

	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"
)

// maxForkDepth bounds fork-chain resolution. A chain longer than this is
// treated as evidence of cyclic or malformed API responses, not retried.
const maxForkDepth = 20

// ResolveForkChain walks the parent chain of a confirmed fork and returns
// every ancestor up to and including the root, nearest parent first. Each
// ancestor is resolved through GetRepository, so the chain never contains
// an identity the platform did not confirm.
//
// A visited set catches cycles before the depth cap does; both cases fail
// with KindForkChainTooDeep. Resolution is inherently sequential: each
// step depends on the previous repository's parent.
func (c *Client) ResolveForkChain(ctx context.Context, repo types.Repository) ([]types.Repository, error) {
	visited := map[types.RepoIdentity]bool{repo.Identity: true}

	var chain []types.Repository
	current := repo
	for current.IsFork {
		if current.Parent == nil {
			return nil, apierr.New(apierr.KindForkChainTooDeep,
				"repository %s reports fork=true without a parent", current.Identity)
		}
		if visited[*current.Parent] {
			return nil, apierr.New(apierr.KindForkChainTooDeep,
				"cyclic parent chain at %s", current.Parent)
		}
		if len(chain) >= maxForkDepth {
			return nil, apierr.New(apierr.KindForkChainTooDeep,
				"parent chain of %s exceeds %d ancestors", repo.Identity, maxForkDepth)
		}

		parent, err := c.GetRepository(ctx, *current.Parent)
		if err != nil {
			return nil, err
		}

		visited[*current.Parent] = true
		visited[parent.Identity] = true
		chain = append(chain, parent)
		current = parent
	}
	return chain, nil
}
