// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package github implements the typed REST client for GitHub-compatible
// platforms. It isolates transport concerns (authentication, pagination,
// retry, rate limits) from the metadata mapper, which only ever sees
// typed records or errors from the shared taxonomy.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"

	"github.com/pdiddy/github-datacite/internal/httputil"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultPageSize  = 100
	defaultUserAgent = "github-datacite/0.1"
)

// Options configures a Client. Zero values fall back to the public
// GitHub endpoints and default limits.
type Options struct {
	// APIBaseURL is the REST API root, e.g. "https://api.github.com".
	APIBaseURL string

	// WebBaseURL is the web root used to build ancestor links.
	WebBaseURL string

	// Token is the bearer token; empty means unauthenticated.
	Token string

	// Timeout bounds each HTTP request including retried attempts' bodies.
	Timeout time.Duration

	// MaxRetries caps retry attempts for transient and rate-limit failures.
	MaxRetries int
}

// Client issues authenticated requests against the platform's REST API
// and returns typed records. It holds an explicitly constructed
// *http.Client whose lifetime the caller controls; there is no package
// singleton.
type Client struct {
	http       *http.Client
	apiBase    string
	webBase    string
	token      string
	maxRetries int
	pageSize   int
}

// NewClient creates a Client for one platform instance.
func NewClient(opts Options) *Client {
	if opts.APIBaseURL == "" {
		opts.APIBaseURL = types.DefaultGitHubAPIURL
	}
	if opts.WebBaseURL == "" {
		opts.WebBaseURL = types.DefaultGitHubURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{
		http:       &http.Client{Timeout: opts.Timeout},
		apiBase:    strings.TrimSuffix(opts.APIBaseURL, "/"),
		webBase:    strings.TrimSuffix(opts.WebBaseURL, "/"),
		token:      opts.Token,
		maxRetries: opts.MaxRetries,
		pageSize:   defaultPageSize,
	}
}

// GetRepository fetches the repository record for id.
func (c *Client) GetRepository(ctx context.Context, id types.RepoIdentity) (types.Repository, error) {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.apiBase, id.Owner, id.Name)
	if _, err := c.getJSON(ctx, url, &data); err != nil {
		return types.Repository{}, err
	}

	repo := types.Repository{
		Identity:      types.RepoIdentity{Owner: data.Owner.Login, Name: data.Name},
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
		DefaultBranch: data.DefaultBranch,
		HTMLURL:       data.HTMLURL,
		IsFork:        data.Fork,
		Archived:      data.Archived,
		OwnerLogin:    data.Owner.Login,
		Topics:        data.Topics,
	}
	if data.PushedAt != nil {
		repo.PushedAt = *data.PushedAt
	}
	if repo.Identity.IsZero() {
		repo.Identity = id
	}
	if repo.HTMLURL == "" {
		repo.HTMLURL = fmt.Sprintf("%s/%s/%s", c.webBase, repo.Identity.Owner, repo.Identity.Name)
	}
	if data.Fork {
		if data.Parent == nil {
			return types.Repository{}, apierr.New(apierr.KindForkChainTooDeep,
				"repository %s reports fork=true without a parent", id)
		}
		repo.Parent = &types.RepoIdentity{
			Owner: data.Parent.Owner.Login,
			Name:  data.Parent.Name,
		}
	}
	return repo, nil
}

// GetUser fetches a user record; the client uses it to enrich contributor
// entries and owner-fallback creators with display names.
func (c *Client) GetUser(ctx context.Context, login string) (types.User, error) {
	var data userResponse
	url := fmt.Sprintf("%s/users/%s", c.apiBase, login)
	if _, err := c.getJSON(ctx, url, &data); err != nil {
		return types.User{}, err
	}
	return types.User{Login: data.Login, Name: data.Name, HTMLURL: data.HTMLURL}, nil
}

// GetLicense returns the repository's declared license. A missing
// license (404) or one without a recognized SPDX identifier yields the
// zero License and no error.
func (c *Client) GetLicense(ctx context.Context, id types.RepoIdentity) (types.License, error) {
	var data licenseResponse
	url := fmt.Sprintf("%s/repos/%s/%s/license", c.apiBase, id.Owner, id.Name)
	if _, err := c.getJSON(ctx, url, &data); err != nil {
		if apierr.Is(err, apierr.KindNotFound) {
			return types.License{}, nil
		}
		return types.License{}, err
	}

	spdx := data.License.SPDXID
	if spdx == "" || spdx == "NOASSERTION" {
		return types.License{}, nil
	}
	lic := types.License{
		SPDXID: spdx,
		Name:   data.License.Name,
		URL:    data.License.URL,
	}
	if lic.URL == "" {
		lic.URL = data.HTMLURL
	}
	return lic, nil
}

// getJSON issues one GET through the retry layer, maps the final status
// to a taxonomy error, and decodes the body into v. It returns the
// response headers so list operations can follow pagination links.
func (c *Client) getJSON(ctx context.Context, url string, v any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindTransient, err, "creating request for %s", url)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.maxRetries)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindTransient, err, "requesting %s", url)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return nil, err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return nil, apierr.Wrap(apierr.KindTransient, err, "decoding response from %s", url)
	}
	return resp.Header, nil
}

// statusError maps a non-2xx response to a taxonomy error. Retryable
// statuses only reach this point once the retry budget is spent.
func statusError(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return apierr.New(apierr.KindNotFound, "%s returned 404", resp.Request.URL.Path)
	case code == http.StatusUnauthorized:
		return apierr.New(apierr.KindUnauthorized, "token rejected by %s", resp.Request.URL.Host)
	case code == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0",
		code == http.StatusTooManyRequests:
		e := apierr.New(apierr.KindRateLimited, "rate limit exhausted on %s", resp.Request.URL.Path)
		e.RetryAfter = httputil.RetryAfterHint(resp)
		return e
	case code == http.StatusForbidden:
		return apierr.New(apierr.KindUnauthorized, "access to %s forbidden", resp.Request.URL.Path)
	case code >= 500:
		return apierr.New(apierr.KindTransient, "%s returned HTTP %d", resp.Request.URL.Host, code)
	default:
		return apierr.New(apierr.KindTransient, "unexpected HTTP %d from %s", code, resp.Request.URL.Path)
	}
}

// GitHub REST JSON structures.

type repoResponse struct {
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	CreatedAt     time.Time     `json:"created_at"`
	PushedAt      *time.Time    `json:"pushed_at"`
	DefaultBranch string        `json:"default_branch"`
	HTMLURL       string        `json:"html_url"`
	Fork          bool          `json:"fork"`
	Archived      bool          `json:"archived"`
	Topics        []string      `json:"topics"`
	Owner         ownerResponse `json:"owner"`
	Parent        *parentRef    `json:"parent"`
}

type ownerResponse struct {
	Login string `json:"login"`
}

type parentRef struct {
	Name  string        `json:"name"`
	Owner ownerResponse `json:"owner"`
}

type userResponse struct {
	Login   string `json:"login"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

type licenseResponse struct {
	HTMLURL string        `json:"html_url"`
	License licenseObject `json:"license"`
}

type licenseObject struct {
	SPDXID string `json:"spdx_id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}
