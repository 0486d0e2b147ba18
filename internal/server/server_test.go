// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"
)

func testServer(generate GenerateFunc) *httptest.Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := NewWithGenerator(logger, generate)
	return httptest.NewServer(s.Router())
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/generate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestGenerateEndpoint(t *testing.T) {
	var got types.GenerateRequest
	ts := testServer(func(_ context.Context, req types.GenerateRequest) (string, error) {
		got = req
		return "<resource/>\n", nil
	})
	defer ts.Close()

	resp := postJSON(t, ts.URL, `{"owner": "octo", "project": "spoon", "apiToken": "tok"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<resource/>\n", string(body))

	assert.Equal(t, "octo", got.RepoOwner)
	assert.Equal(t, "spoon", got.RepoName)
	assert.Equal(t, "tok", got.APIToken)
	// Defaults applied before the engine sees the request.
	assert.Equal(t, types.DefaultGitHubAPIURL, got.GitHubAPIURL)
}

func TestGenerateRequiresJSON(t *testing.T) {
	ts := testServer(func(context.Context, types.GenerateRequest) (string, error) {
		return "", nil
	})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/generate", "text/plain", strings.NewReader("owner=octo"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestGenerateRequiresOwnerAndProject(t *testing.T) {
	ts := testServer(func(context.Context, types.GenerateRequest) (string, error) {
		return "", nil
	})
	defer ts.Close()

	resp := postJSON(t, ts.URL, `{"owner": "octo"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestErrorKindStatusMapping(t *testing.T) {
	cases := []struct {
		kind apierr.Kind
		want int
	}{
		{apierr.KindNotFound, http.StatusNotFound},
		{apierr.KindUnauthorized, http.StatusUnauthorized},
		{apierr.KindRateLimited, http.StatusTooManyRequests},
		{apierr.KindTransient, http.StatusBadGateway},
		{apierr.KindForkChainTooDeep, http.StatusUnprocessableEntity},
		{apierr.KindIncompleteForkChain, http.StatusUnprocessableEntity},
		{apierr.KindSchemaViolation, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			ts := testServer(func(context.Context, types.GenerateRequest) (string, error) {
				return "", apierr.New(tc.kind, "boom")
			})
			defer ts.Close()

			resp := postJSON(t, ts.URL, `{"owner": "o", "project": "r"}`)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRateLimitedSetsRetryAfter(t *testing.T) {
	ts := testServer(func(context.Context, types.GenerateRequest) (string, error) {
		e := apierr.New(apierr.KindRateLimited, "quota exhausted")
		e.RetryAfter = 90 * time.Second
		return "", e
	})
	defer ts.Close()

	resp := postJSON(t, ts.URL, `{"owner": "o", "project": "r"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "90", resp.Header.Get("Retry-After"))
}

func TestHealthz(t *testing.T) {
	ts := testServer(func(context.Context, types.GenerateRequest) (string, error) {
		return "", nil
	})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
