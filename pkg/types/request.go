// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default endpoints for the public GitHub instance. GitHub Enterprise
// deployments override both.
const (
	DefaultGitHubURL    = "https://github.com"
	DefaultGitHubAPIURL = "https://api.github.com"
)

// GenerateRequest is the boundary contract between the wrapper layers and
// the engine: one request describes one repository whose DataCite document
// should be generated.
type GenerateRequest struct {
	// RepoOwner and RepoName identify the repository.
	RepoOwner string `json:"owner" yaml:"owner"`
	RepoName  string `json:"project" yaml:"name"`

	// APIToken is the bearer token for the platform API. Empty is valid
	// but subjects calls to unauthenticated rate limits.
	APIToken string `json:"apiToken,omitempty" yaml:"api_token,omitempty"`

	// GitHubURL is the web base URL used to build ancestor links.
	GitHubURL string `json:"githubUrl,omitempty" yaml:"github_url,omitempty"`

	// GitHubAPIURL is the REST API base URL.
	GitHubAPIURL string `json:"githubApiUrl,omitempty" yaml:"github_api_url,omitempty"`
}

// Identity returns the repository identity of the request.
func (r GenerateRequest) Identity() RepoIdentity {
	return RepoIdentity{Owner: r.RepoOwner, Name: r.RepoName}
}

// ApplyDefaults fills unset base URLs with the public GitHub endpoints.
func (r *GenerateRequest) ApplyDefaults() {
	if r.GitHubURL == "" {
		r.GitHubURL = DefaultGitHubURL
	}
	if r.GitHubAPIURL == "" {
		r.GitHubAPIURL = DefaultGitHubAPIURL
	}
}
