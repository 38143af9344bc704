// Package catalogsync installs newer exercise catalogs published as
// release assets of a GitHub repository.
package catalogsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultOwner           = "winterarc"
	defaultRepo            = "catalog"
	defaultTimeout         = 30 * time.Second
)

// Checker looks up and downloads catalog releases.
type Checker struct {
	client          *http.Client
	baseURL         string
	downloadBaseURL string
	owner           string
	repo            string
}

type Option func(*Checker)

// WithBaseURL sets the releases API base URL.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = u }
}

// WithDownloadBaseURL sets the base URL release assets are fetched from.
func WithDownloadBaseURL(u string) Option {
	return func(c *Checker) { c.downloadBaseURL = u }
}

// WithRepository sets the repository that publishes catalog releases.
func WithRepository(owner, repo string) Option {
	return func(c *Checker) { c.owner, c.repo = owner, repo }
}

// WithTimeout bounds every HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// NewChecker creates a Checker for the default catalog repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: defaultTimeout},
		baseURL:         defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		owner:           defaultOwner,
		repo:            defaultRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RepositoryOptions turns a repository URL such as
// https://github.com/winterarc/catalog into Checker options. Hosts other
// than github.com are treated as GitHub Enterprise servers.
func RepositoryOptions(raw string) ([]Option, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse repository url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if u.Host == "" || len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("repository url %q must look like https://host/owner/repo", raw)
	}

	download := u.Scheme + "://" + u.Host
	api := defaultAPIBaseURL
	if u.Host != "github.com" {
		api = download + "/api/v3"
	}
	return []Option{
		WithBaseURL(api),
		WithDownloadBaseURL(download),
		WithRepository(parts[0], strings.TrimSuffix(parts[1], ".git")),
	}, nil
}

type CheckInput struct {
	// Version is the installed catalog version.
	Version string
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with the installed version.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if !semver.IsValid(rel.TagName) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}

	return &CheckResult{
		CurrentVersion:  input.Version,
		LatestVersion:   rel.TagName,
		UpdateAvailable: newer(rel.TagName, input.Version),
		ReleaseURL:      rel.HTMLURL,
	}, nil
}

// newer reports whether latest is ahead of current. An unparseable current
// version is always behind.
func newer(latest, current string) bool {
	if !semver.IsValid(current) {
		return true
	}
	return semver.Compare(latest, current) > 0
}
