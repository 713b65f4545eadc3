// internal/github/client.go
package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	apperrors "github-profile-analyzer/internal/errors"
	"github-profile-analyzer/internal/model"
)

const (
	// Max per page accepted by the GitHub API.
	maxPerPage = 100

	// GitHub only serves up to ~300 public events per user; three pages at
	// the max page size covers the whole window.
	maxEventPages = 3
)

// Client is a wrapper around the go-github client that fetches the three
// raw inputs of the analysis pipeline and translates them to internal
// model types.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates and configures a new Client instance. An empty token
// yields an unauthenticated client, subject to the lower rate limit.
func NewClient(token string, logger *slog.Logger) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{
		gh:     github.NewClient(httpClient),
		logger: logger,
	}
}

// OverrideBaseURL points the client at a GitHub Enterprise instance or a
// test server instead of github.com.
func (c *Client) OverrideBaseURL(baseURL string) error {
	gh, err := c.gh.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return err
	}
	c.gh = gh
	return nil
}

// GetUser fetches a user's public profile.
func (c *Client) GetUser(ctx context.Context, username string) (model.User, error) {
	user, _, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		return model.User{}, translateError(err, username)
	}
	return toInternalUser(user), nil
}

// GetRepositories fetches the user's public repositories, most recently
// updated first. It handles API pagination transparently.
func (c *Client) GetRepositories(ctx context.Context, username string) ([]model.Repository, error) {
	var all []model.Repository

	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: maxPerPage},
	}

	for {
		c.logger.Debug("Fetching repositories page", "user", username, "page", opts.Page)

		repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, translateError(err, username)
		}
		for _, repo := range repos {
			all = append(all, toInternalRepository(repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetEvents fetches the user's recent public events.
func (c *Client) GetEvents(ctx context.Context, username string) ([]model.Event, error) {
	var all []model.Event

	opts := &github.ListOptions{PerPage: maxPerPage}
	for page := 0; page < maxEventPages; page++ {
		events, resp, err := c.gh.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
		if err != nil {
			return nil, translateError(err, username)
		}
		for _, ev := range events {
			all = append(all, model.Event{
				Type:      ev.GetType(),
				CreatedAt: ev.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// translateError maps go-github failures onto the application error
// categories the API layer responds with.
func translateError(err error, username string) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &apperrors.ErrRateLimited{Source: "github api"}
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &apperrors.ErrRateLimited{Source: "github api"}
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
		return &apperrors.ErrUserNotFound{Username: username}
	}
	return err
}

func toInternalUser(u *github.User) model.User {
	return model.User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Location:    u.GetLocation(),
		Blog:        u.GetBlog(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
		Hireable:    u.GetHireable(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

func toInternalRepository(r *github.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Watchers:    r.GetWatchersCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		Size:        r.GetSize(),
		Description: r.GetDescription(),
		Fork:        r.GetFork(),
		Topics:      r.Topics,
		URL:         r.GetHTMLURL(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
	}
}
