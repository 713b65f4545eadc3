//go:build integration

// cmd/service/integration_test.go
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-profile-analyzer/internal/ai"
	"github-profile-analyzer/internal/api"
	"github-profile-analyzer/internal/github"
)

// setupMockGitHub serves a small fixed profile the way api.github.com would.
// The enterprise client prefixes paths with /api/v3, so routes match on
// suffix rather than full path.
func setupMockGitHub(t *testing.T) *httptest.Server {
	now := time.Now().UTC()
	recent := now.AddDate(0, 0, -3).Format(time.RFC3339)
	stale := now.AddDate(0, 0, -200).Format(time.RFC3339)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")
		switch {
		case strings.HasSuffix(path, "/users/octocat"):
			fmt.Fprintf(w, `{
				"login": "octocat",
				"name": "The Octocat",
				"bio": "Professional cat",
				"followers": 120,
				"following": 9,
				"public_repos": 2,
				"created_at": "2011-01-25T18:44:36Z"
			}`)
		case strings.HasSuffix(path, "/users/octocat/repos"):
			fmt.Fprintf(w, `[
				{"name": "hello-world", "language": "Go", "stargazers_count": 15, "description": "a friendly greeting service", "fork": false, "updated_at": %q, "created_at": "2020-01-01T00:00:00Z"},
				{"name": "old-experiment", "language": "Ruby", "stargazers_count": 0, "fork": false, "updated_at": %q, "created_at": "2015-01-01T00:00:00Z"}
			]`, recent, stale)
		case strings.Contains(path, "/events"):
			fmt.Fprintf(w, `[
				{"type": "PushEvent", "created_at": %q},
				{"type": "PullRequestEvent", "created_at": %q}
			]`, recent, recent)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintln(w, `{"message": "Not Found"}`)
		}
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// setupMockGateway answers chat-completion requests with a canned verdict.
func setupMockGateway(t *testing.T) *httptest.Server {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		reply := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{
					"content": "```json\n{\"verdict\": \"ship it\", \"totalStars\": 9000}\n```",
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(reply)
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestAnalyze_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ghServer := setupMockGitHub(t)
	ghClient := github.NewClient("", logger)
	require.NoError(t, ghClient.OverrideBaseURL(ghServer.URL))

	gwServer := setupMockGateway(t)
	aiClient := ai.NewClient(gwServer.URL, "test-key", "test-model", 0.8, 10*time.Second, logger)

	router := api.NewRouter(ghClient, aiClient, logger)
	appServer := httptest.NewServer(router)
	t.Cleanup(appServer.Close)

	t.Run("full pipeline over HTTP", func(t *testing.T) {
		resp, err := http.Get(appServer.URL + "/v1/analyze/octocat")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.AnalyzeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.Equal(t, "octocat", body.User.Login)
		assert.Equal(t, 2, body.Analysis.TotalRepos)
		assert.Equal(t, 15, body.Analysis.TotalStars)
		assert.Equal(t, 1, body.Analysis.RecentlyUpdated)
		assert.Equal(t, 1, body.Analysis.InactiveRepos)
		assert.NotEmpty(t, body.Archetype.Name)
		assert.NotEmpty(t, body.Roasts)
		assert.Nil(t, body.AI)
	})

	t.Run("AI verdict merged over local numbers", func(t *testing.T) {
		resp, err := http.Get(appServer.URL + "/v1/analyze/octocat?ai=true")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.AnalyzeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		require.NotNil(t, body.AI)
		assert.Equal(t, "ship it", body.AI["verdict"])
		assert.Equal(t, float64(15), body.AI["totalStars"], "local aggregate wins over the model's number")
	})

	t.Run("unknown user over HTTP", func(t *testing.T) {
		resp, err := http.Get(appServer.URL + "/v1/analyze/nobody")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("history reflects completed analyses", func(t *testing.T) {
		resp, err := http.Get(appServer.URL + "/v1/history")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["history"], "octocat")
	})
}
