// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github-profile-analyzer/internal/ai"
	"github-profile-analyzer/internal/analysis"
	apperrors "github-profile-analyzer/internal/errors"
	"github-profile-analyzer/internal/model"
	"github-profile-analyzer/internal/roast"
)

// ProfileFetcher is the slice of the GitHub client the handler depends on.
type ProfileFetcher interface {
	GetUser(ctx context.Context, username string) (model.User, error)
	GetRepositories(ctx context.Context, username string) ([]model.Repository, error)
	GetEvents(ctx context.Context, username string) ([]model.Event, error)
}

// VerdictClient is the slice of the AI-gateway client the handler depends on.
type VerdictClient interface {
	Analyze(ctx context.Context, summary ai.Summary, mode string) (ai.Verdict, error)
}

// Handler is the container for API dependencies.
type Handler struct {
	fetcher ProfileFetcher
	ai      VerdictClient // nil disables the AI verdict
	roaster *roast.Generator
	history *History
	logger  *slog.Logger
	now     func() time.Time
}

// AnalyzeResponse is the single JSON document returned per analysis run.
// Every field is a fresh snapshot; nothing is merged with previous runs.
type AnalyzeResponse struct {
	User              model.User                  `json:"user"`
	Analysis          analysis.RepoAnalysis       `json:"analysis"`
	Scores            analysis.Scores             `json:"scores"`
	ScoreExplanations analysis.ScoreExplanations  `json:"score_explanations"`
	Streaks           analysis.StreakStats        `json:"streaks"`
	Activity          analysis.ActivityPattern    `json:"activity"`
	Archetype         analysis.Archetype          `json:"archetype"`
	Personality       analysis.PersonalityProfile `json:"personality"`
	Roasts            []string                    `json:"roasts,omitempty"`
	RecruiterInsights []string                    `json:"recruiter_insights,omitempty"`
	AI                ai.Verdict                  `json:"ai,omitempty"`
}

// NewRouter creates and configures a new chi router with all API routes.
// aiClient may be nil, in which case the ?ai=true flag is ignored.
func NewRouter(fetcher ProfileFetcher, aiClient VerdictClient, logger *slog.Logger) http.Handler {
	h := &Handler{
		fetcher: fetcher,
		ai:      aiClient,
		roaster: roast.NewGenerator(),
		history: NewHistory(),
		logger:  logger,
		now:     time.Now,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// API Routes
	r.Get("/health", h.healthCheck)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/analyze/{username}", h.analyzeProfile)
		r.Get("/history", h.getHistory)
		r.Delete("/history", h.clearHistory)
		r.Delete("/history/{username}", h.removeHistoryEntry)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyzeProfile runs the full pipeline for one username.
// GET /v1/analyze/{username}?mode=roast|recruiter&ai=true
func (h *Handler) analyzeProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = ai.ModeRoast
	}
	if mode != ai.ModeRoast && mode != ai.ModeRecruiter {
		respondWithError(w, http.StatusBadRequest, "Invalid 'mode' parameter. Must be 'roast' or 'recruiter'.")
		return
	}
	wantAI := r.URL.Query().Get("ai") == "true"

	logger := h.logger.With("username", username, "mode", mode)
	logger.Info("Analyzing profile")

	// The three raw inputs are independent; fetch them in parallel. The
	// pipeline itself only starts once all of them are available.
	var (
		user   model.User
		repos  []model.Repository
		events []model.Event
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		user, err = h.fetcher.GetUser(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = h.fetcher.GetRepositories(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = h.fetcher.GetEvents(gctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		h.respondWithAppError(w, logger, err)
		return
	}

	if err := analysis.ValidateInputs(user, repos); err != nil {
		h.respondWithAppError(w, logger, err)
		return
	}

	now := h.now()
	repoAnalysis := analysis.AnalyzeRepos(repos, now)
	scores := analysis.CalculateScores(user, repoAnalysis)
	streaks := analysis.ComputeStreaks(events, now)
	pattern := analysis.AnalyzeActivity(events)

	resp := AnalyzeResponse{
		User:              user,
		Analysis:          repoAnalysis,
		Scores:            scores,
		ScoreExplanations: analysis.ExplainScores(repoAnalysis, scores),
		Streaks:           streaks,
		Activity:          pattern,
		Archetype:         analysis.ClassifyArchetype(user, repoAnalysis, scores),
		Personality:       analysis.AnalyzePersonality(user, repos, repoAnalysis, scores, now),
	}
	if mode == ai.ModeRecruiter {
		resp.RecruiterInsights = h.roaster.RecruiterInsights(user, repoAnalysis, scores)
	} else {
		resp.Roasts = h.roaster.Roasts(user, repoAnalysis, scores)
	}

	if wantAI && h.ai != nil {
		summary := ai.BuildSummary(user, repos, repoAnalysis, scores, streaks, pattern, now)
		verdict, err := h.ai.Analyze(r.Context(), summary, mode)
		if err != nil {
			// The local analysis is still useful; degrade instead of
			// failing the whole request.
			logger.Error("AI gateway call failed", "error", err)
		} else {
			resp.AI = ai.Merge(verdict, repoAnalysis, streaks, pattern)
		}
	}

	h.history.Add(username)
	respondWithJSON(w, http.StatusOK, resp)
}

// getHistory returns the recent-search list, most recent first.
// GET /v1/history
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string][]string{"history": h.history.List()})
}

// clearHistory empties the recent-search list.
// DELETE /v1/history
func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	h.history.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// removeHistoryEntry removes a single username from the list.
// DELETE /v1/history/{username}
func (h *Handler) removeHistoryEntry(w http.ResponseWriter, r *http.Request) {
	h.history.Remove(chi.URLParam(r, "username"))
	w.WriteHeader(http.StatusNoContent)
}

// respondWithAppError maps application error categories to HTTP statuses.
func (h *Handler) respondWithAppError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var notFound *apperrors.ErrUserNotFound
	if errors.As(err, &notFound) {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	var rateLimited *apperrors.ErrRateLimited
	if errors.As(err, &rateLimited) {
		respondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		return
	}
	var invalid *apperrors.ErrInvalidInput
	if errors.As(err, &invalid) {
		respondWithError(w, http.StatusUnprocessableEntity, invalid.Error())
		return
	}
	var gateway *apperrors.ErrGateway
	if errors.As(err, &gateway) {
		respondWithError(w, http.StatusBadGateway, "Upstream analysis service failed")
		return
	}
	logger.Error("Failed to analyze profile", "error", err)
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
