// internal/ai/client.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github-profile-analyzer/internal/analysis"
	apperrors "github-profile-analyzer/internal/errors"
)

// Mode selects the register of the generated verdict.
const (
	ModeRoast     = "roast"
	ModeRecruiter = "recruiter"
)

const roastSystemPrompt = "You are a legendary roast comedian AI with deep knowledge of software engineering. " +
	"Generate devastatingly witty, data-backed roasts that are hilarious but insightful. " +
	"Reference actual metrics, commit patterns, and coding habits."

const recruiterSystemPrompt = "You are a senior tech recruiter AI performing comprehensive GitHub profile analysis. " +
	"Provide deep, data-driven professional assessment suitable for hiring decisions. " +
	"Be objective, thorough, and insightful about technical competency signals, collaboration patterns, and growth potential."

// Verdict is the structured JSON document the gateway relays back: scores,
// an archetype, roast lines, personality and career insights. The schema is
// controlled by the remote model, so it stays loosely typed; Merge
// overwrites the fields the core computes locally.
type Verdict map[string]any

// Client calls an OpenAI-compatible chat-completions endpoint and relays
// back the structured verdict.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	logger      *slog.Logger
}

// NewClient configures a gateway client. baseURL is the full
// chat-completions URL.
func NewClient(baseURL, apiKey, model string, temperature float64, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the summary to the gateway and parses the JSON verdict out
// of the model's reply.
func (c *Client) Analyze(ctx context.Context, summary Summary, mode string) (Verdict, error) {
	systemPrompt := roastSystemPrompt
	if mode == ModeRecruiter {
		systemPrompt = recruiterSystemPrompt
	}

	userPrompt, err := buildUserPrompt(summary, mode)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("Calling AI gateway", "mode", mode, "user", summary.Username)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &apperrors.ErrRateLimited{Source: "ai gateway"}
	case resp.StatusCode != http.StatusOK:
		return nil, &apperrors.ErrGateway{StatusCode: resp.StatusCode, Detail: truncate(string(body), 200)}
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, &apperrors.ErrGateway{StatusCode: resp.StatusCode, Detail: "unparseable response body"}
	}
	if len(chat.Choices) == 0 {
		return nil, &apperrors.ErrGateway{StatusCode: resp.StatusCode, Detail: "response contained no choices"}
	}

	verdict, err := parseVerdict(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// Merge overwrites the verdict fields the core computes locally, so the
// numbers shown in the UI never disagree with the deterministic aggregates.
func Merge(v Verdict, a analysis.RepoAnalysis, streaks analysis.StreakStats, pattern analysis.ActivityPattern) Verdict {
	if v == nil {
		return nil
	}
	languages := make(map[string]int, len(a.Languages))
	for _, lc := range a.Languages {
		languages[lc.Name] = lc.Count
	}
	v["languages"] = languages
	v["totalStars"] = a.TotalStars
	v["totalForks"] = a.TotalForks
	v["originalRepos"] = a.OriginalRepos
	v["forkedRepos"] = a.ForkedRepos
	v["currentStreak"] = streaks.CurrentStreak
	v["longestStreak"] = streaks.LongestStreak
	v["activeDays"] = streaks.TotalActiveDays
	v["totalEvents"] = pattern.TotalEvents
	v["peakCodingHour"] = pattern.PeakHourLabel
	v["peakCodingDay"] = pattern.PeakDay
	return v
}

func buildUserPrompt(summary Summary, mode string) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	tone := "Make roasts HILARIOUS and specific. Reference peak hours and language choices. Be creative!"
	lineKind := "devastatingly funny roast lines referencing actual data"
	if mode == ModeRecruiter {
		tone = "Professional tone. Focus on strengths and actionable growth areas. No jokes."
		lineKind = "professional insights with specific data points"
	}

	return fmt.Sprintf(`Analyze this GitHub profile comprehensively and return a JSON response.

GitHub Profile Data:
%s

Return ONLY valid JSON (no markdown, no code blocks) with this structure:
{
  "scores": { "activity": {"score": 0, "label": "", "explanation": ""}, "documentation": {...}, "popularity": {...}, "diversity": {...}, "overall": {...} },
  "archetype": { "name": "", "emoji": "", "description": "" },
  "roastLines": ["<6-8 %s>"],
  "personality": { "focusType": "", "procrastinationTendency": 0, "burnoutRisk": 0, "learningStyle": "", "funInsights": [], "suggestions": [] },
  "careerInsights": { "idealRoles": [], "teamFit": "", "workStyle": "", "growthTrajectory": "" }
}

%s

IMPORTANT: Return ONLY the JSON object.`, string(data), lineKind, tone), nil
}

// parseVerdict extracts the JSON object from the model's reply, tolerating
// markdown code fences and surrounding prose.
func parseVerdict(content string) (Verdict, error) {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil, &apperrors.ErrGateway{StatusCode: http.StatusOK, Detail: "no JSON object in model reply"}
	}

	var v Verdict
	if err := json.Unmarshal([]byte(s[start:end+1]), &v); err != nil {
		return nil, &apperrors.ErrGateway{StatusCode: http.StatusOK, Detail: "malformed JSON in model reply"}
	}
	return v, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
