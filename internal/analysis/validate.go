// internal/analysis/validate.go
package analysis

import (
	"fmt"

	apperrors "github-profile-analyzer/internal/errors"
	"github-profile-analyzer/internal/model"
)

// ValidateInputs is the input-validation boundary in front of the pipeline.
// The aggregation itself is written to never fail on well-typed input, so
// malformed upstream data is rejected here instead of leaking into the
// scores as nonsense values.
func ValidateInputs(user model.User, repos []model.Repository) error {
	if user.Login == "" {
		return &apperrors.ErrInvalidInput{Field: "user.login", Reason: "must not be empty"}
	}
	if user.Followers < 0 {
		return &apperrors.ErrInvalidInput{Field: "user.followers", Reason: "must not be negative"}
	}
	if user.Following < 0 {
		return &apperrors.ErrInvalidInput{Field: "user.following", Reason: "must not be negative"}
	}
	if user.PublicRepos < 0 {
		return &apperrors.ErrInvalidInput{Field: "user.public_repos", Reason: "must not be negative"}
	}

	for i, r := range repos {
		field := func(name string) string { return fmt.Sprintf("repos[%d].%s", i, name) }
		if r.Stars < 0 {
			return &apperrors.ErrInvalidInput{Field: field("stargazers_count"), Reason: "must not be negative"}
		}
		if r.Forks < 0 {
			return &apperrors.ErrInvalidInput{Field: field("forks_count"), Reason: "must not be negative"}
		}
		if r.Size < 0 {
			return &apperrors.ErrInvalidInput{Field: field("size"), Reason: "must not be negative"}
		}
		if r.UpdatedAt.IsZero() {
			return &apperrors.ErrInvalidInput{Field: field("updated_at"), Reason: "must be set"}
		}
	}
	return nil
}
