package performance

import (
	"regexp"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

var periodRegex = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

type CreateRequest struct {
	UserID string `json:"user_id"`
	Period string `json:"period"` // YYYY-Q[1-4]
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !periodRegex.MatchString(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be in YYYY-Qn format, e.g. 2024-Q1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompleteRequest struct {
	ID       string  `json:"-"`
	Rating   int     `json:"rating"`
	Feedback *string `json:"feedback,omitempty"`
}

func (r *CompleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	ReviewerID   string  `json:"reviewer_id"`
	ReviewerName *string `json:"reviewer_name,omitempty"`
	Period       string  `json:"period"`
	Rating       *int    `json:"rating,omitempty"`
	Feedback     *string `json:"feedback,omitempty"`
	Status       string  `json:"status"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
