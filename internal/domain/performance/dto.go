package performance

import (
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/validator"
)

type CreatePerformanceRequest struct {
	EmployeeID          string  `json:"employee_id"`
	Rating              int     `json:"rating"`
	ReviewDate          string  `json:"review_date"`
	Reviewer            string  `json:"reviewer"`
	Comments            *string `json:"comments"`
	Goals               *string `json:"goals"`
	Achievements        *string `json:"achievements"`
	AreasForImprovement *string `json:"areas_for_improvement"`
	NextReviewDate      *string `json:"next_review_date"`
}

func (r *CreatePerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Rating < RatingMin || r.Rating > RatingMax {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "review_date",
			Message: "review_date must be in YYYY-MM-DD format",
		})
	}

	if r.NextReviewDate != nil {
		if _, ok := validator.IsValidDate(*r.NextReviewDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "next_review_date",
				Message: "next_review_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePerformanceRequest struct {
	ID                  string  `json:"-"`
	EmployeeID          string  `json:"employee_id"`
	Rating              int     `json:"rating"`
	ReviewDate          string  `json:"review_date"`
	Reviewer            string  `json:"reviewer"`
	Comments            *string `json:"comments"`
	Goals               *string `json:"goals"`
	Achievements        *string `json:"achievements"`
	AreasForImprovement *string `json:"areas_for_improvement"`
	NextReviewDate      *string `json:"next_review_date"`
}

func (r *UpdatePerformanceRequest) Validate() error {
	create := CreatePerformanceRequest{
		EmployeeID:          r.EmployeeID,
		Rating:              r.Rating,
		ReviewDate:          r.ReviewDate,
		Reviewer:            r.Reviewer,
		Comments:            r.Comments,
		Goals:               r.Goals,
		Achievements:        r.Achievements,
		AreasForImprovement: r.AreasForImprovement,
		NextReviewDate:      r.NextReviewDate,
	}
	return create.Validate()
}

type PerformanceFilter struct {
	EmployeeID *string
	Rating     *int
	Page       int
	Limit      int
}

type PerformanceResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name"`
	Department          *string `json:"department"`
	Rating              int     `json:"rating"`
	RatingText          string  `json:"rating_text"`
	ReviewDate          string  `json:"review_date"`
	Reviewer            string  `json:"reviewer"`
	Comments            *string `json:"comments"`
	Goals               *string `json:"goals"`
	Achievements        *string `json:"achievements"`
	AreasForImprovement *string `json:"areas_for_improvement"`
	NextReviewDate      *string `json:"next_review_date"`
	IsOverdue           bool    `json:"is_overdue"`
}

type ListPerformanceResponse struct {
	Performances []PerformanceResponse `json:"performances"`
	TotalItems   int64                 `json:"total_items"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

func ToResponse(p Performance, today time.Time) PerformanceResponse {
	// Rating is validated on the way in, so the label lookup cannot miss.
	label, _ := RatingText(p.Rating)

	resp := PerformanceResponse{
		ID:                  p.ID,
		EmployeeID:          p.EmployeeID,
		EmployeeName:        p.EmployeeName,
		Department:          p.DepartmentName,
		Rating:              p.Rating,
		RatingText:          label,
		ReviewDate:          p.ReviewDate.Format("2006-01-02"),
		Reviewer:            p.Reviewer,
		Comments:            p.Comments,
		Goals:               p.Goals,
		Achievements:        p.Achievements,
		AreasForImprovement: p.AreasForImprovement,
		IsOverdue:           IsOverdue(p.NextReviewDate, today),
	}
	if p.NextReviewDate != nil {
		s := p.NextReviewDate.Format("2006-01-02")
		resp.NextReviewDate = &s
	}
	return resp
}
