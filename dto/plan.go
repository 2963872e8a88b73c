package dto

import (
	"time"

	"studybuddy/model"
)

type CreatePlanRequest struct {
	Title     string    `json:"title" binding:"required"`
	Subject   string    `json:"subject"`
	Tasks     []string  `json:"tasks"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// UpdatePlanRequest carries a partial update: only fields present in
// the payload are written.
type UpdatePlanRequest struct {
	Title     *string    `json:"title,omitempty"`
	Subject   *string    `json:"subject,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type PlanResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Subject   string           `json:"subject,omitempty"`
	Tasks     []model.PlanTask `json:"tasks"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Progress  int              `json:"progress"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ToPlanResponse derives the completion percentage and whether the
// plan's date range contains now.
func ToPlanResponse(plan *model.StudyPlan, now time.Time) PlanResponse {
	return PlanResponse{
		ID:        plan.ID,
		UserID:    plan.UserID,
		Title:     plan.Title,
		Subject:   plan.Subject,
		Tasks:     plan.Tasks,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		Progress:  plan.Progress(),
		Active:    !now.Before(plan.StartDate) && !now.After(plan.EndDate),
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}

func ToPlanResponses(plans []*model.StudyPlan, now time.Time) []PlanResponse {
	responses := make([]PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, ToPlanResponse(plan, now))
	}
	return responses
}
