package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studybuddy/dto"
	"studybuddy/model"
	"studybuddy/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrTaskNotFound = errors.New("task not found in plan")

type PlansService struct {
	PlansRepo *repository.PlansRepo
}

func (svc *PlansService) ListPlans(ctx context.Context, userID string) ([]*model.StudyPlan, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.PlansRepo.GetUserPlans(ctx, userID)
}

func (svc *PlansService) GetPlan(ctx context.Context, planID string, userID string) (*model.StudyPlan, error) {
	if planID == "" || userID == "" {
		return nil, errors.New("plan ID and user ID are required")
	}
	return svc.PlansRepo.GetPlan(ctx, planID, userID)
}

func (svc *PlansService) CreatePlan(ctx context.Context, userID string, req *dto.CreatePlanRequest) (*model.StudyPlan, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("plan title is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, errors.New("plan end date is before its start date")
	}

	tasks := make([]model.PlanTask, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tasks = append(tasks, model.PlanTask{
				ID:    uuid.New().String(),
				Title: trimmed,
			})
		}
	}

	now := time.Now()
	plan := &model.StudyPlan{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Subject:   strings.TrimSpace(req.Subject),
		Tasks:     tasks,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.PlansRepo.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan applies the fields present in the request. An empty
// request returns the plan unchanged.
func (svc *PlansService) UpdatePlan(ctx context.Context, planID string, userID string, req *dto.UpdatePlanRequest) (*model.StudyPlan, error) {
	if planID == "" || userID == "" {
		return nil, errors.New("plan ID and user ID are required")
	}

	fields := bson.M{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errors.New("plan title is required")
		}
		fields["title"] = title
	}
	if req.Subject != nil {
		fields["subject"] = strings.TrimSpace(*req.Subject)
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, errors.New("plan end date is before its start date")
	}

	if len(fields) == 0 {
		return svc.PlansRepo.GetPlan(ctx, planID, userID)
	}
	return svc.PlansRepo.UpdatePlan(ctx, planID, userID, fields)
}

// ToggleTask flips the completion state of one task and returns the
// updated plan.
func (svc *PlansService) ToggleTask(ctx context.Context, planID string, userID string, taskID string) (*model.StudyPlan, error) {
	plan, err := svc.GetPlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range plan.Tasks {
		if plan.Tasks[i].ID == taskID {
			plan.Tasks[i].Completed = !plan.Tasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTaskNotFound
	}

	return svc.PlansRepo.UpdatePlan(ctx, planID, userID, bson.M{"tasks": plan.Tasks})
}

func (svc *PlansService) DeletePlan(ctx context.Context, planID string, userID string) error {
	if planID == "" || userID == "" {
		return errors.New("plan ID and user ID are required")
	}
	return svc.PlansRepo.DeletePlan(ctx, planID, userID)
}
