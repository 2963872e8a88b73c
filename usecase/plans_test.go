package usecase

import (
	"context"
	"testing"
	"time"

	"studybuddy/dto"
)

func TestCreatePlanRejectsBlankTitle(t *testing.T) {
	svc := &PlansService{}
	now := time.Now()

	_, err := svc.CreatePlan(context.Background(), "user-1", &dto.CreatePlanRequest{
		Title:     "   ",
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 7),
	})
	if err == nil {
		t.Error("expected blank title to be rejected")
	}
}

func TestCreatePlanRejectsInvertedDates(t *testing.T) {
	svc := &PlansService{}
	now := time.Now()

	_, err := svc.CreatePlan(context.Background(), "user-1", &dto.CreatePlanRequest{
		Title:     "Exam prep",
		StartDate: now,
		EndDate:   now.AddDate(0, 0, -1),
	})
	if err == nil {
		t.Error("expected end date before start date to be rejected")
	}
}

func TestUpdatePlanRejectsInvertedDates(t *testing.T) {
	svc := &PlansService{}
	now := time.Now()
	start := now
	end := now.AddDate(0, 0, -3)

	_, err := svc.UpdatePlan(context.Background(), "plan-1", "user-1", &dto.UpdatePlanRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	if err == nil {
		t.Error("expected end date before start date to be rejected")
	}
}
