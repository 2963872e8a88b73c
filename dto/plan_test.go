package dto

import (
	"testing"
	"time"

	"studybuddy/model"
)

func planWithTasks(completed, total int) *model.StudyPlan {
	tasks := make([]model.PlanTask, total)
	for i := range tasks {
		tasks[i] = model.PlanTask{ID: "t", Title: "task", Completed: i < completed}
	}
	return &model.StudyPlan{ID: "plan-1", Title: "Exam prep", Tasks: tasks}
}

func TestPlanResponseProgress(t *testing.T) {
	now := time.Now()

	if got := ToPlanResponse(planWithTasks(2, 3), now).Progress; got != 67 {
		t.Errorf("expected 67%% for 2 of 3 tasks, got %d", got)
	}
	if got := ToPlanResponse(planWithTasks(0, 0), now).Progress; got != 0 {
		t.Errorf("expected 0%% for a plan without tasks, got %d", got)
	}
	if got := ToPlanResponse(planWithTasks(4, 4), now).Progress; got != 100 {
		t.Errorf("expected 100%% when all tasks done, got %d", got)
	}
}

func TestPlanResponseActiveWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	plan := planWithTasks(0, 1)
	plan.StartDate = now.AddDate(0, 0, -2)
	plan.EndDate = now.AddDate(0, 0, 2)
	if !ToPlanResponse(plan, now).Active {
		t.Error("expected plan spanning today to be active")
	}

	plan.EndDate = now.AddDate(0, 0, -1)
	if ToPlanResponse(plan, now).Active {
		t.Error("expected plan that ended yesterday to be inactive")
	}

	plan.StartDate = now.AddDate(0, 0, 1)
	plan.EndDate = now.AddDate(0, 0, 5)
	if ToPlanResponse(plan, now).Active {
		t.Error("expected plan starting tomorrow to be inactive")
	}
}
