package handler

import (
	"errors"
	"time"

	"studybuddy/dto"
	"studybuddy/repository"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func ListPlansHandler(c *gin.Context, plansService *usecase.PlansService) {
	plans, err := plansService.ListPlans(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch study plans")
		return
	}

	utils.Success(c, dto.ToPlanResponses(plans, time.Now()))
}

func GetPlanHandler(c *gin.Context, plansService *usecase.PlansService) {
	plan, err := plansService.GetPlan(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			utils.NotFound(c, "Study plan not found")
			return
		}
		utils.InternalError(c, "Failed to fetch study plan")
		return
	}

	utils.Success(c, dto.ToPlanResponse(plan, time.Now()))
}

func CreatePlanHandler(c *gin.Context, plansService *usecase.PlansService) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	plan, err := plansService.CreatePlan(c, c.GetString("user_id"), &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, dto.ToPlanResponse(plan, time.Now()))
}

func UpdatePlanHandler(c *gin.Context, plansService *usecase.PlansService) {
	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	plan, err := plansService.UpdatePlan(c, c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			utils.NotFound(c, "Study plan not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.ToPlanResponse(plan, time.Now()))
}

func TogglePlanTaskHandler(c *gin.Context, plansService *usecase.PlansService) {
	plan, err := plansService.ToggleTask(c, c.Param("id"), c.GetString("user_id"), c.Param("taskId"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPlanNotFound):
			utils.NotFound(c, "Study plan not found")
		case errors.Is(err, usecase.ErrTaskNotFound):
			utils.NotFound(c, "Task not found")
		default:
			utils.InternalError(c, "Failed to update task")
		}
		return
	}

	utils.Success(c, dto.ToPlanResponse(plan, time.Now()))
}

func DeletePlanHandler(c *gin.Context, plansService *usecase.PlansService) {
	if err := plansService.DeletePlan(c, c.Param("id"), c.GetString("user_id")); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			utils.NotFound(c, "Study plan not found")
			return
		}
		utils.InternalError(c, "Failed to delete study plan")
		return
	}

	utils.Success(c, gin.H{"message": "Study plan deleted"})
}
