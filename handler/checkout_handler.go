package handler

import (
	"errors"
	"log"

	"studybuddy/dto"
	"studybuddy/services"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler simulates a payment flow: after the mock provider
// round-trip the account is upgraded to premium.
func CheckoutHandler(c *gin.Context, checkout *services.Checkout, usersService *usecase.UsersService) {
	userID := c.GetString("user_id")

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := checkout.RedirectToCheckout(c, req.PriceID); err != nil {
		if errors.Is(err, services.ErrMissingPriceID) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Checkout failed")
		return
	}

	if err := usersService.SetPremium(c, userID, true); err != nil {
		log.Printf("Warning: checkout completed but premium upgrade failed for %s: %v", userID, err)
		utils.InternalError(c, "Failed to activate premium")
		return
	}

	utils.Success(c, gin.H{"message": "Checkout completed", "premium": true})
}
