package dto

type ShareNoteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=editor viewer"`
}

type CheckoutRequest struct {
	PriceID string `json:"price_id"`
}
