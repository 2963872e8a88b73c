package services

import (
	"context"
	"errors"
	"time"
)

// Checkout stands in for a real payment-processor integration. It
// simulates creating a checkout session: a fixed delay, then success for
// any non-empty price ID.
type Checkout struct {
	Delay time.Duration
}

var ErrMissingPriceID = errors.New("price ID is required")

func NewCheckout() *Checkout {
	return &Checkout{Delay: time.Second}
}

// RedirectToCheckout simulates the checkout round trip.
func (s *Checkout) RedirectToCheckout(ctx context.Context, priceID string) error {
	if priceID == "" {
		return ErrMissingPriceID
	}

	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
