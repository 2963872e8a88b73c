package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCheckoutRequiresPriceID(t *testing.T) {
	checkout := &Checkout{Delay: time.Millisecond}

	err := checkout.RedirectToCheckout(context.Background(), "")
	if !errors.Is(err, ErrMissingPriceID) {
		t.Errorf("expected ErrMissingPriceID, got %v", err)
	}
}

func TestCheckoutSucceedsAfterDelay(t *testing.T) {
	checkout := &Checkout{Delay: 5 * time.Millisecond}

	start := time.Now()
	if err := checkout.RedirectToCheckout(context.Background(), "price_premium"); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("checkout returned before the simulated round trip")
	}
}

func TestCheckoutHonorsContextCancellation(t *testing.T) {
	checkout := &Checkout{Delay: time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := checkout.RedirectToCheckout(ctx, "price_premium")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
