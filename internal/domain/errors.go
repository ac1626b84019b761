package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Taxonomy
	ErrMsgValidation        = "validation failed"
	ErrMsgNotFound          = "not found"
	ErrMsgConflict          = "conflict"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInternal          = "internal failure"

	// Catalog errors
	ErrMsgWeaponNotFound = "weapon not found"
	ErrMsgBoxNotFound    = "box not found"

	// Player and inventory errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgItemNotFound    = "inventory item not found"
	ErrMsgItemNotOwned    = "item is not owned by player"
	ErrMsgItemListed      = "item is already listed on the market"
	ErrMsgItemNotUsable   = "item cannot be used"
	ErrMsgPlayerExists    = "player already exists"
	ErrMsgInvalidPlayerID = "invalid player id"

	// Market errors
	ErrMsgListingNotFound  = "listing not found"
	ErrMsgListingNotActive = "listing no longer active"
	ErrMsgSelfPurchase     = "cannot buy your own listing"
	ErrMsgNotSeller        = "only the seller can cancel a listing"
	ErrMsgPriceTooLow      = "price is below the minimum tradeable unit"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Taxonomy classes. Every error returned by a service wraps exactly one of
// these so callers can branch with errors.Is.
var (
	ErrValidation        = errors.New(ErrMsgValidation)
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrConflict          = errors.New(ErrMsgConflict)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInternal          = errors.New(ErrMsgInternal)
)

// Specific domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrWeaponNotFound = classified(ErrNotFound, ErrMsgWeaponNotFound)
	ErrBoxNotFound    = classified(ErrNotFound, ErrMsgBoxNotFound)

	// Player and inventory errors
	ErrPlayerNotFound  = classified(ErrNotFound, ErrMsgPlayerNotFound)
	ErrItemNotFound    = classified(ErrNotFound, ErrMsgItemNotFound)
	ErrItemNotOwned    = classified(ErrConflict, ErrMsgItemNotOwned)
	ErrItemListed      = classified(ErrConflict, ErrMsgItemListed)
	ErrItemNotUsable   = classified(ErrValidation, ErrMsgItemNotUsable)
	ErrPlayerExists    = classified(ErrConflict, ErrMsgPlayerExists)
	ErrInvalidPlayerID = classified(ErrValidation, ErrMsgInvalidPlayerID)

	// Market errors
	ErrListingNotFound  = classified(ErrNotFound, ErrMsgListingNotFound)
	ErrListingNotActive = classified(ErrConflict, ErrMsgListingNotActive)
	ErrSelfPurchase     = classified(ErrConflict, ErrMsgSelfPurchase)
	ErrNotSeller        = classified(ErrConflict, ErrMsgNotSeller)
	ErrPriceTooLow      = classified(ErrValidation, ErrMsgPriceTooLow)

	// Database/System errors
	ErrDatabaseError = classified(ErrInternal, ErrMsgDatabaseError)

	// ErrTxClosed is returned by Rollback after Commit or an earlier Rollback
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// classified builds a specific error that also matches its taxonomy class
// under errors.Is.
func classified(class error, msg string) error {
	return fmt.Errorf("%w: %s", class, msg)
}

// Internal wraps a store or infrastructure failure as ErrInternal while
// keeping the cause available to errors.Is/As.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}
