package services

import (
	"errors"
	"fmt"
)

// Precondition failures are sentinel or typed errors so handlers can tell a
// rejected request apart from a datastore fault and surface the reason verbatim.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be admin, owner or courier")
	ErrNotCourier         = errors.New("assigned staff user is not a courier")
	ErrDeliveryExists     = errors.New("delivery already exists for this order")
	ErrNotOrderOwner      = errors.New("order belongs to another customer")
	ErrProofRequired      = errors.New("payment proof has not been uploaded")
	ErrProofAlreadySet    = errors.New("payment proof already uploaded, awaiting admin confirmation")
	ErrOrderProcessed     = errors.New("order has already been processed")
	ErrOrderFinal         = errors.New("order is already delivered or cancelled")
	ErrEmptyCart          = errors.New("cart must contain at least one item")
	ErrInvalidPackageKind = errors.New("invalid package type or category")
)

// StalePackagesError names every cart line whose package no longer exists in
// the catalog. Nothing is persisted when it is returned.
type StalePackagesError struct {
	PackageIDs []uint
}

func (e *StalePackagesError) Error() string {
	return fmt.Sprintf("packages no longer available: %v", e.PackageIDs)
}

// PriceMismatchError reports a cart line whose subtotal does not match the
// package's current catalog price.
type PriceMismatchError struct {
	PackageID uint
	Sent      int64
	Current   int64
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("price for package %d changed: cart has %d, catalog has %d", e.PackageID, e.Sent, e.Current)
}

// InvalidTransitionError rejects a lifecycle step the status table does not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}
