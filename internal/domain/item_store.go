package domain

import "context"

//go:generate mockgen -source=item_store.go -destination=item_store_mock.go -package=domain

// ItemStore is the read side of the external inventory document store.
type ItemStore interface {
	// ListOwners returns every known account, including ones without an
	// email address.
	ListOwners(ctx context.Context) ([]Owner, error)
	// ListItems returns tracked items, filtered to one owner when ownerID
	// is non-empty.
	ListItems(ctx context.Context, ownerID string) ([]TrackedItem, error)
	// OwnerEmail resolves a single owner's email. An empty string with a
	// nil error means the owner exists but has no deliverable address.
	OwnerEmail(ctx context.Context, ownerID string) (string, error)
}
