package services

import "context"

// DocumentStoreSvc serves the remote document endpoint.
type DocumentStoreSvc interface {
	// Get returns the stored document, seeding the default when nothing is stored.
	Get(ctx context.Context) ([]byte, error)

	// Overwrite replaces the stored document with raw when it decodes to a truthy JSON value.
	Overwrite(ctx context.Context, raw []byte) error
}
