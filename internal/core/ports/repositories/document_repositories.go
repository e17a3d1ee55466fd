package repositories

import "context"

// RemoteDocumentReader fetches the shared document from the remote store.
type RemoteDocumentReader interface {
	// Fetch returns the raw document bytes. Network failures and non-success
	// responses are reported wrapping apperrors.ErrTransport.
	Fetch(ctx context.Context) ([]byte, error)
}

// RemoteDocumentWriter overwrites the shared document on the remote store.
type RemoteDocumentWriter interface {
	// Push sends the whole document; there are no partial writes.
	Push(ctx context.Context, raw []byte) error
}

// RemoteDocumentStore combines remote read and write access.
type RemoteDocumentStore interface {
	RemoteDocumentReader
	RemoteDocumentWriter
}

// LocalDocumentCache is the single named slot holding the last saved document on this machine.
type LocalDocumentCache interface {
	// Read returns the cached bytes and whether the slot was populated.
	Read() ([]byte, bool, error)

	// Write replaces the slot content synchronously.
	Write(raw []byte) error
}

// DocumentRepository is the server-side storage behind the remote document endpoint.
type DocumentRepository interface {
	// Load returns the stored bytes, or apperrors.ErrNotFound when nothing has been stored yet.
	Load(ctx context.Context) ([]byte, error)

	// Store replaces the stored document wholesale.
	Store(ctx context.Context, raw []byte) error
}
