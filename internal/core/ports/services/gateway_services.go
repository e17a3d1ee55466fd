package services

import (
	"context"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/SscSPs/mero_khata/internal/platform/task"
)

// LoadSource names where the working document came from on load.
type LoadSource string

const (
	SourceRemote  LoadSource = "remote"
	SourceCache   LoadSource = "cache"
	SourceDefault LoadSource = "default"
)

// MutateFunc changes the working document in place and reports whether anything changed.
// It must not change the document when it returns an error.
type MutateFunc func(doc *domain.Document) (changed bool, err error)

// DocumentReaderSvc gives read access to the working document.
type DocumentReaderSvc interface {
	// Document returns a deep copy of the working document.
	Document() domain.Document
}

// DocumentWriterSvc applies the save protocol to the working document.
type DocumentWriterSvc interface {
	// Replace makes doc the working document, writes the local cache synchronously and
	// pushes to the remote store in the background. The returned task tracks the remote push.
	Replace(ctx context.Context, doc domain.Document) *task.Task

	// Mutate runs fn on the working document under the gateway lock and saves when it changed
	// something. The task is nil when nothing was saved.
	Mutate(ctx context.Context, fn MutateFunc) (*task.Task, error)
}

// DocumentSyncSvc reconciles the working document with the stores.
type DocumentSyncSvc interface {
	// Load adopts the remote document, else the local cache, else the default. Never fails.
	Load(ctx context.Context) (domain.Document, LoadSource)

	// Sync loads and then saves the result back to both stores.
	Sync(ctx context.Context) (LoadSource, *task.Task)

	// Subscribe registers fn to receive a snapshot after every save, in save order.
	// fn runs on the saving goroutine and must not call Replace, Mutate or Sync. The returned func unsubscribes.
	Subscribe(fn func(doc domain.Document)) (unsubscribe func())
}

// PersistenceGatewaySvc combines all gateway operations.
type PersistenceGatewaySvc interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentSyncSvc
}
