package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/platform/task"
)

const (
	noticeOffline      = "Offline: Saved locally only"
	noticeCacheFailure = "Could not save on this device"
)

// persistenceGateway owns the working document and reconciles it with the
// remote store and the local cache.
type persistenceGateway struct {
	BaseService
	remote   portsrepo.RemoteDocumentStore
	cache    portsrepo.LocalDocumentCache
	notifier portssvc.Notifier

	// mu guards doc and orders saves.
	mu  sync.Mutex
	doc domain.Document
	seq uint64

	// pushMu serializes remote pushes; attempted is the newest save sequence sent to the remote.
	pushMu      sync.Mutex
	attempted   uint64
	pushTimeout time.Duration

	// publishMu is taken before mu is released so listeners see saves in order.
	publishMu   sync.Mutex
	listenersMu sync.Mutex
	listeners   map[int]func(domain.Document)
	nextID      int
}

// GatewayOption is a functional option for configuring the persistence gateway
type GatewayOption func(*persistenceGateway)

// WithNotifier sets where user notices are posted
func WithNotifier(n portssvc.Notifier) GatewayOption {
	return func(g *persistenceGateway) {
		g.notifier = n
	}
}

// WithPushTimeout bounds each background push. Zero leaves it unbounded.
func WithPushTimeout(d time.Duration) GatewayOption {
	return func(g *persistenceGateway) {
		g.pushTimeout = d
	}
}

// NewPersistenceGateway creates a gateway holding the default document until Load is called.
func NewPersistenceGateway(remote portsrepo.RemoteDocumentStore, cache portsrepo.LocalDocumentCache, options ...GatewayOption) portssvc.PersistenceGatewaySvc {
	g := &persistenceGateway{
		remote:    remote,
		cache:     cache,
		doc:       domain.DefaultDocument(),
		listeners: make(map[int]func(domain.Document)),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

var _ portssvc.PersistenceGatewaySvc = (*persistenceGateway)(nil)

func (g *persistenceGateway) Document() domain.Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.doc.Clone()
}

// Load adopts the remote document when the remote answers. Only a transport failure falls
// back to the cache; a reachable remote with an unusable body keeps the current document.
func (g *persistenceGateway) Load(ctx context.Context) (domain.Document, portssvc.LoadSource) {
	doc, source, ok := g.loadFromRemote(ctx)
	if !ok {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.doc = domain.Normalize(g.doc)
		return g.doc.Clone(), source
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.doc = doc
	return g.doc.Clone(), source
}

func (g *persistenceGateway) loadFromRemote(ctx context.Context) (domain.Document, portssvc.LoadSource, bool) {
	raw, err := g.remote.Fetch(ctx)
	if err != nil {
		g.LogWarn(ctx, "Remote store unavailable, trying local cache", slog.String("error", err.Error()))
		return g.loadFromCache(ctx)
	}

	doc, err := domain.DecodeDocument(raw)
	if err != nil {
		g.LogWarn(ctx, "Remote store returned invalid data, keeping current document", slog.String("error", err.Error()))
		return domain.Document{}, portssvc.SourceDefault, false
	}
	g.LogInfo(ctx, "Document loaded from remote store", slog.Int("customers", len(doc.Customers)))
	return doc, portssvc.SourceRemote, true
}

func (g *persistenceGateway) loadFromCache(ctx context.Context) (domain.Document, portssvc.LoadSource, bool) {
	raw, ok, err := g.cache.Read()
	if err != nil {
		g.LogError(ctx, err, "Failed to read local cache")
		return domain.Document{}, portssvc.SourceDefault, false
	}
	if !ok {
		g.LogInfo(ctx, "Local cache empty, keeping current document")
		return domain.Document{}, portssvc.SourceDefault, false
	}
	doc, err := domain.DecodeDocument(raw)
	if err != nil {
		g.LogError(ctx, err, "Local cache corrupted")
		return domain.Document{}, portssvc.SourceDefault, false
	}
	g.LogInfo(ctx, "Document loaded from local cache", slog.Int("customers", len(doc.Customers)))
	return doc, portssvc.SourceCache, true
}

func (g *persistenceGateway) Replace(ctx context.Context, doc domain.Document) *task.Task {
	g.mu.Lock()
	g.doc = domain.Normalize(doc.Clone())
	t, snapshot := g.saveLocked(ctx)
	g.publishMu.Lock()
	g.mu.Unlock()

	g.publish(snapshot)
	return t
}

func (g *persistenceGateway) Mutate(ctx context.Context, fn portssvc.MutateFunc) (*task.Task, error) {
	g.mu.Lock()
	working := g.doc.Clone()
	changed, err := fn(&working)
	if err != nil || !changed {
		g.mu.Unlock()
		return nil, err
	}
	g.doc = domain.Normalize(working)
	t, snapshot := g.saveLocked(ctx)
	g.publishMu.Lock()
	g.mu.Unlock()

	g.publish(snapshot)
	return t, nil
}

func (g *persistenceGateway) Sync(ctx context.Context) (portssvc.LoadSource, *task.Task) {
	doc, source := g.Load(ctx)
	return source, g.Replace(ctx, doc)
}

func (g *persistenceGateway) Subscribe(fn func(doc domain.Document)) func() {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			g.listenersMu.Lock()
			defer g.listenersMu.Unlock()
			delete(g.listeners, id)
		})
	}
}

// saveLocked writes the cache synchronously and starts the remote push. Callers hold mu.
func (g *persistenceGateway) saveLocked(ctx context.Context) (*task.Task, domain.Document) {
	snapshot := g.doc.Clone()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		// Unreachable for documents built from plain values.
		g.LogError(ctx, err, "Failed to serialize document")
		return task.Completed(fmt.Errorf("failed to serialize document: %w", err)), snapshot
	}

	if err := g.cache.Write(raw); err != nil {
		g.LogError(ctx, err, "Failed to write local cache")
		g.notify(ctx, portssvc.NoticeError, noticeCacheFailure)
	}

	g.seq++
	seq := g.seq
	pushCtx := context.WithoutCancel(ctx)
	return task.Go(func() error { return g.push(pushCtx, seq, raw) }), snapshot
}

func (g *persistenceGateway) push(ctx context.Context, seq uint64, raw []byte) error {
	g.pushMu.Lock()
	defer g.pushMu.Unlock()

	if seq <= g.attempted {
		g.LogDebug(ctx, "Skipping superseded push", slog.Uint64("seq", seq))
		return nil
	}
	g.attempted = seq

	if g.pushTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.pushTimeout)
		defer cancel()
	}
	if err := g.remote.Push(ctx, raw); err != nil {
		g.LogWarn(ctx, "Remote push failed, document saved locally only", slog.String("error", err.Error()))
		g.notify(ctx, portssvc.NoticeWarning, noticeOffline)
		return err
	}
	return nil
}

// publish delivers doc to every listener and releases publishMu, which the caller holds.
func (g *persistenceGateway) publish(doc domain.Document) {
	defer g.publishMu.Unlock()

	g.listenersMu.Lock()
	fns := make([]func(domain.Document), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.listenersMu.Unlock()

	for _, fn := range fns {
		fn(doc.Clone())
	}
}

func (g *persistenceGateway) notify(ctx context.Context, level portssvc.NoticeLevel, message string) {
	if g.notifier != nil {
		g.notifier.Notify(ctx, level, message)
	}
}
