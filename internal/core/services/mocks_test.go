package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RemoteDocumentStore ---
type MockRemoteStore struct {
	mock.Mock
}

func (m *MockRemoteStore) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRemoteStore) Push(ctx context.Context, raw []byte) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}

// --- Mock LocalDocumentCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Read() ([]byte, bool, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockCache) Write(raw []byte) error {
	args := m.Called(raw)
	return args.Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentRepository) Store(ctx context.Context, raw []byte) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}

// memoryStores is an in-memory remote store and cache slot that count writes.
type memoryStores struct {
	mu          sync.Mutex
	remote      []byte
	cached      []byte
	pushes      int
	cacheWrites int
	pushErr     error
}

func (s *memoryStores) Fetch(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remote, nil
}

func (s *memoryStores) Push(_ context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushes++
	if s.pushErr != nil {
		return s.pushErr
	}
	s.remote = append([]byte(nil), raw...)
	return nil
}

func (s *memoryStores) Read() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached, s.cached != nil, nil
}

func (s *memoryStores) Write(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheWrites++
	s.cached = append([]byte(nil), raw...)
	return nil
}

func (s *memoryStores) snapshot() (remote, cached []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.remote...), append([]byte(nil), s.cached...)
}

func (s *memoryStores) saves() (cacheWrites, pushes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cacheWrites, s.pushes
}

// staticDocs serves a fixed working document.
type staticDocs struct {
	doc domain.Document
}

func (s staticDocs) Document() domain.Document {
	return s.doc.Clone()
}
