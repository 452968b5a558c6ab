package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/s3"
)

var _ s3.Service = (*MockStorage)(nil)

// MockStorage presigns fake URLs and remembers which keys were uploaded
type MockStorage struct {
	mu      sync.Mutex
	objects map[string]bool
}

func NewMockStorage() *MockStorage {
	return &MockStorage{objects: make(map[string]bool)}
}

// PutObject marks the key as uploaded
func (m *MockStorage) PutObject(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = true
}

func (m *MockStorage) KeyPrefix() string {
	return "documentos"
}

func (m *MockStorage) PresignUpload(_ context.Context, key, contentType string) (*s3.PresignedURL, error) {
	return &s3.PresignedURL{
		URL:       "https://storage.test/" + key + "?upload",
		Method:    "PUT",
		Key:       key,
		Headers:   map[string]string{"Content-Type": contentType},
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (m *MockStorage) PresignDownload(_ context.Context, key string) (*s3.PresignedURL, error) {
	return &s3.PresignedURL{
		URL:       "https://storage.test/" + key,
		Method:    "GET",
		Key:       key,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (m *MockStorage) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[key], nil
}
