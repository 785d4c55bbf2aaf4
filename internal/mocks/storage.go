package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockObjectStore records uploads instead of sending them to S3.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}
