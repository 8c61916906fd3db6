// Package mocks provides generated mocks for the client's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the interfaces in internal/ports. To regenerate after interface
// changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockStorage(ctrl)
//	store.EXPECT().Set("token", gomock.Any()).Return(nil)
package mocks

// Generate mock for the Storage interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=storage_mock.go github.com/streamwave/streamwave-go/internal/ports Storage

// Generate mock for the Navigator interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=navigator_mock.go github.com/streamwave/streamwave-go/internal/ports Navigator
