// Package mocks provides mock implementations for testing the seopulse services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockClientRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(client, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/seopulse/seopulse-api/internal/core UserRepository

// Generate mock for ClientRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=client_repository_mock.go github.com/seopulse/seopulse-api/internal/core ClientRepository

// Generate mock for CredentialRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_repository_mock.go github.com/seopulse/seopulse-api/internal/core CredentialRepository

// Generate mock for KeywordRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=keyword_repository_mock.go github.com/seopulse/seopulse-api/internal/core KeywordRepository

// Generate mock for BacklinkRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backlink_repository_mock.go github.com/seopulse/seopulse-api/internal/core BacklinkRepository

// Generate mock for ContentRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=content_repository_mock.go github.com/seopulse/seopulse-api/internal/core ContentRepository

// Generate mock for RoadmapRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=roadmap_repository_mock.go github.com/seopulse/seopulse-api/internal/core RoadmapRepository

// Generate mock for AuditRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=audit_repository_mock.go github.com/seopulse/seopulse-api/internal/core AuditRepository

// Generate mock for ListingRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=listing_repository_mock.go github.com/seopulse/seopulse-api/internal/core ListingRepository

// Generate mock for RevocationStore interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=revocation_store_mock.go github.com/seopulse/seopulse-api/internal/core RevocationStore
