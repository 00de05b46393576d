// Package mocks provides mock implementations for testing the jobdesk admin service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(rows, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods:
// List, Count, GetByID, UpdateStatus
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go github.com/jobdesk/jobdesk/internal/core JobRepository

// Generate mock for JobCategoryRepository interface from internal/core package.
// This creates MockJobCategoryRepository with methods:
// List
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_category_repository_mock.go github.com/jobdesk/jobdesk/internal/core JobCategoryRepository

// Generate mock for PremiumRequestRepository interface from internal/core package.
// This creates MockPremiumRequestRepository with methods:
// List, Count, UpdateStatusNotes, ScheduleConsultation, SetDelivery, MarkCompleted
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=premium_request_repository_mock.go github.com/jobdesk/jobdesk/internal/core PremiumRequestRepository
