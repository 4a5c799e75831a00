package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/service"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Review(ctx context.Context, process string, files []service.UploadedFile) (*service.ReviewResult, error) {
	args := m.Called(ctx, process, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewResult), args.Error(1)
}

func (m *MockReviewService) History(ctx context.Context, limit, offset int) (*service.ReviewListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewListResult), args.Error(1)
}

func (m *MockReviewService) GetReview(ctx context.Context, id string) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}
