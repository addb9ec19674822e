package resume

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) Save(ctx context.Context, r *resume.Resume) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResumeRepository) Replace(ctx context.Context, r *resume.Resume) (*resume.Resume, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resume.Resume), args.Error(1)
}

func (m *MockResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resume.Resume), args.Error(1)
}

func (m *MockResumeRepository) List(ctx context.Context) ([]*resume.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resume.Resume), args.Error(1)
}
