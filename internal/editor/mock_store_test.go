package editor

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, candidate resume.Candidate) (*resume.Resume, error) {
	args := m.Called(ctx, candidate)
	if r := args.Get(0); r != nil {
		return r.(*resume.Resume), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) List(ctx context.Context) ([]*resume.Resume, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]*resume.Resume), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*resume.Resume), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, id uuid.UUID, candidate resume.Candidate) (*resume.Resume, error) {
	args := m.Called(ctx, id, candidate)
	if r := args.Get(0); r != nil {
		return r.(*resume.Resume), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
