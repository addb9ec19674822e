package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
)

// memoryResumeRepo keeps documents in process. Every read and write goes
// through a deep copy so callers never share state with the store.
type memoryResumeRepo struct {
	mu      sync.RWMutex
	resumes map[uuid.UUID]*resume.Resume
}

func NewMemoryResumeRepo() resume.Repository {
	return &memoryResumeRepo{resumes: make(map[uuid.UUID]*resume.Resume)}
}

func cloneResume(r *resume.Resume) *resume.Resume {
	c := *r
	c.Education = append([]resume.Education{}, r.Education...)
	c.Experience = append([]resume.Experience{}, r.Experience...)
	c.Projects = append([]resume.Project{}, r.Projects...)
	return &c
}

func (m *memoryResumeRepo) Save(_ context.Context, r *resume.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resumes[r.ID] = cloneResume(r)
	return nil
}

func (m *memoryResumeRepo) Replace(_ context.Context, r *resume.Resume) (*resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.resumes[r.ID]
	if !ok {
		return nil, apperror.NewNotFound("Resume", r.ID.String())
	}

	stored := cloneResume(r)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = resume.NextUpdatedAt(existing.UpdatedAt, r.UpdatedAt)
	m.resumes[r.ID] = stored
	return cloneResume(stored), nil
}

func (m *memoryResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resumes[id]; !ok {
		return apperror.NewNotFound("Resume", id.String())
	}
	delete(m.resumes, id)
	return nil
}

func (m *memoryResumeRepo) FindByID(_ context.Context, id uuid.UUID) (*resume.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.resumes[id]
	if !ok {
		return nil, apperror.NewNotFound("Resume", id.String())
	}
	return cloneResume(r), nil
}

func (m *memoryResumeRepo) List(_ context.Context) ([]*resume.Resume, error) {
	m.mu.RLock()
	out := make([]*resume.Resume, 0, len(m.resumes))
	for _, r := range m.resumes {
		out = append(out, cloneResume(r))
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}
