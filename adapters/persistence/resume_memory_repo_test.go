package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

func TestMemoryResumeRepo(t *testing.T) {
	runResumeRepositoryContract(t, func(t *testing.T) resume.Repository {
		return NewMemoryResumeRepo()
	})
}

func TestMemoryResumeRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryResumeRepo()
	ctx := context.Background()
	r := newTestResume(t, "Ada", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, r))

	r.Education[0].Degree = "mutated after save"
	found, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	found.Projects[0].Name = "mutated after find"

	again, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "BSc", again.Education[0].Degree)
	assert.Equal(t, "Notes", again.Projects[0].Name)
}
