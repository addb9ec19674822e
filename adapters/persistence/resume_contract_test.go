package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
)

func newTestResume(t *testing.T, name string, at time.Time) *resume.Resume {
	t.Helper()
	c := resume.Candidate{
		FullName:   name,
		Email:      "someone@example.com",
		Phone:      "+44 20 7946 0000",
		ResumeType: resume.TypeExperienced,
		Education:  []resume.Education{{Degree: "BSc", Institution: "Cambridge", Year: "1840"}},
		Experience: []resume.Experience{{Title: "Analyst", Company: "Engine Ltd", Duration: "2y"}},
		Skills:     "math, poetry",
		Projects:   []resume.Project{{Name: "Notes", Technologies: "quill"}},
	}
	require.NoError(t, c.Validate())
	return resume.NewResume(c, uuid.New(), at)
}

// runResumeRepositoryContract checks the behaviour every resume.Repository
// implementation must share. newRepo must return an empty store.
func runResumeRepositoryContract(t *testing.T, newRepo func(t *testing.T) resume.Repository) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("save then find returns identical document", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		r := newTestResume(t, "Ada Lovelace", base)

		require.NoError(t, repo.Save(ctx, r))
		found, err := repo.FindByID(ctx, r.ID)

		require.NoError(t, err)
		assert.Equal(t, r.ID, found.ID)
		assert.Equal(t, r.Candidate(), found.Candidate())
		assert.True(t, r.CreatedAt.Equal(found.CreatedAt))
		assert.True(t, r.UpdatedAt.Equal(found.UpdatedAt))
	})

	t.Run("find unknown id is not found", func(t *testing.T) {
		_, err := newRepo(t).FindByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("list empty store", func(t *testing.T) {
		list, err := newRepo(t).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("list orders by updatedAt descending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		r1 := newTestResume(t, "First", base.Add(1*time.Minute))
		r2 := newTestResume(t, "Second", base.Add(2*time.Minute))
		r3 := newTestResume(t, "Third", base.Add(3*time.Minute))
		for _, r := range []*resume.Resume{r2, r3, r1} {
			require.NoError(t, repo.Save(ctx, r))
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []uuid.UUID{r3.ID, r2.ID, r1.ID}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})

		// touching the oldest moves it to the front
		r1.Replace(r1.Candidate(), base.Add(10*time.Minute))
		_, err = repo.Replace(ctx, r1)
		require.NoError(t, err)
		list, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, r1.ID, list[0].ID)
	})

	t.Run("replace keeps createdAt and advances updatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		r := newTestResume(t, "Ada", base)
		require.NoError(t, repo.Save(ctx, r))

		c := r.Candidate()
		c.FullName = "Ada King"
		c.Education = []resume.Education{}
		replacement := resume.NewResume(c, r.ID, base.Add(time.Hour))

		stored, err := repo.Replace(ctx, replacement)
		require.NoError(t, err)
		assert.True(t, stored.CreatedAt.Equal(base))
		assert.True(t, stored.UpdatedAt.After(r.UpdatedAt))
		assert.Equal(t, "Ada King", stored.FullName)
		assert.Empty(t, stored.Education)

		found, err := repo.FindByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.Candidate(), found.Candidate())
	})

	t.Run("replace with stale clock still advances updatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		r := newTestResume(t, "Ada", base)
		require.NoError(t, repo.Save(ctx, r))

		stored, err := repo.Replace(ctx, resume.NewResume(r.Candidate(), r.ID, base.Add(-time.Hour)))
		require.NoError(t, err)
		assert.True(t, stored.UpdatedAt.After(base))
	})

	t.Run("replace unknown id leaves store unmodified", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		r := newTestResume(t, "Ada", base)
		require.NoError(t, repo.Save(ctx, r))

		_, err := repo.Replace(ctx, newTestResume(t, "Ghost", base.Add(time.Hour)))
		assert.ErrorIs(t, err, apperror.ErrNotFound)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ada", list[0].FullName)
	})

	t.Run("delete then find is not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		r := newTestResume(t, "Ada", base)
		require.NoError(t, repo.Save(ctx, r))

		require.NoError(t, repo.Delete(ctx, r.ID))
		_, err := repo.FindByID(ctx, r.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, r.ID), apperror.ErrNotFound)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
