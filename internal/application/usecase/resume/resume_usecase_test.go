package resume

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestCreateResume_Success(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fixedClock(t, at)

	repo := new(MockResumeRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*resume.Resume")).Return(nil)

	uc := NewCreateResumeUseCase(repo, logger.NewNopLogger())
	out, err := uc.Execute(ctx, CreateResumeInput{Candidate: resume.Candidate{
		FullName: "Ada Lovelace",
		Email:    "ada@x.com",
	}})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.Resume.ID)
	assert.Equal(t, at, out.Resume.CreatedAt)
	assert.Equal(t, at, out.Resume.UpdatedAt)
	assert.Equal(t, resume.TypeFresher, out.Resume.ResumeType)
	assert.Empty(t, out.Resume.Education)
	repo.AssertExpectations(t)
}

func TestCreateResume_ValidationFailureDoesNotPersist(t *testing.T) {
	repo := new(MockResumeRepository)
	uc := NewCreateResumeUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateResumeInput{Candidate: resume.Candidate{Email: "ada@x.com"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, "resume validation failed: fullName is required", apperror.PublicMessage(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateResume_StorageFault(t *testing.T) {
	repo := new(MockResumeRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(apperror.NewInternal("failed to save resume", errors.New("conn reset")))

	uc := NewCreateResumeUseCase(repo, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), CreateResumeInput{Candidate: resume.Candidate{FullName: "Ada", Email: "ada@x.com"}})

	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestListResumes_EmptyStore(t *testing.T) {
	repo := new(MockResumeRepository)
	repo.On("List", mock.Anything).Return(nil, nil)

	out, err := NewListResumesUseCase(repo, logger.NewNopLogger()).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out.Resumes)
	assert.Empty(t, out.Resumes)
}

func TestGetResume_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockResumeRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, apperror.NewNotFound("Resume", id.String()))

	_, err := NewGetResumeUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), GetResumeInput{ResumeID: id})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateResume_PassesReplacementToStore(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	at := created.Add(time.Hour)
	fixedClock(t, at)

	var stored resume.Resume
	repo := new(MockResumeRepository)
	repo.On("Replace", mock.Anything, mock.MatchedBy(func(r *resume.Resume) bool {
		return r.ID == id && r.UpdatedAt.Equal(at) && len(r.Education) == 1
	})).Run(func(args mock.Arguments) {
		stored = *args.Get(1).(*resume.Resume)
		stored.CreatedAt = created
	}).Return(&stored, nil)

	out, err := NewUpdateResumeUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), UpdateResumeInput{
		ResumeID: id,
		Candidate: resume.Candidate{
			FullName:  "Ada Lovelace",
			Email:     "ada@x.com",
			Education: []resume.Education{{Degree: "BSc", Institution: "Cambridge", Year: "1840"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, created, out.Resume.CreatedAt)
	assert.Equal(t, at, out.Resume.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestUpdateResume_ValidationRunsBeforeStore(t *testing.T) {
	repo := new(MockResumeRepository)

	_, err := NewUpdateResumeUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), UpdateResumeInput{
		ResumeID:  uuid.New(),
		Candidate: resume.Candidate{FullName: "Ada", Email: "ada@x.com", ResumeType: "intern"},
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestDeleteResume(t *testing.T) {
	id := uuid.New()
	repo := new(MockResumeRepository)
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	repo.On("Delete", mock.Anything, id).Return(apperror.NewNotFound("Resume", id.String()))

	uc := NewDeleteResumeUseCase(repo, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteResumeInput{ResumeID: id}))
	assert.ErrorIs(t, uc.Execute(context.Background(), DeleteResumeInput{ResumeID: id}), apperror.ErrNotFound)
}

func TestGetResume_LogsStorageFaultsOnly(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	missing, broken := uuid.New(), uuid.New()
	repo := new(MockResumeRepository)
	repo.On("FindByID", mock.Anything, missing).Return(nil, apperror.NewNotFound("Resume", missing.String()))
	repo.On("FindByID", mock.Anything, broken).Return(nil, apperror.NewInternal("failed to scan resume row", errors.New("conn reset")))

	uc := NewGetResumeUseCase(repo, log)

	_, err := uc.Execute(context.Background(), GetResumeInput{ResumeID: missing})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, 0, logs.Len())

	_, err = uc.Execute(context.Background(), GetResumeInput{ResumeID: broken})
	assert.ErrorIs(t, err, apperror.ErrInternal)
	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, broken.String(), entries[0].ContextMap()["resume_id"])
}

func TestListResumes_LogsStorageFault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	repo := new(MockResumeRepository)
	repo.On("List", mock.Anything).Return(nil, apperror.NewInternal("failed to query resumes", errors.New("timeout")))

	_, err := NewListResumesUseCase(repo, logger.FromZap(zap.New(core))).Execute(context.Background())

	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.Equal(t, 1, logs.FilterMessage("Failed to list resumes").Len())
}
