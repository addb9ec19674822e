package resume

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

// UpdateResumeUseCase replaces a whole document. There is no merge: an empty
// sequence in the input clears the stored one.
type UpdateResumeUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewUpdateResumeUseCase(rRepo resume.Repository, log logger.Logger) *UpdateResumeUseCase {
	return &UpdateResumeUseCase{resumeRepo: rRepo, logger: log}
}

type UpdateResumeInput struct {
	ResumeID  uuid.UUID
	Candidate resume.Candidate
}

type UpdateResumeOutput struct {
	Resume *resume.Resume
}

func (uc *UpdateResumeUseCase) Execute(ctx context.Context, input UpdateResumeInput) (_ *UpdateResumeOutput, err error) {
	ctx, span := tracing.Start(ctx, "UpdateResume")
	defer func() { tracing.End(span, err) }()

	if err := input.Candidate.Validate(); err != nil {
		return nil, apperror.NewValidation(err.Error(), err)
	}

	// CreatedAt here is a placeholder; the store keeps the original one.
	replacement := resume.NewResume(input.Candidate, input.ResumeID, now())
	stored, err := uc.resumeRepo.Replace(ctx, replacement)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Resume replaced", zap.String("resume_id", stored.ID.String()))
	return &UpdateResumeOutput{Resume: stored}, nil
}
