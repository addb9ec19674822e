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

type CreateResumeUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewCreateResumeUseCase(rRepo resume.Repository, log logger.Logger) *CreateResumeUseCase {
	return &CreateResumeUseCase{resumeRepo: rRepo, logger: log}
}

type CreateResumeInput struct {
	Candidate resume.Candidate
}

type CreateResumeOutput struct {
	Resume *resume.Resume
}

func (uc *CreateResumeUseCase) Execute(ctx context.Context, input CreateResumeInput) (_ *CreateResumeOutput, err error) {
	ctx, span := tracing.Start(ctx, "CreateResume")
	defer func() { tracing.End(span, err) }()

	if err := input.Candidate.Validate(); err != nil {
		return nil, apperror.NewValidation(err.Error(), err)
	}

	newResume := resume.NewResume(input.Candidate, uuid.New(), now())
	if err := uc.resumeRepo.Save(ctx, newResume); err != nil {
		return nil, err
	}

	uc.logger.Info("Resume created", zap.String("resume_id", newResume.ID.String()))
	return &CreateResumeOutput{Resume: newResume}, nil
}
