package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

type GetResumeUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewGetResumeUseCase(rRepo resume.Repository, log logger.Logger) *GetResumeUseCase {
	return &GetResumeUseCase{resumeRepo: rRepo, logger: log}
}

type GetResumeInput struct {
	ResumeID uuid.UUID
}

type GetResumeOutput struct {
	Resume *resume.Resume
}

func (uc *GetResumeUseCase) Execute(ctx context.Context, input GetResumeInput) (_ *GetResumeOutput, err error) {
	ctx, span := tracing.Start(ctx, "GetResume")
	defer func() { tracing.End(span, err) }()

	r, err := uc.resumeRepo.FindByID(ctx, input.ResumeID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Error("Failed to load resume", err, zap.String("resume_id", input.ResumeID.String()))
		}
		return nil, err
	}
	return &GetResumeOutput{Resume: r}, nil
}
