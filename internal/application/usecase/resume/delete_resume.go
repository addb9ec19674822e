package resume

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

type DeleteResumeUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewDeleteResumeUseCase(rRepo resume.Repository, log logger.Logger) *DeleteResumeUseCase {
	return &DeleteResumeUseCase{resumeRepo: rRepo, logger: log}
}

type DeleteResumeInput struct {
	ResumeID uuid.UUID
}

func (uc *DeleteResumeUseCase) Execute(ctx context.Context, input DeleteResumeInput) (err error) {
	ctx, span := tracing.Start(ctx, "DeleteResume")
	defer func() { tracing.End(span, err) }()

	if err := uc.resumeRepo.Delete(ctx, input.ResumeID); err != nil {
		return err
	}
	uc.logger.Info("Resume deleted", zap.String("resume_id", input.ResumeID.String()))
	return nil
}
