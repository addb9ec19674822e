package resume

import (
	"context"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

type ListResumesUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewListResumesUseCase(rRepo resume.Repository, log logger.Logger) *ListResumesUseCase {
	return &ListResumesUseCase{resumeRepo: rRepo, logger: log}
}

type ListResumesOutput struct {
	Resumes []*resume.Resume
}

func (uc *ListResumesUseCase) Execute(ctx context.Context) (_ *ListResumesOutput, err error) {
	ctx, span := tracing.Start(ctx, "ListResumes")
	defer func() { tracing.End(span, err) }()

	resumes, err := uc.resumeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list resumes", err)
		return nil, err
	}
	if resumes == nil {
		resumes = []*resume.Resume{}
	}
	return &ListResumesOutput{Resumes: resumes}, nil
}
