package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/persistence"
	resumeUC "github.com/khoahotran/resume-builder/internal/application/usecase/resume"
	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var samples = []resume.Candidate{
	{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Location:   "London",
		GitHub:     "github.com/ada",
		ResumeType: resume.TypeExperienced,
		Education: []resume.Education{
			{Degree: "Private tutoring in Mathematics", Institution: "University of London", Year: "1840"},
		},
		Experience: []resume.Experience{
			{Title: "Analyst", Company: "Analytical Engine Project", Duration: "1842 - 1843", Description: "Wrote the first published algorithm for a computing machine."},
		},
		Skills: "Mathematics, Algorithms, Technical writing",
		Projects: []resume.Project{
			{Name: "Note G", Description: "Bernoulli number computation for the Analytical Engine", Technologies: "Punched cards"},
		},
	},
	{
		FullName: "Alan Turing",
		Email:    "alan@example.com",
		Education: []resume.Education{
			{Degree: "BA Mathematics", Institution: "King's College, Cambridge", Year: "1934", Grade: "First"},
		},
		Skills: "Logic, Cryptanalysis",
		Projects: []resume.Project{
			{Name: "On Computable Numbers", Description: "Defined the universal machine"},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env, logger.WithLevel(cfg.App.LogLevel))
	defer appLogger.Sync()

	repo, closeStore, err := persistence.NewResumeRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open resume store", err)
	}
	defer closeStore()

	createUC := resumeUC.NewCreateResumeUseCase(repo, appLogger)
	ctx := context.Background()

	for _, candidate := range samples {
		out, err := createUC.Execute(ctx, resumeUC.CreateResumeInput{Candidate: candidate})
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidInput) {
				appLogger.Warn("Skipping invalid sample", zap.String("full_name", candidate.FullName), zap.Error(err))
				continue
			}
			appLogger.Fatal("Failed to seed resume", err)
		}
		appLogger.Info("Seeded resume", zap.String("resume_id", out.Resume.ID.String()), zap.String("full_name", candidate.FullName))
	}
}
