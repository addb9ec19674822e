package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type ResumeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
}

func (s *ResumeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	if err := RunMigrations(dsn, s.testLogger); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
}

func (s *ResumeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestResumeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ResumeRepoIntegrationTestSuite))
}

func (s *ResumeRepoIntegrationTestSuite) Test_RepositoryContract() {
	runResumeRepositoryContract(s.T(), func(t *testing.T) resume.Repository {
		_, err := s.dbPool.Exec(context.Background(), `TRUNCATE resumes`)
		if err != nil {
			t.Fatalf("Failed to truncate resumes: %s", err)
		}
		return NewPostgresResumeRepo(s.dbPool, s.testLogger)
	})
}

func (s *ResumeRepoIntegrationTestSuite) Test_MigrationsAreIdempotent() {
	dsn, err := s.pgContainer.ConnectionString(context.Background(), "sslmode=disable")
	s.Require().NoError(err)
	s.NoError(RunMigrations(dsn, s.testLogger))
}

func (s *ResumeRepoIntegrationTestSuite) Test_SequencesStoredAsJSONArrays() {
	ctx := context.Background()
	repo := NewPostgresResumeRepo(s.dbPool, s.testLogger)
	c := resume.Candidate{FullName: "Grace Hopper", Email: "grace@navy.mil"}
	s.Require().NoError(c.Validate())
	r := resume.NewResume(c, uuid.New(), resume.Now())
	s.Require().NoError(repo.Save(ctx, r))

	var education string
	err := s.dbPool.QueryRow(ctx, `SELECT education::text FROM resumes WHERE id = $1`, r.ID).Scan(&education)
	s.Require().NoError(err)
	s.Equal("[]", education)
}
