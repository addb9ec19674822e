package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type postgresResumeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresResumeRepo(db *pgxpool.Pool, logger logger.Logger) resume.Repository {
	return &postgresResumeRepo{db: db, logger: logger}
}

var psqlResume = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const resumeColumns = "id, full_name, email, phone, location, linkedin, github, resume_type, education, experience, skills, projects, created_at, updated_at"

type resumeDocuments struct {
	education  []byte
	experience []byte
	projects   []byte
}

func marshalDocuments(r *resume.Resume) (resumeDocuments, error) {
	var (
		docs resumeDocuments
		err  error
	)
	if docs.education, err = json.Marshal(r.Education); err != nil {
		return docs, err
	}
	if docs.experience, err = json.Marshal(r.Experience); err != nil {
		return docs, err
	}
	docs.projects, err = json.Marshal(r.Projects)
	return docs, err
}

func scanResume(row pgx.Row, l logger.Logger) (*resume.Resume, error) {
	r := &resume.Resume{}
	var resumeType string
	var educationBytes, experienceBytes, projectsBytes []byte

	err := row.Scan(
		&r.ID,
		&r.FullName,
		&r.Email,
		&r.Phone,
		&r.Location,
		&r.LinkedIn,
		&r.GitHub,
		&resumeType,
		&educationBytes,
		&experienceBytes,
		&r.Skills,
		&projectsBytes,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Resume", "")
		}
		return nil, apperror.NewInternal("failed to scan resume row", err)
	}
	r.ResumeType = resume.ResumeType(resumeType)
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()

	r.Education = decodeSection[resume.Education](educationBytes, "education", r.ID, l)
	r.Experience = decodeSection[resume.Experience](experienceBytes, "experience", r.ID, l)
	r.Projects = decodeSection[resume.Project](projectsBytes, "projects", r.ID, l)

	return r, nil
}

// decodeSection reads a JSONB array column. NULL, empty and `null` values
// become an empty slice silently; undecodable content is logged and dropped.
func decodeSection[T any](raw []byte, section string, id uuid.UUID, l logger.Logger) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		l.Warn("Failed to unmarshal resume section",
			zap.String("resume_id", id.String()),
			zap.String("section", section),
			zap.Error(err),
		)
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

func scanResumes(rows pgx.Rows, l logger.Logger) ([]*resume.Resume, error) {
	defer rows.Close()
	resumes := make([]*resume.Resume, 0)

	for rows.Next() {
		r, err := scanResume(rows, l)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating resume rows", err)
	}
	return resumes, nil
}

func (r *postgresResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	docs, err := marshalDocuments(res)
	if err != nil {
		return apperror.NewInternal("failed to marshal resume sections", err)
	}

	query := `
		INSERT INTO resumes (id, full_name, email, phone, location, linkedin, github, resume_type, education, experience, skills, projects, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.db.Exec(ctx, query,
		res.ID, res.FullName, res.Email, res.Phone, res.Location, res.LinkedIn, res.GitHub,
		string(res.ResumeType), docs.education, docs.experience, res.Skills, docs.projects,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23514" {
			return apperror.NewValidation("resume violates a schema constraint", err)
		}
		return apperror.NewInternal("failed to save resume", err)
	}
	return nil
}

// Replace is a single UPDATE ... RETURNING so the existence check and the write
// happen atomically. updated_at only moves forward.
func (r *postgresResumeRepo) Replace(ctx context.Context, res *resume.Resume) (*resume.Resume, error) {
	docs, err := marshalDocuments(res)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal resume sections for update", err)
	}

	builder := psqlResume.Update("resumes").
		SetMap(map[string]any{
			"full_name":   res.FullName,
			"email":       res.Email,
			"phone":       res.Phone,
			"location":    res.Location,
			"linkedin":    res.LinkedIn,
			"github":      res.GitHub,
			"resume_type": string(res.ResumeType),
			"education":   docs.education,
			"experience":  docs.experience,
			"skills":      res.Skills,
			"projects":    docs.projects,
			"updated_at":  sq.Expr("GREATEST(?::timestamptz, updated_at + interval '1 microsecond')", res.UpdatedAt),
		}).
		Where(sq.Eq{"id": res.ID}).
		Suffix("RETURNING " + resumeColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build replace resume query", err)
	}

	stored, err := scanResume(r.db.QueryRow(ctx, sql, args...), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Resume", res.ID.String())
		}
		var appErr *apperror.AppError
		var pgErr *pgconn.PgError
		if errors.As(err, &appErr) && errors.As(appErr.Cause(), &pgErr) && pgErr.Code == "23514" {
			return nil, apperror.NewValidation("resume violates a schema constraint", pgErr)
		}
		return nil, err
	}
	return stored, nil
}

func (r *postgresResumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM resumes WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Resume", id.String())
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	res, err := scanResume(r.db.QueryRow(ctx, query, id), r.logger)
	if err != nil && errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("Resume", id.String())
	}
	return res, err
}

func (r *postgresResumeRepo) List(ctx context.Context) ([]*resume.Resume, error) {
	builder := psqlResume.Select(resumeColumns).
		From("resumes").
		OrderBy("updated_at DESC", "created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list resumes query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resumes", err)
	}

	return scanResumes(rows, r.logger)
}
