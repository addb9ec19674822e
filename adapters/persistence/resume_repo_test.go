package persistence

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

// stubRow satisfies pgx.Row by copying fixed column values into the scan
// targets.
type stubRow struct {
	values []any
}

func (s stubRow) Scan(dest ...any) error {
	for i, d := range dest {
		v := s.values[i]
		if v == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func resumeRow(id uuid.UUID, education, experience, projects []byte) stubRow {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	return stubRow{values: []any{
		id, "Ada Lovelace", "ada@x.io", "", "", "", "", "fresher",
		education, experience, "", projects, at, at,
	}}
}

func TestScanResume_NullSectionsAreSilent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	id := uuid.New()

	r, err := scanResume(resumeRow(id, []byte("null"), nil, []byte("[]")), logger.FromZap(zap.New(core)))

	require.NoError(t, err)
	assert.Equal(t, []resume.Education{}, r.Education)
	assert.Equal(t, []resume.Experience{}, r.Experience)
	assert.Equal(t, []resume.Project{}, r.Projects)
	assert.Equal(t, 0, logs.Len())
}

func TestScanResume_CorruptSectionIsLoggedWithCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	id := uuid.New()

	r, err := scanResume(resumeRow(id,
		[]byte(`[{"degree":"BSc"}]`),
		[]byte(`{"title":"not an array"}`),
		[]byte(`[{"name":"Notes"}]`),
	), logger.FromZap(zap.New(core)))

	require.NoError(t, err)
	assert.Equal(t, []resume.Education{{Degree: "BSc"}}, r.Education)
	assert.Equal(t, []resume.Experience{}, r.Experience)
	assert.Equal(t, []resume.Project{{Name: "Notes"}}, r.Projects)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "experience", entries[0].ContextMap()["section"])
	assert.Equal(t, id.String(), entries[0].ContextMap()["resume_id"])
	assert.NotEmpty(t, entries[0].ContextMap()["error"])
}

func TestRedisResumeRepo_KeysAgree(t *testing.T) {
	repo := &redisResumeRepo{keyPrefix: "resumebuilder"}
	id := uuid.New()

	assert.Equal(t, "resumebuilder:resume:"+id.String(), repo.docKey(id))
	assert.Equal(t, repo.docKey(id), repo.documentKey(id.String()))
}
