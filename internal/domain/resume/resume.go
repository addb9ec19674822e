package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ResumeType string

const (
	TypeFresher     ResumeType = "fresher"
	TypeExperienced ResumeType = "experienced"
)

func (t ResumeType) IsValid() bool {
	switch t {
	case TypeFresher, TypeExperienced:
		return true
	}
	return false
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Grade       string `json:"grade"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// Resume is the persisted document. ID and CreatedAt never change after the
// first save.
type Resume struct {
	ID         uuid.UUID    `json:"id"`
	FullName   string       `json:"fullName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	LinkedIn   string       `json:"linkedin"`
	GitHub     string       `json:"github"`
	ResumeType ResumeType   `json:"resumeType"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     string       `json:"skills"`
	Projects   []Project    `json:"projects"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// NewResume builds a document from an already validated candidate.
func NewResume(c Candidate, id uuid.UUID, now time.Time) *Resume {
	r := &Resume{ID: id, CreatedAt: now, UpdatedAt: now}
	r.apply(c)
	return r
}

// Replace overwrites every field except ID and CreatedAt.
func (r *Resume) Replace(c Candidate, now time.Time) {
	r.apply(c)
	r.UpdatedAt = NextUpdatedAt(r.UpdatedAt, now)
}

func (r *Resume) apply(c Candidate) {
	c.Normalize()
	r.FullName = c.FullName
	r.Email = c.Email
	r.Phone = c.Phone
	r.Location = c.Location
	r.LinkedIn = c.LinkedIn
	r.GitHub = c.GitHub
	r.ResumeType = c.ResumeType
	r.Education = c.Education
	r.Experience = c.Experience
	r.Skills = c.Skills
	r.Projects = c.Projects
}

// Candidate returns the replaceable body of r.
func (r *Resume) Candidate() Candidate {
	return Candidate{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Location:   r.Location,
		LinkedIn:   r.LinkedIn,
		GitHub:     r.GitHub,
		ResumeType: r.ResumeType,
		Education:  append([]Education{}, r.Education...),
		Experience: append([]Experience{}, r.Experience...),
		Skills:     r.Skills,
		Projects:   append([]Project{}, r.Projects...),
	}
}

// NextUpdatedAt keeps updatedAt strictly increasing even when two writes land
// within the same clock tick.
func NextUpdatedAt(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

// Now is the store clock: UTC, truncated to the microsecond precision every
// backend can round-trip.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type Repository interface {
	Save(ctx context.Context, r *Resume) error
	// Replace stores r over the existing document with the same ID and returns
	// the canonical stored version (CreatedAt preserved).
	Replace(ctx context.Context, r *Resume) (*Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Resume, error)
	// List returns every document, most recently updated first.
	List(ctx context.Context) ([]*Resume, error)
}
