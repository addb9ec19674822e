package http

import (
	"time"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Envelope wraps every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type EducationDTO struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Grade       string `json:"grade"`
}

type ExperienceDTO struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type ProjectDTO struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// ResumeRequest is the body of POST and PUT. Any id or timestamps sent by the
// client are ignored.
type ResumeRequest struct {
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Location   string          `json:"location"`
	LinkedIn   string          `json:"linkedin"`
	GitHub     string          `json:"github"`
	ResumeType string          `json:"resumeType"`
	Education  []EducationDTO  `json:"education"`
	Experience []ExperienceDTO `json:"experience"`
	Skills     string          `json:"skills"`
	Projects   []ProjectDTO    `json:"projects"`
}

func (req *ResumeRequest) ToCandidate() resume.Candidate {
	c := resume.Candidate{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Location:   req.Location,
		LinkedIn:   req.LinkedIn,
		GitHub:     req.GitHub,
		ResumeType: resume.ResumeType(req.ResumeType),
		Skills:     req.Skills,
	}
	if req.Education != nil {
		c.Education = make([]resume.Education, len(req.Education))
		for i, e := range req.Education {
			c.Education[i] = resume.Education(e)
		}
	}
	if req.Experience != nil {
		c.Experience = make([]resume.Experience, len(req.Experience))
		for i, e := range req.Experience {
			c.Experience[i] = resume.Experience(e)
		}
	}
	if req.Projects != nil {
		c.Projects = make([]resume.Project, len(req.Projects))
		for i, p := range req.Projects {
			c.Projects[i] = resume.Project(p)
		}
	}
	return c
}

type ResumeDTO struct {
	ID         string          `json:"id"`
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Location   string          `json:"location"`
	LinkedIn   string          `json:"linkedin"`
	GitHub     string          `json:"github"`
	ResumeType string          `json:"resumeType"`
	Education  []EducationDTO  `json:"education"`
	Experience []ExperienceDTO `json:"experience"`
	Skills     string          `json:"skills"`
	Projects   []ProjectDTO    `json:"projects"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func ToResumeDTO(r *resume.Resume) ResumeDTO {
	dto := ResumeDTO{
		ID:         r.ID.String(),
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Location:   r.Location,
		LinkedIn:   r.LinkedIn,
		GitHub:     r.GitHub,
		ResumeType: string(r.ResumeType),
		Skills:     r.Skills,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	dto.Education = make([]EducationDTO, len(r.Education))
	for i, e := range r.Education {
		dto.Education[i] = EducationDTO(e)
	}
	dto.Experience = make([]ExperienceDTO, len(r.Experience))
	for i, e := range r.Experience {
		dto.Experience[i] = ExperienceDTO(e)
	}
	dto.Projects = make([]ProjectDTO, len(r.Projects))
	for i, p := range r.Projects {
		dto.Projects[i] = ProjectDTO(p)
	}
	return dto
}

func ToResumeDTOs(resumes []*resume.Resume) []ResumeDTO {
	dtos := make([]ResumeDTO, len(resumes))
	for i, r := range resumes {
		dtos[i] = ToResumeDTO(r)
	}
	return dtos
}
