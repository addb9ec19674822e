package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	resumeUC "github.com/khoahotran/resume-builder/internal/application/usecase/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type ResumeHandler struct {
	createResumeUseCase *resumeUC.CreateResumeUseCase
	listResumesUseCase  *resumeUC.ListResumesUseCase
	getResumeUseCase    *resumeUC.GetResumeUseCase
	updateResumeUseCase *resumeUC.UpdateResumeUseCase
	deleteResumeUseCase *resumeUC.DeleteResumeUseCase
	logger              logger.Logger
}

func NewResumeHandler(
	createUC *resumeUC.CreateResumeUseCase,
	listUC *resumeUC.ListResumesUseCase,
	getUC *resumeUC.GetResumeUseCase,
	updateUC *resumeUC.UpdateResumeUseCase,
	deleteUC *resumeUC.DeleteResumeUseCase,
	log logger.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		createResumeUseCase: createUC,
		listResumesUseCase:  listUC,
		getResumeUseCase:    getUC,
		updateResumeUseCase: updateUC,
		deleteResumeUseCase: deleteUC,
		logger:              log,
	}
}

// resumeIDParam parses the :id path segment. A value that is not a UUID can
// never name a stored resume, so it is reported as not found.
func resumeIDParam(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NewNotFound("Resume", raw)
	}
	return id, nil
}

func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Rejected malformed resume body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.createResumeUseCase.Execute(c.Request.Context(), resumeUC.CreateResumeInput{
		Candidate: req.ToCandidate(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: ToResumeDTO(output.Resume)})
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	output, err := h.listResumesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Data: ToResumeDTOs(output.Resumes)})
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	resumeID, err := resumeIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.getResumeUseCase.Execute(c.Request.Context(), resumeUC.GetResumeInput{ResumeID: resumeID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Data: ToResumeDTO(output.Resume)})
}

func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	resumeID, err := resumeIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Rejected malformed resume body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.updateResumeUseCase.Execute(c.Request.Context(), resumeUC.UpdateResumeInput{
		ResumeID:  resumeID,
		Candidate: req.ToCandidate(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Data: ToResumeDTO(output.Resume)})
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	resumeID, err := resumeIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.deleteResumeUseCase.Execute(c.Request.Context(), resumeUC.DeleteResumeInput{ResumeID: resumeID}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Message: "Resume deleted successfully"})
}

func (h *ResumeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: "Server is running"})
}
