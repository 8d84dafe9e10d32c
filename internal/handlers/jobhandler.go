package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nexthire/job-board/internal/dtos"
	"github.com/nexthire/job-board/internal/services"
)

const modificationCodeHeader = "X-Modification-Code"

type JobHandler struct {
	Jobs *services.JobService
	log  *zap.Logger
}

func NewJobHandler(jobs *services.JobService, log *zap.Logger) *JobHandler {
	return &JobHandler{Jobs: jobs, log: log}
}

// Create is POST /jobs. Returns the posting including its modification code;
// this is the only time the code is handed out.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		unprocessable(c, err.Error())
		return
	}
	if err := req.Normalize(); err != nil {
		unprocessable(c, err.Error())
		return
	}

	job, err := h.Jobs.Create(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dtos.JobWithModificationCode{
		Job:              *job,
		ModificationCode: job.ModificationCode,
	})
}

// List is GET /jobs with pagination, search, filtering and sorting.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		unprocessable(c, err.Error())
		return
	}

	jobs, total, err := h.Jobs.List(&q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.JobListResponse{
		Jobs:  jobs,
		Limit: q.Limit,
		Skip:  q.Skip,
		Total: total,
	})
}

// Get is GET /jobs/:id, the public view.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.Get(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update is PATCH /jobs/:id, guarded by the X-Modification-Code header.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	code, ok := modificationCode(c)
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		unprocessable(c, err.Error())
		return
	}
	if err := req.Normalize(); err != nil {
		unprocessable(c, err.Error())
		return
	}

	job, err := h.Jobs.Update(id, &req, code)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.JobWithModificationCode{
		Job:              *job,
		ModificationCode: job.ModificationCode,
	})
}

// Delete is DELETE /jobs/:id, guarded by the X-Modification-Code header.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	code, ok := modificationCode(c)
	if !ok {
		return
	}

	job, err := h.Jobs.Delete(id, code)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.JobDeleteResponse{
		Message: "Job deleted successfully",
		JobID:   job.ID,
	})
}

// Related is GET /jobs/:id/related.
func (h *JobHandler) Related(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var q struct {
		Limit int `form:"limit,default=3" binding:"gte=1,lte=10"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		unprocessable(c, err.Error())
		return
	}

	jobs, err := h.Jobs.Related(id, q.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Saved is POST /jobs/saved: batch retrieval for bookmarked postings.
// Unknown IDs are omitted from the result rather than erroring.
func (h *JobHandler) Saved(c *gin.Context) {
	var payload dtos.JobIDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		unprocessable(c, err.Error())
		return
	}

	jobs, err := h.Jobs.GetByIDs(payload.JobIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Verify is POST /jobs/:id/verify. A wrong code is still a 200: the outcome
// is in the body, so the frontend can distinguish "wrong code" from "gone".
func (h *JobHandler) Verify(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var payload dtos.ModificationCodePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		unprocessable(c, err.Error())
		return
	}

	verified, err := h.Jobs.VerifyCode(id, payload.ModificationCode)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dtos.VerificationResponse{Verified: verified}
	if !verified {
		msg := "Incorrect modification code."
		resp.Error = &msg
	}
	c.JSON(http.StatusOK, resp)
}

// jobID parses the :id path parameter, writing a 422 on malformed UUIDs.
func jobID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		unprocessable(c, "invalid job id: must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// modificationCode reads the guard header, writing a 422 when it is missing
// or has the wrong shape.
func modificationCode(c *gin.Context) (string, bool) {
	code := c.GetHeader(modificationCodeHeader)
	if len(code) != 8 {
		unprocessable(c, "X-Modification-Code header must be exactly 8 characters")
		return "", false
	}
	return code, true
}

func unprocessable(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
}

// writeError maps service errors onto the {"detail": ...} envelope.
func (h *JobHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"detail": fmt.Sprintf("Job with ID %s not found.", c.Param("id")),
		})
	case errors.Is(err, services.ErrWrongCode):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"detail": "Incorrect modification code.",
		})
	case errors.Is(err, services.ErrValidation):
		unprocessable(c, err.Error())
	case errors.Is(err, services.ErrPostingCapReached):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"detail": fmt.Sprintf(
				"Cannot create new job. The maximum limit of %d job postings has been reached.",
				h.Jobs.MaxPostings()),
		})
	default:
		h.log.Error("unhandled service error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": "An unexpected internal server error occurred.",
		})
	}
}
