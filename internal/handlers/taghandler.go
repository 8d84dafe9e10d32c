package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexthire/job-board/internal/services"
)

type TagHandler struct {
	Jobs *services.JobService
	log  *zap.Logger
}

func NewTagHandler(jobs *services.JobService, log *zap.Logger) *TagHandler {
	return &TagHandler{Jobs: jobs, log: log}
}

// List is GET /tags: every distinct tag in use across postings.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.Jobs.UniqueTags()
	if err != nil {
		h.log.Error("failed to list tags", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": "An error occurred while retrieving tags.",
		})
		return
	}
	c.JSON(http.StatusOK, tags)
}
