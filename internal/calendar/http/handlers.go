package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
	"github.com/planloom/planloom-backend/internal/calendar/export"
	"github.com/planloom/planloom-backend/internal/calendar/query"
	"github.com/planloom/planloom-backend/internal/calendar/service"
)

type createReq struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Platform    domain.Platform       `json:"platform"`
	Contents    []domain.ContentDraft `json:"contents"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.svc.CreateProject(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Platform:    req.Platform,
		Description: req.Description,
		Contents:    req.Contents,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and platform are required"})
			return
		}
		h.fail(c, "create project", err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		h.fail(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.fail(c, "get project", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.fail(c, "delete project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// mutateReq is the action envelope carried by PUT /projects/:id.
type mutateReq struct {
	Action    string               `json:"action"`
	Content   *domain.ContentDraft `json:"content"`
	ContentID string               `json:"contentId"`
	Updates   *domain.ContentPatch `json:"updates"`
}

func (h *Handler) mutateContents(c *gin.Context) {
	projectID := c.Param("id")

	var req mutateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	switch req.Action {
	case "addContent":
		if req.Content == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}
		content, err := h.svc.AddContent(c.Request.Context(), projectID, *req.Content)
		if err != nil {
			h.failMutation(c, "add content", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "content": content})

	case "updateContent":
		if req.ContentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "contentId is required"})
			return
		}
		var patch domain.ContentPatch
		if req.Updates != nil {
			patch = *req.Updates
		}
		if err := h.svc.UpdateContent(c.Request.Context(), projectID, req.ContentID, patch); err != nil {
			h.failMutation(c, "update content", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	case "deleteContent":
		if req.ContentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "contentId is required"})
			return
		}
		if err := h.svc.RemoveContent(c.Request.Context(), projectID, req.ContentID); err != nil {
			h.failMutation(c, "delete content", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

func (h *Handler) exportCSV(c *gin.Context) {
	p, err := h.svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.fail(c, "export project", err)
		return
	}

	status := domain.Status(c.DefaultQuery("status", string(domain.StatusAll)))
	contents := query.FilterContents(p.Contents, c.Query("search"), status)
	contents = query.SortByPublishDate(contents)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(p.Name)+`"`)
	if err := export.WriteCSV(c.Writer, contents); err != nil {
		log.Printf("export project: write csv: %v", err)
	}
}

func (h *Handler) failMutation(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field"})
	default:
		h.fail(c, op, err)
	}
}

// fail logs the detail and returns a generic 500 without leaking internals.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
