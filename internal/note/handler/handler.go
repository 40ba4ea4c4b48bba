package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillbox/quillbox-server/internal/note/repository"
	"github.com/quillbox/quillbox-server/internal/note/service"
	"github.com/quillbox/quillbox-server/pkg/logger"
)

// NoteHandler exposes the note lifecycle over HTTP.
type NoteHandler struct {
	svc *service.Service
}

func New(svc *service.Service) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// Register mounts the note routes on the given group. The caller attaches the
// auth middleware to the group; every route here requires a verified admin.
func (h *NoteHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/trash/all", h.ListTrash)
	rg.DELETE("/trash/empty", h.EmptyTrash)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.SoftDelete)
	rg.PATCH("/:id/restore", h.Restore)
	rg.DELETE("/:id/permanent", h.PermanentlyDelete)
	rg.PATCH("/:id/pin", h.TogglePin)
}

type createNoteReq struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Color    string   `json:"color"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type updateNoteReq struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Color    *string   `json:"color"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	Pinned   *bool     `json:"pinned"`
}

func (h *NoteHandler) List(c *gin.Context) {
	q := repository.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "createdAt"),
	}
	notes, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) ListTrash(c *gin.Context) {
	notes, err := h.svc.ListTrash(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req createNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	n, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Color:    req.Color,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NoteHandler) Get(c *gin.Context) {
	n, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NoteHandler) Update(c *gin.Context) {
	var req updateNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	n, err := h.svc.Update(c.Request.Context(), c.Param("id"), repository.UpdateFields{
		Title:    req.Title,
		Content:  req.Content,
		Color:    req.Color,
		Category: req.Category,
		Tags:     req.Tags,
		Pinned:   req.Pinned,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NoteHandler) SoftDelete(c *gin.Context) {
	if err := h.svc.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note moved to trash"})
}

func (h *NoteHandler) Restore(c *gin.Context) {
	n, err := h.svc.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note restored successfully", "note": n})
}

func (h *NoteHandler) PermanentlyDelete(c *gin.Context) {
	if err := h.svc.PermanentlyDelete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note permanently deleted"})
}

func (h *NoteHandler) TogglePin(c *gin.Context) {
	n, err := h.svc.TogglePin(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NoteHandler) EmptyTrash(c *gin.Context) {
	removed, err := h.svc.EmptyTrash(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trash emptied", "removed": removed})
}

func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
	default:
		logger.Errorf("note handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	}
}
