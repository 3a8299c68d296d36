package parlevel

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	if day := c.Query("day"); day != "" {
		dayOfWeek, err := strconv.Atoi(day)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day must be 0-6"})
			return
		}

		pars, err := h.service.ListForDay(c.Request.Context(), dayOfWeek)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"par_levels": pars})
		return
	}

	pars, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"par_levels": pars})
}

func (h *Handler) Upsert(c *gin.Context) {
	var req struct {
		ParLevels []ParLevel `json:"par_levels"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	written, err := h.service.UpsertMany(c.Request.Context(), req.ParLevels)
	if err != nil && written == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"written": written, "total": len(req.ParLevels)}
	if err != nil {
		resp["warning"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
