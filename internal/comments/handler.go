package comments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemdash/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)                  // GET /comments
	rg.GET("/timeseries", h.timeSeries) // GET /comments/timeseries
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, cm := range items {
		out = append(out, gin.H{
			"id":            cm.ID,
			"product_name":  cm.ProductName,
			"product_label": models.ProductLink(cm.ProductURL, cm.ProductName),
			"text":          cm.Text,
			"date":          cm.Date,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(out),
		"items": out,
	})
}

func (h *Handler) timeSeries(c *gin.Context) {
	series, err := h.Repo.TimeSeries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "time series failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}
