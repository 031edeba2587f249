package brands

import (
	"net/http"
	"strings"

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
	rg.GET("", h.list)                        // GET /brands
	rg.GET("/:name", h.get)                   // GET /brands/:name
	rg.GET("/:name/timeseries", h.timeSeries) // GET /brands/:name/timeseries
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rollup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) get(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand name required"})
		return
	}

	rollup, err := h.Repo.Get(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if rollup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	items, err := h.Repo.Products(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "products failed"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, p := range items {
		out = append(out, gin.H{
			"name":           p.Name,
			"label":          models.ProductLink(p.URL, p.Name),
			"carat":          p.Carat,
			"weight":         p.Weight,
			"price":          p.Price,
			"overall_score":  p.OverallScore,
			"comment_count":  p.CommentCount,
			"question_count": p.QuestionCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"brand":    rollup,
		"products": out,
	})
}

func (h *Handler) timeSeries(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand name required"})
		return
	}

	series, err := h.Repo.TimeSeries(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "time series failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}
