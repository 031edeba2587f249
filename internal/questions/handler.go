package questions

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
	rg.GET("", h.list) // GET /questions
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, q := range items {
		out = append(out, gin.H{
			"id":            q.ID,
			"product_name":  q.ProductName,
			"product_label": models.ProductLink(q.ProductURL, q.ProductName),
			"text":          q.Text,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(out),
		"items": out,
	})
}
