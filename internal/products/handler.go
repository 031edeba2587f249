package products

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gemdash/internal/comments"
	"gemdash/internal/questions"
	"gemdash/pkg/models"
)

type Handler struct {
	Repo      *Repo
	Comments  *comments.Repo
	Questions *questions.Repo
}

func NewHandler(repo *Repo, commentsRepo *comments.Repo, questionsRepo *questions.Repo) *Handler {
	return &Handler{Repo: repo, Comments: commentsRepo, Questions: questionsRepo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)            // GET /products?q=
	rg.GET("/:name", h.getByName) // GET /products/:name
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, p := range items {
		out = append(out, gin.H{
			"name":           p.Name,
			"label":          models.ProductLink(p.URL, p.Name),
			"url":            p.URL,
			"brand_name":     p.BrandName,
			"price":          p.Price,
			"carat":          p.Carat,
			"weight":         p.Weight,
			"overall_score":  p.OverallScore,
			"comment_count":  p.CommentCount,
			"question_count": p.QuestionCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(out),
		"items": out,
	})
}

func (h *Handler) getByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	p, err := h.Repo.GetByName(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	productComments, err := h.Comments.ForProduct(c.Request.Context(), p.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comments failed"})
		return
	}
	productQuestions, err := h.Questions.ForProduct(c.Request.Context(), p.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "questions failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":   p,
		"label":     models.ProductLink(p.URL, p.Name),
		"comments":  productComments,
		"questions": productQuestions,
	})
}
