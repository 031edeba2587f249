package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gemdash/internal/brands"
	"gemdash/internal/catalog"
	"gemdash/internal/comments"
	"gemdash/internal/overview"
	"gemdash/internal/products"
	"gemdash/internal/questions"
	"gemdash/pkg/database"
	"gemdash/pkg/utils"
)

func main() {
	cfg := utils.LoadServerConfig()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	// The whole pipeline runs once, before any request is served. After
	// this the tables are read-only for the life of the process.
	n, err := catalog.Run(context.Background(), db, cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog pipeline failed: %v", err)
	}
	log.Printf("[catalog] loaded %d products from %s", n, cfg.CatalogPath)

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "db_error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "products": n})
	})

	commentsRepo := comments.NewRepo(db)
	questionsRepo := questions.NewRepo(db)

	overview.NewHandler(overview.NewRepo(db)).RegisterRoutes(router.Group("/overview"))
	products.NewHandler(products.NewRepo(db), commentsRepo, questionsRepo).RegisterRoutes(router.Group("/products"))
	comments.NewHandler(commentsRepo).RegisterRoutes(router.Group("/comments"))
	questions.NewHandler(questionsRepo).RegisterRoutes(router.Group("/questions"))
	brands.NewHandler(brands.NewRepo(db)).RegisterRoutes(router.Group("/brands"))

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("dashboard server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
