package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nfl-predictions-api/models"
	"nfl-predictions-api/repository"
	"nfl-predictions-api/services"

	"github.com/gin-gonic/gin"
)

// ModelPackageStore is the repository capability the handler depends on.
type ModelPackageStore interface {
	Create(ctx context.Context, req *models.CreateModelPackageRequest) (*models.ModelPackage, error)
	Get(ctx context.Context, id string) (*models.ModelPackage, error)
	List(ctx context.Context, filter repository.ModelPackageFilter) ([]models.ModelPackage, error)
	Update(ctx context.Context, id string, req *models.CreateModelPackageRequest) (*models.ModelPackage, error)
	Delete(ctx context.Context, id string) error
}

type ModelPackagesHandler struct {
	store ModelPackageStore
	cache *services.CacheService
}

func NewModelPackagesHandler(store ModelPackageStore, cache *services.CacheService) *ModelPackagesHandler {
	return &ModelPackagesHandler{store: store, cache: cache}
}

// RegisterRoutes mounts the model package endpoints on the given group.
func (h *ModelPackagesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ModelPackagesHandler) Create(c *gin.Context) {
	var req models.CreateModelPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body: " + err.Error()})
		return
	}

	rec, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *ModelPackagesHandler) Get(c *gin.Context) {
	rec, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ModelPackagesHandler) List(c *gin.Context) {
	filter := repository.ModelPackageFilter{
		DateTrained: c.Query("date_trained"),
		Label:       c.Query("label"),
	}

	cacheKey := fmt.Sprintf("models:%s:%s", filter.DateTrained, filter.Label)

	var cached []models.ModelPackage
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	records, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	go h.cache.Set(context.Background(), cacheKey, records, 30*time.Second)

	c.JSON(http.StatusOK, records)
}

func (h *ModelPackagesHandler) Update(c *gin.Context) {
	var req models.CreateModelPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body: " + err.Error()})
		return
	}

	rec, err := h.store.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ModelPackagesHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"package_id": id, "was_deleted": true})
}
