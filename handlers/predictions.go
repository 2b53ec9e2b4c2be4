package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"nfl-predictions-api/models"
	"nfl-predictions-api/repository"
	"nfl-predictions-api/services"

	"github.com/gin-gonic/gin"
)

// LiveChannel is the Redis pub/sub channel carrying newly created
// predictions to WebSocket clients.
const LiveChannel = "nflpredictions:live"

const listCacheTTL = 10 * time.Second

// PredictionStore is the repository capability the handler depends on.
type PredictionStore interface {
	Create(ctx context.Context, req *models.CreatePredictionRequest) (*models.Prediction, error)
	Get(ctx context.Context, id string) (*models.Prediction, error)
	List(ctx context.Context, filter repository.PredictionFilter) ([]models.Prediction, error)
	Update(ctx context.Context, id string, req *models.CreatePredictionRequest) (*models.Prediction, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type PredictionsHandler struct {
	store PredictionStore
	cache *services.CacheService
}

func NewPredictionsHandler(store PredictionStore, cache *services.CacheService) *PredictionsHandler {
	return &PredictionsHandler{store: store, cache: cache}
}

// RegisterRoutes mounts the prediction endpoints on the given group.
func (h *PredictionsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/deleteall", h.DeleteAll)
	rg.DELETE("/:id", h.Delete)
}

func (h *PredictionsHandler) Create(c *gin.Context) {
	var req models.CreatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body: " + err.Error()})
		return
	}

	rec, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	go h.cache.Publish(context.Background(), LiveChannel, rec)

	c.JSON(http.StatusCreated, rec)
}

func (h *PredictionsHandler) Get(c *gin.Context) {
	rec, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *PredictionsHandler) List(c *gin.Context) {
	filter, err := parsePredictionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cacheKey := fmt.Sprintf("predictions:%s:%s:%s",
		c.Query("season"), c.Query("week"), c.Query("team"))

	var cached []models.Prediction
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	records, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	go h.cache.Set(context.Background(), cacheKey, records, listCacheTTL)

	c.JSON(http.StatusOK, records)
}

func (h *PredictionsHandler) Update(c *gin.Context) {
	var req models.CreatePredictionRequest
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

func (h *PredictionsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pred_id": id, "was_deleted": true})
}

// DeleteAll empties the predictions collection. Test support only.
func (h *PredictionsHandler) DeleteAll(c *gin.Context) {
	if err := h.store.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"was_deleted": true})
}

func parsePredictionFilter(c *gin.Context) (repository.PredictionFilter, error) {
	var filter repository.PredictionFilter

	if s := c.Query("season"); s != "" {
		season, err := strconv.Atoi(s)
		if err != nil {
			return filter, fmt.Errorf("invalid season parameter: %q is not an integer", s)
		}
		filter.Season = &season
	}
	if w := c.Query("week"); w != "" {
		week, err := strconv.Atoi(w)
		if err != nil {
			return filter, fmt.Errorf("invalid week parameter: %q is not an integer", w)
		}
		filter.Week = &week
	}
	filter.Team = c.Query("team")

	return filter, nil
}
