package handlers

import (
	"errors"
	"net/http"

	"nfl-predictions-api/models"
	"nfl-predictions-api/repository"

	"github.com/gin-gonic/gin"
)

// respondError maps a repository or validation failure to its status code
// and writes the single-message JSON body clients expect. Anything outside
// the known kinds is a store failure and collapses to 500.
func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"message": err.Error()})
}

func errorStatus(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
