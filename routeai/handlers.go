package routeai

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type importRequest struct {
	Vehicle string `json:"vehicle" binding:"required"`
}

func ImportHandler(estimator Estimator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req importRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		entries, err := ImportFromSchedule(c.Request.Context(), estimator, req.Vehicle)
		if err != nil {
			switch {
			case errors.Is(err, ErrNothingToImport):
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "nothing to import: check out today's appointments first",
				})
			case errors.Is(err, ErrNoRoute):
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "no usable route could be estimated from today's appointments",
				})
			case errors.Is(err, ErrImportInProgress):
				c.JSON(http.StatusConflict, gin.H{
					"error": "an import is already running for this agency",
				})
			case errors.Is(err, ErrQuotaExceeded):
				c.JSON(http.StatusTooManyRequests, gin.H{
					"error": "ai quota exceeded, try again later",
				})
			case errors.Is(err, ErrEstimatorUnavailable):
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"error": "route estimation failed, try again later",
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"imported": len(entries), "entries": entries})
	}
}
