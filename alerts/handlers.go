package alerts

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
)

type dismissRequest struct {
	Id string `json:"id" binding:"required"`
}

func listNotifications(c *gin.Context) ([]Notification, string, error) {
	ctx := c.Request.Context()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, "", utils.ErrorRecordNotFound
	}

	properties, err := models.GetAllProperties(ctx)
	if err != nil {
		return nil, "", err
	}
	tasks, err := models.GetAllMaintenanceTasks(ctx)
	if err != nil {
		return nil, "", err
	}
	events, err := models.GetAllCalendarEvents(ctx)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if location, err := time.LoadLocation(models.BusinessTimezone(ctx, businessId)); err == nil {
		now = now.In(location)
	}

	dismissed := LoadDismissed(businessId)
	return Aggregate(properties, tasks, events, dismissed, now), businessId, nil
}

func ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, _, err := listNotifications(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if notifications == nil {
			notifications = []Notification{}
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

func DismissHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		businessId, ok := utils.GetBusinessIdFromContext(c.Request.Context())
		if !ok || businessId == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req dismissRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		if err := Dismiss(businessId, req.Id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DismissAllHandler dismisses what is currently visible, not every id that
// could ever exist, so tomorrow's new alerts still surface.
func DismissAllHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, businessId, err := listNotifications(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ids := make([]string, 0, len(notifications))
		for _, notification := range notifications {
			ids = append(ids, notification.Id)
		}
		ids = utils.UniqueSlice(ids)
		if err := Dismiss(businessId, ids...); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "dismissed": len(ids)})
	}
}
