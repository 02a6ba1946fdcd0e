package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/models/reports"
	"github.com/rentfolio/rentfolio_backend/utils"
)

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, gin.H{"error": utils.ProcessValidationErrors(err)})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return false
	}
	return true
}

func pathId(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		if errors.Is(err, utils.ErrorRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

/* auth */

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !bindJSON(c, &req) {
			return
		}
		info, err := models.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := models.Logout(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": ok})
	}
}

func currentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := utils.GetUserIdFromContext(c.Request.Context())
		if !ok || userId == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		user, err := models.GetUser(c.Request.Context(), userId)
		respond(c, user, err)
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func changePasswordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req changePasswordRequest
		if !bindJSON(c, &req) {
			return
		}
		_, err := models.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

/* properties */

type propertyResponse struct {
	*models.Property
	InspectionDueState models.DueState `json:"inspection_due_state"`
}

func withDueState(property *models.Property, now time.Time) propertyResponse {
	return propertyResponse{
		Property: property,
		InspectionDueState: models.InspectionDueState(
			property.NextInspectionDate, property.PendingFollowUpCount(), now),
	}
}

func listPropertiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		properties, err := models.GetAllProperties(c.Request.Context())
		if err != nil {
			respond(c, nil, err)
			return
		}
		now := time.Now()
		out := make([]propertyResponse, 0, len(properties))
		for _, property := range properties {
			out = append(out, withDueState(property, now))
		}
		c.JSON(http.StatusOK, out)
	}
}

func createPropertyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewProperty
		if !bindJSON(c, &input) {
			return
		}
		property, err := models.CreateProperty(c.Request.Context(), &input)
		respond(c, property, err)
	}
}

func getPropertyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		property, err := models.GetProperty(c.Request.Context(), id)
		if err != nil {
			respond(c, nil, err)
			return
		}
		c.JSON(http.StatusOK, withDueState(property, time.Now()))
	}
}

func updatePropertyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		var input models.NewProperty
		if !bindJSON(c, &input) {
			return
		}
		property, err := models.UpdateProperty(c.Request.Context(), id, &input)
		respond(c, property, err)
	}
}

func completeInspectionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		property, err := models.CompleteInspection(c.Request.Context(), id, time.Now())
		respond(c, property, err)
	}
}

func addFollowUpHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		var input models.NewFollowUp
		if !bindJSON(c, &input) {
			return
		}
		followUp, err := models.AddFollowUp(c.Request.Context(), id, &input)
		respond(c, followUp, err)
	}
}

func toggleFollowUpHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		fid, ok := pathId(c, "fid")
		if !ok {
			return
		}
		followUp, err := models.ToggleFollowUp(c.Request.Context(), id, fid)
		respond(c, followUp, err)
	}
}

func removeFollowUpHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		fid, ok := pathId(c, "fid")
		if !ok {
			return
		}
		err := models.RemoveFollowUp(c.Request.Context(), id, fid)
		respond(c, gin.H{"success": true}, err)
	}
}

/* maintenance */

func listMaintenanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := models.GetAllMaintenanceTasks(c.Request.Context())
		respond(c, tasks, err)
	}
}

func createMaintenanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewMaintenanceTask
		if !bindJSON(c, &input) {
			return
		}
		task, err := models.CreateMaintenanceTask(c.Request.Context(), &input)
		respond(c, task, err)
	}
}

type maintenanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateMaintenanceStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		var req maintenanceStatusRequest
		if !bindJSON(c, &req) {
			return
		}
		task, err := models.UpdateMaintenanceStatus(c.Request.Context(), id, models.MaintenanceStatus(req.Status))
		respond(c, task, err)
	}
}

/* calendar */

func listCalendarHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := models.GetAllCalendarEvents(c.Request.Context())
		respond(c, events, err)
	}
}

func createCalendarEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewCalendarEvent
		if !bindJSON(c, &input) {
			return
		}
		event, err := models.CreateCalendarEvent(c.Request.Context(), &input)
		respond(c, event, err)
	}
}

func checkOutEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathId(c, "id")
		if !ok {
			return
		}
		event, err := models.CheckOutEvent(c.Request.Context(), id)
		respond(c, event, err)
	}
}

/* logbook */

func listLogbookHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := models.GetLogbookLedger(c.Request.Context())
		respond(c, entries, err)
	}
}

func createLogbookEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewLogbookEntry
		if !bindJSON(c, &input) {
			return
		}
		entry, err := models.CreateLogbookEntry(c.Request.Context(), &input)
		respond(c, entry, err)
	}
}

func proposeTripHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger, err := models.GetLogbookLedger(c.Request.Context())
		if err != nil {
			respond(c, nil, err)
			return
		}
		startOdo, endOdo := models.ProposeTrip(ledger)
		c.JSON(http.StatusOK, gin.H{"start_odo": startOdo, "end_odo": endOdo})
	}
}

func exportLogbookCSVHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		csv, filename, err := reports.ExportLogbookCSV(c.Request.Context())
		if err != nil {
			respond(c, nil, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv", []byte(csv))
	}
}

func exportLogbookXLSXHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := reports.ExportLogbookXLSX(c.Request.Context())
		if err != nil {
			respond(c, nil, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=Logbook_Export.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}

/* dashboard */

func portfolioStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := reports.GetPortfolioStats(c.Request.Context())
		respond(c, stats, err)
	}
}

func logbookStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := reports.GetLogbookStats(c.Request.Context())
		respond(c, stats, err)
	}
}

/* billing integration */

func billingStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		connection, err := models.GetBillingConnection(c.Request.Context())
		if err != nil {
			respond(c, nil, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   connection.Status,
			"provider": connection.Provider,
			"settings": connection.DecodeBillingSettings(),
		})
	}
}

func billingConnectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ConnectBillingInput
		if !bindJSON(c, &input) {
			return
		}
		connection, err := models.ConnectBilling(c.Request.Context(), &input)
		respond(c, connection, err)
	}
}

func billingDisconnectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		connection, err := models.DisconnectBilling(c.Request.Context())
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": true})
				return
			}
			respond(c, nil, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": connection.Status})
	}
}
