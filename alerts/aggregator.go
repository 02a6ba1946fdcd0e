package alerts

import (
	"fmt"
	"time"

	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Notification is one derived alert. Ids are deterministic per source record
// and rule, so a dismissed id stays dismissed across recomputations.
type Notification struct {
	Id       string   `json:"id"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Category string   `json:"category"`
	Time     string   `json:"time"`
}

// Aggregate derives the notification list from current records. It is pure:
// no stored alert rows, every call recomputes from scratch. Emission order is
// fixed: arrears, urgent maintenance, new maintenance, vacancies, inspection
// windows, then the daily logbook reminder. Ids in dismissed are dropped last.
func Aggregate(
	properties []*models.Property,
	tasks []*models.MaintenanceTask,
	events []*models.CalendarEvent,
	dismissed map[string]bool,
	now time.Time,
) []Notification {

	var notifications []Notification
	timeLabel := now.Format("02 Jan 15:04")

	for _, property := range properties {
		if property.Status == models.PropertyStatusArrears {
			notifications = append(notifications, Notification{
				Id:       fmt.Sprintf("arr-%d", property.ID),
				Severity: SeverityCritical,
				Title:    "Rent arrears",
				Message:  fmt.Sprintf("Rent arrears at %s", property.Address),
				Category: "Arrears",
				Time:     timeLabel,
			})
		}
	}

	for _, task := range tasks {
		if task.Priority == models.MaintenancePriorityUrgent &&
			task.Status != models.MaintenanceStatusCompleted {
			notifications = append(notifications, Notification{
				Id:       fmt.Sprintf("maint-urg-%d", task.ID),
				Severity: SeverityCritical,
				Title:    "Urgent maintenance",
				Message:  fmt.Sprintf("Urgent maintenance: %s", task.Issue),
				Category: "Maintenance",
				Time:     timeLabel,
			})
		}
	}

	for _, task := range tasks {
		if task.Status == models.MaintenanceStatusNew {
			notifications = append(notifications, Notification{
				Id:       fmt.Sprintf("maint-new-%d", task.ID),
				Severity: SeverityInfo,
				Title:    "New maintenance request",
				Message:  fmt.Sprintf("New maintenance request: %s", task.Issue),
				Category: "Maintenance",
				Time:     timeLabel,
			})
		}
	}

	for _, property := range properties {
		if property.Status == models.PropertyStatusVacant {
			notifications = append(notifications, Notification{
				Id:       fmt.Sprintf("vac-%d", property.ID),
				Severity: SeverityWarning,
				Title:    "Vacant property",
				Message:  fmt.Sprintf("Vacancy at %s", property.Address),
				Category: "Vacancy",
				Time:     timeLabel,
			})
		}
	}

	// Inspection window: due-soon and overdue are mutually exclusive per
	// property since they partition on the sign of the day difference.
	for _, property := range properties {
		if property.NextInspectionDate == nil {
			continue
		}
		diffDays := utils.DaysUntil(now, *property.NextInspectionDate)
		switch {
		case diffDays < 0:
			notifications = append(notifications, Notification{
				Id:       fmt.Sprintf("insp-over-%d", property.ID),
				Severity: SeverityCritical,
				Title:    "Inspection overdue",
				Message:  fmt.Sprintf("Inspection overdue at %s", property.Address),
				Category: "Inspection",
				Time:     timeLabel,
			})
		case diffDays <= 14:
			notifications = append(notifications, Notification{
				Id:       fmt.Sprintf("insp-%d", property.ID),
				Severity: SeverityWarning,
				Title:    "Inspection due soon",
				Message:  fmt.Sprintf("Inspection at %s due in %d days", property.Address, diffDays),
				Category: "Inspection",
				Time:     timeLabel,
			})
		}
	}

	today := utils.ISODate(now)
	pending := 0
	for _, event := range events {
		if utils.ISODate(event.Date) == today && !utils.DereferencePtr(event.CheckedOut) {
			pending++
		}
	}
	if pending > 0 {
		notifications = append(notifications, Notification{
			Id:       "logbook-reminder-" + today,
			Severity: SeverityInfo,
			Title:    "Logbook reminder",
			Message:  fmt.Sprintf("%d appointments today are not checked out yet", pending),
			Category: "Logbook",
			Time:     timeLabel,
		})
	}

	if len(dismissed) == 0 {
		return notifications
	}
	visible := notifications[:0]
	for _, notification := range notifications {
		if !dismissed[notification.Id] {
			visible = append(visible, notification)
		}
	}
	return visible
}
