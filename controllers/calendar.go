package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/middleware"
	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

// Event is the calendar feed entry consumed by the FullCalendar view.
type Event struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	ExpertID          uint      `json:"uzman_id"`
	CustomerID        uint      `json:"musteri_id"`
	StatusID          *uint     `json:"status_id"`
	CustomerFirstName string    `json:"musteri_ad"`
	CustomerLastName  string    `json:"musteri_soyad"`
	ExpertFirstName   string    `json:"uzman_ad"`
	Description       string    `json:"description"`
	Color             string    `json:"color"`
}

type eventRow struct {
	ID                uint
	StartTime         time.Time
	EndTime           time.Time
	Description       string
	ExpertID          uint
	CustomerID        uint
	CustomerFirstName string
	CustomerLastName  string
	ExpertFirstName   string
	StatusID          *uint
}

// statusColor maps the observed status codes onto the calendar palette:
// 0 pending blue, 1 confirmed green, 2 done gray, 3 other orange,
// 9 cancelled red. Anything else falls back to blue.
func statusColor(statusID *uint) string {
	if statusID == nil {
		return "#3788d8"
	}
	switch *statusID {
	case 0:
		return "#3788d8"
	case 1:
		return "#52b21f"
	case 2:
		return "#595654"
	case 3:
		return "#de8b44"
	case 9:
		return "red"
	default:
		return "#3788d8"
	}
}

// eventTitle renders the original calendar label: end time, expert first
// name, customer name, description.
func eventTitle(end time.Time, expertFirstName, customerFirstName, customerLastName, description string) string {
	return fmt.Sprintf(" - %s  %s %s %s %s",
		end.Format("15:04"), expertFirstName, customerFirstName, customerLastName, description)
}

// GetEvents returns the non-deleted todos joined with expert and customer
// names, color-coded by status. A plain user only sees todos they are the
// expert on; status_id narrows the feed when given.
func GetEvents(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := middleware.CurrentIdentity(c)

		query := gdb.Table("todos").
			Select(`todos.id, todos.start_time, todos.end_time, todos.description,
				todos.uzman_id AS expert_id, customers.id AS customer_id,
				customers.ad AS customer_first_name, customers.soyad AS customer_last_name,
				users.ad AS expert_first_name, todos.status_id`).
			Joins("JOIN users ON users.id = todos.uzman_id").
			Joins("JOIN customers ON customers.id = todos.musteri_id").
			Where("todos.is_delete = ?", false).
			Order("todos.id")

		if identity.Role == auth.RoleUser {
			query = query.Where("todos.uzman_id = ?", identity.ID)
		}
		if statusID := c.Query("status_id"); statusID != "" {
			query = query.Where("todos.status_id = ?", statusID)
		}

		var rows []eventRow
		if err := query.Scan(&rows).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch events",
				Error:   err.Error(),
			})
		}

		events := make([]Event, 0, len(rows))
		for _, row := range rows {
			events = append(events, Event{
				ID:                row.ID,
				Title:             eventTitle(row.EndTime, row.ExpertFirstName, row.CustomerFirstName, row.CustomerLastName, row.Description),
				Start:             row.StartTime,
				End:               row.EndTime,
				ExpertID:          row.ExpertID,
				CustomerID:        row.CustomerID,
				StatusID:          row.StatusID,
				CustomerFirstName: row.CustomerFirstName,
				CustomerLastName:  row.CustomerLastName,
				ExpertFirstName:   row.ExpertFirstName,
				Description:       row.Description,
				Color:             statusColor(row.StatusID),
			})
		}

		return c.JSON(events)
	}
}

// CreateEvent adds an appointment from the calendar view, applying the
// view's form defaults when the optional references are omitted.
func CreateEvent(gdb *gorm.DB) fiber.Handler {
	type eventInput struct {
		Description string `json:"description" validate:"required"`
		StartTime   string `json:"start_time" validate:"required"`
		EndTime     string `json:"end_time" validate:"required"`
		ExpertID    uint   `json:"uzman_id" validate:"required"`
		SecretaryID *uint  `json:"sekreter_id"`
		CustomerID  uint   `json:"musteri_id" validate:"required"`
		ChargeID    *uint  `json:"charge_id"`
		StatusID    *uint  `json:"status_id"`
	}

	return func(c *fiber.Ctx) error {
		input := new(eventInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Failed to parse request body",
				Error:   err.Error(),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "validation_failed",
				Error:   err.Error(),
			})
		}

		start, err := time.Parse(timeLayout, input.StartTime)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "validation_failed",
				Error:   "start_time and end_time must use format " + timeLayout,
			})
		}
		end, err := time.Parse(timeLayout, input.EndTime)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "validation_failed",
				Error:   "start_time and end_time must use format " + timeLayout,
			})
		}

		// Form defaults from the calendar view.
		secretaryID := uint(3)
		if input.SecretaryID != nil {
			secretaryID = *input.SecretaryID
		}

		todo := models.Todo{
			Description: input.Description,
			StartTime:   start,
			EndTime:     end,
			ExpertID:    input.ExpertID,
			SecretaryID: secretaryID,
			CustomerID:  input.CustomerID,
			ChargeID:    input.ChargeID,
			StatusID:    input.StatusID,
		}

		if err := gdb.Create(&todo).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
					Message: "validation_failed",
					Error:   "Referenced user, customer, charge or status does not exist",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create event",
				Error:   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(todo)
	}
}

// DeleteEvent removes the appointment physically, matching the calendar
// view's delete (the todo list view soft-deletes instead).
func DeleteEvent(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var todo models.Todo
		if err := gdb.First(&todo, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Event not found",
				Error:   err.Error(),
			})
		}
		if err := gdb.Delete(&todo).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete event",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Event deleted"})
	}
}
