package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/middleware"
	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

// timeLayout matches the datetime-local format the original forms submit.
const timeLayout = "2006-01-02T15:04"

type todoInput struct {
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	ExpertID    uint   `json:"uzman_id" validate:"required"`
	SecretaryID uint   `json:"sekreter_id" validate:"required"`
	CustomerID  uint   `json:"musteri_id" validate:"required"`
	ChargeID    *uint  `json:"charge_id"`
	StatusID    *uint  `json:"status_id"`
	Description string `json:"description" validate:"required"`
}

func (in *todoInput) apply(todo *models.Todo) error {
	start, err := time.Parse(timeLayout, in.StartTime)
	if err != nil {
		return err
	}
	end, err := time.Parse(timeLayout, in.EndTime)
	if err != nil {
		return err
	}

	todo.StartTime = start
	todo.EndTime = end
	todo.ExpertID = in.ExpertID
	todo.SecretaryID = in.SecretaryID
	todo.CustomerID = in.CustomerID
	todo.ChargeID = in.ChargeID
	todo.StatusID = in.StatusID
	todo.Description = in.Description
	return nil
}

// GetAllTodos lists appointments. The role tag drives row-level filtering:
// a plain user sees only the todos they are the expert on, an admin sees all.
func GetAllTodos(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := middleware.CurrentIdentity(c)

		query := gdb.Model(&models.Todo{})
		if identity.Role == auth.RoleUser {
			query = query.Where("uzman_id = ?", identity.ID)
		}

		var todos []models.Todo
		if err := query.Find(&todos).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch todos",
				Error:   err.Error(),
			})
		}
		return c.JSON(todos)
	}
}

// GetTodo returns one appointment by id.
func GetTodo(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var todo models.Todo
		if err := gdb.First(&todo, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Todo not found",
				Error:   err.Error(),
			})
		}
		return c.JSON(todo)
	}
}

// CreateTodo writes an appointment. Expert, secretary and customer must
// resolve to existing rows; the database's foreign keys are the last word,
// a dangling reference rejects the insert instead of creating an orphan.
func CreateTodo(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(todoInput)
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

		var todo models.Todo
		if err := input.apply(&todo); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "validation_failed",
				Error:   "start_time and end_time must use format " + timeLayout,
			})
		}

		if err := gdb.Create(&todo).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
					Message: "validation_failed",
					Error:   "Referenced user, customer, charge or status does not exist",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create todo",
				Error:   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(todo)
	}
}

// UpdateTodo replaces the appointment fields. Concurrent edits are last
// write wins; there is no version column.
func UpdateTodo(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(todoInput)
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

		var todo models.Todo
		if err := gdb.First(&todo, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Todo not found",
				Error:   err.Error(),
			})
		}

		if err := input.apply(&todo); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "validation_failed",
				Error:   "start_time and end_time must use format " + timeLayout,
			})
		}

		if err := gdb.Save(&todo).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
					Message: "validation_failed",
					Error:   "Referenced user, customer, charge or status does not exist",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update todo",
				Error:   err.Error(),
			})
		}

		return c.JSON(todo)
	}
}

// SoftDeleteTodo marks the appointment deleted.
func SoftDeleteTodo(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := gdb.Model(&models.Todo{}).
			Where("id = ?", c.Params("id")).
			Update("is_delete", true)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete todo",
				Error:   result.Error.Error(),
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Todo not found",
				Error:   "no such todo",
			})
		}
		return c.JSON(fiber.Map{"message": "Todo deleted"})
	}
}

// HardDeleteTodo removes the row physically. Nothing references todos, so
// this always succeeds for an existing row.
func HardDeleteTodo(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var todo models.Todo
		if err := gdb.First(&todo, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Todo not found",
				Error:   err.Error(),
			})
		}
		if err := gdb.Delete(&todo).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete todo",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Todo permanently deleted"})
	}
}
