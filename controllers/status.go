package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

type statusInput struct {
	Name     string `json:"status_name" validate:"required"`
	IsActive bool   `json:"is_active"`
}

// GetAllStatuses returns every status row.
func GetAllStatuses(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var statuses []models.Status
		if err := gdb.Find(&statuses).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch statuses",
				Error:   err.Error(),
			})
		}
		return c.JSON(statuses)
	}
}

// CreateStatus adds a lookup row. No transition rules apply between statuses.
func CreateStatus(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(statusInput)
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

		status := models.Status{Name: input.Name, IsActive: input.IsActive}
		if err := gdb.Create(&status).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create status",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(status)
	}
}

// UpdateStatus edits a lookup row.
func UpdateStatus(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(statusInput)
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

		var status models.Status
		if err := gdb.First(&status, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Status not found",
				Error:   err.Error(),
			})
		}

		status.Name = input.Name
		status.IsActive = input.IsActive
		status.IsDeleted = false

		if err := gdb.Save(&status).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update status",
				Error:   err.Error(),
			})
		}
		return c.JSON(status)
	}
}

// SoftDeleteStatus marks the status deleted.
func SoftDeleteStatus(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := gdb.Model(&models.Status{}).
			Where("id = ?", c.Params("id")).
			Update("is_delete", true)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete status",
				Error:   result.Error.Error(),
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Status not found",
				Error:   "no such status",
			})
		}
		return c.JSON(fiber.Map{"message": "Status deleted"})
	}
}

// HardDeleteStatus removes the row physically; rejected while referenced.
func HardDeleteStatus(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var status models.Status
		if err := gdb.First(&status, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Status not found",
				Error:   err.Error(),
			})
		}

		if err := gdb.Delete(&status).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":   "constraint_violation",
					"message": "Status is still referenced by todos",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete status",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Status permanently deleted"})
	}
}
