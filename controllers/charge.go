package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

// chargeInput takes a net amount and a tax *percentage*; the stored tax is
// the derived absolute amount.
type chargeInput struct {
	Net      decimal.Decimal `json:"net"`
	TaxRate  decimal.Decimal `json:"tax"`
	Name     string          `json:"charge_name" validate:"required"`
	IsActive bool            `json:"is_active"`
}

// GetAllCharges godoc
// @Summary Get all charges
// @Tags charges
// @Produce json
// @Success 200 {array} models.Charge
// @Failure 500 {object} utils.ErrorResponse
// @Router /charges [get]
func GetAllCharges(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var charges []models.Charge
		if err := gdb.Find(&charges).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch charges",
				Error:   err.Error(),
			})
		}
		return c.JSON(charges)
	}
}

// GetCharge godoc
// @Summary Get a charge by ID
// @Tags charges
// @Produce json
// @Param id path int true "Charge ID"
// @Success 200 {object} models.Charge
// @Failure 404 {object} utils.ErrorResponse
// @Router /charges/{id} [get]
func GetCharge(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var charge models.Charge
		if err := gdb.First(&charge, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Charge not found",
				Error:   err.Error(),
			})
		}
		return c.JSON(charge)
	}
}

// CreateCharge godoc
// @Summary Create a new charge
// @Description Derives tax and total from net and the tax percentage
// @Tags charges
// @Accept json
// @Produce json
// @Success 201 {object} models.Charge
// @Failure 422 {object} utils.ErrorResponse
// @Router /charges [post]
func CreateCharge(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(chargeInput)
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

		charge := models.Charge{
			Name:     input.Name,
			IsActive: input.IsActive,
		}
		charge.SetAmounts(input.Net, input.TaxRate)

		if err := gdb.Create(&charge).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create charge",
				Error:   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(charge)
	}
}

// UpdateCharge godoc
// @Summary Update a charge by ID
// @Tags charges
// @Accept json
// @Produce json
// @Param id path int true "Charge ID"
// @Success 200 {object} models.Charge
// @Failure 404 {object} utils.ErrorResponse
// @Router /charges/{id} [put]
func UpdateCharge(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(chargeInput)
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

		var charge models.Charge
		if err := gdb.First(&charge, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Charge not found",
				Error:   err.Error(),
			})
		}

		charge.Name = input.Name
		charge.IsActive = input.IsActive
		charge.IsDeleted = false
		charge.SetAmounts(input.Net, input.TaxRate)

		if err := gdb.Save(&charge).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update charge",
				Error:   err.Error(),
			})
		}

		return c.JSON(charge)
	}
}

// SoftDeleteCharge marks the charge deleted while todos keep referencing it.
func SoftDeleteCharge(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := gdb.Model(&models.Charge{}).
			Where("id = ?", c.Params("id")).
			Update("is_delete", true)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete charge",
				Error:   result.Error.Error(),
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Charge not found",
				Error:   "no such charge",
			})
		}
		return c.JSON(fiber.Map{"message": "Charge deleted"})
	}
}

// HardDeleteCharge removes the row physically. The foreign key on todos
// rejects the delete while any todo still references the charge.
func HardDeleteCharge(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var charge models.Charge
		if err := gdb.First(&charge, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Charge not found",
				Error:   err.Error(),
			})
		}

		if err := gdb.Delete(&charge).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":   "constraint_violation",
					"message": "Charge is still referenced by todos",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete charge",
				Error:   err.Error(),
			})
		}

		return c.JSON(fiber.Map{"message": "Charge permanently deleted"})
	}
}
