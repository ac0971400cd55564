package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

// GetAllCustomers godoc
// @Summary Get all customers
// @Description Get all customers, including soft-deleted rows
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Failure 500 {object} utils.ErrorResponse
// @Router /customers [get]
func GetAllCustomers(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := gdb.Find(&customers).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch customers",
				Error:   err.Error(),
			})
		}
		return c.JSON(customers)
	}
}

// GetCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} utils.ErrorResponse
// @Router /customers/{id} [get]
func GetCustomer(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customer models.Customer
		if err := gdb.First(&customer, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Customer not found",
				Error:   err.Error(),
			})
		}
		return c.JSON(customer)
	}
}

type customerInput struct {
	NationalID int    `json:"tc"`
	FirstName  string `json:"ad" validate:"required"`
	LastName   string `json:"soyad" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"telno"`
	Info       string `json:"info"`
	Address    string `json:"address1"`
	City       string `json:"city"`
	URL        string `json:"url"`
}

// CreateCustomer godoc
// @Summary Create a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Success 201 {object} models.Customer
// @Failure 422 {object} utils.ErrorResponse
// @Router /customers [post]
func CreateCustomer(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(customerInput)
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

		customer := models.Customer{
			NationalID: input.NationalID,
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Email:      input.Email,
			Phone:      input.Phone,
			Info:       input.Info,
			Address:    input.Address,
			City:       input.City,
			URL:        input.URL,
			IsActive:   true,
		}

		if err := gdb.Create(&customer).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrDuplicate) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
					Message: "validation_failed",
					Error:   "Customer email already exists",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create customer",
				Error:   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// UpdateCustomer godoc
// @Summary Update a customer by ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} utils.ErrorResponse
// @Router /customers/{id} [put]
func UpdateCustomer(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(customerInput)
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

		var customer models.Customer
		if err := gdb.First(&customer, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Customer not found",
				Error:   err.Error(),
			})
		}

		customer.NationalID = input.NationalID
		customer.FirstName = input.FirstName
		customer.LastName = input.LastName
		customer.Email = input.Email
		customer.Phone = input.Phone
		customer.Info = input.Info
		customer.Address = input.Address
		customer.City = input.City
		customer.URL = input.URL

		if err := gdb.Save(&customer).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrDuplicate) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
					Message: "validation_failed",
					Error:   "Customer email already exists",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update customer",
				Error:   err.Error(),
			})
		}

		return c.JSON(customer)
	}
}

// SoftDeleteCustomer marks the customer deleted; todos keep their reference.
func SoftDeleteCustomer(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := gdb.Model(&models.Customer{}).
			Where("id = ?", c.Params("id")).
			Update("is_delete", true)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete customer",
				Error:   result.Error.Error(),
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Customer not found",
				Error:   "no such customer",
			})
		}
		return c.JSON(fiber.Map{"message": "Customer deleted"})
	}
}

// HardDeleteCustomer removes the row physically; rejected while todos or
// documents still reference it.
func HardDeleteCustomer(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customer models.Customer
		if err := gdb.First(&customer, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Customer not found",
				Error:   err.Error(),
			})
		}

		if err := gdb.Delete(&customer).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":   "constraint_violation",
					"message": "Customer is still referenced by todos or documents",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete customer",
				Error:   err.Error(),
			})
		}

		return c.JSON(fiber.Map{"message": "Customer permanently deleted"})
	}
}
