package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

// UploadDocument stores a customer file in the upload backend and records
// its name, description, secure URL and size.
func UploadDocument(gdb *gorm.DB, uploader *utils.Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customer models.Customer
		if err := gdb.First(&customer, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Customer not found",
				Error:   err.Error(),
			})
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Missing file",
				Error:   err.Error(),
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to read file",
				Error:   err.Error(),
			})
		}
		defer file.Close()

		url, err := uploader.Upload(c.Context(), file, uuid.NewString())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to store file",
				Error:   err.Error(),
			})
		}

		document := models.Document{
			File:       fileHeader.Filename,
			Content:    c.FormValue("content"),
			Path:       url,
			Size:       int(fileHeader.Size),
			CustomerID: customer.ID,
		}

		if err := gdb.Create(&document).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save document",
				Error:   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(document)
	}
}

// ListDocuments returns the documents attached to a customer.
func ListDocuments(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var documents []models.Document
		if err := gdb.Where("customer_id = ?", c.Params("id")).Find(&documents).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch documents",
				Error:   err.Error(),
			})
		}
		return c.JSON(documents)
	}
}

// DeleteDocument removes the document record. The stored file is left to
// the upload backend's retention settings.
func DeleteDocument(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var document models.Document
		if err := gdb.First(&document, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Document not found",
				Error:   err.Error(),
			})
		}
		if err := gdb.Delete(&document).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete document",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Document deleted"})
	}
}
