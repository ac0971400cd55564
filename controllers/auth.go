package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	redislib "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/middleware"
	"github.com/doganzub/calendar-app/models"
	"github.com/doganzub/calendar-app/utils"
)

var validate = validator.New()

const otpTTL = 10 * time.Minute

func otpKey(email string) string {
	return "otp:" + email
}

// Login verifies credentials and sets the session cookie. Tokens last an
// hour; an unknown username and a wrong password are indistinguishable to
// the caller.
func Login(gdb *gorm.DB, ts *auth.TokenService) fiber.Handler {
	type LoginInput struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	return func(c *fiber.Ctx) error {
		input := new(LoginInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		}

		var user models.User
		if gdb.Where("username = ?", input.Username).First(&user).RowsAffected == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Incorrect Username or Password",
			})
		}

		if !auth.VerifyPassword(input.Password, user.Password) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Incorrect Username or Password",
			})
		}

		token, err := ts.Issue(user.ID, user.Username, auth.ParseRole(user.Role))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Expires:  time.Now().Add(ts.TTL()),
			HTTPOnly: true,
		})

		return c.JSON(fiber.Map{
			"user": fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"role":     user.Role,
			},
		})
	}
}

// Logout clears the session cookie. The issued token itself stays valid
// until its natural expiry; there is no server-side denylist.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
		return c.JSON(fiber.Map{
			"message": "Logout Successful",
		})
	}
}

// Me returns the profile behind the current session.
func Me(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := middleware.CurrentIdentity(c)

		var user models.User
		if err := gdb.First(&user, identity.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.JSON(user)
	}
}

// Register creates a staff account. Admin only. A duplicate username or
// email, or a failed password confirmation, rejects the request without
// writing a row. The new account is activated immediately.
func Register(gdb *gorm.DB) fiber.Handler {
	type RegisterInput struct {
		Email       string `json:"email" validate:"required,email"`
		Username    string `json:"username" validate:"required"`
		NationalID  int    `json:"tc"`
		FirstName   string `json:"ad" validate:"required"`
		LastName    string `json:"soyad" validate:"required"`
		Phone       string `json:"telno"`
		Password    string `json:"password" validate:"required,min=6"`
		Password2   string `json:"password2" validate:"required"`
		Role        string `json:"role" validate:"required"`
		Owner       bool   `json:"owner"`
		IsExpert    bool   `json:"uzman"`
		IsSecretary bool   `json:"sekreter"`
	}

	return func(c *fiber.Ctx) error {
		input := new(RegisterInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		}

		if input.Password != input.Password2 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": "Invalid registration request",
			})
		}

		var count int64
		gdb.Model(&models.User{}).
			Where("username = ? OR email = ?", input.Username, input.Email).
			Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": "Invalid registration request",
			})
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}

		user := models.User{
			Email:       input.Email,
			Username:    input.Username,
			NationalID:  input.NationalID,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Phone:       input.Phone,
			Password:    hashed,
			Role:        string(auth.ParseRole(input.Role)),
			Owner:       input.Owner,
			IsExpert:    input.IsExpert,
			IsSecretary: input.IsSecretary,
			IsActive:    true,
		}

		if err := gdb.Create(&user).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrDuplicate) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
					"error":   "validation_failed",
					"message": "Invalid registration request",
				})
			}
			log.Printf("Error creating user: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create user",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// ChangePassword verifies the old password before hashing and storing the
// new one.
func ChangePassword(gdb *gorm.DB) fiber.Handler {
	type PasswordInput struct {
		Username    string `json:"username" validate:"required"`
		Password    string `json:"password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	return func(c *fiber.Ctx) error {
		input := new(PasswordInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		}

		var user models.User
		found := gdb.Where("username = ?", input.Username).First(&user).RowsAffected > 0
		if !found || !auth.VerifyPassword(input.Password, user.Password) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": "Invalid username or password",
			})
		}

		hashed, err := auth.HashPassword(input.NewPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}

		if err := gdb.Model(&user).Update("hashed_password", hashed).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update password",
			})
		}

		return c.JSON(fiber.Map{
			"message": "Password updated",
		})
	}
}

// ForgotPassword mails a one-time code and parks it in redis for ten
// minutes. The response never reveals whether the address exists.
func ForgotPassword(gdb *gorm.DB, rdb *redislib.Client, mailer *utils.Mailer) fiber.Handler {
	type ForgotInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	return func(c *fiber.Ctx) error {
		input := new(ForgotInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		}

		var user models.User
		if gdb.Where("email = ? AND is_delete = false", input.Email).First(&user).RowsAffected > 0 {
			otp := utils.GenerateOTP()
			if err := rdb.Set(c.Context(), otpKey(input.Email), otp, otpTTL).Err(); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to store reset code",
				})
			}

			body := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>. It expires in 10 minutes.</p>", otp)
			if err := mailer.Send(input.Email, "Password Reset Code", body); err != nil {
				log.Printf("Failed to send reset mail to %s: %v", input.Email, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to send reset code",
				})
			}
		}

		return c.JSON(fiber.Map{
			"message": "If the address exists, a reset code has been sent",
		})
	}
}

// ResetPassword exchanges a valid one-time code for a new password.
func ResetPassword(gdb *gorm.DB, rdb *redislib.Client) fiber.Handler {
	type ResetInput struct {
		Email       string `json:"email" validate:"required,email"`
		OTP         string `json:"otp" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	return func(c *fiber.Ctx) error {
		input := new(ResetInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		}

		stored, err := rdb.Get(c.Context(), otpKey(input.Email)).Result()
		if err != nil || stored != input.OTP {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": "Invalid or expired reset code",
			})
		}

		var user models.User
		if gdb.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": "Invalid or expired reset code",
			})
		}

		hashed, err := auth.HashPassword(input.NewPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}

		if err := gdb.Model(&user).Update("hashed_password", hashed).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update password",
			})
		}

		rdb.Del(c.Context(), otpKey(input.Email))

		return c.JSON(fiber.Map{
			"message": "Password updated",
		})
	}
}

// ListUsers returns every user row, including soft-deleted ones. Admin only.
func ListUsers(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := gdb.Find(&users).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch users",
				Error:   err.Error(),
			})
		}
		return c.JSON(users)
	}
}

// GetUser returns one user by id. Admin only.
func GetUser(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := gdb.First(&user, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "User not found",
				Error:   err.Error(),
			})
		}
		return c.JSON(user)
	}
}

// UpdateUser replaces a user's editable fields, rehashing the supplied
// password. Editing clears the soft-delete flag. Admin only.
func UpdateUser(gdb *gorm.DB) fiber.Handler {
	type UpdateInput struct {
		NationalID  int    `json:"tc"`
		FirstName   string `json:"ad" validate:"required"`
		LastName    string `json:"soyad" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Phone       string `json:"telno"`
		Password    string `json:"password" validate:"required,min=6"`
		Role        string `json:"role" validate:"required"`
		Owner       bool   `json:"owner"`
		IsExpert    bool   `json:"uzman"`
		IsSecretary bool   `json:"sekreter"`
		IsActive    bool   `json:"is_active"`
	}

	return func(c *fiber.Ctx) error {
		input := new(UpdateInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		}

		var user models.User
		if err := gdb.First(&user, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}

		user.NationalID = input.NationalID
		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Email = input.Email
		user.Phone = input.Phone
		user.Password = hashed
		user.Role = string(auth.ParseRole(input.Role))
		user.Owner = input.Owner
		user.IsExpert = input.IsExpert
		user.IsSecretary = input.IsSecretary
		user.IsActive = input.IsActive
		user.IsDeleted = false

		if err := gdb.Save(&user).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrDuplicate) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
					"error":   "validation_failed",
					"message": "Email already in use",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update user",
			})
		}

		return c.JSON(user)
	}
}

// SoftDeleteUser marks a user deleted, keeping the row for referential
// history. Admin only.
func SoftDeleteUser(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := gdb.Model(&models.User{}).
			Where("id = ?", c.Params("id")).
			Update("is_delete", true)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete user",
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.JSON(fiber.Map{
			"message": "User deleted",
		})
	}
}

// HardDeleteUser removes the row physically. The database rejects it while
// any todo still references the user as expert or secretary. Admin only.
func HardDeleteUser(gdb *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := gdb.First(&user, c.Params("id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		if err := gdb.Delete(&user).Error; err != nil {
			if errors.Is(db.ClassifyError(err), db.ErrReferenced) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":   "constraint_violation",
					"message": "User is still referenced by todos",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete user",
			})
		}

		return c.JSON(fiber.Map{
			"message": "User permanently deleted",
		})
	}
}
