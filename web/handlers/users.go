package handlers

import (
	"errors"
	"fmt"

	"github.com/dentalshop/database"
	"github.com/dentalshop/models"
	"github.com/dentalshop/shop"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserList returns all users for the back office.
func UserList(c *fiber.Ctx) error {
	db := database.GetDB()

	var users []models.User
	if err := db.Order("full_name").Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(users)
}

// UserView returns one user.
func UserView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	var user models.User
	err = db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(user)
}

type userRequest struct {
	FullName  string          `json:"full_name"`
	Phone     string          `json:"phone"`
	Email     *string         `json:"email"`
	Password  string          `json:"password"`
	Role      models.UserRole `json:"role"`
	Address   *string         `json:"address"`
	Apartment *string         `json:"apartment"`
	Entrance  *string         `json:"entrance"`
	Room      *string         `json:"room"`
}

func (r *userRequest) validate() error {
	if r.FullName == "" {
		return fmt.Errorf("%w: full_name is required", shop.ErrValidation)
	}
	if r.Phone == "" {
		return fmt.Errorf("%w: phone is required", shop.ErrValidation)
	}
	if r.Role != "" && r.Role != models.RoleCustomer && r.Role != models.RoleAdmin {
		return fmt.Errorf("%w: role must be CUSTOMER or ADMIN", shop.ErrValidation)
	}
	return nil
}

// UserCreate registers a user.
func UserCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", shop.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Address:      req.Address,
		Apartment:    req.Apartment,
		Entrance:     req.Entrance,
		Room:         req.Room,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UserUpdate updates profile fields; the password changes only when a new
// one is supplied.
func UserUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	var user models.User
	err = db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return err
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.Email = req.Email
	user.Address = req.Address
	user.Apartment = req.Apartment
	user.Entrance = req.Entrance
	user.Room = req.Room
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}

	if err := db.Save(&user).Error; err != nil {
		return err
	}

	return c.JSON(user)
}

// UserDelete removes a user.
func UserDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, shop.ErrNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
