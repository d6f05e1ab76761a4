package handlers

import (
	"errors"
	"time"

	"github.com/dentalshop/database"
	"github.com/dentalshop/models"
	"github.com/dentalshop/web/middleware"
	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login checks phone+password and issues a signed token carrying the
// user's role.
func Login(c *fiber.Ctx) error {
	db := database.GetDB()

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Phone == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "phone and password are required"})
	}

	var user models.User
	err := db.Where("phone = ?", req.Phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	claims := middleware.Claims{
		UserID: user.UserID,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(cfg.Auth.TokenTTLHours) * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token": tokenStr,
		"user":  user,
	})
}
