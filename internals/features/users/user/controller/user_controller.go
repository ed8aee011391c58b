package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"naviplan_backend/internals/configs"
	userDTO "naviplan_backend/internals/features/users/user/dto"
	userModel "naviplan_backend/internals/features/users/user/model"
	helper "naviplan_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// POST /api/auth/register
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Failed to hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hash),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	}); err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] Failed to register user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonCreated(c, "User registered successfully", userDTO.NewUserResponse(user))
}

// POST /api/auth/login
func (ctrl *UserController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).Where("user_email = ?", req.UserEmail).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama dengan password salah — jangan bocorkan email terdaftar
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] Failed to fetch user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if configs.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Failed to sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return helper.JsonOK(c, "Login successful", userDTO.LoginResponse{
		Token: token,
		User:  userDTO.NewUserResponse(user),
	})
}
