package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/repositories"
	"github.com/ctkevents/evm_backend/utils"
)

// AuthController contains authentication logic
type AuthController struct {
	DB       *mongo.Client
	userRepo *repositories.UserRepository
	logger   *log.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client, userRepo *repositories.UserRepository) *AuthController {
	return &AuthController{
		DB:       db,
		userRepo: userRepo,
		logger:   log.New(os.Stdout, "[AUTH] ", log.LstdFlags),
	}
}

// Signup registers a new user. Duplicate usernames are rejected before
// duplicate emails.
func (ac *AuthController) Signup(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All fields are required",
		})
	}

	email, err := utils.SanitizeEmail(req.UserEmail)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}
	req.UserEmail = email

	ac.logger.Printf("Signup attempted with the email: %s", req.UserEmail)

	if _, err := ac.userRepo.FindByUsername(ctx, req.UserName); err == nil {
		ac.logger.Printf("Username already exists: %s", req.UserName)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Username already exists",
		})
	} else if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if _, err := ac.userRepo.FindByEmail(ctx, req.UserEmail); err == nil {
		ac.logger.Printf("Email already exists: %s", req.UserEmail)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email already registered",
		})
	} else if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to hash password",
		})
	}

	user := models.User{
		ID:          primitive.NewObjectID(),
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		Password:    string(hashedPassword),
		PhoneNumber: req.PhoneNumber,
		IsAdmin:     req.IsAdmin,
	}

	if err := ac.userRepo.Create(ctx, &user); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create user",
		})
	}

	utils.SendWelcomeNotification(ac.DB, user.ID)

	ac.logger.Printf("New user created with the email: %s and username: %s", user.UserEmail, user.UserName)

	user.Password = ""
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "User created successfully",
		Data:    user,
	})
}

// Login verifies credentials and issues a session token
func (ac *AuthController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.UserEmail == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	ac.logger.Printf("Login attempted with the email: %s", req.UserEmail)

	user, err := ac.userRepo.FindByEmail(ctx, req.UserEmail)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		ac.logger.Printf("Incorrect password for user: %s", req.UserEmail)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid password",
		})
	}

	token, err := middleware.GenerateJWT(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	ac.logger.Printf("Login successful for user: %s", req.UserEmail)

	user.Password = ""
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: map[string]interface{}{
			"user":  user,
			"token": token,
		},
	})
}

// Logout blacklists the presented token until its natural expiry
func (ac *AuthController) Logout(c echo.Context) error {
	token := middleware.ExtractBearerToken(c)
	if token != "" {
		claims := middleware.GetUserFromToken(c)
		expiry := time.Now().Add(middleware.TokenExpirySeconds * time.Second)
		if claims != nil && claims.ExpiresAt > 0 {
			expiry = time.Unix(claims.ExpiresAt, 0)
		}
		middleware.BlacklistToken(token, expiry)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
	})
}

// CheckAuth is a lightweight probe for a valid, non-blacklisted token. The
// JWT middleware has already rejected anything invalid by the time this runs.
func (ac *AuthController) CheckAuth(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Authenticated",
		Data: map[string]interface{}{
			"id":      claims.UserID,
			"isAdmin": claims.IsAdmin,
		},
	})
}

// AuthMe returns the authenticated user's profile
func (ac *AuthController) AuthMe(c echo.Context) error {
	user, err := utils.GetUserFromToken(c, ac.DB)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "user exists",
		Data:    user,
	})
}
