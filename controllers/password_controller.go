package controllers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/repositories"
	"github.com/ctkevents/evm_backend/services"
	"github.com/ctkevents/evm_backend/utils"
)

// Reset tokens carry the OTP alongside the email so the server stays stateless
// between the forget and verify steps.
const resetTokenLifetime = 5 * time.Minute

// ResetClaims is the payload of a password-reset token
type ResetClaims struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
	jwt.StandardClaims
}

// Valid implements the jwt.Claims interface
func (c ResetClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	return nil
}

// PasswordController implements the OTP-based password reset flow
type PasswordController struct {
	db       *mongo.Client
	userRepo *repositories.UserRepository
	logger   *log.Logger
}

// NewPasswordController creates a new password controller
func NewPasswordController(db *mongo.Client, userRepo *repositories.UserRepository) *PasswordController {
	return &PasswordController{
		db:       db,
		userRepo: userRepo,
		logger:   log.New(os.Stdout, "[PASSWORD] ", log.LstdFlags),
	}
}

// ForgetPassword emails a 6-digit OTP to a registered address and returns a
// short-lived token binding the OTP to the email.
func (pc *PasswordController) ForgetPassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ForgetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid email is required",
		})
	}

	email, err := utils.SanitizeEmail(req.UserEmail)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}

	if _, err := pc.userRepo.FindByEmail(ctx, email); err != nil {
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

	if err := utils.ValidateOTPAttempts(email, config.GetRedisClient()); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.Response{
			Status:  http.StatusTooManyRequests,
			Message: "Too many OTP requests. Please try again later.",
		})
	}

	otp, err := utils.GenerateOTP(6)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate OTP",
		})
	}

	claims := &ResetClaims{
		Email: email,
		OTP:   otp,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(resetTokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(middleware.GetJWTSecret()))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate reset token",
		})
	}

	if err := services.SendOTPEmail(email, otp); err != nil {
		pc.logger.Printf("Failed to send OTP email to %s: %v", utils.MaskEmail(email), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send OTP email",
		})
	}

	pc.logger.Printf("OTP sent to %s", utils.MaskEmail(email))

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP sent to your email",
		Data:    map[string]string{"token": token},
	})
}

// VerifyOTP checks an OTP against the reset token it was issued with
func (pc *PasswordController) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Token and a 6-digit OTP are required",
		})
	}

	claims, err := pc.parseResetToken(req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: resetTokenErrorMessage(err),
		})
	}

	if subtle.ConstantTimeCompare([]byte(claims.OTP), []byte(req.OTP)) != 1 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid OTP",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP verified successfully",
	})
}

// ResetPassword sets a new password after re-verifying the OTP-bearing token
func (pc *PasswordController) ResetPassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Token, OTP and a password of at least 8 characters are required",
		})
	}

	claims, err := pc.parseResetToken(req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: resetTokenErrorMessage(err),
		})
	}

	if subtle.ConstantTimeCompare([]byte(claims.OTP), []byte(req.OTP)) != 1 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid OTP",
		})
	}

	user, err := pc.userRepo.FindByEmail(ctx, claims.Email)
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

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to hash password",
		})
	}

	if err := pc.userRepo.UpdatePassword(user.ID, string(hashedPassword)); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update password",
		})
	}

	pc.logger.Printf("Password reset for %s", utils.MaskEmail(claims.Email))

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Password reset successfully",
	})
}

func (pc *PasswordController) parseResetToken(tokenString string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(middleware.GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func resetTokenErrorMessage(err error) string {
	if strings.Contains(err.Error(), "expired") {
		return "OTP expired. Please request a new one."
	}
	return "Invalid or expired token"
}
