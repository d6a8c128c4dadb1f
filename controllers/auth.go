package controllers

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefronthq/storefront/backend/config"
	"github.com/storefronthq/storefront/backend/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an HS256 JWT carrying the
// user's email as the subject. Actor resolution happens per request in
// the bearer middleware, so the token itself carries no role claims.
func Login(c *gin.Context) {
	var request LoginRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding login request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	user, err := models.DB.GetUserByEmail(request.Email)
	if err != nil {
		renderError(c, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("no JWT_SECRET environment variable provided")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occurred while reading signing key"})
		return
	}

	expiry := time.Now().Add(time.Duration(config.GetTokenExpiryMinutes()) * time.Minute)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Email,
		"exp": expiry.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		slog.Error("error signing token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error issuing token"})
		return
	}

	slog.Info("user logged in", "userId", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "bearer",
		"data":         user.MapToJsonStruct(),
	})
}
