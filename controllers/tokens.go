package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefronthq/storefront/backend/models"
)

type IssueTokenRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Type   string `json:"type"`
}

// IssueAccessToken mints an opaque API token for a user. The route is
// gated behind RequireElevated.
func IssueAccessToken(c *gin.Context) {
	var request IssueTokenRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding token request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	tokenType := request.Type
	if tokenType == "" {
		tokenType = models.AccessTokenType
	}
	if tokenType != models.AccessTokenType && tokenType != models.AdminTokenType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token type"})
		return
	}

	user, err := models.DB.GetUser(request.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	token, err := models.DB.CreateToken(user.ID, tokenType)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token.Value, "type": token.Type})
}
