package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefronthq/storefront/backend/models"
)

type UserCreateRequest struct {
	Email       string `json:"email" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

func ListUsers(c *gin.Context) {
	users, err := models.DB.GetUsers(cast.ToInt(c.Query("skip")), cast.ToInt(c.DefaultQuery("limit", "100")))
	if err != nil {
		renderError(c, err)
		return
	}
	response := lo.Map(users, func(u models.User, _ int) interface{} {
		return u.MapToJsonStruct()
	})
	c.JSON(http.StatusOK, response)
}

func CreateUser(c *gin.Context) {
	var request UserCreateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding user create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("error hashing password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	user, err := models.DB.CreateUser(request.Email, request.FirstName, request.LastName, request.PhoneNumber, string(hashed))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.MapToJsonStruct())
}

func GetUser(c *gin.Context) {
	user, err := models.DB.GetUser(cast.ToUint(c.Param("user_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user.MapToJsonStruct())
}

func GetCurrentUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := models.DB.GetUser(actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user.MapToJsonStruct())
}
