package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/storefronthq/storefront/backend/auth"
	"github.com/storefronthq/storefront/backend/models"
)

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func ListCategories(c *gin.Context) {
	categories, err := models.DB.GetCategories(cast.ToInt(c.Query("skip")), cast.ToInt(c.DefaultQuery("limit", "100")))
	if err != nil {
		renderError(c, err)
		return
	}
	response := lo.Map(categories, func(cat models.Category, _ int) interface{} {
		return cat.MapToJsonStruct()
	})
	c.JSON(http.StatusOK, response)
}

func GetCategory(c *gin.Context) {
	category, err := models.DB.GetCategory(cast.ToUint(c.Param("category_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category.MapToJsonStruct())
}

func CreateCategory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionCreate, auth.Resource{Kind: auth.ResourceCategory}) {
		return
	}

	var request CategoryCreateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding category create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	category, err := models.DB.CreateCategory(request.Name, request.Description, actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, category.MapToJsonStruct())
}

func UpdateCategory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionUpdate, auth.Resource{Kind: auth.ResourceCategory}) {
		return
	}

	var request CategoryUpdateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding category update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	category, err := models.DB.UpdateCategory(cast.ToUint(c.Param("category_id")), models.CategoryPatch{
		Name:        request.Name,
		Description: request.Description,
	}, actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category.MapToJsonStruct())
}

func DeleteCategory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionDelete, auth.Resource{Kind: auth.ResourceCategory}) {
		return
	}

	deleted, err := models.DB.DeleteCategory(cast.ToUint(c.Param("category_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Category deleted"})
}
