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

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *uint    `json:"category_id"`
}

func ListProducts(c *gin.Context) {
	products, err := models.DB.GetProducts(cast.ToInt(c.Query("skip")), cast.ToInt(c.DefaultQuery("limit", "100")))
	if err != nil {
		renderError(c, err)
		return
	}
	response := lo.Map(products, func(p models.Product, _ int) interface{} {
		return p.MapToJsonStruct()
	})
	c.JSON(http.StatusOK, response)
}

func GetProduct(c *gin.Context) {
	product, err := models.DB.GetProduct(cast.ToUint(c.Param("product_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product.MapToJsonStruct())
}

func CreateProduct(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionCreate, auth.Resource{Kind: auth.ResourceProduct}) {
		return
	}

	var request ProductCreateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding product create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	product, err := models.DB.CreateProduct(request.Name, request.Description, request.Price, request.CategoryID, actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, product.MapToJsonStruct())
}

func UpdateProduct(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionUpdate, auth.Resource{Kind: auth.ResourceProduct}) {
		return
	}

	var request ProductUpdateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding product update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	product, err := models.DB.UpdateProduct(cast.ToUint(c.Param("product_id")), models.ProductPatch{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		CategoryID:  request.CategoryID,
	}, actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product.MapToJsonStruct())
}

func DeleteProduct(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionDelete, auth.Resource{Kind: auth.ResourceProduct}) {
		return
	}

	deleted, err := models.DB.DeleteProduct(cast.ToUint(c.Param("product_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Product deleted"})
}
