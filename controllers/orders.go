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

type OrderCreateRequest struct {
	OrderNumber int  `json:"order_number" binding:"required"`
	ProductID   uint `json:"product_id" binding:"required"`
	CustomerID  uint `json:"customer_id" binding:"required"`
}

type OrderUpdateRequest struct {
	OrderNumber *int    `json:"order_number"`
	ProductID   *uint   `json:"product_id"`
	CustomerID  *uint   `json:"customer_id"`
	Status      *string `json:"status"`
}

func ListOrders(c *gin.Context) {
	orders, err := models.DB.GetOrders(cast.ToInt(c.Query("skip")), cast.ToInt(c.DefaultQuery("limit", "100")))
	if err != nil {
		renderError(c, err)
		return
	}
	response := lo.Map(orders, func(o models.Order, _ int) interface{} {
		return o.MapToJsonStruct()
	})
	c.JSON(http.StatusOK, response)
}

func GetOrder(c *gin.Context) {
	order, err := models.DB.GetOrder(cast.ToUint(c.Param("order_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order.MapToJsonStruct())
}

func CreateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var request OrderCreateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding order create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	if !authorize(c, actor, auth.ActionCreate, auth.Resource{Kind: auth.ResourceOrder}) {
		return
	}

	order, err := models.DB.CreateOrder(request.OrderNumber, request.ProductID, request.CustomerID, actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order.MapToJsonStruct())
}

func UpdateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionUpdate, auth.Resource{Kind: auth.ResourceOrder}) {
		return
	}

	var request OrderUpdateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding order update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	patch := models.OrderPatch{
		OrderNumber: request.OrderNumber,
		ProductID:   request.ProductID,
		CustomerID:  request.CustomerID,
	}
	if request.Status != nil {
		status := models.OrderStatus(*request.Status)
		patch.Status = &status
	}

	order, err := models.DB.UpdateOrder(cast.ToUint(c.Param("order_id")), patch, actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order.MapToJsonStruct())
}

func ApproveOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionApprove, auth.Resource{Kind: auth.ResourceOrder}) {
		return
	}

	order, err := models.DB.ApproveOrder(cast.ToUint(c.Param("order_id")), actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order.MapToJsonStruct())
}

func CancelOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionCancel, auth.Resource{Kind: auth.ResourceOrder}) {
		return
	}

	order, err := models.DB.CancelOrder(cast.ToUint(c.Param("order_id")), actor.Id)
	if err != nil {
		renderError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order.MapToJsonStruct())
}

func DeleteOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !authorize(c, actor, auth.ActionDelete, auth.Resource{Kind: auth.ResourceOrder}) {
		return
	}

	deleted, err := models.DB.DeleteOrder(cast.ToUint(c.Param("order_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Order deleted"})
}
