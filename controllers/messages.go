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

type MessageCreateRequest struct {
	Body       string `json:"body" binding:"required"`
	ReceiverID uint   `json:"receiver_id" binding:"required"`
}

type MessageUpdateRequest struct {
	Body       *string `json:"body"`
	ReceiverID *uint   `json:"receiver_id"`
}

func CreateMessage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var request MessageCreateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding message create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	if !authorize(c, actor, auth.ActionCreate, auth.Resource{Kind: auth.ResourceMessage}) {
		return
	}

	message, err := models.DB.CreateMessage(request.Body, actor.Id, request.ReceiverID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, message.MapToJsonStruct())
}

// GetMessage loads first and evaluates afterwards: a missing message is
// a 404 for everyone, so an unauthorized caller cannot probe which ids
// exist.
func GetMessage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	message, err := models.DB.GetMessage(cast.ToUint(c.Param("message_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	resource := auth.Resource{Kind: auth.ResourceMessage, OwnerIds: []uint{message.SenderID, message.ReceiverID}}
	if !authorize(c, actor, auth.ActionRead, resource) {
		return
	}
	c.JSON(http.StatusOK, message.MapToJsonStruct())
}

func UpdateMessage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	message, err := models.DB.GetMessage(cast.ToUint(c.Param("message_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	// only the sender owns a message for mutation purposes
	resource := auth.Resource{Kind: auth.ResourceMessage, OwnerIds: []uint{message.SenderID}}
	if !authorize(c, actor, auth.ActionUpdate, resource) {
		return
	}

	var request MessageUpdateRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Warn("error binding message update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error binding JSON"})
		return
	}

	updated, err := models.DB.UpdateMessage(message.ID, models.MessagePatch{
		Body:       request.Body,
		ReceiverID: request.ReceiverID,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, updated.MapToJsonStruct())
}

func DeleteMessage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	message, err := models.DB.GetMessage(cast.ToUint(c.Param("message_id")))
	if err != nil {
		renderError(c, err)
		return
	}
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	resource := auth.Resource{Kind: auth.ResourceMessage, OwnerIds: []uint{message.SenderID}}
	if !authorize(c, actor, auth.ActionDelete, resource) {
		return
	}

	deleted, err := models.DB.DeleteMessage(message.ID)
	if err != nil {
		renderError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Message deleted"})
}

// ListMessages returns the actor's own mailbox; box=sent selects
// messages they sent, anything else what they received.
func ListMessages(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	skip := cast.ToInt(c.Query("skip"))
	limit := cast.ToInt(c.DefaultQuery("limit", "100"))

	var messages []models.Message
	var err error
	if c.DefaultQuery("box", "received") == "sent" {
		messages, err = models.DB.GetMessagesBySender(actor.Id, skip, limit)
	} else {
		messages, err = models.DB.GetMessagesByReceiver(actor.Id, skip, limit)
	}
	if err != nil {
		renderError(c, err)
		return
	}
	response := lo.Map(messages, func(m models.Message, _ int) interface{} {
		return m.MapToJsonStruct()
	})
	c.JSON(http.StatusOK, response)
}
