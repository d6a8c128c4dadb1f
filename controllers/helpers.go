package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefronthq/storefront/backend/auth"
	"github.com/storefronthq/storefront/backend/middleware"
	"github.com/storefronthq/storefront/backend/models"
)

// renderError maps a storage-layer failure onto a response. Domain
// errors carry their own status; anything else is a 500.
func renderError(c *gin.Context, err error) {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.HTTPStatus(), gin.H{"error": domainErr.Message})
		return
	}
	slog.Error("unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// requireActor fetches the resolved actor or fails the request. The
// auth middleware always sets it; a miss means the route is wired
// without authentication.
func requireActor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return auth.Actor{}, false
	}
	return actor, true
}

// authorize consults the evaluator and renders the denial if the
// decision goes against the actor.
func authorize(c *gin.Context, actor auth.Actor, action auth.Action, resource auth.Resource) bool {
	decision := auth.Evaluate(actor, action, resource)
	if !decision.Allowed() {
		slog.Warn("authorization denied", "userId", actor.Id, "action", action, "resource", resource.Kind, "reason", decision.Reason)
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return false
	}
	return true
}
