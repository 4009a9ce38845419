package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergy-dev/synergysphere/internal/auth"
	"github.com/synergy-dev/synergysphere/internal/services"
)

// Handler carries the wired dependencies for every route. It is constructed
// once in main; there is no package-level state.
type Handler struct {
	svc    *services.Service
	authn  auth.Authenticator
	hub    *Hub
	domain string
}

func New(svc *services.Service, authn auth.Authenticator, hub *Hub, domain string) *Handler {
	return &Handler{
		svc:    svc,
		authn:  authn,
		hub:    hub,
		domain: domain,
	}
}

// respondError maps domain errors onto response codes. Unexpected errors are
// logged with their detail and reported generically.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrUnauthorized):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrDuplicateEmail):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	case errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrNotMember),
		errors.Is(err, services.ErrCannotRemoveLeader):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Unexpected error handling %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
