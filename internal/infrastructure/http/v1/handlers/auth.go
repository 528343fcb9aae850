package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/auth"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// LoginObserver counts login outcomes.
type LoginObserver interface {
	ObserveLogin(outcome string)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service  *auth.Service
	observer LoginObserver
}

// NewAuthHandler creates a new auth handler. observer may be nil.
func NewAuthHandler(base *BaseHandler, service *auth.Service, observer LoginObserver) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
		observer:    observer,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		h.observe("failure")
		h.Error(c, err)
		return
	}
	h.observe("success")

	h.OK(c, token)
}

func (h *AuthHandler) observe(outcome string) {
	if h.observer != nil {
		h.observer.ObserveLogin(outcome)
	}
}
