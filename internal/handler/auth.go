package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
