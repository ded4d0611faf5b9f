package handler

import (
	"net/http"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Valida credenciales y emite un token de acceso
// @Tags auth
// @Produce json
// @Param Username query string true "Username"
// @Param Password query string true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.Error
// @Failure 401 {object} apierror.Error
// @Router /login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Registra un nuevo usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Datos del usuario"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} apierror.Error
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
