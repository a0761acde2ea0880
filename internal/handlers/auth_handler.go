package handlers

import (
	"strings"

	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService     services.AuthService
	customerService services.CustomerService
}

func NewAuthHandler(authService services.AuthService, customerService services.CustomerService) *AuthHandler {
	return &AuthHandler{authService: authService, customerService: customerService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	customer, err := h.authService.RegisterCustomer(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "registration successful", customer)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, customer, err := h.authService.LoginCustomer(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", gin.H{"token": token, "customer": customer})
}

func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, staff, err := h.authService.LoginStaff(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", gin.H{"token": token, "staff": staff})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "logged out", nil)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	customer, err := h.customerService.GetByID(caller(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", customer)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input services.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	customer, err := h.customerService.UpdateProfile(c.Request.Context(), caller(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "profile updated", customer)
}
