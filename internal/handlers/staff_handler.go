package handlers

import (
	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffService    services.StaffService
	customerService services.CustomerService
}

func NewStaffHandler(staffService services.StaffService, customerService services.CustomerService) *StaffHandler {
	return &StaffHandler{staffService: staffService, customerService: customerService}
}

func (h *StaffHandler) List(c *gin.Context) {
	users, err := h.staffService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", users)
}

func (h *StaffHandler) ListCouriers(c *gin.Context) {
	couriers, err := h.staffService.GetCouriers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", couriers)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var input services.CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	staff, err := h.staffService.CreateStaff(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "staff user created", staff)
}

type updateStaffRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=30"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req updateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	staff, err := h.staffService.UpdateStaff(id, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "staff user updated", staff)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.staffService.DeleteStaff(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "staff user deleted", nil)
}

func (h *StaffHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", customers)
}
