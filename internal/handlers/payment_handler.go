package handlers

import (
	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) List(c *gin.Context) {
	methods, err := h.paymentService.GetAllMethods()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", methods)
}

type paymentMethodRequest struct {
	Label string `json:"label" binding:"required,min=2,max=100"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	method, err := h.paymentService.CreateMethod(req.Label)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment method created", method)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req paymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.paymentService.UpdateMethod(id, req.Label); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment method updated", nil)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.paymentService.DeleteMethod(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment method deleted", nil)
}

type paymentDetailRequest struct {
	AccountNumber string `json:"account_number"`
	PayeeName     string `json:"payee_name"`
	LogoBase64    string `json:"logo_base64"`
}

func (h *PaymentHandler) AddDetail(c *gin.Context) {
	methodID, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req paymentDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.paymentService.AddDetail(c.Request.Context(), methodID, req.AccountNumber, req.PayeeName, req.LogoBase64); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment detail added", nil)
}

func (h *PaymentHandler) UpdateDetail(c *gin.Context) {
	detailID, err := parseID(c, "detail_id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req paymentDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.paymentService.UpdateDetail(c.Request.Context(), detailID, req.AccountNumber, req.PayeeName, req.LogoBase64); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment detail updated", nil)
}

func (h *PaymentHandler) DeleteDetail(c *gin.Context) {
	detailID, err := parseID(c, "detail_id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.paymentService.DeleteDetail(detailID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment detail deleted", nil)
}
