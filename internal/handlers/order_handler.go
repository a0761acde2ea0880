package handlers

import (
	"mangan/internal/models"
	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	Items        []services.CartItem `json:"items" binding:"required"`
	PaymentLabel string              `json:"payment_label" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.orderService.CreateOrder(caller(c).ID, req.Items, req.PaymentLabel)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "order created", result)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.orderService.GetOrdersByCustomer(caller(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", orders)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Customers can only see their own orders; staff see everything.
	identity := caller(c)
	if identity.Kind == services.CallerCustomer && order.CustomerID != identity.ID {
		respondError(c, services.ErrNotOrderOwner)
		return
	}
	respondOK(c, "", order)
}

func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.orderService.GetOrderByTrackingCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", order)
}

type uploadProofRequest struct {
	ProofBase64 string `json:"proof_base64" binding:"required"`
}

func (h *OrderHandler) UploadPaymentProof(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req uploadProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.orderService.UploadPaymentProof(c.Request.Context(), id, caller(c).ID, req.ProofBase64); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "payment proof uploaded", nil)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.orderService.TransitionStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "order status updated", nil)
}

// Cancel is the customer-facing cancellation: only their own order, only
// while it awaits confirmation with no proof uploaded. The order is deleted.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.orderService.CancelByCustomer(id, caller(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "order cancelled", nil)
}
