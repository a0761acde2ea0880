package handlers

import (
	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveryService services.DeliveryService
	orderService    services.OrderService
}

func NewDeliveryHandler(deliveryService services.DeliveryService, orderService services.OrderService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService, orderService: orderService}
}

type assignCourierRequest struct {
	OrderID   uint `json:"order_id" binding:"required"`
	CourierID uint `json:"courier_id" binding:"required"`
}

func (h *DeliveryHandler) Assign(c *gin.Context) {
	var req assignCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	delivery, err := h.deliveryService.AssignCourier(req.OrderID, req.CourierID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "courier assigned", delivery)
}

type markDeliveredRequest struct {
	ProofBase64 string `json:"proof_base64"`
}

func (h *DeliveryHandler) MarkDelivered(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	// The proof photo is optional, so an empty body is fine.
	var req markDeliveredRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	if err := h.deliveryService.MarkDelivered(c.Request.Context(), id, req.ProofBase64); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "delivery completed", nil)
}

func (h *DeliveryHandler) ListAll(c *gin.Context) {
	deliveries, err := h.deliveryService.GetAllDeliveries()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", deliveries)
}

// ListMine returns the calling courier's deliveries; ?active=true narrows to
// the ones still on the road.
func (h *DeliveryHandler) ListMine(c *gin.Context) {
	courierID := caller(c).ID

	var err error
	var deliveries interface{}
	if c.Query("active") == "true" {
		deliveries, err = h.deliveryService.GetActiveDeliveriesByCourier(courierID)
	} else {
		deliveries, err = h.deliveryService.GetDeliveriesByCourier(courierID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", deliveries)
}

func (h *DeliveryHandler) MyStats(c *gin.Context) {
	stats, err := h.deliveryService.GetCourierStats(caller(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", stats)
}

// AwaitingOrders lists orders ready for dispatch with no delivery row yet.
func (h *DeliveryHandler) AwaitingOrders(c *gin.Context) {
	orders, err := h.orderService.GetAwaitingCourierOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", orders)
}
