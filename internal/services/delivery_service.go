package services

import (
	"context"
	"errors"

	"mangan/internal/models"
	"mangan/internal/repository"
	"mangan/pkg/imagestore"

	"gorm.io/gorm"
)

// CourierStats summarizes one courier's workload for their dashboard.
type CourierStats struct {
	TotalAssigned int64 `json:"total_assigned"`
	Shipping      int64 `json:"shipping"`
	Delivered     int64 `json:"delivered"`
}

type DeliveryService interface {
	// AssignCourier creates the delivery record for an order and moves the
	// order to shipping, as one transaction. At most one delivery may ever
	// exist per order.
	AssignCourier(orderID, courierID uint) (*models.Delivery, error)

	// MarkDelivered closes out a delivery: delivery status, arrival timestamp
	// and the parent order's status move together or not at all.
	MarkDelivered(ctx context.Context, deliveryID uint, proofBase64 string) error

	GetDeliveryByID(id uint) (*models.Delivery, error)
	GetDeliveriesByCourier(courierID uint) ([]models.Delivery, error)
	GetActiveDeliveriesByCourier(courierID uint) ([]models.Delivery, error)
	GetAllDeliveries() ([]models.Delivery, error)
	GetCourierStats(courierID uint) (*CourierStats, error)
}

type deliveryService struct {
	db           *gorm.DB
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	staffRepo    repository.StaffUserRepository
	images       imagestore.Uploader
}

func NewDeliveryService(
	db *gorm.DB,
	deliveryRepo repository.DeliveryRepository,
	orderRepo repository.OrderRepository,
	staffRepo repository.StaffUserRepository,
	images imagestore.Uploader,
) DeliveryService {
	return &deliveryService{
		db:           db,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		staffRepo:    staffRepo,
		images:       images,
	}
}

func (s *deliveryService) AssignCourier(orderID, courierID uint) (*models.Delivery, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderAwaitingCourier {
		return nil, &InvalidTransitionError{From: string(order.Status), To: string(models.OrderShipping)}
	}

	courier, err := s.staffRepo.GetByID(courierID)
	if err != nil {
		return nil, err
	}
	if courier.Role != models.RoleCourier {
		return nil, ErrNotCourier
	}

	if _, err := s.deliveryRepo.GetByOrderID(orderID); err == nil {
		return nil, ErrDeliveryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	delivery := &models.Delivery{
		OrderID:      orderID,
		CourierID:    courierID,
		DispatchedAt: nowFunc(),
		Status:       models.DeliveryShipping,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.deliveryRepo.WithTx(tx).Create(delivery); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(orderID, models.OrderShipping)
	})
	if err != nil {
		// The unique index on deliveries.order_id serializes two racing
		// assignments; the loser surfaces here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDeliveryExists
		}
		logger.Error().Err(err).Uint("order_id", orderID).Msg("failed to assign courier")
		return nil, err
	}

	logger.Info().
		Uint("order_id", orderID).
		Uint("courier_id", courierID).
		Uint("delivery_id", delivery.ID).
		Msg("courier assigned")
	return delivery, nil
}

func (s *deliveryService) MarkDelivered(ctx context.Context, deliveryID uint, proofBase64 string) error {
	delivery, err := s.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return err
	}
	if delivery.Status == models.DeliveryDelivered {
		return ErrOrderFinal
	}

	proofURL := delivery.DeliveryProofURL
	if imagestore.IsDataImage(proofBase64) {
		proofURL, err = s.images.Upload(ctx, proofBase64, "mangan/deliveries")
		if err != nil {
			return err
		}
	}

	arrived := nowFunc()
	delivery.Status = models.DeliveryDelivered
	delivery.ArrivedAt = &arrived
	delivery.DeliveryProofURL = proofURL
	delivery.Courier = nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.deliveryRepo.WithTx(tx).Update(delivery); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(delivery.OrderID, models.OrderDelivered)
	})
	if err != nil {
		logger.Error().Err(err).Uint("delivery_id", deliveryID).Msg("failed to mark delivered")
		return err
	}

	logger.Info().Uint("delivery_id", deliveryID).Uint("order_id", delivery.OrderID).Msg("delivery arrived")
	return nil
}

func (s *deliveryService) GetDeliveryByID(id uint) (*models.Delivery, error) {
	return s.deliveryRepo.GetByID(id)
}

func (s *deliveryService) GetDeliveriesByCourier(courierID uint) ([]models.Delivery, error) {
	return s.deliveryRepo.GetByCourierID(courierID)
}

func (s *deliveryService) GetActiveDeliveriesByCourier(courierID uint) ([]models.Delivery, error) {
	return s.deliveryRepo.GetActiveByCourierID(courierID)
}

func (s *deliveryService) GetAllDeliveries() ([]models.Delivery, error) {
	return s.deliveryRepo.GetAll()
}

func (s *deliveryService) GetCourierStats(courierID uint) (*CourierStats, error) {
	total, err := s.deliveryRepo.CountByCourier(courierID)
	if err != nil {
		return nil, err
	}
	shipping, err := s.deliveryRepo.CountByCourierAndStatus(courierID, models.DeliveryShipping)
	if err != nil {
		return nil, err
	}
	delivered, err := s.deliveryRepo.CountByCourierAndStatus(courierID, models.DeliveryDelivered)
	if err != nil {
		return nil, err
	}
	return &CourierStats{TotalAssigned: total, Shipping: shipping, Delivered: delivered}, nil
}
