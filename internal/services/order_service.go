package services

import (
	"context"
	"os"
	"sort"
	"strings"

	"mangan/internal/models"
	"mangan/internal/repository"
	"mangan/pkg/imagestore"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CartItem is one package-and-price entry in an incoming order request. The
// subtotal is validated against the current catalog price before anything is
// persisted.
type CartItem struct {
	PackageID uint  `json:"package_id" binding:"required"`
	Subtotal  int64 `json:"subtotal" binding:"required"`
}

type CreateOrderResult struct {
	OrderID      uint   `json:"order_id"`
	TrackingCode string `json:"tracking_code"`
	TotalAmount  int64  `json:"total_amount"`
}

type OrderService interface {
	CreateOrder(customerID uint, items []CartItem, paymentLabel string) (*CreateOrderResult, error)

	GetOrderByID(id uint) (*models.Order, error)
	GetOrderByTrackingCode(code string) (*models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetAwaitingCourierOrders() ([]models.Order, error)

	UploadPaymentProof(ctx context.Context, orderID, customerID uint, proofBase64 string) error
	ConfirmPayment(orderID uint) error
	MarkReadyForCourier(orderID uint) error
	TransitionStatus(orderID uint, target models.OrderStatus) error
	CancelByCustomer(orderID, customerID uint) error
	CancelByStaff(orderID uint) error
}

type orderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	packageRepo repository.PackageRepository
	payments    PaymentService
	images      imagestore.Uploader
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	packageRepo repository.PackageRepository,
	payments PaymentService,
	images imagestore.Uploader,
) OrderService {
	return &orderService{
		db:          db,
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		payments:    payments,
		images:      images,
	}
}

func (s *orderService) CreateOrder(customerID uint, items []CartItem, paymentLabel string) (*CreateOrderResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.PackageID)
	}

	pkgs, err := s.packageRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Package, len(pkgs))
	for i := range pkgs {
		byID[pkgs[i].ID] = &pkgs[i]
	}

	var stale []uint
	for _, item := range items {
		if _, ok := byID[item.PackageID]; !ok {
			stale = append(stale, item.PackageID)
		}
	}
	if len(stale) > 0 {
		sort.Slice(stale, func(i, j int) bool { return stale[i] < stale[j] })
		return nil, &StalePackagesError{PackageIDs: stale}
	}

	var total int64
	for _, item := range items {
		pkg := byID[item.PackageID]
		if item.Subtotal != pkg.Price {
			return nil, &PriceMismatchError{PackageID: item.PackageID, Sent: item.Subtotal, Current: pkg.Price}
		}
		total += item.Subtotal
	}

	// Lookup-or-create runs outside the order transaction; an orphaned payment
	// method left behind by a later failure is harmless and reused next time.
	paymentMethodID, err := s.payments.ResolveMethod(paymentLabel)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		TrackingCode:    GenerateTrackingCode(),
		OrderedAt:       nowFunc(),
		TotalAmount:     total,
		Status:          models.OrderAwaitingConfirmation,
	}
	for _, item := range items {
		order.Lines = append(order.Lines, models.OrderLine{
			PackageID: item.PackageID,
			Subtotal:  item.Subtotal,
		})
	}

	// Order and its lines land together or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order)
	})
	if err != nil {
		logger.Error().Err(err).Uint("customer_id", customerID).Msg("failed to persist order")
		return nil, err
	}

	logger.Info().
		Uint("order_id", order.ID).
		Str("tracking_code", order.TrackingCode).
		Int64("total", total).
		Msg("order created")

	return &CreateOrderResult{
		OrderID:      order.ID,
		TrackingCode: order.TrackingCode,
		TotalAmount:  total,
	}, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrderByTrackingCode(code string) (*models.Order, error) {
	return s.orderRepo.GetByTrackingCode(code)
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetAwaitingCourierOrders() ([]models.Order, error) {
	return s.orderRepo.GetAwaitingCourier()
}

func (s *orderService) UploadPaymentProof(ctx context.Context, orderID, customerID uint, proofBase64 string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return ErrNotOrderOwner
	}
	if order.Status != models.OrderAwaitingConfirmation {
		return ErrOrderProcessed
	}

	url, err := s.images.Upload(ctx, proofBase64, "mangan/orders")
	if err != nil {
		return err
	}
	return s.orderRepo.SetPaymentProof(orderID, url)
}

// ConfirmPayment moves an order into processing once the admin has seen the
// transfer proof. Cash-on-delivery orders never carry one, so the proof check
// is skipped for them.
func (s *orderService) ConfirmPayment(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != models.OrderAwaitingConfirmation {
		return &InvalidTransitionError{From: string(order.Status), To: string(models.OrderProcessing)}
	}
	if order.PaymentProofURL == "" && !isCashOnDelivery(order.PaymentMethod) {
		return ErrProofRequired
	}
	return s.orderRepo.UpdateStatus(orderID, models.OrderProcessing)
}

func (s *orderService) MarkReadyForCourier(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(models.OrderAwaitingCourier) {
		return &InvalidTransitionError{From: string(order.Status), To: string(models.OrderAwaitingCourier)}
	}
	return s.orderRepo.UpdateStatus(orderID, models.OrderAwaitingCourier)
}

// TransitionStatus is the generic entry point used by the admin dashboard.
// Shipping and delivered are not reachable through it: those states carry
// delivery side effects and must go through AssignCourier / MarkDelivered.
func (s *orderService) TransitionStatus(orderID uint, target models.OrderStatus) error {
	switch target {
	case models.OrderProcessing:
		return s.ConfirmPayment(orderID)
	case models.OrderAwaitingCourier:
		return s.MarkReadyForCourier(orderID)
	case models.OrderCancelled:
		return s.CancelByStaff(orderID)
	default:
		order, err := s.orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		return &InvalidTransitionError{From: string(order.Status), To: string(target)}
	}
}

func (s *orderService) CancelByCustomer(orderID, customerID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return ErrNotOrderOwner
	}
	if order.Status != models.OrderAwaitingConfirmation {
		return ErrOrderProcessed
	}
	if order.PaymentProofURL != "" {
		return ErrProofAlreadySet
	}

	if err := s.orderRepo.DeleteWithLines(orderID); err != nil {
		return err
	}
	logger.Info().Uint("order_id", orderID).Uint("customer_id", customerID).Msg("order cancelled by customer")
	return nil
}

// CancelByStaff is the administrative override: no proof or ownership
// precondition, only delivered and already-cancelled orders are untouchable.
func (s *orderService) CancelByStaff(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.Status == models.OrderDelivered || order.Status == models.OrderCancelled {
		return ErrOrderFinal
	}
	return s.orderRepo.UpdateStatus(orderID, models.OrderCancelled)
}

func isCashOnDelivery(method *models.PaymentMethod) bool {
	return method != nil && strings.Contains(strings.ToLower(method.Label), "cod")
}
