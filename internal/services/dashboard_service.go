package services

import (
	"time"

	"mangan/internal/models"
	"mangan/internal/repository"
)

type DashboardStats struct {
	TotalOrders          int64 `json:"total_orders"`
	TotalCustomers       int64 `json:"total_customers"`
	TotalPackages        int64 `json:"total_packages"`
	AwaitingConfirmation int64 `json:"awaiting_confirmation"`
	Processing           int64 `json:"processing"`
	Delivered            int64 `json:"delivered"`
	TotalRevenue         int64 `json:"total_revenue"`
}

type MonthlyRevenue struct {
	Month   int    `json:"month"`
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
}

// DashboardService assembles the read-only projections behind the staff
// dashboards. Nothing is cached; every call re-queries the datastore.
type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetTopPackages(limit int) ([]repository.PackageSales, error)
	GetMonthlyRevenue(year int) ([]MonthlyRevenue, error)
}

type dashboardService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	packageRepo  repository.PackageRepository
}

func NewDashboardService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	packageRepo repository.PackageRepository,
) DashboardService {
	return &dashboardService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		packageRepo:  packageRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return &DashboardStats{}, err
	}
	if stats.TotalCustomers, err = s.customerRepo.Count(); err != nil {
		return &DashboardStats{}, err
	}
	if stats.TotalPackages, err = s.packageRepo.Count(); err != nil {
		return &DashboardStats{}, err
	}
	if stats.AwaitingConfirmation, err = s.orderRepo.CountByStatus(models.OrderAwaitingConfirmation); err != nil {
		return &DashboardStats{}, err
	}
	if stats.Processing, err = s.orderRepo.CountByStatus(models.OrderProcessing); err != nil {
		return &DashboardStats{}, err
	}
	if stats.Delivered, err = s.orderRepo.CountByStatus(models.OrderDelivered); err != nil {
		return &DashboardStats{}, err
	}
	if stats.TotalRevenue, err = s.orderRepo.SumDeliveredRevenue(); err != nil {
		return &DashboardStats{}, err
	}
	return stats, nil
}

func (s *dashboardService) GetTopPackages(limit int) ([]repository.PackageSales, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.orderRepo.TopPackages(limit)
}

// GetMonthlyRevenue buckets delivered orders by the calendar month they were
// placed in. All twelve months are present, zero-filled.
func (s *dashboardService) GetMonthlyRevenue(year int) ([]MonthlyRevenue, error) {
	orders, err := s.orderRepo.GetDeliveredByYear(year)
	if err != nil {
		return nil, err
	}

	buckets := make([]MonthlyRevenue, 12)
	for i := range buckets {
		month := time.Month(i + 1)
		buckets[i] = MonthlyRevenue{Month: i + 1, Label: month.String()}
	}
	for _, order := range orders {
		buckets[int(order.OrderedAt.Month())-1].Revenue += order.TotalAmount
	}
	return buckets, nil
}
