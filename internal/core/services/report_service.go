package services

import (
	"context"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/adapters/persistence/repositories"
	"nexum-supply/internal/core/domain"
)

// ReportService builds reporting views over the product inventory.
type ReportService struct {
	productRepo repositories.ProductRepository
}

// NewReportService creates a new report service.
func NewReportService(productRepo repositories.ProductRepository) *ReportService {
	return &ReportService{productRepo: productRepo}
}

// DashboardData represents the executive dashboard view.
type DashboardData struct {
	TotalProducts   int64                             `json:"total_products"`
	OutOfStock      int64                             `json:"out_of_stock"`
	CriticalCount   int64                             `json:"critical_count"`
	ByCriticality   map[domain.CriticalityLevel]int64 `json:"by_criticality"`
	ByABC           map[string]int64                  `json:"by_abc"`
	TotalNeed       int64                             `json:"total_purchase_need"`
	TopCritical     []*models.ProductResponse         `json:"top_critical"`
	TopCriticalSize int                               `json:"-"`
}

// CriticalProducts returns out-of-stock products with CMM above 1,
// highest consumption first.
func (s *ReportService) CriticalProducts(ctx context.Context) ([]*models.ProductResponse, error) {
	products, err := s.productRepo.ListCritical(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = product.ToResponse()
	}
	return responses, nil
}

// topCriticalLimit caps the dashboard's critical-product sample.
const topCriticalLimit = 10

// Dashboard aggregates inventory health for the executive view.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{
		ByCriticality: map[domain.CriticalityLevel]int64{},
	}

	var err error
	if data.TotalProducts, err = s.productRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if data.OutOfStock, err = s.productRepo.CountOutOfStock(ctx); err != nil {
		return nil, err
	}
	if data.ByABC, err = s.productRepo.CountByABC(ctx); err != nil {
		return nil, err
	}

	critical, err := s.productRepo.ListCritical(ctx)
	if err != nil {
		return nil, err
	}

	for _, product := range critical {
		data.ByCriticality[product.Criticality()]++
		data.TotalNeed += int64(product.PurchaseNeed())
		if product.Criticality() == domain.CriticalityCritical {
			data.CriticalCount++
		}
	}

	top := critical
	if len(top) > topCriticalLimit {
		top = top[:topCriticalLimit]
	}
	data.TopCritical = make([]*models.ProductResponse, len(top))
	for i, product := range top {
		data.TopCritical[i] = product.ToResponse()
	}

	return data, nil
}
