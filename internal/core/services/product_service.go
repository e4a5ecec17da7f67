package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/adapters/persistence/repositories"
	"nexum-supply/internal/core/domain"

	"gorm.io/gorm"
)

// ProductService handles product management business logic.
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents product creation input. Counters left
// unset default to zero.
type CreateProductInput struct {
	Code              string  `json:"code"`
	ABC               string  `json:"abc"`
	Type              int     `json:"type"`
	Balance           int     `json:"balance"`
	PendingPurchases  int     `json:"pending_purchases"`
	ExpectedReceipts  int     `json:"expected_receipts"`
	InTransit         int     `json:"in_transit"`
	StageQty          int     `json:"stage_qty"`
	ReceivingQty      int     `json:"receiving_qty"`
	PendingInspection int     `json:"pending_inspection"`
	TestKitParts      int     `json:"test_kit_parts"`
	TestParts         int     `json:"test_parts"`
	RepairVendorQty   int     `json:"repair_vendor_qty"`
	LabQty            int     `json:"lab_qty"`
	WorkRequests      int     `json:"work_requests"`
	WorkRequestCRs    int     `json:"work_request_crs"`
	StageWorkRequests int     `json:"stage_work_requests"`
	CMM               float64 `json:"cmm"`
	LossCoef          float64 `json:"loss_coef"`
}

// UpdateProductInput represents partial product update; nil fields stay
// untouched.
type UpdateProductInput struct {
	Code              *string  `json:"code"`
	ABC               *string  `json:"abc"`
	Type              *int     `json:"type"`
	Balance           *int     `json:"balance"`
	PendingPurchases  *int     `json:"pending_purchases"`
	ExpectedReceipts  *int     `json:"expected_receipts"`
	InTransit         *int     `json:"in_transit"`
	StageQty          *int     `json:"stage_qty"`
	ReceivingQty      *int     `json:"receiving_qty"`
	PendingInspection *int     `json:"pending_inspection"`
	TestKitParts      *int     `json:"test_kit_parts"`
	TestParts         *int     `json:"test_parts"`
	RepairVendorQty   *int     `json:"repair_vendor_qty"`
	LabQty            *int     `json:"lab_qty"`
	WorkRequests      *int     `json:"work_requests"`
	WorkRequestCRs    *int     `json:"work_request_crs"`
	StageWorkRequests *int     `json:"stage_work_requests"`
	CMM               *float64 `json:"cmm"`
	LossCoef          *float64 `json:"loss_coef"`
}

// ListProductsInput represents product listing filters.
type ListProductsInput struct {
	ABC        string
	Type       *int
	OutOfStock bool
	Critical   bool
	Page       int
	Limit      int
}

// ListProductsOutput represents a page of products.
type ListProductsOutput struct {
	Products []*models.ProductResponse `json:"products"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	Limit    int                       `json:"limit"`
}

// CreateProduct validates and persists a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*models.ProductResponse, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, domain.ErrCodeRequired
	}
	if !models.ValidABC(input.ABC) {
		return nil, domain.ErrInvalidABC
	}
	if !models.ValidType(input.Type) {
		return nil, domain.ErrInvalidType
	}

	exists, err := s.productRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateCode
	}

	product := &models.Product{
		Code:              code,
		ABC:               input.ABC,
		Type:              input.Type,
		Balance:           input.Balance,
		PendingPurchases:  input.PendingPurchases,
		ExpectedReceipts:  input.ExpectedReceipts,
		InTransit:         input.InTransit,
		StageQty:          input.StageQty,
		ReceivingQty:      input.ReceivingQty,
		PendingInspection: input.PendingInspection,
		TestKitParts:      input.TestKitParts,
		TestParts:         input.TestParts,
		RepairVendorQty:   input.RepairVendorQty,
		LabQty:            input.LabQty,
		WorkRequests:      input.WorkRequests,
		WorkRequestCRs:    input.WorkRequestCRs,
		StageWorkRequests: input.StageWorkRequests,
		CMM:               input.CMM,
		LossCoef:          input.LossCoef,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product created: %s", product.Code)

	return product.ToResponse(), nil
}

// ListProducts lists products with filters and pagination.
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	filter := &repositories.ProductFilter{
		ABC:        input.ABC,
		Type:       input.Type,
		OutOfStock: input.OutOfStock,
		Critical:   input.Critical,
	}

	products, total, err := s.productRepo.List(ctx, filter, (input.Page-1)*input.Limit, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = product.ToResponse()
	}

	return &ListProductsOutput{
		Products: responses,
		Total:    total,
		Page:     input.Page,
		Limit:    input.Limit,
	}, nil
}

// GetProductByID gets a product by ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product.ToResponse(), nil
}

// GetProductByCode gets a product by its business code.
func (s *ProductService) GetProductByCode(ctx context.Context, code string) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product.ToResponse(), nil
}

// UpdateProduct applies a partial update after validating changed fields.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*models.ProductResponse, error) {
	if input.ABC != nil && !models.ValidABC(*input.ABC) {
		return nil, domain.ErrInvalidABC
	}
	if input.Type != nil && !models.ValidType(*input.Type) {
		return nil, domain.ErrInvalidType
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		if code == "" {
			return nil, domain.ErrCodeRequired
		}
		if code != product.Code {
			exists, err := s.productRepo.ExistsByCode(ctx, code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateCode
			}
			product.Code = code
		}
	}

	applyProductUpdate(product, input)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product updated: %s", product.Code)

	return product.ToResponse(), nil
}

func applyProductUpdate(product *models.Product, input *UpdateProductInput) {
	if input.ABC != nil {
		product.ABC = *input.ABC
	}
	if input.Type != nil {
		product.Type = *input.Type
	}
	if input.Balance != nil {
		product.Balance = *input.Balance
	}
	if input.PendingPurchases != nil {
		product.PendingPurchases = *input.PendingPurchases
	}
	if input.ExpectedReceipts != nil {
		product.ExpectedReceipts = *input.ExpectedReceipts
	}
	if input.InTransit != nil {
		product.InTransit = *input.InTransit
	}
	if input.StageQty != nil {
		product.StageQty = *input.StageQty
	}
	if input.ReceivingQty != nil {
		product.ReceivingQty = *input.ReceivingQty
	}
	if input.PendingInspection != nil {
		product.PendingInspection = *input.PendingInspection
	}
	if input.TestKitParts != nil {
		product.TestKitParts = *input.TestKitParts
	}
	if input.TestParts != nil {
		product.TestParts = *input.TestParts
	}
	if input.RepairVendorQty != nil {
		product.RepairVendorQty = *input.RepairVendorQty
	}
	if input.LabQty != nil {
		product.LabQty = *input.LabQty
	}
	if input.WorkRequests != nil {
		product.WorkRequests = *input.WorkRequests
	}
	if input.WorkRequestCRs != nil {
		product.WorkRequestCRs = *input.WorkRequestCRs
	}
	if input.StageWorkRequests != nil {
		product.StageWorkRequests = *input.StageWorkRequests
	}
	if input.CMM != nil {
		product.CMM = *input.CMM
	}
	if input.LossCoef != nil {
		product.LossCoef = *input.LossCoef
	}
}

// DeleteProduct soft deletes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Product deleted: ID %d", id)
	return nil
}
