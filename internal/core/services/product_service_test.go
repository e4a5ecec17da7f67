package services

import (
	"context"
	"testing"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductInput{
		Code:    "  P-1001  ",
		ABC:     "A",
		Type:    10,
		Balance: 0,
		CMM:     120,
	})
	require.NoError(t, err)
	assert.Equal(t, "P-1001", created.Code)
	assert.Equal(t, domain.CriticalityCritical, created.Criticality)
	assert.Equal(t, 240, created.PurchaseNeed)
}

func TestCreateProduct_Validation(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &CreateProductInput{Code: "   ", ABC: "A", Type: 10})
	assert.ErrorIs(t, err, domain.ErrCodeRequired)

	_, err = svc.CreateProduct(ctx, &CreateProductInput{Code: "P-1", ABC: "D", Type: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidABC)

	_, err = svc.CreateProduct(ctx, &CreateProductInput{Code: "P-1", ABC: "A", Type: 15})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestCreateProduct_DuplicateCode(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &CreateProductInput{Code: "P-1", ABC: "A", Type: 10})
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, &CreateProductInput{Code: "P-1", ABC: "B", Type: 19})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	_, err := svc.GetProductByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.GetProductByCode(ctx, "no-such-code")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductByCode(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductInput{Code: "P-7", ABC: "C", Type: 20, Balance: 3, CMM: 8})
	require.NoError(t, err)

	found, err := svc.GetProductByCode(ctx, "P-7")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, domain.CriticalityOK, found.Criticality)
}

func TestUpdateProduct(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductInput{
		Code:    "P-1",
		ABC:     "A",
		Type:    10,
		Balance: 5,
		CMM:     60,
	})
	require.NoError(t, err)

	zero := 0
	updated, err := svc.UpdateProduct(ctx, created.ID, &UpdateProductInput{Balance: &zero})
	require.NoError(t, err)

	// Untouched fields survive the partial update; derived metrics
	// follow the new balance.
	assert.Equal(t, "P-1", updated.Code)
	assert.Equal(t, "A", updated.ABC)
	assert.Equal(t, 60.0, updated.CMM)
	assert.Equal(t, 0, updated.Balance)
	assert.Equal(t, domain.CriticalityHigh, updated.Criticality)
	assert.Equal(t, 120, updated.PurchaseNeed)
}

func TestUpdateProduct_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Product{Code: "P-1", ABC: "A", Type: 10}))
	require.NoError(t, repo.Create(ctx, &models.Product{Code: "P-2", ABC: "B", Type: 19}))

	badABC := "Z"
	_, err := svc.UpdateProduct(ctx, 1, &UpdateProductInput{ABC: &badABC})
	assert.ErrorIs(t, err, domain.ErrInvalidABC)

	badType := 7
	_, err = svc.UpdateProduct(ctx, 1, &UpdateProductInput{Type: &badType})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	blank := "  "
	_, err = svc.UpdateProduct(ctx, 1, &UpdateProductInput{Code: &blank})
	assert.ErrorIs(t, err, domain.ErrCodeRequired)

	taken := "P-2"
	_, err = svc.UpdateProduct(ctx, 1, &UpdateProductInput{Code: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	// Re-submitting the current code is not a conflict.
	same := "P-1"
	_, err = svc.UpdateProduct(ctx, 1, &UpdateProductInput{Code: &same})
	assert.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, 99, &UpdateProductInput{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductInput{Code: "P-1", ABC: "A", Type: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProductByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, created.ID), domain.ErrProductNotFound)
}

func TestListProducts_Filters(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Product{Code: "P-1", ABC: "A", Type: 10, Balance: 0, CMM: 200}))
	require.NoError(t, repo.Create(ctx, &models.Product{Code: "P-2", ABC: "A", Type: 19, Balance: 4, CMM: 30}))
	require.NoError(t, repo.Create(ctx, &models.Product{Code: "P-3", ABC: "B", Type: 10, Balance: 0, CMM: 0.5}))

	out, err := svc.ListProducts(ctx, &ListProductsInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)

	out, err = svc.ListProducts(ctx, &ListProductsInput{ABC: "A"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Total)

	out, err = svc.ListProducts(ctx, &ListProductsInput{OutOfStock: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Total)

	// Critical requires zero balance and CMM above one; P-3 is out of
	// stock but its demand is too small to matter.
	out, err = svc.ListProducts(ctx, &ListProductsInput{Critical: true})
	require.NoError(t, err)
	require.EqualValues(t, 1, out.Total)
	assert.Equal(t, "P-1", out.Products[0].Code)
	assert.Equal(t, domain.CriticalityCritical, out.Products[0].Criticality)
}

func TestListProducts_Pagination(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	for _, code := range []string{"P-1", "P-2", "P-3"} {
		require.NoError(t, repo.Create(ctx, &models.Product{Code: code, ABC: "A", Type: 10}))
	}

	out, err := svc.ListProducts(ctx, &ListProductsInput{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.Total)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "P-3", out.Products[0].Code)
}
