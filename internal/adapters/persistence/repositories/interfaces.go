package repositories

import (
	"context"

	"nexum-supply/internal/adapters/persistence/models"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	ABC        string
	Type       *int
	OutOfStock bool
	Critical   bool
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByCode(ctx context.Context, code string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *ProductFilter, offset, limit int) ([]*models.Product, int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ListCritical(ctx context.Context) ([]*models.Product, error)
	CountAll(ctx context.Context) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)
	CountByABC(ctx context.Context) (map[string]int64, error)
}
