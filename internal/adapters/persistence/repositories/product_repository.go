package repositories

import (
	"context"

	"nexum-supply/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// productRepository implements ProductRepository on GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete soft deletes a product; reads filter deleted rows out.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (r *productRepository) List(ctx context.Context, filter *ProductFilter, offset, limit int) ([]*models.Product, int64, error) {
	var products []*models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})
	query = applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("updated_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func applyFilter(query *gorm.DB, filter *ProductFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.ABC != "" {
		query = query.Where("abc = ?", filter.ABC)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.OutOfStock {
		query = query.Where("balance = 0")
	}
	if filter.Critical {
		query = query.Where("cmm > 1 AND balance = 0")
	}
	return query
}

func (r *productRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// ListCritical returns out-of-stock products with meaningful consumption,
// most consumed first.
func (r *productRepository) ListCritical(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("cmm > 1 AND balance = 0").
		Order("cmm DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountOutOfStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("balance = 0").Count(&count).Error
	return count, err
}

func (r *productRepository) CountByABC(ctx context.Context) (map[string]int64, error) {
	type row struct {
		ABC   string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("abc, COUNT(*) AS count").
		Group("abc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ABC] = rw.Count
	}
	return counts, nil
}
