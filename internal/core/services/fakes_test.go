package services

import (
	"context"
	"sort"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var page []*models.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(page) == limit {
			break
		}
		copied := *r.users[id]
		page = append(page, &copied)
	}
	return page, int64(len(r.users)), nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// fakeProductRepo is an in-memory ProductRepository for service tests.
type fakeProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*models.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*models.Product, error) {
	for _, product := range r.products {
		if product.Code == code {
			copied := *product
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) matches(product *models.Product, filter *repositories.ProductFilter) bool {
	if filter == nil {
		return true
	}
	if filter.ABC != "" && product.ABC != filter.ABC {
		return false
	}
	if filter.Type != nil && product.Type != *filter.Type {
		return false
	}
	if filter.OutOfStock && product.Balance != 0 {
		return false
	}
	if filter.Critical && !(product.CMM > 1 && product.Balance == 0) {
		return false
	}
	return true
}

func (r *fakeProductRepo) List(_ context.Context, filter *repositories.ProductFilter, offset, limit int) ([]*models.Product, int64, error) {
	ids := make([]uint, 0, len(r.products))
	for id, product := range r.products {
		if r.matches(product, filter) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := int64(len(ids))
	var page []*models.Product
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(page) == limit {
			break
		}
		copied := *r.products[id]
		page = append(page, &copied)
	}
	return page, total, nil
}

func (r *fakeProductRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeProductRepo) ListCritical(_ context.Context) ([]*models.Product, error) {
	var critical []*models.Product
	for _, product := range r.products {
		if product.CMM > 1 && product.Balance == 0 {
			copied := *product
			critical = append(critical, &copied)
		}
	}
	sort.Slice(critical, func(i, j int) bool { return critical[i].CMM > critical[j].CMM })
	return critical, nil
}

func (r *fakeProductRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountOutOfStock(_ context.Context) (int64, error) {
	var count int64
	for _, product := range r.products {
		if product.Balance == 0 {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) CountByABC(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, product := range r.products {
		counts[product.ABC]++
	}
	return counts, nil
}
