package models

import (
	"time"

	"nexum-supply/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Users
// ============================================================

// User represents the users table.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	BadgeNo   string         `gorm:"size:20" json:"badge_no"`
	Role      string         `gorm:"size:20;default:'usuario'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public user view, password stripped.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	BadgeNo   string    `json:"badge_no,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		BadgeNo:   u.BadgeNo,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ============================================================
// Products
// ============================================================

// ABC classifications and product types accepted before persistence.
var (
	ValidABCs  = []string{"A", "B", "C"}
	ValidTypes = []int{10, 19, 20}
)

// Product represents the products table. The criticality level and
// purchase need are derived on every read, never stored.
type Product struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"uniqueIndex;size:50;not null" json:"code"`

	// Classification
	ABC  string `gorm:"size:1;not null" json:"abc"`
	Type int    `gorm:"not null" json:"type"`

	// Stock and purchasing
	Balance          int `gorm:"default:0" json:"balance"`
	PendingPurchases int `gorm:"default:0" json:"pending_purchases"`
	ExpectedReceipts int `gorm:"default:0" json:"expected_receipts"`

	// Movement and location
	InTransit         int `gorm:"default:0" json:"in_transit"`
	StageQty          int `gorm:"default:0" json:"stage_qty"`
	ReceivingQty      int `gorm:"default:0" json:"receiving_qty"`
	PendingInspection int `gorm:"default:0" json:"pending_inspection"`

	// Test and quality
	TestKitParts int `gorm:"default:0" json:"test_kit_parts"`
	TestParts    int `gorm:"default:0" json:"test_parts"`

	// Repair
	RepairVendorQty int `gorm:"default:0" json:"repair_vendor_qty"`
	LabQty          int `gorm:"default:0" json:"lab_qty"`

	// Work requests
	WorkRequests      int `gorm:"default:0" json:"work_requests"`
	WorkRequestCRs    int `gorm:"default:0" json:"work_request_crs"`
	StageWorkRequests int `gorm:"default:0" json:"stage_work_requests"`

	// Consumption metrics
	CMM      float64 `gorm:"type:decimal(10,2);default:0" json:"cmm"`
	LossCoef float64 `gorm:"type:decimal(10,8);default:0" json:"loss_coef"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ValidABC reports whether abc belongs to the ABC enum.
func ValidABC(abc string) bool {
	for _, v := range ValidABCs {
		if abc == v {
			return true
		}
	}
	return false
}

// ValidType reports whether t belongs to the type enum.
func ValidType(t int) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Criticality returns the derived urgency tier for this product.
func (p *Product) Criticality() domain.CriticalityLevel {
	return domain.Criticality(p.Balance, p.CMM)
}

// PurchaseNeed returns the derived replenishment quantity.
func (p *Product) PurchaseNeed() int {
	return domain.PurchaseNeed(p.CMM, p.Balance, p.PendingPurchases, p.InTransit, p.ExpectedReceipts)
}

// ProductResponse is the product view with derived metrics attached.
type ProductResponse struct {
	*Product
	Criticality  domain.CriticalityLevel `json:"criticality"`
	PurchaseNeed int                     `json:"purchase_need"`
}

func (p *Product) ToResponse() *ProductResponse {
	return &ProductResponse{
		Product:      p,
		Criticality:  p.Criticality(),
		PurchaseNeed: p.PurchaseNeed(),
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Product{},
	)
}
