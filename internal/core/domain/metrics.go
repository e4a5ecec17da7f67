package domain

import "math"

// CriticalityLevel is the derived replenishment urgency for a product.
type CriticalityLevel string

const (
	CriticalityCritical CriticalityLevel = "CRITICAL"
	CriticalityHigh     CriticalityLevel = "HIGH"
	CriticalityMedium   CriticalityLevel = "MEDIUM"
	CriticalityLow      CriticalityLevel = "LOW"
	CriticalityOK       CriticalityLevel = "OK"
)

// Criticality classifies a product by consumption rate when it is out of
// stock. Any positive balance is OK regardless of CMM. Thresholds are
// strict: CMM exactly 100 with zero balance is HIGH, not CRITICAL.
func Criticality(balance int, cmm float64) CriticalityLevel {
	if balance != 0 {
		return CriticalityOK
	}
	switch {
	case cmm > 100:
		return CriticalityCritical
	case cmm > 50:
		return CriticalityHigh
	case cmm > 10:
		return CriticalityMedium
	case cmm > 1:
		return CriticalityLow
	}
	return CriticalityOK
}

// PurchaseNeed returns the quantity to order to cover two consumption
// cycles, net of stock already on hand or in the pipeline. Never negative.
// Fractional needs round up: rounding down would under-order.
func PurchaseNeed(cmm float64, balance, pendingPurchases, inTransit, expectedReceipts int) int {
	need := 2*cmm - float64(balance) - float64(pendingPurchases) - float64(inTransit) - float64(expectedReceipts)
	if need <= 0 {
		return 0
	}
	return int(math.Ceil(need))
}
