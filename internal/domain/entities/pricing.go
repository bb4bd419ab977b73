package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is the laundry service variant chosen at intake.
type ServiceType string

const (
	ServiceWashFold ServiceType = "wash-fold"
	ServiceWashIron ServiceType = "wash-iron"
	ServiceIronOnly ServiceType = "iron-only"
	ServiceDryClean ServiceType = "dry-clean"
)

// ServicePricing is one row of the price list.
type ServicePricing struct {
	ServiceType     ServiceType
	Label           string
	UnitPrice       decimal.Decimal // rupiah per kilogram
	TurnaroundHours int
}

var servicePricing = []ServicePricing{
	{ServiceType: ServiceWashFold, Label: "Cuci Lipat", UnitPrice: decimal.NewFromInt(7000), TurnaroundHours: 24},
	{ServiceType: ServiceWashIron, Label: "Cuci Setrika", UnitPrice: decimal.NewFromInt(10000), TurnaroundHours: 48},
	{ServiceType: ServiceIronOnly, Label: "Setrika Saja", UnitPrice: decimal.NewFromInt(6000), TurnaroundHours: 24},
	{ServiceType: ServiceDryClean, Label: "Dry Clean", UnitPrice: decimal.NewFromInt(25000), TurnaroundHours: 72},
}

// PricingTable returns the full price list in display order.
func PricingTable() []ServicePricing {
	out := make([]ServicePricing, len(servicePricing))
	copy(out, servicePricing)
	return out
}

func PricingFor(st ServiceType) (ServicePricing, bool) {
	for _, p := range servicePricing {
		if p.ServiceType == st {
			return p, true
		}
	}
	return ServicePricing{}, false
}

// ParseServiceType accepts either the wire value ("wash-iron") or the
// Indonesian label ("Cuci Setrika"), case-insensitively.
func ParseServiceType(raw string) (ServiceType, bool) {
	v := strings.TrimSpace(raw)
	for _, p := range servicePricing {
		if strings.EqualFold(v, string(p.ServiceType)) || strings.EqualFold(v, p.Label) {
			return p.ServiceType, true
		}
	}
	return "", false
}

func (s ServiceType) Valid() bool {
	_, ok := PricingFor(s)
	return ok
}

// Label is the customer-facing service name, or the raw value when unknown.
func (s ServiceType) Label() string {
	if p, ok := PricingFor(s); ok {
		return p.Label
	}
	return string(s)
}

func (p ServicePricing) Turnaround() time.Duration {
	return time.Duration(p.TurnaroundHours) * time.Hour
}

// Quote is the price of weight kilograms.
func (p ServicePricing) Quote(weight decimal.Decimal) decimal.Decimal {
	return p.UnitPrice.Mul(weight)
}
