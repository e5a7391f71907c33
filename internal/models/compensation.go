package models

import (
	"encoding/json"
	"fmt"
)

// CompensationType identifies how creators get compensated for a campaign.
type CompensationType string

// enum values for CompensationType
const (
	CompensationGifted          CompensationType = "gifted"
	CompensationGiftCard        CompensationType = "gift_card"
	CompensationDiscount        CompensationType = "discount"
	CompensationPaid            CompensationType = "paid"
	CompensationCommissionBoost CompensationType = "commission_boost"
)

// AllCompensationTypes lists every compensation type in wizard display order.
func AllCompensationTypes() []CompensationType {
	return []CompensationType{
		CompensationGifted,
		CompensationGiftCard,
		CompensationDiscount,
		CompensationPaid,
		CompensationCommissionBoost,
	}
}

// CompensationDetail is the type-specific configuration of one
// compensation option. Each compensation type has its own detail struct,
// which keeps fields from one type out of the others.
type CompensationDetail interface {
	// CompensationType returns the type this detail belongs to.
	CompensationType() CompensationType
}

// GiftedDetail configures gifted-product compensation.
type GiftedDetail struct {
	ProductName  string  `json:"product_name,omitempty"`
	ProductURL   string  `json:"product_url,omitempty"`
	ProductValue float64 `json:"product_value,omitempty"`
}

// CompensationType implements CompensationDetail.
func (GiftedDetail) CompensationType() CompensationType { return CompensationGifted }

// GiftCardDetail configures gift-card compensation.
type GiftCardDetail struct {
	Value    float64 `json:"value,omitempty"`
	Brand    string  `json:"brand,omitempty"`
	Delivery string  `json:"delivery,omitempty"`
}

// CompensationType implements CompensationDetail.
func (GiftCardDetail) CompensationType() CompensationType { return CompensationGiftCard }

// DiscountDetail configures discount-code compensation.
type DiscountDetail struct {
	Code   string  `json:"code,omitempty"`
	Amount float64 `json:"amount,omitempty"`
}

// CompensationType implements CompensationDetail.
func (DiscountDetail) CompensationType() CompensationType { return CompensationDiscount }

// PaidDetail configures flat-fee compensation with a negotiable range.
type PaidDetail struct {
	FeeMin float64 `json:"fee_min,omitempty"`
	FeeMax float64 `json:"fee_max,omitempty"`
}

// CompensationType implements CompensationDetail.
func (PaidDetail) CompensationType() CompensationType { return CompensationPaid }

// CommissionBoostDetail configures a boosted commission rate.
type CommissionBoostDetail struct {
	Rate float64 `json:"rate,omitempty"`
}

// CompensationType implements CompensationDetail.
func (CommissionBoostDetail) CompensationType() CompensationType {
	return CompensationCommissionBoost
}

// CompensationConfig is one entry of the wizard's fixed five-element
// compensation list. Detail is nil until the brand fills anything in,
// and always agrees with Type once set.
type CompensationConfig struct {
	Type    CompensationType   `json:"type"`
	Enabled bool               `json:"enabled"`
	Detail  CompensationDetail `json:"detail,omitempty"`
}

// UnmarshalJSON decodes the detail payload into the struct matching Type.
func (c *CompensationConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    CompensationType `json:"type"`
		Enabled bool             `json:"enabled"`
		Detail  json.RawMessage  `json:"detail"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Type = raw.Type
	c.Enabled = raw.Enabled
	c.Detail = nil
	if len(raw.Detail) == 0 || string(raw.Detail) == "null" {
		return nil
	}

	var detail CompensationDetail
	switch raw.Type {
	case CompensationGifted:
		detail = &GiftedDetail{}
	case CompensationGiftCard:
		detail = &GiftCardDetail{}
	case CompensationDiscount:
		detail = &DiscountDetail{}
	case CompensationPaid:
		detail = &PaidDetail{}
	case CompensationCommissionBoost:
		detail = &CommissionBoostDetail{}
	default:
		return fmt.Errorf("unknown compensation type %q", raw.Type)
	}
	if err := json.Unmarshal(raw.Detail, detail); err != nil {
		return err
	}
	c.Detail = detail
	return nil
}

// DefaultCompensationConfigs returns the fixed five-element compensation
// list every draft starts with, all disabled.
func DefaultCompensationConfigs() []CompensationConfig {
	types := AllCompensationTypes()
	configs := make([]CompensationConfig, len(types))
	for i, t := range types {
		configs[i] = CompensationConfig{Type: t}
	}
	return configs
}
