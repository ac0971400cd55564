package models

import "github.com/shopspring/decimal"

// Charge is a billable line item. Tax is stored as an absolute amount derived
// from the percentage supplied at input time, never as a rate. All three
// amounts are fixed-point numeric(10,2); float64 would drift on tax math.
type Charge struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Net       decimal.Decimal `json:"net" gorm:"type:numeric(10,2)"`
	Tax       decimal.Decimal `json:"tax" gorm:"type:numeric(10,2)"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric(10,2)"`
	Name      string          `json:"charge_name" gorm:"column:charge_name"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	IsDeleted bool            `json:"is_delete" gorm:"column:is_delete;default:false"`

	Todos []Todo `json:"todos,omitempty" gorm:"foreignKey:ChargeID"`
}

func (Charge) TableName() string {
	return "charge"
}

// SetAmounts derives tax and total from a net amount and a tax percentage:
// tax = net * rate/100, total = net + tax, both at two-decimal scale.
func (c *Charge) SetAmounts(net, ratePercent decimal.Decimal) {
	tax := net.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
	c.Net = net.Round(2)
	c.Tax = tax
	c.Total = c.Net.Add(tax)
}
