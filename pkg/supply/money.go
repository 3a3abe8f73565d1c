package supply

import "github.com/shopspring/decimal"

// SalePrice returns Price with Discount applied, rounded to cents.
func (p Product) SalePrice() decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	if p.Discount == nil {
		return price.Round(2)
	}
	off := decimal.NewFromFloat(*p.Discount)
	return price.Mul(decimal.NewFromInt(1).Sub(off)).Round(2)
}

// HasDiscount reports whether a non-zero discount is set.
func (p Product) HasDiscount() bool {
	return p.Discount != nil && *p.Discount != 0
}

// LineTotal returns Quantity * UnitPrice rounded to cents.
func (d OrderDetail) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(d.UnitPrice).Mul(decimal.NewFromInt(int64(d.Quantity))).Round(2)
}
