package domain

// Product is a catalog record. Products are immutable once loaded: the
// repositories hand out copies and nothing downstream writes back.
type Product struct {
	Code        string  `json:"code" gorm:"primaryKey;size:40"`
	Name        string  `json:"name" gorm:"size:180"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"type:decimal(12,2)"`
	Image       string  `json:"image" gorm:"size:255"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Stock       int     `json:"stock" gorm:"type:int;default:0"`
	Discount    float64 `json:"discount" gorm:"type:decimal(5,2);default:0"`

	// Rank preserves catalog (seed) order when no sort key is requested.
	Rank int `json:"-" gorm:"index"`
}

// DiscountedPrice is the effective unit price after the percentage discount.
func (p Product) DiscountedPrice() float64 {
	if p.Discount > 0 {
		return p.Price - p.Price*p.Discount/100
	}
	return p.Price
}
