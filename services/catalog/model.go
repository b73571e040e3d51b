package catalog

import (
	"fmt"
	"time"
)

type Product struct {
	UID          string
	Name         string
	Brand        string
	ProductType  string
	Price        int
	Currency     string
	ImageURL     string
	CreatedAt    time.Time
	LastModified *time.Time
}

func (p Product) GetPriceInCurrency() string {
	return fmt.Sprintf("%s %.2f", p.Currency, float32(p.Price)/100.0)
}
