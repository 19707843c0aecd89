package store

import (
	"testing"

	"github.com/storehub/internal/models"

	"github.com/shopspring/decimal"
)

func cartFixtureItem(productID uint, title string, price float64, quantity int) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		Product: &models.Product{
			Title:     title,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		},
	}
}

func TestCartResponseSumsLineTotals(t *testing.T) {
	cart := models.Cart{
		ID: "0b7a6f4e-0d5c-4a8a-9df0-1f2f3a4b5c6d",
		Items: []models.CartItem{
			cartFixtureItem(1, "Blue Shoes", 10.00, 2),
			cartFixtureItem(2, "Wool Socks", 5.00, 1),
		},
	}

	resp := newCartResponse(cart)

	if len(resp.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(resp.Items))
	}
	if resp.Items[0].TotalPrice.String() != "20.00" {
		t.Fatalf("first line total want 20.00 got %s", resp.Items[0].TotalPrice.String())
	}
	if resp.Items[1].TotalPrice.String() != "5.00" {
		t.Fatalf("second line total want 5.00 got %s", resp.Items[1].TotalPrice.String())
	}
	// 购物车总价 = 各行 数量×单价 之和
	if resp.TotalPrice.String() != "25.00" {
		t.Fatalf("cart total want 25.00 got %s", resp.TotalPrice.String())
	}
}

func TestCartResponseEmptyCartTotalsZero(t *testing.T) {
	resp := newCartResponse(models.Cart{ID: "4f3a2b1c-0000-4000-8000-000000000000"})

	if len(resp.Items) != 0 {
		t.Fatalf("items want 0 got %d", len(resp.Items))
	}
	if resp.TotalPrice.String() != "0.00" {
		t.Fatalf("empty cart total want 0.00 got %s", resp.TotalPrice.String())
	}
}
