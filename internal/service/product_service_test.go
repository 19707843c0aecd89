package service

import (
	"errors"
	"testing"

	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewCollectionRepository(db),
		decimal.RequireFromString("1.1"),
	)
	return svc, db
}

func createTestCollection(t *testing.T, db *gorm.DB, title string) *models.Collection {
	t.Helper()
	collection := &models.Collection{Title: title}
	if err := db.Create(collection).Error; err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	return collection
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Blue Shoes", "Blue-Shoes"},
		{"  Trimmed Title  ", "Trimmed-Title"},
		{"Single", "Single"},
		{"a b c", "a-b-c"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Fatalf("Slugify(%q) want %q got %q", tc.title, tc.want, got)
		}
	}
}

func TestCreateProductDerivesSlug(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	collection := createTestCollection(t, db, "Footwear")

	product, err := svc.Create(ProductInput{
		Title:        "Blue Shoes",
		UnitPrice:    decimal.NewFromFloat(59.90),
		Inventory:    5,
		CollectionID: collection.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Slug != "Blue-Shoes" {
		t.Fatalf("slug want Blue-Shoes got %q", product.Slug)
	}
}

func TestUpdateProductRederivesSlugOnTitleChange(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	collection := createTestCollection(t, db, "Footwear")

	product, err := svc.Create(ProductInput{
		Title:        "Blue Shoes",
		UnitPrice:    decimal.NewFromFloat(59.90),
		Inventory:    5,
		CollectionID: collection.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	updated, err := svc.Update(product.ID, ProductInput{
		Title:        "Red Running Shoes",
		UnitPrice:    decimal.NewFromFloat(64.90),
		Inventory:    5,
		CollectionID: collection.ID,
	})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Slug != "Red-Running-Shoes" {
		t.Fatalf("slug want Red-Running-Shoes got %q", updated.Slug)
	}
}

func TestPatchProductUpdatesOnlyGivenFields(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	collection := createTestCollection(t, db, "Footwear")

	product, err := svc.Create(ProductInput{
		Title:        "Blue Shoes",
		Description:  "Canvas sneakers.",
		UnitPrice:    decimal.NewFromFloat(59.90),
		Inventory:    5,
		CollectionID: collection.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	inventory := 3
	patched, err := svc.Patch(product.ID, ProductPatch{Inventory: &inventory})
	if err != nil {
		t.Fatalf("patch product failed: %v", err)
	}
	if patched.Inventory != 3 {
		t.Fatalf("inventory want 3 got %d", patched.Inventory)
	}
	// 未出现在请求中的字段必须保持原值
	if patched.Title != "Blue Shoes" || patched.Slug != "Blue-Shoes" {
		t.Fatalf("title/slug should be untouched, got %q/%q", patched.Title, patched.Slug)
	}
	if !patched.UnitPrice.Decimal.Equal(decimal.NewFromFloat(59.90)) {
		t.Fatalf("unit_price should be untouched, got %s", patched.UnitPrice.Decimal.String())
	}
	if patched.Description != "Canvas sneakers." {
		t.Fatalf("description should be untouched, got %q", patched.Description)
	}

	title := "Red Shoes"
	patched, err = svc.Patch(product.ID, ProductPatch{Title: &title})
	if err != nil {
		t.Fatalf("patch title failed: %v", err)
	}
	if patched.Slug != "Red-Shoes" {
		t.Fatalf("slug want Red-Shoes got %q", patched.Slug)
	}

	zero := decimal.Zero
	if _, err := svc.Patch(product.ID, ProductPatch{UnitPrice: &zero}); !errors.Is(err, ErrPriceInvalid) {
		t.Fatalf("want ErrPriceInvalid got %v", err)
	}
	unknown := uint(9999)
	if _, err := svc.Patch(product.ID, ProductPatch{CollectionID: &unknown}); !errors.Is(err, ErrCollectionNotFound) {
		t.Fatalf("want ErrCollectionNotFound got %v", err)
	}
}

func TestCreateProductValidatesInput(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	collection := createTestCollection(t, db, "Beauty")

	cases := []struct {
		name  string
		input ProductInput
		want  error
	}{
		{"missing title", ProductInput{UnitPrice: decimal.NewFromInt(10), CollectionID: collection.ID}, ErrTitleRequired},
		{"zero price", ProductInput{Title: "Soap", CollectionID: collection.ID}, ErrPriceInvalid},
		{"negative inventory", ProductInput{Title: "Soap", UnitPrice: decimal.NewFromInt(10), Inventory: -1, CollectionID: collection.ID}, ErrInventoryInvalid},
		{"missing collection", ProductInput{Title: "Soap", UnitPrice: decimal.NewFromInt(10)}, ErrCollectionIDRequired},
		{"unknown collection", ProductInput{Title: "Soap", UnitPrice: decimal.NewFromInt(10), CollectionID: 9999}, ErrCollectionNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, err)
		}
	}
}

func TestDeleteProductBlockedByOrderItems(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	collection := createTestCollection(t, db, "Groceries")

	product, err := svc.Create(ProductInput{
		Title:        "Olive Oil",
		UnitPrice:    decimal.NewFromFloat(12.45),
		Inventory:    20,
		CollectionID: collection.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	customer := &models.Customer{UserID: 77, Membership: "B"}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	order := &models.Order{CustomerID: customer.ID, PaymentStatus: "P"}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, UnitPrice: product.UnitPrice, Quantity: 1}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	if err := svc.Delete(product.ID); !errors.Is(err, ErrProductInUse) {
		t.Fatalf("want ErrProductInUse got %v", err)
	}

	if err := db.Delete(item).Error; err != nil {
		t.Fatalf("remove order item failed: %v", err)
	}
	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
}

func TestPriceWithTax(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	price := models.NewMoneyFromDecimal(decimal.NewFromFloat(100.00))
	withTax := svc.PriceWithTax(price)
	if withTax.Decimal.StringFixed(2) != "110.00" {
		t.Fatalf("price_with_tax want 110.00 got %s", withTax.Decimal.StringFixed(2))
	}
}
