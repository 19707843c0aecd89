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

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func createTestProduct(t *testing.T, db *gorm.DB, title string, price float64) *models.Product {
	t.Helper()
	collection := &models.Collection{Title: "Test Collection"}
	if err := db.Where("title = ?", collection.Title).FirstOrCreate(collection).Error; err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	product := &models.Product{
		Title:        title,
		Slug:         Slugify(title),
		UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Inventory:    10,
		CollectionID: collection.ID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddItemMergesDuplicateProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Bread", 3.50)

	cart, err := svc.Create()
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	first, err := svc.AddItem(cart.ID, CartItemInput{ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := svc.AddItem(cart.ID, CartItemInput{ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same cart item row, got %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", second.Quantity)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart item rows want 1 got %d", count)
	}
}

func TestAddItemRejectsUnknownProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	cart, err := svc.Create()
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	_, err = svc.AddItem(cart.ID, CartItemInput{ProductID: 9999, Quantity: 1})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Milk", 2.20)

	cart, err := svc.Create()
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	_, err = svc.AddItem(cart.ID, CartItemInput{ProductID: product.ID, Quantity: 0})
	if !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("want ErrQuantityInvalid got %v", err)
	}
}

func TestUpdateItemQuantityReplacesValue(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Eggs", 4.10)

	cart, err := svc.Create()
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	item, err := svc.AddItem(cart.ID, CartItemInput{ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	updated, err := svc.UpdateItemQuantity(cart.ID, item.ID, 7)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", updated.Quantity)
	}
}

func TestGetCartScopesItems(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Butter", 5.00)

	first, err := svc.Create()
	if err != nil {
		t.Fatalf("create first cart failed: %v", err)
	}
	second, err := svc.Create()
	if err != nil {
		t.Fatalf("create second cart failed: %v", err)
	}
	item, err := svc.AddItem(first.ID, CartItemInput{ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if _, err := svc.GetItem(second.ID, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("want ErrCartItemNotFound got %v", err)
	}

	cart, err := svc.Get(first.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(cart.Items))
	}
	if cart.Items[0].Product == nil {
		t.Fatalf("expected product preloaded on cart item")
	}
}

func TestDeleteCartRemovesItems(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Cheese", 8.75)

	cart, err := svc.Create()
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if _, err := svc.AddItem(cart.ID, CartItemInput{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if err := svc.Delete(cart.ID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}

	if _, err := svc.Get(cart.ID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("want ErrCartNotFound got %v", err)
	}
	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("orphan cart items want 0 got %d", count)
	}
}
