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

func setupCollectionServiceTest(t *testing.T) (*CollectionService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCollectionService(repository.NewCollectionRepository(db)), db
}

func addProductToCollection(t *testing.T, db *gorm.DB, collectionID uint, title string) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:        title,
		Slug:         Slugify(title),
		UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		CollectionID: collectionID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestListCollectionsComputesProductsCount(t *testing.T) {
	svc, db := setupCollectionServiceTest(t)

	footwear, err := svc.Create(CollectionInput{Title: "Footwear"})
	if err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	beauty, err := svc.Create(CollectionInput{Title: "Beauty"})
	if err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	addProductToCollection(t, db, footwear.ID, "Shoes A")
	addProductToCollection(t, db, footwear.ID, "Shoes B")

	collections, err := svc.List()
	if err != nil {
		t.Fatalf("list collections failed: %v", err)
	}
	counts := map[uint]int64{}
	for _, c := range collections {
		counts[c.Collection.ID] = c.ProductsCount
	}
	if counts[footwear.ID] != 2 {
		t.Fatalf("footwear count want 2 got %d", counts[footwear.ID])
	}
	if counts[beauty.ID] != 0 {
		t.Fatalf("beauty count want 0 got %d", counts[beauty.ID])
	}
}

func TestDeleteCollectionBlockedByProducts(t *testing.T) {
	svc, db := setupCollectionServiceTest(t)

	collection, err := svc.Create(CollectionInput{Title: "Groceries"})
	if err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	product := addProductToCollection(t, db, collection.ID, "Olive Oil")

	if err := svc.Delete(collection.ID); !errors.Is(err, ErrCollectionInUse) {
		t.Fatalf("want ErrCollectionInUse got %v", err)
	}

	if err := db.Unscoped().Delete(product).Error; err != nil {
		t.Fatalf("remove product failed: %v", err)
	}
	if err := svc.Delete(collection.ID); err != nil {
		t.Fatalf("delete collection failed: %v", err)
	}
	if _, err := svc.Get(collection.ID); !errors.Is(err, ErrCollectionNotFound) {
		t.Fatalf("want ErrCollectionNotFound got %v", err)
	}
}

func TestUpdateCollectionRequiresTitle(t *testing.T) {
	svc, _ := setupCollectionServiceTest(t)

	collection, err := svc.Create(CollectionInput{Title: "Footwear"})
	if err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	if _, err := svc.Update(collection.ID, CollectionInput{Title: "   "}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("want ErrTitleRequired got %v", err)
	}
}
