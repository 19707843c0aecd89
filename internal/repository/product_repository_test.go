package repository

import (
	"fmt"
	"testing"

	"github.com/storehub/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func seedCatalog(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	footwear := &models.Collection{Title: "Footwear"}
	beauty := &models.Collection{Title: "Beauty"}
	for _, c := range []*models.Collection{footwear, beauty} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create collection failed: %v", err)
		}
	}
	products := []models.Product{
		{Title: "Blue Shoes", Slug: "Blue-Shoes", Description: "canvas sneakers", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(50)), CollectionID: footwear.ID},
		{Title: "Leather Boots", Slug: "Leather-Boots", Description: "winter boots", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(150)), CollectionID: footwear.ID},
		{Title: "Face Cream", Slug: "Face-Cream", Description: "aloe moisturizer", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20)), CollectionID: beauty.ID},
		{Title: "Running Shoes", Slug: "Running-Shoes", Description: "mesh trainers", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(90)), CollectionID: footwear.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	return footwear.ID, beauty.ID
}

func TestListFiltersByCollection(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	footwearID, _ := seedCatalog(t, db)

	products, total, err := repo.List(ProductListFilter{
		Page:         1,
		PageSize:     10,
		CollectionID: fmt.Sprintf("%d", footwearID),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("footwear products want 3 got total=%d len=%d", total, len(products))
	}
}

func TestListFiltersByPriceRange(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedCatalog(t, db)

	min := decimal.NewFromInt(40)
	max := decimal.NewFromInt(100)
	products, total, err := repo.List(ProductListFilter{
		Page:     1,
		PageSize: 10,
		PriceMin: &min,
		PriceMax: &max,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("price range products want 2 got %d", total)
	}
	for _, p := range products {
		if p.UnitPrice.Decimal.LessThan(min) || p.UnitPrice.Decimal.GreaterThan(max) {
			t.Fatalf("product %s price %s out of range", p.Title, p.UnitPrice.Decimal.String())
		}
	}
}

func TestListSearchesTitleAndDescription(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedCatalog(t, db)

	_, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "Shoes"})
	if err != nil {
		t.Fatalf("search title failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("title search want 2 got %d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "aloe"})
	if err != nil {
		t.Fatalf("search description failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("description search want 1 got %d", total)
	}
}

func TestListOrdersByUnitPrice(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedCatalog(t, db)

	asc, _, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, OrderBy: "unit_price"})
	if err != nil {
		t.Fatalf("list asc failed: %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i].UnitPrice.Decimal.LessThan(asc[i-1].UnitPrice.Decimal) {
			t.Fatalf("ascending order violated at %d", i)
		}
	}

	desc, _, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, OrderBy: "-unit_price"})
	if err != nil {
		t.Fatalf("list desc failed: %v", err)
	}
	if len(desc) == 0 || !desc[0].UnitPrice.Decimal.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("descending order should start at 150")
	}
}

func TestListRejectsUnknownOrderField(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedCatalog(t, db)

	// 非白名单字段回退到主键排序而不是报错
	products, _, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, OrderBy: "inventory; DROP TABLE products"})
	if err != nil {
		t.Fatalf("list with bogus order failed: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if products[i].ID < products[i-1].ID {
			t.Fatalf("fallback id order violated at %d", i)
		}
	}
}

func TestListPaginates(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedCatalog(t, db)

	first, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if total != 4 || len(first) != 3 {
		t.Fatalf("page 1 want total=4 len=3 got total=%d len=%d", total, len(first))
	}

	second, _, err := repo.List(ProductListFilter{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("page 2 want 1 got %d", len(second))
	}
}
