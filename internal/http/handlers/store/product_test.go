package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/storehub/internal/config"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/provider"
	"github.com/storehub/internal/repository"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	container := &provider.Container{
		Config: &config.Config{
			Store: config.StoreConfig{DefaultPageSize: 10, MaxPageSize: 100, TaxRate: "1.1"},
		},
		ProductRepo:    productRepo,
		CollectionRepo: collectionRepo,
		ProductService: service.NewProductService(productRepo, collectionRepo, decimal.RequireFromString("1.1")),
	}
	handler := New(container)

	r := gin.New()
	r.GET("/products", handler.ListProducts)
	r.GET("/products/:product_id", handler.GetProduct)
	r.PATCH("/products/:product_id", handler.PatchProduct)
	return r, db
}

func seedHandlerProduct(t *testing.T, db *gorm.DB, title string, price float64) *models.Product {
	t.Helper()
	collection := &models.Collection{Title: "Handler Fixtures"}
	if err := db.Where("title = ?", collection.Title).FirstOrCreate(collection).Error; err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	product := &models.Product{
		Title:        title,
		Slug:         service.Slugify(title),
		UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Inventory:    5,
		CollectionID: collection.ID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestGetProductRendersPriceWithTax(t *testing.T) {
	r, db := setupProductHandlerTest(t)
	product := seedHandlerProduct(t, db, "Blue Shoes", 100.00)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+uintString(product.ID), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int             `json:"status_code"`
		Data       ProductResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if resp.Data.UnitPrice.String() != "100.00" {
		t.Fatalf("unit_price want 100.00 got %s", resp.Data.UnitPrice.String())
	}
	if resp.Data.PriceWithTax.String() != "110.00" {
		t.Fatalf("price_with_tax want 110.00 got %s", resp.Data.PriceWithTax.String())
	}
	if resp.Data.Collection == nil || resp.Data.Collection.Title != "Handler Fixtures" {
		t.Fatalf("collection summary missing in response")
	}
}

func TestGetProductNotFound(t *testing.T) {
	r, _ := setupProductHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/9999", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}

func TestPatchProductAcceptsPartialBody(t *testing.T) {
	r, db := setupProductHandlerTest(t)
	product := seedHandlerProduct(t, db, "Leather Boots", 150.00)

	body := strings.NewReader(`{"inventory":3}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/products/"+uintString(product.ID), body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d (body %s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data ProductResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Inventory != 3 {
		t.Fatalf("inventory want 3 got %d", resp.Data.Inventory)
	}
	// 请求体未携带的字段必须保持原值
	if resp.Data.Title != "Leather Boots" {
		t.Fatalf("title should be untouched, got %q", resp.Data.Title)
	}
	if resp.Data.UnitPrice.String() != "150.00" {
		t.Fatalf("unit_price should be untouched, got %s", resp.Data.UnitPrice.String())
	}
}

func TestListProductsRejectsInvalidPriceFilter(t *testing.T) {
	r, _ := setupProductHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?price_min=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
}

func TestListProductsFiltersAndPaginates(t *testing.T) {
	r, db := setupProductHandlerTest(t)
	seedHandlerProduct(t, db, "Cheap Socks", 3.00)
	seedHandlerProduct(t, db, "Leather Boots", 150.00)
	seedHandlerProduct(t, db, "Running Shoes", 90.00)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?price_min=50&price_max=200&order_by=-unit_price", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Items []ProductResponse `json:"items"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Pagination.Total != 2 || len(resp.Data.Items) != 2 {
		t.Fatalf("filtered products want 2 got total=%d len=%d", resp.Pagination.Total, len(resp.Data.Items))
	}
	if resp.Data.Items[0].UnitPrice.String() != "150.00" {
		t.Fatalf("descending order should start at 150.00 got %s", resp.Data.Items[0].UnitPrice.String())
	}
}
