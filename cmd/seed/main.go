package main

import (
	"fmt"
	"time"

	"github.com/storehub/internal/config"
	"github.com/storehub/internal/constants"
	"github.com/storehub/internal/logger"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加集合
	collections := []models.Collection{
		{Title: "Footwear"},
		{Title: "Beauty"},
		{Title: "Groceries"},
	}

	collectionIDs := map[string]uint{}
	for _, col := range collections {
		var existing models.Collection
		if err := models.DB.Where("title = ?", col.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&col).Error; err != nil {
				stdLog.Printf("Failed to create collection %s: %v", col.Title, err)
				continue
			}
			stdLog.Printf("Created collection: %s", col.Title)
			collectionIDs[col.Title] = col.ID
		} else {
			stdLog.Printf("Collection already exists: %s", col.Title)
			collectionIDs[col.Title] = existing.ID
		}
	}

	// 添加商品
	products := []models.Product{
		{
			Title:        "Blue Running Shoes",
			Description:  "Lightweight running shoes with breathable mesh upper.",
			UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(89.99)),
			Inventory:    40,
			CollectionID: collectionIDs["Footwear"],
		},
		{
			Title:        "Leather Boots",
			Description:  "Full-grain leather boots built for daily wear.",
			UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(149.50)),
			Inventory:    15,
			CollectionID: collectionIDs["Footwear"],
		},
		{
			Title:        "Aloe Face Cream",
			Description:  "Moisturizing face cream with aloe vera extract.",
			UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(19.90)),
			Inventory:    120,
			CollectionID: collectionIDs["Beauty"],
		},
		{
			Title:        "Olive Oil 1L",
			Description:  "Cold-pressed extra virgin olive oil.",
			UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(12.45)),
			Inventory:    200,
			CollectionID: collectionIDs["Groceries"],
		},
	}

	for _, prod := range products {
		if prod.CollectionID == 0 {
			stdLog.Printf("Skip product %s: collection_id missing", prod.Title)
			continue
		}
		prod.Slug = service.Slugify(prod.Title)
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.Title = prod.Title
			existing.Description = prod.Description
			existing.UnitPrice = prod.UnitPrice
			existing.Inventory = prod.Inventory
			existing.CollectionID = prod.CollectionID
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	// 添加顾客档案
	birthDate := time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{UserID: 1, Phone: "13800000001", BirthDate: &birthDate, Membership: constants.MembershipGold},
		{UserID: 2, Phone: "13800000002", Membership: constants.MembershipBronze},
	}

	for _, cust := range customers {
		var existing models.Customer
		if err := models.DB.Where("user_id = ?", cust.UserID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cust).Error; err != nil {
				stdLog.Printf("Failed to create customer user_id=%d: %v", cust.UserID, err)
			} else {
				stdLog.Printf("Created customer: user_id=%d", cust.UserID)
			}
		} else {
			stdLog.Printf("Customer already exists: user_id=%d", cust.UserID)
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Collections")
	fmt.Println("- 4 Products")
	fmt.Println("- 2 Customers")
}
