package main

import (
	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	items := []models.CatalogItem{
		{
			Title:       "Classic Chocolate Cake",
			Description: "Three layers of dark chocolate sponge with fudge frosting.",
			Price:       models.NewMoneyFromFloat(350),
			Category:    "cakes",
			Available:   true,
		},
		{
			Title:       "Ube Cheese Pandesal",
			Description: "Soft purple yam rolls with a melted cheese center, box of 6.",
			Price:       models.NewMoneyFromFloat(120),
			Category:    "breads",
			Available:   true,
		},
		{
			Title:       "Sourdough Loaf",
			Description: "Slow fermented country loaf, baked daily.",
			Price:       models.NewMoneyFromFloat(180),
			Category:    "breads",
			Available:   true,
		},
		{
			Title:       "Blueberry Cheesecake Slice",
			Description: "Baked cheesecake topped with blueberry compote.",
			Price:       models.NewMoneyFromFloat(145),
			Category:    "pastries",
			Available:   true,
		},
		{
			Title:       "Butter Croissant",
			Description: "Laminated with cultured butter, 27 layers.",
			Price:       models.NewMoneyFromFloat(95),
			Category:    "pastries",
			Available:   true,
		},
		{
			Title:       "Assorted Cookie Box",
			Description: "A dozen cookies, bakers choice.",
			Price:       models.NewMoneyFromFloat(260),
			Category:    "cookies",
			Available:   true,
		},
	}

	for _, item := range items {
		var existing models.CatalogItem
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("failed to create catalog item %s: %v", item.Title, err)
			} else {
				stdLog.Printf("created catalog item: %s", item.Title)
			}
		} else {
			stdLog.Printf("catalog item already exists: %s", item.Title)
		}
	}

	prices := []models.CustomizationPrice{
		{Type: constants.CustomizationTypeLayer, Key: "1", Price: models.NewMoneyFromFloat(0)},
		{Type: constants.CustomizationTypeLayer, Key: "2", Price: models.NewMoneyFromFloat(150)},
		{Type: constants.CustomizationTypeLayer, Key: "3", Price: models.NewMoneyFromFloat(300)},
		{Type: constants.CustomizationTypeShape, Key: "round", Price: models.NewMoneyFromFloat(0)},
		{Type: constants.CustomizationTypeShape, Key: "square", Price: models.NewMoneyFromFloat(50)},
		{Type: constants.CustomizationTypeShape, Key: "heart", Price: models.NewMoneyFromFloat(100)},
	}

	for _, price := range prices {
		var existing models.CustomizationPrice
		if err := models.DB.Where("type = ? AND key = ?", price.Type, price.Key).First(&existing).Error; err != nil {
			if err := models.DB.Create(&price).Error; err != nil {
				stdLog.Printf("failed to create customization price %s/%s: %v", price.Type, price.Key, err)
			} else {
				stdLog.Printf("created customization price: %s/%s", price.Type, price.Key)
			}
		} else {
			stdLog.Printf("customization price already exists: %s/%s", price.Type, price.Key)
		}
	}

	if err := models.InitDefaultStaff("", ""); err != nil {
		stdLog.Printf("failed to initialize default staff account: %v", err)
	}

	stdLog.Printf("seed finished")
}
