package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"shopmart/internal/config"
	"shopmart/internal/db"
	"shopmart/internal/model"
	"shopmart/internal/repository"
	"shopmart/internal/service"
)

// SeedProduct represents one entry in the seed fixture file.
type SeedProduct struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category"`
	NewPrice string `json:"new_price"`
	OldPrice string `json:"old_price"`
}

func main() {
	fixture := flag.String("file", "seed/products.json", "path to the product fixture")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	products, err := loadFixture(*fixture)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	log.Printf("Loaded %d products from %s", len(products), *fixture)

	productRepo := repository.NewProductRepository(gormDB)
	catalog := service.NewCatalogService(productRepo, nil)
	ctx := context.Background()

	seeded := 0
	skipped := 0
	for _, item := range products {
		newPrice, err := decimal.NewFromString(item.NewPrice)
		if err != nil {
			log.Printf("Skipping %q: bad new_price %q", item.Name, item.NewPrice)
			skipped++
			continue
		}
		oldPrice, err := decimal.NewFromString(item.OldPrice)
		if err != nil {
			log.Printf("Skipping %q: bad old_price %q", item.Name, item.OldPrice)
			skipped++
			continue
		}

		created, err := catalog.AddProduct(ctx, service.NewProduct{
			Name:     item.Name,
			Image:    item.Image,
			Category: item.Category,
			NewPrice: newPrice,
			OldPrice: oldPrice,
		})
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", item.Name, err)
		}
		log.Printf("Seeded product %d: %s", created.ID, created.Name)
		seeded++
	}

	log.Printf("Seed completed: %d created, %d skipped", seeded, skipped)
}

func loadFixture(path string) ([]SeedProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []SeedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}
