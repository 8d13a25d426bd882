package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"product-api/internal/model"
)

// Writes two small seed files under data/catalog for CATALOG_SEED_FILES.
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalogs := map[string][]model.ProductInput{
		"stationery.jsonl.gz": {
			{Name: "Pen", Details: "Blue ink", Price: 1.5, Stock: 100, Image: "pen.png", Category: "Stationery"},
			{Name: "Pencil", Details: "HB graphite", Price: 0.75, Stock: 250, Image: "pencil.png", Category: "Stationery"},
			{Name: "Notebook", Details: "A5 ruled, 80 sheets", Price: 3.25, Stock: 40, Image: "notebook.png", Category: "Stationery"},
		},
		"kitchen.jsonl.gz": {
			{Name: "Mug", Details: "Ceramic, 350ml", Price: 7, Stock: 12, Image: "mug.png", Category: "Kitchen"},
			{Name: "Kettle", Details: "1.7L electric", Price: 29.99, Stock: 5, Image: "kettle.png", Category: "Kitchen"},
		},
	}

	for filename, products := range catalogs {
		filePath := filepath.Join(dataDir, filename)

		if err := createSeedFile(filePath, products); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}

	fmt.Println("\nSample catalogue files created successfully!")
	fmt.Println("CATALOG_SEED_FILES=data/catalog/stationery.jsonl.gz,data/catalog/kitchen.jsonl.gz")
}

func createSeedFile(filePath string, products []model.ProductInput) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			gzipWriter.Close()
			return err
		}
	}

	return gzipWriter.Close()
}
