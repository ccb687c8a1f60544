package memory

import (
	"context"
	_ "embed"
	"fmt"

	"vahis-pet-care-hub/internal/domain/pets"
	"vahis-pet-care-hub/internal/domain/products"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type seedPet struct {
	Name        string `yaml:"name"`
	Breed       string `yaml:"breed"`
	Type        string `yaml:"type"`
	AgeWeeks    int    `yaml:"ageWeeks"`
	Gender      string `yaml:"gender"`
	PriceMin    int    `yaml:"priceMin"`
	PriceMax    int    `yaml:"priceMax"`
	Status      string `yaml:"status"`
	ImageURL    string `yaml:"imageUrl"`
	Featured    bool   `yaml:"featured"`
	Description string `yaml:"description"`
}

type seedProduct struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Price       int    `yaml:"price"`
	ImageURL    string `yaml:"imageUrl"`
	Description string `yaml:"description"`
}

type catalogDoc struct {
	Pets     []seedPet     `yaml:"pets"`
	Products []seedProduct `yaml:"products"`
}

// SeedCatalog carga el catálogo demo pasando por los servicios (misma validación
// que el alta desde el admin). Solo si el catálogo de mascotas está vacío.
// Devuelve cuántas mascotas y productos se crearon.
func SeedCatalog(ctx context.Context, petSvc *pets.Service, productSvc *products.Service) (int, int, error) {
	existing, err := petSvc.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(existing) > 0 {
		return 0, 0, nil
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return 0, 0, fmt.Errorf("seed: parse catalog: %w", err)
	}

	for _, p := range doc.Pets {
		_, err := petSvc.Create(ctx, pets.CreateInput{
			Name:        p.Name,
			Breed:       p.Breed,
			Type:        p.Type,
			AgeWeeks:    p.AgeWeeks,
			Gender:      p.Gender,
			PriceMin:    p.PriceMin,
			PriceMax:    p.PriceMax,
			Status:      p.Status,
			ImageURL:    p.ImageURL,
			Featured:    p.Featured,
			Description: p.Description,
		})
		if err != nil {
			return 0, 0, fmt.Errorf("seed: pet %q: %w", p.Name, err)
		}
	}

	for _, p := range doc.Products {
		_, err := productSvc.Create(ctx, products.CreateInput{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
		})
		if err != nil {
			return 0, 0, fmt.Errorf("seed: product %q: %w", p.Name, err)
		}
	}

	return len(doc.Pets), len(doc.Products), nil
}
