package repository

import (
	"errors"

	"github.com/0x00whitecode/hng-audiophile/models"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository serves the immutable in-memory catalog. The data is
// loaded once at construction and never mutated.
type ProductRepository struct {
	products []models.Product
	byID     map[string]*models.Product
	bySlug   map[string]*models.Product
}

// NewProductRepository indexes the given products by id and slug. Passing nil
// loads the default catalog.
func NewProductRepository(products []models.Product) *ProductRepository {
	if products == nil {
		products = defaultCatalog
	}

	repo := &ProductRepository{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
		bySlug:   make(map[string]*models.Product, len(products)),
	}
	for i := range repo.products {
		p := &repo.products[i]
		repo.byID[p.ID] = p
		repo.bySlug[p.Slug] = p
	}
	return repo
}

// List returns all catalog products in their defined order.
func (r *ProductRepository) List() []models.Product {
	return r.products
}

// FindByID returns the product with the given id.
func (r *ProductRepository) FindByID(id string) (*models.Product, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, ErrProductNotFound
}

// FindBySlug returns the product with the given URL slug.
func (r *ProductRepository) FindBySlug(slug string) (*models.Product, error) {
	if p, ok := r.bySlug[slug]; ok {
		return p, nil
	}
	return nil, ErrProductNotFound
}

// FindByCategory returns all products in a category. An unknown category
// yields an empty list, not an error.
func (r *ProductRepository) FindByCategory(category models.Category) []models.Product {
	var result []models.Product
	for _, p := range r.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

var defaultCatalog = []models.Product{
	{
		ID:          "xx99m2",
		Slug:        "xx99-mark-two-headphones",
		Name:        "XX99 Mark II Headphones",
		Category:    models.CategoryHeadphones,
		Description: "The pinnacle of pristine audio. Experience natural, lifelike sound with superb detail and control.",
		Price:       2999,
		Images: models.ProductImages{
			Hero:     models.ImageSet{Desktop: "/images/hero1.png", Tablet: "/images/hero1.png", Mobile: "/images/hero1.png"},
			Category: models.ImageSet{Desktop: "/images/1.png", Tablet: "/images/1.png", Mobile: "/images/1.png"},
			Gallery:  []string{"/images/placeholder.svg", "/images/placeholder.svg", "/images/placeholder.svg"},
		},
	},
	{
		ID:          "zx9",
		Slug:        "zx9-speaker",
		Name:        "ZX9 Speaker",
		Category:    models.CategorySpeakers,
		Description: "An upgrade to premium speakers. Enjoy clear, room-filling sound with exceptional bass response.",
		Price:       4500,
		Images: models.ProductImages{
			Hero:     models.ImageSet{Desktop: "/images/zx9/hero-desktop.svg", Tablet: "/images/zx9/hero-tablet.svg", Mobile: "/images/zx9/hero-mobile.svg"},
			Category: models.ImageSet{Desktop: "/images/3.png", Tablet: "/images/3.png", Mobile: "/images/3.png"},
			Gallery:  []string{"/images/placeholder.svg", "/images/placeholder.svg", "/images/placeholder.svg"},
		},
	},
	{
		ID:          "zx7",
		Slug:        "zx7-speaker",
		Name:        "ZX7 Speaker",
		Category:    models.CategorySpeakers,
		Description: "Exceptional performance at an incredible value. Designed for balanced, accurate sound reproduction.",
		Price:       3500,
		Images: models.ProductImages{
			Hero:     models.ImageSet{Desktop: "/images/zx7/hero-desktop.svg", Tablet: "/images/zx7/hero-tablet.svg", Mobile: "/images/zx7/hero-mobile.svg"},
			Category: models.ImageSet{Desktop: "/images/zx7/category-desktop.svg", Tablet: "/images/zx7/category-tablet.svg", Mobile: "/images/zx7/category-mobile.svg"},
			Gallery:  []string{"/images/placeholder.svg", "/images/placeholder.svg", "/images/placeholder.svg"},
		},
	},
	{
		ID:          "yx1",
		Slug:        "yx1-earphones",
		Name:        "YX1 Earphones",
		Category:    models.CategoryEarphones,
		Description: "Compact and comfortable with refined audio clarity. Ideal for everyday listening.",
		Price:       599,
		Images: models.ProductImages{
			Hero:     models.ImageSet{Desktop: "/images/yx1/hero-desktop.svg", Tablet: "/images/yx1/hero-tablet.svg", Mobile: "/images/yx1/hero-mobile.svg"},
			Category: models.ImageSet{Desktop: "/images/2.png", Tablet: "/images/2.png", Mobile: "/images/2.png"},
			Gallery:  []string{"/images/placeholder.svg", "/images/placeholder.svg", "/images/placeholder.svg"},
		},
	},
}
