package controllers

import (
	"net/http"

	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Repo *repository.ProductRepository
}

func NewProductController(repo *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

// ListProducts returns the full catalog
func (pc *ProductController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": pc.Repo.List()})
}

// GetProduct returns a single product by its URL slug
func (pc *ProductController) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := pc.Repo.FindBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListByCategory returns the products of one category
func (pc *ProductController) ListByCategory(c *gin.Context) {
	category := models.Category(c.Param("name"))
	if !category.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}

	products := pc.Repo.FindByCategory(category)
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "products": products})
}
