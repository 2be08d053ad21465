package models

// Category is one of the fixed product categories.
type Category string

const (
	CategoryHeadphones Category = "headphones"
	CategorySpeakers   Category = "speakers"
	CategoryEarphones  Category = "earphones"
)

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the known set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHeadphones, CategorySpeakers, CategoryEarphones:
		return true
	}
	return false
}

// ImageSet holds the responsive variants for one image slot.
type ImageSet struct {
	Desktop string `json:"desktop"`
	Tablet  string `json:"tablet"`
	Mobile  string `json:"mobile"`
}

// ProductImages bundles the hero and category shots plus the gallery list.
type ProductImages struct {
	Hero     ImageSet `json:"hero"`
	Category ImageSet `json:"category"`
	Gallery  []string `json:"gallery"`
}

// Product is a catalog record. Prices are integer currency units.
// Products are loaded once at startup and never mutated.
type Product struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	Description string        `json:"description"`
	Price       int           `json:"price"`
	Images      ProductImages `json:"images"`
}
