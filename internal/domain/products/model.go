package products

// Category agrupa los productos de la tienda.
// @Enum Food, Toys, Accessories, Care
type Category string

const (
	CategoryFood        Category = "Food"
	CategoryToys        Category = "Toys"
	CategoryAccessories Category = "Accessories"
	CategoryCare        Category = "Care"
)

type Product struct {
	ID int64

	Name        string
	Description string
	Price       int
	ImageURL    string
	Category    Category
}
