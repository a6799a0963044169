package catalog

import "github.com/poiesic/prodsearch/core"

// Category names used by the sample catalog.
const (
	CategoryElectronics = "Electronics"
	CategoryFood        = "Food"
	CategoryClothing    = "Clothing"
	CategoryHomeKitchen = "Home & Kitchen"
)

var sample = []core.Product{
	{ID: 1, Name: "Smartphone", Description: "High-end smartphone with advanced camera and long battery life", Category: CategoryElectronics},
	{ID: 2, Name: "Laptop", Description: "Powerful laptop for professional use with dedicated graphics card", Category: CategoryElectronics},
	{ID: 3, Name: "Headphones", Description: "Wireless noise-cancelling headphones with premium sound quality", Category: CategoryElectronics},
	{ID: 4, Name: "Smart Watch", Description: "Fitness tracker and smartwatch with heart rate monitoring", Category: CategoryElectronics},
	{ID: 5, Name: "Tablet", Description: "Lightweight tablet with high-resolution display for reading and browsing", Category: CategoryElectronics},
	{ID: 6, Name: "Bluetooth Speaker", Description: "Portable waterproof speaker with deep bass and long battery life", Category: CategoryElectronics},
	{ID: 7, Name: "Digital Camera", Description: "Professional DSLR camera with multiple lenses and 4K video recording", Category: CategoryElectronics},
	{ID: 8, Name: "Gaming Console", Description: "Next-generation gaming console with 4K graphics and fast loading times", Category: CategoryElectronics},
	{ID: 9, Name: "External Hard Drive", Description: "High-capacity storage device for backups and file transfers", Category: CategoryElectronics},
	{ID: 10, Name: "Wireless Mouse", Description: "Ergonomic wireless mouse with customizable buttons and long battery life", Category: CategoryElectronics},

	{ID: 11, Name: "Organic Pasta", Description: "Whole grain pasta made from organic ingredients, perfect for healthy meals", Category: CategoryFood},
	{ID: 12, Name: "Chocolate Cookies", Description: "Delicious cookies with chunks of premium dark chocolate", Category: CategoryFood},
	{ID: 13, Name: "Fresh Fruit Basket", Description: "Assortment of seasonal fruits including apples, oranges, and berries", Category: CategoryFood},
	{ID: 14, Name: "Gourmet Coffee", Description: "Premium single-origin coffee beans with rich flavor and aroma", Category: CategoryFood},
	{ID: 15, Name: "Artisan Bread", Description: "Freshly baked sourdough bread made with traditional methods", Category: CategoryFood},
	{ID: 16, Name: "Protein Bars", Description: "Nutritious snack bars with 20g of protein and natural ingredients", Category: CategoryFood},
	{ID: 17, Name: "Organic Honey", Description: "Raw, unfiltered honey from local beekeepers with natural health benefits", Category: CategoryFood},
	{ID: 18, Name: "Gourmet Cheese Selection", Description: "Curated selection of artisanal cheeses from around the world", Category: CategoryFood},

	{ID: 19, Name: "Winter Jacket", Description: "Insulated waterproof jacket for cold weather with adjustable hood", Category: CategoryClothing},
	{ID: 20, Name: "Running Shoes", Description: "Lightweight athletic shoes with cushioned soles for runners", Category: CategoryClothing},
	{ID: 21, Name: "Cotton T-Shirt", Description: "Soft, breathable cotton t-shirt available in various colors", Category: CategoryClothing},
	{ID: 22, Name: "Denim Jeans", Description: "Classic fit jeans made from premium denim with stretch comfort", Category: CategoryClothing},

	{ID: 23, Name: "Coffee Maker", Description: "Programmable coffee machine with built-in grinder for fresh coffee", Category: CategoryHomeKitchen},
	{ID: 24, Name: "Non-stick Cookware Set", Description: "Complete set of pots and pans with durable non-stick coating", Category: CategoryHomeKitchen},
	{ID: 25, Name: "Smart Thermostat", Description: "Wi-Fi enabled thermostat that learns your schedule to save energy", Category: CategoryHomeKitchen},
	{ID: 26, Name: "Air Purifier", Description: "HEPA filter air purifier that removes allergens and pollutants", Category: CategoryHomeKitchen},
}

// Sample returns a copy of the built-in 26 product catalog in catalog order.
func Sample() []core.Product {
	out := make([]core.Product, len(sample))
	copy(out, sample)
	return out
}
