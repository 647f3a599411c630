package storage

import "github.com/trendyfy/storefront/internal/models"

// SeedProducts is the demo catalog inserted when the products table is
// empty. Shared by both store implementations.
func SeedProducts() []models.Product {
	featured := []struct{ name, desc, img string }{
		{"Cartoon Tropical T-Shirt Blue", "Comfortable cotton t-shirt with tropical print", "img/about/products/f1.jpg"},
		{"Cartoon Tropical T-Shirt Pink", "Stylish pink t-shirt with cartoon design", "img/about/products/f2.jpg"},
		{"Cartoon Tropical T-Shirt Green", "Fresh green tropical design t-shirt", "img/about/products/f3.jpg"},
		{"Cartoon Tropical T-Shirt Orange", "Vibrant orange tropical t-shirt", "img/about/products/f4.jpg"},
		{"Cartoon Tropical T-Shirt Red", "Bold red cartoon t-shirt", "img/about/products/f5.jpg"},
		{"Cartoon Tropical T-Shirt Yellow", "Bright yellow tropical design", "img/about/products/f6.jpg"},
		{"Cartoon Tropical T-Shirt Purple", "Purple tropical print t-shirt", "img/about/products/f7.jpg"},
		{"Cartoon Tropical T-Shirt Navy", "Classic navy tropical t-shirt", "img/about/products/f8.jpg"},
	}
	arrivals := []struct{ name, desc, img string }{
		{"New Arrival Shirt White", "Modern white casual shirt", "img/about/products/n1.jpg"},
		{"New Arrival Shirt Black", "Elegant black casual shirt", "img/about/products/n2.jpg"},
		{"New Arrival Shirt Grey", "Comfortable grey shirt", "img/about/products/n3.jpg"},
		{"New Arrival Shirt Beige", "Stylish beige casual shirt", "img/about/products/n4.jpg"},
		{"New Arrival Shirt Blue", "Classic blue casual shirt", "img/about/products/n5.jpg"},
		{"New Arrival Shirt Brown", "Warm brown casual shirt", "img/about/products/n6.jpg"},
		{"New Arrival Shirt Olive", "Trendy olive casual shirt", "img/about/products/n7.jpg"},
		{"New Arrival Shirt Maroon", "Rich maroon casual shirt", "img/about/products/n8.jpg"},
	}
	stocks := map[string]uint{
		"f1": 50, "f2": 45, "f3": 60, "f4": 40, "f5": 55, "f6": 50, "f7": 35, "f8": 48,
		"n1": 30, "n2": 25, "n3": 40, "n4": 35, "n5": 45, "n6": 30, "n7": 28, "n8": 32,
	}

	out := make([]models.Product, 0, len(featured)+len(arrivals))
	for i, p := range featured {
		out = append(out, models.Product{
			Name:        p.name,
			Description: p.desc,
			Price:       88900,
			StockQty:    stocks[keyFor("f", i)],
			ImageURL:    p.img,
			Category:    "T-Shirts",
			IsFeatured:  true,
		})
	}
	for i, p := range arrivals {
		out = append(out, models.Product{
			Name:        p.name,
			Description: p.desc,
			Price:       88900,
			StockQty:    stocks[keyFor("n", i)],
			ImageURL:    p.img,
			Category:    "Shirts",
			IsFeatured:  false,
		})
	}
	return out
}

func keyFor(prefix string, i int) string {
	return prefix + string(rune('1'+i))
}
