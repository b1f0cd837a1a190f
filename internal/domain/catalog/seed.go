// internal/domain/catalog/seed.go
package catalog

// accessoryCategories are the categories treated as accessories for the
// dedicated browse page and the checkout upsell step.
var accessoryCategories = map[string]bool{
	"Socks":     true,
	"Laces":     true,
	"Care":      true,
	"Insoles":   true,
	"Shoe Bags": true,
}

// Seed returns the static storefront catalog. Prices are in cents.
func Seed() []Product {
	return []Product{
		{
			ID:       "1",
			Name:     "Urban Athletic Pro",
			Price:    29900,
			Image:    "/images/mens-athletic-white.jpg",
			Category: "Athletic",
			Gender:   GenderMen,
			Sizes:    []string{"7", "8", "9", "10", "11", "12", "13"},
			Colors: []Color{
				{Name: "White/Gray", Value: "#F8F9FA", Images: []string{"/images/mens-athletic-white.jpg", "/images/mens-athletic-white-2.jpg"}},
				{Name: "Black/Gray", Value: "#212529", Images: []string{"/images/mens-athletic-black.jpg", "/images/mens-athletic-black-2.jpg"}},
			},
			Description:  "Premium athletic sneaker engineered for peak performance",
			UseCases:     []string{"Running", "Training", "Casual wear", "Gym workouts"},
			IsNewArrival: true,
			Featured:     true,
		},
		{
			ID:            "2",
			Name:          "Classic Street",
			Price:         19900,
			OriginalPrice: 24900,
			Image:         "/images/mens-casual-navy.jpg",
			Category:      "Casual",
			Gender:        GenderMen,
			Sizes:         []string{"7", "8", "9", "10", "11", "12"},
			Colors: []Color{
				{Name: "Navy/White", Value: "#1B365D", Images: []string{"/images/mens-casual-navy.jpg", "/images/mens-casual-navy-2.jpg"}},
				{Name: "White/Gray", Value: "#FFFFFF", Images: []string{"/images/mens-casual-white.jpg", "/images/mens-casual-white-2.jpg"}},
			},
			Description: "Timeless casual sneaker with modern comfort technology",
			UseCases:    []string{"Daily wear", "Weekend outings", "Travel", "Casual office"},
			IsOnSale:    true,
			Featured:    true,
		},
		{
			ID:       "3",
			Name:     "Elite Court Pro",
			Price:    34900,
			Image:    "/images/mens-basketball-black.jpg",
			Category: "Basketball",
			Gender:   GenderMen,
			Sizes:    []string{"8", "9", "10", "11", "12", "13", "14"},
			Colors: []Color{
				{Name: "Black/Gold", Value: "#000000", Images: []string{"/images/mens-basketball-black.jpg", "/images/mens-basketball-black-2.jpg"}},
				{Name: "Red/White", Value: "#DC3545", Images: []string{"/images/mens-basketball-red.jpg", "/images/mens-basketball-red-2.jpg"}},
			},
			Description: "Professional basketball shoe with superior court performance",
			UseCases:    []string{"Basketball", "Indoor sports", "Athletic training", "Street ball"},
			Featured:    true,
		},
		{
			ID:       "4",
			Name:     "Velocity Runner",
			Price:    27900,
			Image:    "/images/womens-running-pink.jpg",
			Category: "Running",
			Gender:   GenderWomen,
			Sizes:    []string{"5", "6", "7", "8", "9", "10", "11"},
			Colors: []Color{
				{Name: "Pink/White", Value: "#E91E63", Images: []string{"/images/womens-running-pink.jpg", "/images/womens-running-pink-2.jpg"}},
				{Name: "Black/White", Value: "#000000", Images: []string{"/images/womens-running-black.jpg", "/images/womens-running-black-2.jpg"}},
			},
			Description:  "Lightweight running shoe designed for women athletes",
			UseCases:     []string{"Running", "Jogging", "Cardio", "Marathon training"},
			IsNewArrival: true,
			Featured:     true,
		},
		{
			ID:            "5",
			Name:          "Minimalist Chic",
			Price:         15900,
			OriginalPrice: 19900,
			Image:         "/images/womens-casual-beige.jpg",
			Category:      "Casual",
			Gender:        GenderWomen,
			Sizes:         []string{"5", "6", "7", "8", "9", "10"},
			Colors: []Color{
				{Name: "Beige/Cream", Value: "#D2B48C", Images: []string{"/images/womens-casual-beige.jpg", "/images/womens-casual-beige-2.jpg"}},
				{Name: "White/Gray", Value: "#FFFFFF", Images: []string{"/images/womens-casual-white.jpg", "/images/womens-casual-white-2.jpg"}},
			},
			Description: "Minimalist design meets all-day comfort",
			UseCases:    []string{"Daily wear", "Work", "Shopping", "Casual dining"},
			IsOnSale:    true,
			Featured:    true,
		},
		{
			ID:       "6",
			Name:     "Fashion Forward",
			Price:    25900,
			Image:    "/images/womens-fashion-purple.jpg",
			Category: "Fashion",
			Gender:   GenderWomen,
			Sizes:    []string{"5", "6", "7", "8", "9", "10", "11"},
			Colors: []Color{
				{Name: "Lavender/White", Value: "#E6E6FA", Images: []string{"/images/womens-fashion-purple.jpg", "/images/womens-fashion-purple-2.jpg"}},
				{Name: "Black/Gold", Value: "#000000", Images: []string{"/images/womens-fashion-black.jpg", "/images/womens-fashion-black-2.jpg"}},
			},
			Description: "Statement sneaker that elevates any outfit",
			UseCases:    []string{"Fashion", "Night out", "Social events", "Street style"},
			Featured:    true,
		},
		{
			ID:       "7",
			Name:     "Performance Crew Socks",
			Price:    1900,
			Image:    "/images/accessory-socks-white.jpg",
			Category: "Socks",
			Gender:   GenderUnisex,
			Sizes:    []string{"S", "M", "L"},
			Colors: []Color{
				{Name: "White", Value: "#FFFFFF", Images: []string{"/images/accessory-socks-white.jpg"}},
				{Name: "Black", Value: "#000000", Images: []string{"/images/accessory-socks-black.jpg"}},
			},
			Description:  "Moisture-wicking crew socks with arch support",
			UseCases:     []string{"Running", "Training", "Daily wear"},
			IsNewArrival: true,
		},
		{
			ID:            "8",
			Name:          "Premium Waxed Laces",
			Price:         900,
			OriginalPrice: 1200,
			Image:         "/images/accessory-laces-black.jpg",
			Category:      "Laces",
			Gender:        GenderUnisex,
			Sizes:         []string{"One Size"},
			Colors: []Color{
				{Name: "Black", Value: "#000000", Images: []string{"/images/accessory-laces-black.jpg"}},
				{Name: "White", Value: "#FFFFFF", Images: []string{"/images/accessory-laces-white.jpg"}},
			},
			Description: "Durable waxed cotton laces that hold their knot",
			IsOnSale:    true,
		},
		{
			ID:       "9",
			Name:     "Sneaker Care Kit",
			Price:    2900,
			Image:    "/images/accessory-care-kit.jpg",
			Category: "Care",
			Gender:   GenderUnisex,
			Sizes:    []string{"One Size"},
			Colors: []Color{
				{Name: "Standard", Value: "#6C757D", Images: []string{"/images/accessory-care-kit.jpg"}},
			},
			Description: "Cleaning solution, brush and microfiber cloth for all materials",
			UseCases:    []string{"Shoe care"},
		},
	}
}
