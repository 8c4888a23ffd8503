package store

import "github.com/jaskaran778/grind-fuel/model"

// DefaultCatalog is the Grind Fuel product line, loaded when the
// products table is empty. Prices are INR.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Energy Surge", Category: "hydration", Price: 249, Description: "Electrolyte-packed energy drink", Image: "/images/drinks (1).png"},
		{ID: "2", Name: "Focus Flow", Category: "hydration", Price: 249, Description: "Clean caffeine, zero crash", Image: "/images/drinks (2).png"},
		{ID: "3", Name: "Hyper Hydrate", Category: "hydration", Price: 299, Description: "Maximum hydration formula", Image: "/images/drinks (3).png"},
		{ID: "4", Name: "Power Punch", Category: "hydration", Price: 249, Description: "Fruit blast with B vitamins", Image: "/images/drinks (4).png"},
		{ID: "5", Name: "Night Mode", Category: "hydration", Price: 349, Description: "Gaming energy, all night long", Image: "/images/drinks (5).png"},
		{ID: "6", Name: "Protein Bytes", Category: "snacks", Price: 399, Description: "20g protein, low carb snack bites", Image: "/images/snacks (1).png"},
		{ID: "7", Name: "Focus Crunch", Category: "snacks", Price: 349, Description: "Almond & dark chocolate protein bar", Image: "/images/snacks (2).png"},
		{ID: "8", Name: "Brain Fuel", Category: "snacks", Price: 499, Description: "Nootropic-infused nut mix", Image: "/images/snacks (3).png"},
		{ID: "9", Name: "Power Cookies", Category: "snacks", Price: 449, Description: "Protein-packed gaming fuel", Image: "/images/snacks (4).png"},
		{ID: "10", Name: "Reaction Wafers", Category: "snacks", Price: 299, Description: "Quick energy, great taste", Image: "/images/snacks (5).png"},
		{ID: "11", Name: "Focus Chew", Category: "gum", Price: 149, Description: "Caffeine + L-theanine gum", Image: "/images/gum (1).png"},
		{ID: "12", Name: "Reaction Boost", Category: "gum", Price: 149, Description: "Faster reaction time formula", Image: "/images/gum (2).png"},
		{ID: "13", Name: "Brain Blast", Category: "gum", Price: 149, Description: "Nootropic-infused focus gum", Image: "/images/gum (3).png"},
		{ID: "14", Name: "Mint Rush", Category: "gum", Price: 149, Description: "Refreshing energy kick", Image: "/images/gum (4).png"},
		{ID: "15", Name: "Power Chew", Category: "gum", Price: 199, Description: "Long-lasting energy release", Image: "/images/gum (5).png"},
	}
}
