package catalog

import (
	"github.com/huertohogar/shop-backend/internal/entity"
)

// Categories is the built-in category list, used when no backend supplies one.
var Categories = []entity.Category{
	{ID: 1, Name: "Fruits"},
	{ID: 2, Name: "Vegetables"},
	{ID: 3, Name: "Organic"},
	{ID: 4, Name: "Dairy"},
}

// SeedProducts returns the built-in catalog. It is both the database seed and
// the fallback when the database is unreachable at startup.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "FR001", Name: "Fuji Apples", Price: 1200, Category: Categories[0], Stock: 150, ImageURL: "assets/img/apple.jpg", Description: "Crisp apples from the Maule Valley.", Origin: "Maule Valley, Chile", Sustainability: "Grown with sustainable farming practices.", Recipe: "Try our homemade apple pie recipe.", Recommendations: []string{"FR002", "VR001"}},
		{ID: "FR002", Name: "Valencia Oranges", Price: 1000, Category: Categories[0], Stock: 200, ImageURL: "assets/img/orange.jpg", Description: "Juicy and rich in vitamin C.", Origin: "Valparaíso Region, Chile", Sustainability: "Pesticide-free, certified organic.", Recipe: "Make a fresh juice or a citrus salad.", Recommendations: []string{"FR001", "VR002"}},
		{ID: "FR003", Name: "Cavendish Bananas", Price: 800, Category: Categories[0], Stock: 180, ImageURL: "assets/img/banana.jpg", Description: "Sweet and creamy bananas.", Origin: "Coquimbo Region, Chile", Sustainability: "Grown with efficient irrigation.", Recipe: "Great for smoothies or banana bread.", Recommendations: []string{"FR001", "PO001"}},
		{ID: "VR001", Name: "Organic Carrots", Price: 900, Category: Categories[1], Stock: 100, ImageURL: "assets/img/carrot.jpg", Description: "Crunchy and pesticide-free.", Origin: "Metropolitan Region, Chile", Sustainability: "Certified organic, no chemicals.", Recipe: "Perfect for soups or crunchy salads.", Recommendations: []string{"VR002", "VR003"}},
		{ID: "VR002", Name: "Fresh Spinach", Price: 1100, Category: Categories[1], Stock: 120, ImageURL: "assets/img/spinach.jpg", Description: "Fresh, nutrient-packed leaves.", Origin: "O'Higgins Region, Chile", Sustainability: "Sustainable hydroponic farming.", Recipe: "Use it in green smoothies or stir-fries.", Recommendations: []string{"VR001", "PO001"}},
		{ID: "VR003", Name: "Tricolor Peppers", Price: 1500, Category: Categories[1], Stock: 80, ImageURL: "assets/img/pepper.jpg", Description: "Vibrant red, green and yellow peppers.", Origin: "Araucanía Region, Chile", Sustainability: "Grown with natural fertilizers.", Recipe: "Roast them for a colorful salad.", Recommendations: []string{"VR001", "FR002"}},
		{ID: "PO001", Name: "Organic Honey", Price: 5000, Category: Categories[2], Stock: 50, ImageURL: "assets/img/honey.jpg", Description: "Pure honey from local beekeepers.", Origin: "Los Lagos Region, Chile", Sustainability: "Produced with sustainable beekeeping.", Recipe: "Ideal for sweetening tea or desserts.", Recommendations: []string{"FR003", "PL001"}},
		{ID: "PO003", Name: "Organic Quinoa", Price: 3500, Category: Categories[2], Stock: 70, ImageURL: "assets/img/quinoa.jpg", Description: "Quinoa rich in protein and nutrients.", Origin: "Atacama Region, Chile", Sustainability: "Certified organic, sustainable farming.", Recipe: "Perfect for salads or main dishes.", Recommendations: []string{"VR002", "VR003"}},
		{ID: "PL001", Name: "Whole Milk", Price: 1200, Category: Categories[3], Stock: 100, ImageURL: "assets/img/milk.jpg", Description: "Fresh milk from local farms.", Origin: "Los Ríos Region, Chile", Sustainability: "Produced on ethical farms.", Recipe: "Use it in smoothies or to make flan.", Recommendations: []string{"PO001", "FR003"}},
		{ID: "PL002", Name: "Natural Yogurt", Price: 1800, Category: Categories[3], Stock: 90, ImageURL: "assets/img/yogurt.jpg", Description: "Creamy yogurt with no added sugar.", Origin: "Los Ríos Region, Chile", Sustainability: "Made with milk from grass-fed cows.", Recipe: "Great for breakfast with fruit or granola.", Recommendations: []string{"PL001", "FR001"}},
	}
}
