package models

type MenuItem struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           int      `json:"price"`
	Description     string   `json:"description"`
	Ingredients     []string `json:"ingredients"`
	ImageUrl        string   `json:"imageUrl"`
	PopularityScore int      `json:"popularityScore"`
	Featured        bool     `json:"featured"`
}

type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DeliveryFee is the fixed charge added to every order total.
const DeliveryFee = 500

var Categories = []Category{
	{Name: "Rice", Icon: "🍚"},
	{Name: "Swallow", Icon: "🥘"},
	{Name: "Snacks", Icon: "🍖"},
	{Name: "Drinks", Icon: "🥤"},
}

// MenuData is the fixed storefront catalog. It is defined at build time and
// never mutated at runtime; availability is tracked separately by item id.
var MenuData = []MenuItem{
	{
		ID:              1,
		Name:            "Jollof Rice",
		Category:        "Rice",
		Price:           2500,
		Description:     "Aromatic West African rice cooked in tomato and spices",
		Ingredients:     []string{"Long grain rice", "Tomatoes", "Peppers", "Onions", "Spices"},
		ImageUrl:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
		PopularityScore: 95,
		Featured:        true,
	},
	{
		ID:              2,
		Name:            "Fried Rice",
		Category:        "Rice",
		Price:           2200,
		Description:     "Stir-fried rice with vegetables, egg, and choice of protein",
		Ingredients:     []string{"Rice", "Egg", "Carrots", "Peas", "Onions"},
		ImageUrl:        "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=300&fit=crop",
		PopularityScore: 88,
		Featured:        true,
	},
	{
		ID:              3,
		Name:            "White Rice & Stew",
		Category:        "Rice",
		Price:           2300,
		Description:     "Fluffy white rice served with rich tomato-based stew",
		Ingredients:     []string{"White rice", "Tomato stew", "Peppers", "Onions"},
		ImageUrl:        "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400&h=300&fit=crop",
		PopularityScore: 82,
	},
	{
		ID:              4,
		Name:            "Coconut Rice",
		Category:        "Rice",
		Price:           2600,
		Description:     "Rice cooked in aromatic coconut milk with seasonal vegetables",
		Ingredients:     []string{"Rice", "Coconut milk", "Mixed vegetables", "Spices"},
		ImageUrl:        "https://images.unsplash.com/photo-1596040694312-923d12cb5d5d?w=400&h=300&fit=crop",
		PopularityScore: 75,
	},
	{
		ID:              5,
		Name:            "Fufu & Egusi Soup",
		Category:        "Swallow",
		Price:           3000,
		Description:     "Traditional pounded yam with creamy melon seed soup",
		Ingredients:     []string{"Yam", "Egusi seeds", "Leafy greens", "Protein", "Spices"},
		ImageUrl:        "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=400&h=300&fit=crop",
		PopularityScore: 92,
		Featured:        true,
	},
	{
		ID:              6,
		Name:            "Pounded Yam",
		Category:        "Swallow",
		Price:           2800,
		Description:     "Smooth pounded yam served with your choice of soup",
		Ingredients:     []string{"White yam", "Butter", "Salt"},
		ImageUrl:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
		PopularityScore: 85,
	},
	{
		ID:              7,
		Name:            "Amala & Okra Soup",
		Category:        "Swallow",
		Price:           2700,
		Description:     "Smooth yam flour dough with slimy okra soup",
		Ingredients:     []string{"Yam flour", "Okra", "Peppers", "Tomatoes", "Protein"},
		ImageUrl:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop",
		PopularityScore: 78,
	},
	{
		ID:              8,
		Name:            "Garri & Soup",
		Category:        "Swallow",
		Price:           2400,
		Description:     "Cassava garri with hot soup - a true comfort meal",
		Ingredients:     []string{"Garri", "Cassava", "Hot soup", "Peppers"},
		ImageUrl:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
		PopularityScore: 70,
	},
	{
		ID:              9,
		Name:            "Meat Pie",
		Category:        "Snacks",
		Price:           800,
		Description:     "Flaky pastry filled with seasoned ground meat",
		Ingredients:     []string{"Pastry", "Ground meat", "Onions", "Spices", "Egg"},
		ImageUrl:        "https://images.unsplash.com/photo-1566781857391-7b64cd2d7d47?w=400&h=300&fit=crop",
		PopularityScore: 88,
	},
	{
		ID:              10,
		Name:            "Spring Rolls",
		Category:        "Snacks",
		Price:           600,
		Description:     "Crispy rolls filled with vegetables and protein",
		Ingredients:     []string{"Wrapper", "Cabbage", "Carrots", "Protein", "Spices"},
		ImageUrl:        "https://images.unsplash.com/photo-1609617262527-40ee8e34ec2a?w=400&h=300&fit=crop",
		PopularityScore: 81,
	},
	{
		ID:              11,
		Name:            "Suya (Grilled Meat)",
		Category:        "Snacks",
		Price:           1200,
		Description:     "Spicy grilled meat skewers with peanut coating",
		Ingredients:     []string{"Beef", "Peanuts", "Paprika", "Cayenne pepper", "Spices"},
		ImageUrl:        "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=300&fit=crop",
		PopularityScore: 94,
	},
	{
		ID:              12,
		Name:            "Egg Roll",
		Category:        "Snacks",
		Price:           500,
		Description:     "Soft bread filled with fried egg and vegetables",
		Ingredients:     []string{"Bread", "Egg", "Onions", "Tomatoes", "Pepper"},
		ImageUrl:        "https://images.unsplash.com/photo-1635521076201-4d86db2c6ba0?w=400&h=300&fit=crop",
		PopularityScore: 76,
	},
	{
		ID:              13,
		Name:            "Fresh Juice (Orange)",
		Category:        "Drinks",
		Price:           500,
		Description:     "Freshly squeezed orange juice",
		Ingredients:     []string{"Fresh oranges", "Sugar", "Ice"},
		ImageUrl:        "https://images.unsplash.com/photo-1600271886742-f049cd1dcb47?w=400&h=300&fit=crop",
		PopularityScore: 79,
	},
	{
		ID:              14,
		Name:            "Zobo (Hibiscus)",
		Category:        "Drinks",
		Price:           400,
		Description:     "Traditional hibiscus drink served cold",
		Ingredients:     []string{"Hibiscus flowers", "Ginger", "Sugar", "Ice"},
		ImageUrl:        "https://images.unsplash.com/photo-1543181286-19c0d9efecf0?w=400&h=300&fit=crop",
		PopularityScore: 72,
	},
	{
		ID:              15,
		Name:            "Mango Smoothie",
		Category:        "Drinks",
		Price:           600,
		Description:     "Creamy mango smoothie with yogurt",
		Ingredients:     []string{"Fresh mango", "Yogurt", "Milk", "Honey", "Ice"},
		ImageUrl:        "https://images.unsplash.com/photo-1590080876759-cd849d19d915?w=400&h=300&fit=crop",
		PopularityScore: 85,
	},
	{
		ID:              16,
		Name:            "Ginger Drink",
		Category:        "Drinks",
		Price:           450,
		Description:     "Spicy ginger tea - perfect for digestion",
		Ingredients:     []string{"Fresh ginger", "Lemon", "Honey", "Water"},
		ImageUrl:        "https://images.unsplash.com/photo-1599599810694-b5ac4dd33fbe?w=400&h=300&fit=crop",
		PopularityScore: 68,
	},
}

// FindMenuItem looks an item up by id. The second return is false when the id
// is not in the catalog, which callers must treat as a stale reference, not a
// fatal condition.
func FindMenuItem(id int) (MenuItem, bool) {
	for _, item := range MenuData {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
