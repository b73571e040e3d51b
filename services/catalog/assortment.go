package catalog

var defaultAssortment = []Product{
	{
		UID:         "product_hockey_stick",
		Name:        "Hockey stick",
		Brand:       "Brabo",
		ProductType: "Hockey",
		Price:       19000,
		Currency:    "EUR",
		ImageURL:    "/images/product_hockey_stick.png",
	},
	{
		UID:         "product_hockey_shoes",
		Name:        "Hockey shoes",
		Brand:       "Asics",
		ProductType: "Hockey",
		Price:       12000,
		Currency:    "EUR",
		ImageURL:    "/images/product_hockey_shoes.png",
	},
	{
		UID:         "product_tennis_racket",
		Name:        "Tennis racket",
		Brand:       "Wilson",
		ProductType: "Tennis",
		Price:       16900,
		Currency:    "EUR",
		ImageURL:    "/images/product_tennis_racket.png",
	},
	{
		UID:         "product_tennis_balls",
		Name:        "Tennis balls",
		Brand:       "Dunlop",
		ProductType: "Tennis",
		Price:       1000,
		Currency:    "EUR",
		ImageURL:    "/images/product_tennis_balls.png",
	},
	{
		UID:         "product_tennis_shoes",
		Name:        "Tennis shoes",
		Brand:       "Asics",
		ProductType: "Tennis",
		Price:       12000,
		Currency:    "EUR",
		ImageURL:    "/images/product_tennis_shoes.png",
	},
	{
		UID:         "product_running_shoes",
		Name:        "Running shoes",
		Brand:       "Saucony",
		ProductType: "Running",
		Price:       12000,
		Currency:    "EUR",
		ImageURL:    "/images/product_running_shoes.png",
	},
	{
		UID:         "product_running_shirt",
		Name:        "Running shirt",
		Brand:       "Nike",
		ProductType: "Running",
		Price:       5000,
		Currency:    "EUR",
		ImageURL:    "/images/product_running_shirt.png",
	},
	{
		UID:         "product_running_socks",
		Name:        "Running socks",
		Brand:       "Falke",
		ProductType: "Running",
		Price:       1000,
		Currency:    "EUR",
		ImageURL:    "/images/product_running_socks.png",
	},
}
