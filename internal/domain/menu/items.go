package menu

// The static Lumina menu. Prices are in USD.
var menuItems = []Item{
	{
		ID:          "s1",
		Name:        "Heirloom Burrata",
		Description: "Fresh pugliese burrata, heirloom tomatoes, basil pesto, and aged balsamic glaze.",
		Price:       24,
		Category:    CategoryStarter,
		Tags:        []string{"V", "GF", "Organic"},
		Calories:    320,
	},
	{
		ID:          "s2",
		Name:        "Wagyu Beef Tartare",
		Description: "Hand-cut A5 Wagyu, cured egg yolk, capers, shallots, served with truffle crostini.",
		Price:       32,
		Category:    CategoryStarter,
		Tags:        []string{"Raw", "Premium"},
		Calories:    280,
	},
	{
		ID:          "s3",
		Name:        "Scallop Carpaccio",
		Description: "Hokkaido scallops, yuzu pearls, micro cilantro, and chili oil.",
		Price:       28,
		Category:    CategoryStarter,
		Tags:        []string{"Seafood", "GF"},
		Calories:    190,
	},
	{
		ID:          "m1",
		Name:        "Miso Glazed Black Cod",
		Description: "Sustainably sourced black cod marinated in saikyo miso, served with bok choy and ginger dashi.",
		Price:       48,
		Category:    CategoryMain,
		Tags:        []string{"GF", "Signature", "Seafood"},
		Calories:    420,
	},
	{
		ID:          "m2",
		Name:        "Herb-Crusted Lamb Rack",
		Description: "New Zealand lamb rack with a rosemary-dijon crust, fondant potatoes, and pomegranate reduction.",
		Price:       52,
		Category:    CategoryMain,
		Tags:        []string{"GF", "Meat"},
		Calories:    650,
	},
	{
		ID:          "m3",
		Name:        "Wild Mushroom Risotto",
		Description: "Acquerello rice, porcini and chanterelle mushrooms, finished with truffle butter and parmesan.",
		Price:       36,
		Category:    CategoryMain,
		Tags:        []string{"V", "Vegetarian"},
		Calories:    580,
	},
	{
		ID:          "m4",
		Name:        "Pan-Seared Duck Breast",
		Description: "Magret duck breast, spiced carrot purée, roasted figs, and star anise jus.",
		Price:       45,
		Category:    CategoryMain,
		Tags:        []string{"GF", "Meat"},
		Calories:    510,
	},
	{
		ID:          "m5",
		Name:        "Truffle Tagliolini",
		Description: "House-made pasta, butter emulsion, and shaved fresh black winter truffles.",
		Price:       42,
		Category:    CategoryMain,
		Tags:        []string{"V", "Pasta"},
		Calories:    480,
	},
	{
		ID:          "d1",
		Name:        "Valrhona Chocolate Sphere",
		Description: "Dark chocolate dome, hazelnut praline mousse, warm salted caramel pour-over.",
		Price:       22,
		Category:    CategoryDessert,
		Tags:        []string{"Sweet", "Experience"},
		Calories:    450,
	},
	{
		ID:          "d2",
		Name:        "Yuzu & Basil Tart",
		Description: "Zesty yuzu curd, thai basil gel, meringue shards, and shortbread crust.",
		Price:       18,
		Category:    CategoryDessert,
		Tags:        []string{"V", "Citrus"},
		Calories:    320,
	},
	{
		ID:          "d3",
		Name:        "Pistachio Soufflé",
		Description: "Airy pistachio soufflé served with raspberry coulis and vanilla bean gelato.",
		Price:       20,
		Category:    CategoryDessert,
		Tags:        []string{"Sweet", "Nuts"},
		Calories:    380,
	},
	{
		ID:          "dr1",
		Name:        "Smoked Zero-Proof Old Fashioned",
		Description: "Non-alcoholic botanical spirit, maple syrup, bitters alternative, smoked with hickory.",
		Price:       18,
		Category:    CategoryDrink,
		Tags:        []string{"Zero-Proof", "Signature"},
		Calories:    45,
	},
	{
		ID:          "dr2",
		Name:        "Sparkling White Tea & Elderflower",
		Description: "Fermented white tea, elderflower cordial, lemon zest. A complex wine alternative.",
		Price:       16,
		Category:    CategoryDrink,
		Tags:        []string{"Zero-Proof", "Sparkling"},
		Calories:    60,
	},
	{
		ID:          "dr3",
		Name:        "Saffron & Rose Elixir",
		Description: "Saffron infused nectar, rose water, sparkling spring water, garnished with gold leaf.",
		Price:       20,
		Category:    CategoryDrink,
		Tags:        []string{"Zero-Proof", "Botanical"},
		Calories:    90,
	},
}

var didYouKnowFacts = []string{
	"Saffron requires approximately 75,000 flowers to produce just one pound of spice.",
	"Sound affects taste; high-frequency sounds can enhance the perception of sweetness in a dish.",
	"Umami was first identified as a distinct taste by Japanese chemist Kikunae Ikeda in 1908.",
	"Lumina analyzes over 400 flavor compounds to create the perfect plating balance.",
	"Blue is the rarest color in natural foods, often acting as an appetite suppressant in nature.",
	"Molecular gastronomy uses hydrocolloids to change the texture of food without altering its flavor.",
	"The 'Maillard reaction' is the chemical process that gives browned food its distinctive flavor.",
	"Vanilla is the only edible fruit of the orchid family, the largest family of flowering plants in the world.",
	"A Michelin star is actually awarded to the food on the plate, not the chef or the restaurant decor.",
	"Our zero-proof spirits use vacuum distillation to extract botanical essences without heat damage.",
}
