package image

// HeroDish is the landing showcase image warmed at startup, ahead of any
// per-dish request.
const (
	HeroDish        = "Signature Plating"
	HeroDescription = "A highly artistic, top-down view of a chef's special creation, modern gastronomy, edible flowers, negative space, dramatic lighting"
)

// staticImages is the curated per-dish reference table. It seeds the cache
// at startup and backstops generation failures.
var staticImages = map[string]string{
	"Heirloom Burrata":                "https://images.unsplash.com/photo-1608039829572-78524f79c4c7?q=80&w=800&auto=format&fit=crop",
	"Wagyu Beef Tartare":              "https://images.unsplash.com/photo-1544025162-d76690b67f61?q=80&w=800&auto=format&fit=crop",
	"Scallop Carpaccio":               "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?q=80&w=800&auto=format&fit=crop",
	"Miso Glazed Black Cod":           "https://images.unsplash.com/photo-1534939561126-855b8675edd7?q=80&w=800&auto=format&fit=crop",
	"Herb-Crusted Lamb Rack":          "https://images.unsplash.com/photo-1603360946369-dc9bb6258143?q=80&w=800&auto=format&fit=crop",
	"Wild Mushroom Risotto":           "https://images.unsplash.com/photo-1633964861907-709298887b41?q=80&w=800&auto=format&fit=crop",
	"Pan-Seared Duck Breast":          "https://images.unsplash.com/photo-1596797038530-2c107229654b?q=80&w=800&auto=format&fit=crop",
	"Truffle Tagliolini":              "https://images.unsplash.com/photo-1551183053-bf91a1d81141?q=80&w=800&auto=format&fit=crop",
	"Valrhona Chocolate Sphere":       "https://images.unsplash.com/photo-1579372786545-d24232daf58c?q=80&w=800&auto=format&fit=crop",
	"Yuzu & Basil Tart":               "https://images.unsplash.com/photo-1519915028121-7d3463d20b13?q=80&w=800&auto=format&fit=crop",
	"Pistachio Soufflé":               "https://images.unsplash.com/photo-1579954115545-a95591f28bfc?q=80&w=800&auto=format&fit=crop",
	"Smoked Zero-Proof Old Fashioned": "https://images.unsplash.com/photo-1514362545857-3bc16549766b?q=80&w=800&auto=format&fit=crop",
	"Sparkling White Tea & Elderflower": "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?q=80&w=800&auto=format&fit=crop",
	"Saffron & Rose Elixir":             "https://images.unsplash.com/photo-1556679343-c7306c1976bc?q=80&w=800&auto=format&fit=crop",
	HeroDish:                            "https://images.unsplash.com/photo-1559339352-11d035aa65de?q=80&w=1200&auto=format&fit=crop",
}
