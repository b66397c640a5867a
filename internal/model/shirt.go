package model

// Shirt is a single inventory record. JSON field names match the persisted
// slot layout, which predates this server and must round-trip unchanged.
type Shirt struct {
	ID       int64   `json:"id"`
	Code     string  `json:"codigo"`
	Color    string  `json:"color"`
	Size     string  `json:"talla"`
	Brand    string  `json:"marca"`
	Price    float64 `json:"precio"`
	ImageURL string  `json:"imagen"`
}

// SeedShirts returns the default inventory used when the store slot is empty
// or unreadable. Callers get a fresh copy each time.
func SeedShirts() []Shirt {
	return []Shirt{
		{
			ID:       1,
			Code:     "CAM-001-XL-AZUL",
			Color:    "Azul",
			Size:     "XL",
			Brand:    "Nike",
			Price:    45.99,
			ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=300&fit=crop",
		},
		{
			ID:       2,
			Code:     "CAM-002-M-BLANCA",
			Color:    "Blanca",
			Size:     "M",
			Brand:    "Adidas",
			Price:    39.99,
			ImageURL: "https://images.unsplash.com/photo-1562157873-818bc0726f68?w=300&h=300&fit=crop",
		},
		{
			ID:       3,
			Code:     "CAM-003-L-NEGRA",
			Color:    "Negra",
			Size:     "L",
			Brand:    "Puma",
			Price:    42.50,
			ImageURL: "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=300&h=300&fit=crop",
		},
	}
}
