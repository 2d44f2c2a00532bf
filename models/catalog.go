package models

func intPtr(n int) *int { return &n }

// DefaultAgeTiers returns the pricing brackets the site starts with
func DefaultAgeTiers() []AgeTier {
	return []AgeTier{
		{ID: "t1", Label: "0 a 5 anos", MinAge: 0, MaxAge: intPtr(5), Price: 0},
		{ID: "t2", Label: "6 a 10 anos", MinAge: 6, MaxAge: intPtr(10), Price: 8},
		{ID: "t3", Label: "Acima de 11 anos", MinAge: 11, MaxAge: nil, Price: 15},
	}
}

// Properties is the static example catalog fed to the concierge prompt
var Properties = []Property{
	{
		ID:            "1",
		Name:          "Azure Horizon Villa",
		Description:   "A stunning cliffside villa with panoramic ocean views and a private infinity pool.",
		Location:      "Santorini, Grécia",
		PricePerNight: 850,
		Rating:        4.9,
		Reviews:       128,
		Amenities:     []string{"Piscina Infinita", "Wi-Fi", "Chef Privado", "Vista Mar"},
		Type:          "Villa",
	},
	{
		ID:            "2",
		Name:          "Metropolitan Loft",
		Description:   "Modern and sleek industrial loft in the heart of Manhattan.",
		Location:      "Nova York, EUA",
		PricePerNight: 420,
		Rating:        4.7,
		Reviews:       245,
		Amenities:     []string{"Ginásio", "Concierge 24/7", "Smart Home", "Terraço"},
		Type:          "Apartment",
	},
	{
		ID:            "3",
		Name:          "Alpine Zen Retreat",
		Description:   "Luxury wooden cabin nestled in the Swiss Alps with private spa facilities.",
		Location:      "Zermatt, Suíça",
		PricePerNight: 650,
		Rating:        4.95,
		Reviews:       89,
		Amenities:     []string{"Lareira", "Sauna", "Ski-in/Ski-out", "Jacuzzi"},
		Type:          "Cabin",
	},
	{
		ID:            "4",
		Name:          "The Royal Palms Resort",
		Description:   "Exotic beachfront resort with world-class dining and spa services.",
		Location:      "Bora Bora, Polinésia Francesa",
		PricePerNight: 1200,
		Rating:        5.0,
		Reviews:       56,
		Amenities:     []string{"Spa", "Praia Privada", "Mergulho", "Butler"},
		Type:          "Hotel",
	},
	{
		ID:            "5",
		Name:          "Kyoto Heritage Inn",
		Description:   "Traditional Japanese ryokan with modern luxury touches and serene gardens.",
		Location:      "Kyoto, Japão",
		PricePerNight: 550,
		Rating:        4.85,
		Reviews:       112,
		Amenities:     []string{"Onsen", "Cerimônia do Chá", "Jardim Zen", "Yukata"},
		Type:          "Hotel",
	},
	{
		ID:            "6",
		Name:          "Desert Mirage Oasis",
		Description:   "Modernist villa in the high desert with spectacular sunset views.",
		Location:      "Joshua Tree, EUA",
		PricePerNight: 380,
		Rating:        4.6,
		Reviews:       94,
		Amenities:     []string{"Fogueira", "Telescópio", "Design Minimalista", "Solar"},
		Type:          "Villa",
	},
}
