// Package catalog holds the static service and location content the rest
// of the platform reads. The data is authored here, validated once at
// startup, and never mutated afterwards.
package catalog

import "shoba/models"

// Locations lists every serviceable neighborhood, in display order.
// Map tie-breaking in the location picker follows this order.
var Locations = []models.Location{
	{
		ID:          "indiranagar",
		Slug:        "indiranagar",
		Name:        "Indiranagar",
		HeroImage:   "https://images.unsplash.com/photo-1596436807738-684379a6021d?auto=format&fit=crop&w=1200&q=80",
		Description: "Premier deep cleaning and pest control in East Bangalore.",
		Coords:      &models.Coords{X: 72, Y: 42},
	},
	{
		ID:          "jayanagar",
		Slug:        "jayanagar",
		Name:        "Jayanagar",
		HeroImage:   "https://images.unsplash.com/photo-1590059132224-406e2f1e285a?auto=format&fit=crop&w=1200&q=80",
		Description: "Serving the greenest and most organized layout of South Bangalore.",
		Coords:      &models.Coords{X: 42, Y: 68},
	},
	{
		ID:          "koramangala",
		Slug:        "koramangala",
		Name:        "Koramangala",
		HeroImage:   "https://images.unsplash.com/photo-1605146765360-1430048e7724?auto=format&fit=crop&w=1200&q=80",
		Description: "Reliable home services for the tech hub and residential blocks.",
		Coords:      &models.Coords{X: 62, Y: 58},
	},
	{
		ID:          "hsr-layout",
		Slug:        "hsr-layout",
		Name:        "HSR Layout",
		HeroImage:   "https://images.unsplash.com/photo-1560518883-ce09059eeffa?auto=format&fit=crop&w=1200&q=80",
		Description: "Quality cleaning services in the tech and startup hub of Bangalore.",
		Coords:      &models.Coords{X: 74, Y: 72},
	},
	{
		ID:          "whitefield",
		Slug:        "whitefield",
		Name:        "Whitefield",
		HeroImage:   "https://images.unsplash.com/photo-1582407947304-fd86f028f716?auto=format&fit=crop&w=1200&q=80",
		Description: "Expert cleaning for the IT corridor and luxury townships.",
		Coords:      &models.Coords{X: 92, Y: 38},
	},
}

// Services lists every bookable service. The first entry is the default
// selection when the wizard starts without a seed.
var Services = []models.Service{
	{
		ID:               "deep-home-cleaning",
		Slug:             "deep-home-cleaning",
		Title:            "Deep Home Cleaning",
		ShortDescription: "Intensive scrubbing, sanitization, and machine polishing for every room.",
		FullDescription:  "Our signature service. We deep clean every corner, including hard-to-reach spots, scrubbing floors, and sanitizing surfaces using eco-friendly materials.",
		Icon:             "Sparkles",
		PriceRange:       "₹3,999 onwards",
		BasePrice:        3999,
		Variants: []models.ServiceVariant{
			{Label: "1 BHK", Price: 3999, SizeInfo: "400 - 600 sft"},
			{Label: "2 BHK", Price: 5999, SizeInfo: "800 - 1200 sft"},
			{Label: "3 BHK", Price: 7499, SizeInfo: "1300 - 1800 sft"},
			{Label: "Villa", Inspection: true, SizeInfo: "On-site Quote"},
		},
		Features: []string{"Machine Floor Scrubbing", "Kitchen Degreasing", "Bathroom Descaling", "Window Track Cleaning"},
		FAQs: []models.FAQ{
			{Question: "Is it for occupied homes?", Answer: "Yes, this is specifically for homes where people are currently living."},
		},
		Images: []string{
			"https://images.unsplash.com/photo-1581578731548-c64695cc6952?auto=format&fit=crop&w=1200&q=80",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=1200&q=80",
			"https://images.unsplash.com/photo-1595526114035-45c0a7c8a4c1?auto=format&fit=crop&w=1200&q=80",
		},
	},
	{
		ID:               "pest-control",
		Slug:             "pest-control",
		Title:            "Pest Control",
		ShortDescription: "Safe, odorless herbal treatment for cockroaches and ants.",
		FullDescription:  "Advanced pest management using safe, certified chemicals. Includes herbal gel treatments for kitchens.",
		Icon:             "Bug",
		PriceRange:       "₹899 onwards",
		BasePrice:        899,
		Variants: []models.ServiceVariant{
			{Label: "Standard (1BHK)", Price: 899, SizeInfo: "General Pest"},
			{Label: "Premium (2BHK+)", Price: 1299, SizeInfo: "General Pest"},
			{Label: "Bed Bug Treatment", Price: 1599, SizeInfo: "Odorless Spray"},
		},
		Features: []string{"Herbal Gel Injection", "Odorless Spray", "Corner Treatment", "90-Day Warranty"},
		FAQs: []models.FAQ{
			{Question: "Is it safe for kids?", Answer: "Yes, we use government-approved odorless chemicals safe for kids and pets."},
		},
		Images: []string{
			"https://images.unsplash.com/photo-1628177142898-93e36e4e3a50?auto=format&fit=crop&w=1200&q=80",
			"https://images.unsplash.com/photo-1615873968403-89e0686282a9?auto=format&fit=crop&w=1200&q=80",
		},
	},
	{
		ID:               "sofa-shampooing",
		Slug:             "sofa-shampooing",
		Title:            "Sofa & Mattress",
		ShortDescription: "Revitalize fabric and leather furniture with extraction cleaning.",
		FullDescription:  "We remove deep-seated dirt, dust mites, and stains from your sofas and mattresses using professional shampooing and high-suction vacuuming.",
		Icon:             "Armchair",
		PriceRange:       "₹999 onwards",
		BasePrice:        999,
		Variants: []models.ServiceVariant{
			{Label: "3 Seater", Price: 999, SizeInfo: "Fabric/Leather"},
			{Label: "5 Seater", Price: 1599, SizeInfo: "Fabric/Leather"},
			{Label: "7 Seater", Price: 1999, SizeInfo: "Fabric/Leather"},
		},
		Features: []string{"Deep Vacuuming", "Eco-friendly Shampooing", "Wet Extraction", "Deodorization"},
		FAQs: []models.FAQ{
			{Question: "How long to dry?", Answer: "It usually takes 3-4 hours to dry completely under a fan."},
		},
		Images: []string{
			"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?auto=format&fit=crop&w=1200&q=80",
			"https://images.unsplash.com/photo-1540518614846-7eded433c457?auto=format&fit=crop&w=1200&q=80",
		},
	},
}

// Addons is the fixed catalog of independently toggleable extras.
var Addons = []models.Addon{
	{ID: "sanitization", Label: "Hospital-Grade Sanitization", Price: 499, Description: "99.9% germ elimination"},
	{ID: "eco", Label: "Eco-Friendly Chemicals", Price: 299, Description: "Pet & kid safe formulas"},
	{ID: "express", Label: "Express Slot Priority", Price: 399, Description: "Guaranteed top-tier expert"},
}

// TimeSlots is the fixed daily slot grid.
var TimeSlots = []models.TimeSlot{
	{Time: "09:00 AM", Hour: 9, Category: "Morning", Badge: "Popular"},
	{Time: "11:00 AM", Hour: 11, Category: "Morning"},
	{Time: "02:00 PM", Hour: 14, Category: "Afternoon", Badge: "Fastest"},
	{Time: "04:00 PM", Hour: 16, Category: "Afternoon"},
	{Time: "06:00 PM", Hour: 18, Category: "Evening"},
}

// Testimonials shown on the home page.
var Testimonials = []models.Review{
	{ID: "1", User: "Anjali P.", Rating: 5, Comment: "The team was on time and did a fantastic job with the pest control. No cockroaches seen since!", Service: "Pest Control"},
	{ID: "2", User: "Rahul S.", Rating: 5, Comment: "Very professional deep cleaning. My Indiranagar apartment looks brand new.", Service: "Deep Home Cleaning"},
	{ID: "3", User: "Vikram D.", Rating: 5, Comment: "Booking was super easy and the AI chat helped me pick the right package.", Service: "General"},
}

// ServiceByID returns the service with the given id, or nil.
func ServiceByID(id string) *models.Service {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i]
		}
	}
	return nil
}

// ServiceBySlug returns the service with the given slug, or nil.
func ServiceBySlug(slug string) *models.Service {
	for i := range Services {
		if Services[i].Slug == slug {
			return &Services[i]
		}
	}
	return nil
}

// LocationByID returns the location with the given id, or nil.
func LocationByID(id string) *models.Location {
	for i := range Locations {
		if Locations[i].ID == id {
			return &Locations[i]
		}
	}
	return nil
}

// LocationBySlug returns the location with the given slug, or nil.
func LocationBySlug(slug string) *models.Location {
	for i := range Locations {
		if Locations[i].Slug == slug {
			return &Locations[i]
		}
	}
	return nil
}

// AddonByID returns the addon with the given id, or nil.
func AddonByID(id string) *models.Addon {
	for i := range Addons {
		if Addons[i].ID == id {
			return &Addons[i]
		}
	}
	return nil
}

// SlotByTime returns the time slot with the given display time, or nil.
func SlotByTime(display string) *models.TimeSlot {
	for i := range TimeSlots {
		if TimeSlots[i].Time == display {
			return &TimeSlots[i]
		}
	}
	return nil
}
