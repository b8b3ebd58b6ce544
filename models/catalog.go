package models

// ServiceVariant is one bookable package of a service.
// Inspection marks packages that are quoted on-site instead of carrying
// a fixed price.
type ServiceVariant struct {
	Label      string `json:"label"`
	Price      int    `json:"price"`
	Inspection bool   `json:"inspection,omitempty"`
	SizeInfo   string `json:"sizeInfo,omitempty"`
}

// FAQ is a question/answer pair shown on a service detail page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service represents a type of service offered on the platform.
type Service struct {
	ID               string           `json:"id"`
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"shortDescription"`
	FullDescription  string           `json:"fullDescription"`
	Icon             string           `json:"icon"`
	PriceRange       string           `json:"priceRange"`
	BasePrice        int              `json:"basePrice"`
	Variants         []ServiceVariant `json:"variants"`
	Features         []string         `json:"features"`
	FAQs             []FAQ            `json:"faqs"`
	Images           []string         `json:"images"`
}

// Variant returns the variant with the given label, or nil.
func (s *Service) Variant(label string) *ServiceVariant {
	for i := range s.Variants {
		if s.Variants[i].Label == label {
			return &s.Variants[i]
		}
	}
	return nil
}

// Coords places a location on the interactive map, as percentages of the
// map surface in [0,100].
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Location is a serviceable neighborhood. Locations without Coords are
// not placeable on the interactive map.
type Location struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	HeroImage   string  `json:"heroImage"`
	Description string  `json:"description"`
	Coords      *Coords `json:"coords,omitempty"`
}

// Addon is an independently toggleable extra.
type Addon struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// TimeSlot is one of the fixed arrival windows offered every day.
type TimeSlot struct {
	Time     string `json:"time"` // display form, e.g. "09:00 AM"
	Hour     int    `json:"hour"` // 0-23
	Category string `json:"category"`
	Badge    string `json:"badge,omitempty"`
}

// Review is a customer testimonial.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Service string `json:"service"`
}
