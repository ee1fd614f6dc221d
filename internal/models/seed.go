package models

import "time"

// Ids of the seeded demo accounts. The auth layer maps the demo credentials
// onto these records.
const (
	SeedAdminID   = "admin1"
	SeedPlannerID = "planner1"
)

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultEvents returns a fresh copy of the built-in event catalogue.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:          "1",
			Title:       "Traditional Indian Wedding",
			Description: "A grand shaadi experience with mandap decor, pheras, live dhol, and curated catering.",
			Category:    "Wedding",
			Price:       250000,
			Image:       "/sunset-beach-wedding-romantic-ceremony.jpg",
			Location:    "Palace Grounds, Bengaluru",
			Capacity:    500,
			Featured:    true,
			Rating:      4.9,
			ReviewCount: 127,
			CreatedAt:   seedTime("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "2",
			Title:       "Birthday Celebration Package",
			Description: "Custom birthday decor, cake, photographer, and music for intimate gatherings.",
			Category:    "Birthday",
			Price:       25000,
			Image:       "/elegant-garden-party-outdoor-celebration.jpg",
			Location:    "Koramangala, Bengaluru",
			Capacity:    60,
			Featured:    true,
			Rating:      4.8,
			ReviewCount: 89,
			CreatedAt:   seedTime("2024-01-20T10:00:00Z"),
		},
		{
			ID:          "3",
			Title:       "Engagement & Haldi Ceremony",
			Description: "Vibrant haldi setup with marigold decor, live dhol, and candid photography.",
			Category:    "Ceremony",
			Price:       60000,
			Image:       "/art-gallery-opening-contemporary-exhibition.jpg",
			Location:    "JP Nagar, Bengaluru",
			Capacity:    150,
			Featured:    true,
			Rating:      4.8,
			ReviewCount: 234,
			CreatedAt:   seedTime("2024-02-01T10:00:00Z"),
		},
		{
			ID:          "4",
			Title:       "Baby Shower (Seemantham)",
			Description: "Traditional seemantham with floral backdrop, return gifts, and light music.",
			Category:    "Ceremony",
			Price:       45000,
			Image:       "/elegant-garden-party-outdoor-celebration.jpg",
			Location:    "Hyderabad",
			Capacity:    120,
			Rating:      4.7,
			ReviewCount: 56,
			CreatedAt:   seedTime("2024-02-10T10:00:00Z"),
		},
		{
			ID:          "5",
			Title:       "Sangeet Night",
			Description: "Dance floor, DJ, stage lighting, and choreographer for a fun sangeet night.",
			Category:    "Wedding",
			Price:       90000,
			Image:       "/corporate-team-building-activities-professional.jpg",
			Location:    "Mumbai",
			Capacity:    300,
			Rating:      4.6,
			ReviewCount: 143,
			CreatedAt:   seedTime("2024-02-15T10:00:00Z"),
		},
		{
			ID:          "6",
			Title:       "Candid Wedding Photography",
			Description: "Professional candid + traditional photography and cinematic videography package.",
			Category:    "Photography",
			Price:       120000,
			Image:       "/professional-woman-portrait.png",
			Location:    "Chennai",
			Capacity:    50,
			Rating:      4.8,
			ReviewCount: 67,
			CreatedAt:   seedTime("2024-02-20T10:00:00Z"),
		},
	}
}

func DefaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:        "1",
			UserID:    "user1",
			UserName:  "Sarah Mitchell",
			UserImage: "/professional-woman-portrait.png",
			Rating:    5,
			Comment:   "EventConnect made planning our corporate gala effortless. The attention to detail and seamless booking process exceeded all expectations.",
			Featured:  true,
			CreatedAt: seedTime("2024-01-25T10:00:00Z"),
		},
		{
			ID:        "2",
			UserID:    "user2",
			UserName:  "Michael Chen",
			UserImage: "/professional-man-portrait.png",
			Rating:    5,
			Comment:   "Our beach wedding was absolutely perfect. The team handled everything with such professionalism and care. Highly recommended!",
			Featured:  true,
			CreatedAt: seedTime("2024-02-05T10:00:00Z"),
		},
		{
			ID:        "3",
			UserID:    "user3",
			UserName:  "Emily Rodriguez",
			UserImage: "/professional-woman-smiling.png",
			Rating:    5,
			Comment:   "The Tech Summit was incredibly well-organized. From registration to execution, everything was flawless. Will definitely book again.",
			Featured:  true,
			CreatedAt: seedTime("2024-02-12T10:00:00Z"),
		},
		{
			ID:        "4",
			UserID:    "user4",
			UserName:  "David Thompson",
			UserImage: "/business-professional-portrait.png",
			Rating:    4,
			Comment:   "Great experience overall. The platform is intuitive and the event coordination was top-notch.",
			CreatedAt: seedTime("2024-02-18T10:00:00Z"),
		},
	}
}

func DefaultUsers() []User {
	return []User{
		{
			ID:        SeedAdminID,
			Email:     "admin@eventconnect.com",
			Name:      "Admin User",
			Role:      RoleAdmin,
			CreatedAt: seedTime("2024-01-01T10:00:00Z"),
		},
		{
			ID:        SeedPlannerID,
			Email:     "planner@eventconnect.com",
			Name:      "Planner User",
			Role:      RolePlanner,
			CreatedAt: seedTime("2024-01-02T10:00:00Z"),
		},
	}
}

// DefaultCompanies are the admin-seeded vendors referenced by DefaultOffers.
// They stay resolvable even when storage only holds newer companies.
func DefaultCompanies() []Company {
	return []Company{
		{
			ID:          "company_1",
			Name:        "Shubh Celebrations",
			Description: "Full-service wedding and ceremony planners with in-house decor and catering.",
			Logo:        "/logos/shubh-celebrations.png",
			CreatedAt:   seedTime("2024-01-05T10:00:00Z"),
		},
		{
			ID:          "company_2",
			Name:        "Utsav Events Co.",
			Description: "Birthday, sangeet and party specialists covering Bengaluru and Mumbai.",
			Logo:        "/logos/utsav-events.png",
			CreatedAt:   seedTime("2024-01-06T10:00:00Z"),
		},
		{
			ID:          "company_3",
			Name:        "Lens & Light Studios",
			Description: "Candid photography and cinematic videography crews.",
			Logo:        "/logos/lens-and-light.png",
			OwnerID:     SeedPlannerID,
			CreatedAt:   seedTime("2024-01-07T10:00:00Z"),
		},
	}
}

func DefaultOffers() []EventCompanyOffer {
	return []EventCompanyOffer{
		{
			ID:            "offer_1",
			EventID:       "1",
			CompanyID:     "company_1",
			Price:         240000,
			GalleryImages: []string{"/gallery/mandap-1.jpg", "/gallery/mandap-2.jpg"},
			Policies:      []string{"30% advance to confirm", "Free cancellation up to 30 days before"},
			Testimonials: []OfferTestimonial{
				{ID: "ot_1", UserName: "Ananya R.", Comment: "The mandap was stunning and the team ran on time.", Rating: 5},
			},
			CreatedAt: seedTime("2024-02-01T12:00:00Z"),
		},
		{
			ID:        "offer_2",
			EventID:   "2",
			CompanyID: "company_2",
			Price:     22000,
			Policies:  []string{"Cake flavour changes up to 48 hours before"},
			CreatedAt: seedTime("2024-02-02T12:00:00Z"),
		},
		{
			ID:        "offer_3",
			EventID:   "5",
			CompanyID: "company_2",
			Price:     85000,
			Policies:  []string{"DJ set limited to 4 hours", "Overtime billed hourly"},
			CreatedAt: seedTime("2024-02-03T12:00:00Z"),
		},
		{
			ID:            "offer_4",
			EventID:       "6",
			CompanyID:     "company_3",
			Price:         110000,
			GalleryImages: []string{"/gallery/candid-1.jpg"},
			Testimonials: []OfferTestimonial{
				{ID: "ot_2", UserName: "Karthik S.", Comment: "Every candid shot told a story.", Rating: 5},
			},
			CreatedAt: seedTime("2024-02-04T12:00:00Z"),
		},
	}
}
