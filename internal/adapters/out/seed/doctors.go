package seed

import "github.com/suchimauz/doctor-booking-directory/internal/core/domain"

var seedDoctors = []doctorRecord{
	{
		doctor: domain.Doctor{
			ID:            1,
			Name:          "Dr. Sarah Johnson",
			Specialty:     "Cardiology",
			Location:      "New York, NY",
			Experience:    "15 years",
			Bio:           "Board-certified cardiologist focused on preventive heart care.",
			FeaturedBadge: "Top Rated",
			Rating:        4.9,
			Insurance:     []string{"Medicare", "Blue Cross", "Aetna"},
			Languages:     []string{"English", "Spanish"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 10, Minute: 0},
			{DayOffset: 0, Hour: 13, Minute: 30},
			{DayOffset: 0, Hour: 16, Minute: 0},
			{DayOffset: 1, Hour: 13, Minute: 0},
			{DayOffset: 2, Hour: 14, Minute: 0},
			{DayOffset: 4, Hour: 10, Minute: 0},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         2,
			Name:       "Dr. Michael Chen",
			Specialty:  "Dermatology",
			Location:   "San Francisco, CA",
			Experience: "10 years",
			Bio:        "Treats chronic skin conditions and performs skin cancer screenings.",
			Rating:     4.7,
			Insurance:  []string{"Blue Cross", "Cigna"},
			Languages:  []string{"English", "Mandarin"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 10, Minute: 0},
			{DayOffset: 0, Hour: 14, Minute: 0},
			{DayOffset: 1, Hour: 15, Minute: 0},
			{DayOffset: 2, Hour: 13, Minute: 0},
			{DayOffset: 3, Hour: 9, Minute: 0},
			{DayOffset: 4, Hour: 9, Minute: 30},
			{DayOffset: 4, Hour: 14, Minute: 30},
			{DayOffset: 4, Hour: 16, Minute: 0},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         3,
			Name:       "Dr. Emily Rodriguez",
			Specialty:  "Pediatrics",
			Location:   "Austin, TX",
			Experience: "8 years",
			Rating:     4.8,
			Insurance:  []string{"Medicare", "Aetna", "Cigna"},
			Languages:  []string{"English", "Spanish"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 14, Minute: 0},
			{DayOffset: 2, Hour: 10, Minute: 0},
			{DayOffset: 3, Hour: 15, Minute: 30},
			{DayOffset: 4, Hour: 9, Minute: 0},
			{DayOffset: 4, Hour: 13, Minute: 30},
			{DayOffset: 6, Hour: 11, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:            4,
			Name:          "Dr. James Wilson",
			Specialty:     "Neurology",
			Location:      "Chicago, IL",
			Experience:    "20 years",
			Bio:           "Specialist in headache disorders and sleep medicine.",
			FeaturedBadge: "Most Booked",
			Rating:        4.6,
			Insurance:     []string{"Medicare", "Blue Cross"},
			Languages:     []string{"English"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 14, Minute: 30},
			{DayOffset: 4, Hour: 9, Minute: 0},
			{DayOffset: 4, Hour: 13, Minute: 0},
			{DayOffset: 4, Hour: 13, Minute: 30},
			{DayOffset: 5, Hour: 13, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         5,
			Name:       "Dr. Aisha Patel",
			Specialty:  "Family Medicine",
			Location:   "Seattle, WA",
			Experience: "12 years",
			Bio:        "Primary care for the whole family.",
			Rating:     4.9,
			Insurance:  []string{"Aetna", "Cigna", "Blue Cross"},
			Languages:  []string{"English", "Hindi", "Gujarati"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 15, Minute: 0},
			{DayOffset: 0, Hour: 16, Minute: 0},
			{DayOffset: 1, Hour: 13, Minute: 30},
			{DayOffset: 2, Hour: 15, Minute: 30},
			{DayOffset: 4, Hour: 13, Minute: 30},
			{DayOffset: 6, Hour: 14, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:        6,
			Name:      "Dr. Robert Kim",
			Specialty: "Orthopedics",
			Location:  "Denver, CO",
			Bio:       "Sports injuries and joint replacement.",
			Rating:    4.5,
			Insurance: []string{"Medicare", "Cigna"},
			Languages: []string{"English", "Korean"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 15, Minute: 30},
			{DayOffset: 2, Hour: 15, Minute: 30},
			{DayOffset: 3, Hour: 11, Minute: 0},
			{DayOffset: 3, Hour: 15, Minute: 0},
			{DayOffset: 5, Hour: 11, Minute: 0},
			{DayOffset: 5, Hour: 14, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         7,
			Name:       "Dr. Laura Martinez",
			Specialty:  "Psychiatry",
			Location:   "Miami, FL",
			Experience: "9 years",
			Bio:        "Anxiety, depression and adult ADHD.",
			Rating:     4.7,
			Insurance:  []string{"Blue Cross", "Aetna"},
			Languages:  []string{"English", "Spanish", "Portuguese"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 10, Minute: 30},
			{DayOffset: 0, Hour: 13, Minute: 0},
			{DayOffset: 1, Hour: 15, Minute: 0},
			{DayOffset: 1, Hour: 16, Minute: 30},
			{DayOffset: 3, Hour: 13, Minute: 30},
			{DayOffset: 3, Hour: 14, Minute: 30},
			{DayOffset: 5, Hour: 13, Minute: 30},
			{DayOffset: 6, Hour: 14, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         8,
			Name:       "Dr. David Thompson",
			Specialty:  "Cardiology",
			Location:   "Boston, MA",
			Experience: "18 years",
			Bio:        "Interventional cardiology and heart failure care.",
			Rating:     4.8,
			Insurance:  []string{"Medicare", "Aetna"},
			Languages:  []string{"English"},
		},
		slots: []slotTemplate{
			{DayOffset: 1, Hour: 10, Minute: 0},
			{DayOffset: 1, Hour: 13, Minute: 30},
			{DayOffset: 1, Hour: 15, Minute: 0},
			{DayOffset: 2, Hour: 11, Minute: 0},
			{DayOffset: 3, Hour: 16, Minute: 0},
			{DayOffset: 4, Hour: 14, Minute: 30},
			{DayOffset: 5, Hour: 10, Minute: 0},
		},
	},
	{
		doctor: domain.Doctor{
			ID:            9,
			Name:          "Dr. Olivia Brown",
			Specialty:     "Dermatology",
			Location:      "Los Angeles, CA",
			Experience:    "6 years",
			FeaturedBadge: "New",
			Rating:        4.4,
			Insurance:     []string{"Cigna"},
			Languages:     []string{"English", "French"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 9, Minute: 0},
			{DayOffset: 0, Hour: 10, Minute: 0},
			{DayOffset: 0, Hour: 11, Minute: 0},
			{DayOffset: 0, Hour: 13, Minute: 30},
			{DayOffset: 1, Hour: 13, Minute: 0},
			{DayOffset: 3, Hour: 13, Minute: 30},
			{DayOffset: 6, Hour: 16, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         10,
			Name:       "Dr. Hassan Ali",
			Specialty:  "Neurology",
			Location:   "Houston, TX",
			Experience: "14 years",
			Bio:        "Epilepsy and movement disorders.",
			Rating:     4.6,
			Insurance:  []string{"Medicare", "Blue Cross", "Cigna"},
			Languages:  []string{"English", "Arabic"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 9, Minute: 30},
			{DayOffset: 0, Hour: 11, Minute: 0},
			{DayOffset: 0, Hour: 16, Minute: 0},
			{DayOffset: 2, Hour: 9, Minute: 0},
			{DayOffset: 3, Hour: 13, Minute: 30},
			{DayOffset: 4, Hour: 11, Minute: 30},
			{DayOffset: 4, Hour: 13, Minute: 0},
			{DayOffset: 5, Hour: 11, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:            11,
			Name:          "Dr. Grace Lee",
			Specialty:     "Pediatrics",
			Location:      "Portland, OR",
			Experience:    "11 years",
			Bio:           "Newborn care and childhood development.",
			FeaturedBadge: "Top Rated",
			Rating:        4.9,
			Insurance:     []string{"Blue Cross", "Aetna"},
			Languages:     []string{"English", "Korean"},
		},
		slots: []slotTemplate{
			{DayOffset: 3, Hour: 16, Minute: 0},
			{DayOffset: 4, Hour: 9, Minute: 0},
			{DayOffset: 4, Hour: 11, Minute: 0},
			{DayOffset: 5, Hour: 11, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         12,
			Name:       "Dr. Thomas Anderson",
			Specialty:  "Family Medicine",
			Location:   "Phoenix, AZ",
			Experience: "22 years",
			Rating:     4.3,
			Insurance:  []string{"Medicare"},
			Languages:  []string{"English"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 16, Minute: 30},
			{DayOffset: 2, Hour: 16, Minute: 0},
			{DayOffset: 4, Hour: 11, Minute: 0},
			{DayOffset: 4, Hour: 14, Minute: 30},
			{DayOffset: 5, Hour: 10, Minute: 0},
			{DayOffset: 5, Hour: 16, Minute: 0},
			{DayOffset: 5, Hour: 16, Minute: 30},
			{DayOffset: 6, Hour: 10, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         13,
			Name:       "Dr. Natalia Ivanova",
			Specialty:  "Orthopedics",
			Location:   "Philadelphia, PA",
			Experience: "7 years",
			Bio:        "Spine and hand surgery.",
			Rating:     4.6,
			Insurance:  []string{"Aetna", "Cigna"},
			Languages:  []string{"English", "Russian"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 16, Minute: 30},
			{DayOffset: 1, Hour: 14, Minute: 30},
			{DayOffset: 2, Hour: 15, Minute: 0},
			{DayOffset: 3, Hour: 11, Minute: 0},
			{DayOffset: 5, Hour: 14, Minute: 30},
		},
	},
	{
		doctor: domain.Doctor{
			ID:         14,
			Name:       "Dr. Samuel Okafor",
			Specialty:  "Psychiatry",
			Location:   "Atlanta, GA",
			Experience: "13 years",
			Bio:        "Child and adolescent psychiatry.",
			Rating:     4.8,
			Insurance:  []string{"Medicare", "Blue Cross", "Aetna", "Cigna"},
			Languages:  []string{"English", "Yoruba"},
		},
		slots: []slotTemplate{
			{DayOffset: 0, Hour: 10, Minute: 30},
			{DayOffset: 1, Hour: 11, Minute: 0},
			{DayOffset: 2, Hour: 9, Minute: 0},
			{DayOffset: 3, Hour: 14, Minute: 0},
			{DayOffset: 3, Hour: 15, Minute: 30},
			{DayOffset: 6, Hour: 15, Minute: 0},
			{DayOffset: 6, Hour: 15, Minute: 30},
		},
	},
}
