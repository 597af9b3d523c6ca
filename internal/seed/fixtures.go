package seed

import (
	"time"

	"pharmastore/p/domain"
)

// Categories offered by the catalogue.
var Categories = []string{
	"Pain Relief",
	"Antibiotics",
	"Vitamins & Supplements",
	"Digestive Health",
	"Cardiovascular",
	"Respiratory",
	"Skin Care",
	"Mental Health",
	"Diabetes Care",
	"Eye Care",
	"Women's Health",
	"Men's Health",
	"Children's Health",
	"Senior Care",
	"First Aid",
}

var catalogueTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// Medicines is the static catalogue standing in for the backend database.
// med_016 is deliberately out of stock.
var Medicines = []domain.Medicine{
	{
		ID:                   "med_001",
		Name:                 "Acetaminophen 500mg",
		Brand:                "Tylenol",
		Category:             "Pain Relief",
		Description:          "Fast-acting pain reliever and fever reducer. Effective for headaches, muscle aches, and arthritis pain.",
		Price:                12.99,
		StockQuantity:        150,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Tablet",
		ActiveIngredients:    []string{"Acetaminophen 500mg"},
		Warnings:             []string{"Do not exceed 8 tablets in 24 hours", "Consult doctor if pregnant"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_002",
		Name:                 "Ibuprofen 400mg",
		Brand:                "Advil",
		Category:             "Pain Relief",
		Description:          "Non-steroidal anti-inflammatory drug (NSAID) for pain, inflammation, and fever reduction.",
		Price:                15.49,
		StockQuantity:        200,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Tablet",
		ActiveIngredients:    []string{"Ibuprofen 400mg"},
		Warnings:             []string{"Take with food", "Not suitable for children under 12"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_003",
		Name:                 "Amoxicillin 500mg",
		Brand:                "Generic",
		Category:             "Antibiotics",
		Description:          "Broad-spectrum antibiotic for bacterial infections including respiratory tract infections.",
		Price:                25.99,
		StockQuantity:        100,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Capsule",
		ActiveIngredients:    []string{"Amoxicillin 500mg"},
		Warnings:             []string{"Complete full course", "May cause allergic reactions"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_004",
		Name:                 "Azithromycin 250mg",
		Brand:                "Z-Pack",
		Category:             "Antibiotics",
		Description:          "Macrolide antibiotic for respiratory and skin infections.",
		Price:                45.99,
		StockQuantity:        75,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Tablet",
		ActiveIngredients:    []string{"Azithromycin 250mg"},
		Warnings:             []string{"Take on empty stomach", "Complete full course"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                 "med_005",
		Name:               "Vitamin D3 2000 IU",
		Brand:              "Nature Made",
		Category:           "Vitamins & Supplements",
		Description:        "Essential vitamin for bone health and immune system support.",
		Price:              18.99,
		StockQuantity:      300,
		AvailabilityStatus: domain.Available,
		DosageForm:         "Softgel",
		ActiveIngredients:  []string{"Vitamin D3 2000 IU"},
		Warnings:           []string{"Do not exceed recommended dose"},
		CreatedAt:          catalogueTime,
		UpdatedAt:          catalogueTime,
	},
	{
		ID:                 "med_006",
		Name:               "Multivitamin Complete",
		Brand:              "Centrum",
		Category:           "Vitamins & Supplements",
		Description:        "Complete daily multivitamin with essential vitamins and minerals.",
		Price:              24.99,
		StockQuantity:      250,
		AvailabilityStatus: domain.Available,
		DosageForm:         "Tablet",
		ActiveIngredients:  []string{"Multiple vitamins and minerals"},
		Warnings:           []string{"Take with food for best absorption"},
		CreatedAt:          catalogueTime,
		UpdatedAt:          catalogueTime,
	},
	{
		ID:                 "med_007",
		Name:               "Omeprazole 20mg",
		Brand:              "Prilosec",
		Category:           "Digestive Health",
		Description:        "Proton pump inhibitor for acid reflux and heartburn relief.",
		Price:              22.99,
		StockQuantity:      120,
		AvailabilityStatus: domain.Available,
		DosageForm:         "Capsule",
		ActiveIngredients:  []string{"Omeprazole 20mg"},
		Warnings:           []string{"Take before meals", "Maximum 14 days without doctor consultation"},
		CreatedAt:          catalogueTime,
		UpdatedAt:          catalogueTime,
	},
	{
		ID:                 "med_008",
		Name:               "Probiotics 50 Billion CFU",
		Brand:              "Garden of Life",
		Category:           "Digestive Health",
		Description:        "High-potency probiotic for digestive and immune health support.",
		Price:              35.99,
		StockQuantity:      80,
		AvailabilityStatus: domain.Available,
		DosageForm:         "Capsule",
		ActiveIngredients:  []string{"Multiple probiotic strains"},
		Warnings:           []string{"Keep refrigerated after opening"},
		CreatedAt:          catalogueTime,
		UpdatedAt:          catalogueTime,
	},
	{
		ID:                   "med_009",
		Name:                 "Lisinopril 10mg",
		Brand:                "Generic",
		Category:             "Cardiovascular",
		Description:          "ACE inhibitor for high blood pressure and heart failure management.",
		Price:                32.99,
		StockQuantity:        90,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Tablet",
		ActiveIngredients:    []string{"Lisinopril 10mg"},
		Warnings:             []string{"Monitor blood pressure regularly", "May cause dizziness"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_010",
		Name:                 "Atorvastatin 20mg",
		Brand:                "Lipitor",
		Category:             "Cardiovascular",
		Description:          "Statin medication for cholesterol management and heart disease prevention.",
		Price:                28.99,
		StockQuantity:        110,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Tablet",
		ActiveIngredients:    []string{"Atorvastatin 20mg"},
		Warnings:             []string{"Take with evening meal", "Avoid grapefruit juice"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_011",
		Name:                 "Albuterol Inhaler",
		Brand:                "ProAir",
		Category:             "Respiratory",
		Description:          "Bronchodilator inhaler for asthma and COPD rescue therapy.",
		Price:                65.99,
		StockQuantity:        50,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Inhaler",
		ActiveIngredients:    []string{"Albuterol sulfate"},
		Warnings:             []string{"Prime before first use", "May cause jitteriness"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                 "med_012",
		Name:               "Dextromethorphan Cough Syrup",
		Brand:              "Robitussin",
		Category:           "Respiratory",
		Description:        "Cough suppressant for dry, non-productive cough relief.",
		Price:              14.99,
		StockQuantity:      180,
		AvailabilityStatus: domain.Available,
		DosageForm:         "Syrup",
		ActiveIngredients:  []string{"Dextromethorphan HBr"},
		Warnings:           []string{"Do not exceed recommended dose", "Not for children under 4"},
		CreatedAt:          catalogueTime,
		UpdatedAt:          catalogueTime,
	},
	{
		ID:                 "med_013",
		Name:               "Hydrocortisone Cream 1%",
		Brand:              "Cortizone-10",
		Category:           "Skin Care",
		Description:        "Topical anti-inflammatory for eczema, rashes, and itching relief.",
		Price:              8.99,
		StockQuantity:      200,
		AvailabilityStatus: domain.Available,
		DosageForm:         "Cream",
		ActiveIngredients:  []string{"Hydrocortisone 1%"},
		Warnings:           []string{"For external use only", "Do not use on face unless directed"},
		CreatedAt:          catalogueTime,
		UpdatedAt:          catalogueTime,
	},
	{
		ID:                   "med_014",
		Name:                 "Tretinoin Gel 0.1%",
		Brand:                "Retin-A",
		Category:             "Skin Care",
		Description:          "Prescription retinoid for acne treatment and anti-aging.",
		Price:                85.99,
		StockQuantity:        30,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Gel",
		ActiveIngredients:    []string{"Tretinoin 0.1%"},
		Warnings:             []string{"Use sunscreen daily", "May cause initial irritation"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_015",
		Name:                 "Sertraline 50mg",
		Brand:                "Zoloft",
		Category:             "Mental Health",
		Description:          "SSRI antidepressant for depression and anxiety disorders.",
		Price:                29.99,
		StockQuantity:        85,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.Available,
		DosageForm:           "Tablet",
		ActiveIngredients:    []string{"Sertraline HCl 50mg"},
		Warnings:             []string{"May take 4-6 weeks for full effect", "Do not stop abruptly"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
	{
		ID:                   "med_016",
		Name:                 "Insulin Rapid Acting",
		Brand:                "Humalog",
		Category:             "Diabetes Care",
		Description:          "Fast-acting insulin for diabetes management.",
		Price:                125.99,
		StockQuantity:        0,
		PrescriptionRequired: true,
		AvailabilityStatus:   domain.OutOfStock,
		DosageForm:           "Injection",
		ActiveIngredients:    []string{"Insulin lispro"},
		Warnings:             []string{"Refrigerate until use", "Monitor blood glucose"},
		CreatedAt:            catalogueTime,
		UpdatedAt:            catalogueTime,
	},
}

// FixtureUser pairs an account record with the plaintext password it is
// seeded with; Ensure hashes the password before it reaches storage.
type FixtureUser struct {
	User     domain.User
	Password string
}

func strptr(s string) *string { return &s }

var Users = []FixtureUser{
	{
		Password: "password123",
		User: domain.User{
			ID:          "user_001",
			Email:       "john.doe@example.com",
			FirstName:   "John",
			LastName:    "Doe",
			Phone:       strptr("+1-555-0123"),
			DateOfBirth: strptr("1985-06-15"),
			Address: &domain.Address{
				Street:  "123 Main St",
				City:    "Springfield",
				State:   "IL",
				ZipCode: "62701",
				Country: "USA",
			},
			InsuranceInfo: &domain.InsuranceInfo{
				Provider:     "Blue Cross Blue Shield",
				PolicyNumber: "BC123456789",
				GroupNumber:  "GRP001",
			},
			IsActive:      true,
			EmailVerified: true,
			CreatedAt:     time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
	},
	{
		Password: "securepass456",
		User: domain.User{
			ID:          "user_002",
			Email:       "jane.smith@example.com",
			FirstName:   "Jane",
			LastName:    "Smith",
			Phone:       strptr("+1-555-0456"),
			DateOfBirth: strptr("1992-03-22"),
			Address: &domain.Address{
				Street:  "456 Oak Ave",
				City:    "Springfield",
				State:   "IL",
				ZipCode: "62702",
				Country: "USA",
			},
			InsuranceInfo: &domain.InsuranceInfo{
				Provider:     "Aetna",
				PolicyNumber: "AET987654321",
				GroupNumber:  "GRP002",
			},
			IsActive:      true,
			EmailVerified: true,
			CreatedAt:     time.Date(2024, 1, 12, 10, 15, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
		},
	},
}

// Pharmacies is the read-only partner location list.
var Pharmacies = []domain.Pharmacy{
	{
		ID:   "pharmacy_001",
		Name: "Springfield Community Pharmacy",
		Address: domain.Address{
			Street:  "789 Health Blvd",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62703",
			Country: "USA",
		},
		Phone: "+1-555-HEALTH",
		Email: "info@springfieldpharmacy.com",
		Hours: map[string]string{
			"monday":    "8:00 AM - 8:00 PM",
			"tuesday":   "8:00 AM - 8:00 PM",
			"wednesday": "8:00 AM - 8:00 PM",
			"thursday":  "8:00 AM - 8:00 PM",
			"friday":    "8:00 AM - 8:00 PM",
			"saturday":  "9:00 AM - 6:00 PM",
			"sunday":    "10:00 AM - 4:00 PM",
		},
		Services:    []string{"Prescription Filling", "Vaccinations", "Health Screenings", "Medication Consultation"},
		Coordinates: domain.Coordinates{Lat: 39.7817, Lng: -89.6501},
		Rating:      4.5,
		IsPartner:   true,
	},
	{
		ID:   "pharmacy_002",
		Name: "Downtown Wellness Pharmacy",
		Address: domain.Address{
			Street:  "321 Center St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "USA",
		},
		Phone: "+1-555-WELLNESS",
		Email: "contact@downtownwellness.com",
		Hours: map[string]string{
			"monday":    "7:00 AM - 9:00 PM",
			"tuesday":   "7:00 AM - 9:00 PM",
			"wednesday": "7:00 AM - 9:00 PM",
			"thursday":  "7:00 AM - 9:00 PM",
			"friday":    "7:00 AM - 9:00 PM",
			"saturday":  "8:00 AM - 7:00 PM",
			"sunday":    "9:00 AM - 5:00 PM",
		},
		Services:    []string{"24/7 Emergency Fills", "Compound Medications", "Diabetic Supplies", "Medical Equipment"},
		Coordinates: domain.Coordinates{Lat: 39.7990, Lng: -89.6441},
		Rating:      4.8,
		IsPartner:   true,
	},
}
