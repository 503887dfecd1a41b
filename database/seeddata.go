package database

import (
	"homepro_backend/internal/models"

	"gorm.io/datatypes"
)

// Демо-фикстура. ID фиксированные, чтобы на них можно было ссылаться
// из других таблиц и из интеграционных тестов.

var seedServiceCatalog = []models.Service{
	{ID: "s1", Name: "House Cleaning", Category: "Cleaning", Icon: "home"},
	{ID: "s2", Name: "Carpet Cleaning", Category: "Cleaning", Icon: "water"},
	{ID: "s3", Name: "Window Cleaning", Category: "Cleaning", Icon: "desktop"},
	{ID: "s4", Name: "Plumbing", Category: "Home Repair", Icon: "water"},
	{ID: "s5", Name: "Bathroom Remodeling", Category: "Home Improvement", Icon: "hammer"},
	{ID: "s6", Name: "Electrical Work", Category: "Home Repair", Icon: "flash"},
	{ID: "s7", Name: "Landscaping", Category: "Outdoor", Icon: "leaf"},
	{ID: "s8", Name: "Lawn Care", Category: "Outdoor", Icon: "leaf"},
	{ID: "s9", Name: "Carpentry", Category: "Home Improvement", Icon: "hammer"},
	{ID: "s10", Name: "Dog Walking", Category: "Pet Care", Icon: "paw"},
	{ID: "s11", Name: "Dog Training", Category: "Pet Care", Icon: "paw"},
	{ID: "s12", Name: "Painting", Category: "Home Improvement", Icon: "color-palette"},
	{ID: "s13", Name: "Roofing", Category: "Home Repair", Icon: "home"},
	{ID: "s14", Name: "HVAC Services", Category: "Home Repair", Icon: "snow"},
}

var seedProviderUsers = []models.User{
	{
		BaseModel: models.BaseModel{ID: "prov1", CreatedAt: daysAgo(400)},
		Name:      "Mike Johnson",
		Email:     "mike@cleanpro.com",
		Phone:     "+1-555-0101",
		Role:      models.UserRoleProvider,
		ZipCode:   "78701",
		City:      "Austin",
		State:     "TX",
	},
	{
		BaseModel: models.BaseModel{ID: "prov2", CreatedAt: daysAgo(250)},
		Name:      "Sarah Lee",
		Email:     "sarah@fixitright.com",
		Phone:     "+1-555-0102",
		Role:      models.UserRoleProvider,
		ZipCode:   "78702",
		City:      "Austin",
		State:     "TX",
	},
	{
		BaseModel: models.BaseModel{ID: "prov3", CreatedAt: daysAgo(90)},
		Name:      "Carlos Ramirez",
		Email:     "carlos@greenyard.com",
		Phone:     "+1-555-0103",
		Role:      models.UserRoleProvider,
		ZipCode:   "75201",
		City:      "Dallas",
		State:     "TX",
	},
}

var seedProviderProfiles = []models.Provider{
	{
		UserID:                "prov1",
		BusinessName:          "CleanPro Services",
		PriceRangeMin:         80,
		PriceRangeMax:         200,
		Rating:                4.9,
		ReviewCount:           7,
		Level:                 2,
		IsVerified:            true,
		HasInsurance:          true,
		Bio:                   "Professional cleaning with 10 years of experience.",
		Experience:            "10 years",
		SubscriptionPlan:      models.SubscriptionPlanGold,
		AvailableLeads:        5,
		CompletedJobs:         120,
		BonusLeads:            2,
		BackgroundCheckStatus: models.BackgroundCheckClear,
		BackgroundCheckDate:   daysAgoPtr(200),
		ProfileActivated:      true,
		Services: []models.ProviderService{
			{ServiceName: "House Cleaning"},
			{ServiceName: "Carpet Cleaning"},
			{ServiceName: "Window Cleaning"},
		},
		PortfolioImages: []models.ProviderPortfolioImage{
			{ImageURL: "https://cdn.example.com/portfolio/prov1-1.jpg", Position: 0},
			{ImageURL: "https://cdn.example.com/portfolio/prov1-2.jpg", Position: 1},
		},
	},
	{
		UserID:                "prov2",
		BusinessName:          "FixItRight Plumbing",
		PriceRangeMin:         100,
		PriceRangeMax:         500,
		Rating:                3.0,
		ReviewCount:           2,
		Level:                 1,
		IsVerified:            false,
		HasInsurance:          false,
		Bio:                   "Residential plumbing and repairs.",
		Experience:            "4 years",
		SubscriptionPlan:      models.SubscriptionPlanBronze,
		AvailableLeads:        1,
		CompletedJobs:         34,
		BackgroundCheckStatus: models.BackgroundCheckClear,
		BackgroundCheckDate:   daysAgoPtr(120),
		ProfileActivated:      true,
		Services: []models.ProviderService{
			{ServiceName: "Plumbing"},
			{ServiceName: "Bathroom Remodeling"},
		},
	},
	{
		// Новый провайдер: проверка еще идет, профиль не активирован
		UserID:                "prov3",
		BusinessName:          "GreenYard Landscaping",
		PriceRangeMin:         50,
		PriceRangeMax:         150,
		Rating:                0,
		ReviewCount:           0,
		Level:                 1,
		HasInsurance:          true,
		Bio:                   "Lawns, gardens and outdoor projects.",
		Experience:            "2 years",
		SubscriptionPlan:      models.SubscriptionPlanNone,
		BackgroundCheckStatus: models.BackgroundCheckInProgress,
		ProfileActivated:      false,
		Services: []models.ProviderService{
			{ServiceName: "Landscaping"},
			{ServiceName: "Lawn Care"},
		},
	},
}

var seedCustomerUsers = []models.User{
	{
		BaseModel: models.BaseModel{ID: "cust1", CreatedAt: daysAgo(300)},
		Name:      "Emily Davis",
		Email:     "emily@example.com",
		Phone:     "+1-555-0201",
		Role:      models.UserRoleCustomer,
		ZipCode:   "78701",
		City:      "Austin",
		State:     "TX",
	},
	{
		BaseModel: models.BaseModel{ID: "cust2", CreatedAt: daysAgo(150)},
		Name:      "James Wilson",
		Email:     "james@example.com",
		Phone:     "+1-555-0202",
		Role:      models.UserRoleCustomer,
		ZipCode:   "75201",
		City:      "Dallas",
		State:     "TX",
	},
}

var seedCustomerProfiles = []models.Customer{
	{UserID: "cust1", RequestsCount: 3, ReviewCount: 2},
	{UserID: "cust2", RequestsCount: 1, ReviewCount: 1},
}

var seedReviewRows = []models.Review{
	{
		BaseModel:    models.BaseModel{ID: "rev1", CreatedAt: daysAgo(200)},
		ProviderID:   "prov1",
		CustomerID:   "cust1",
		CustomerName: "Emily Davis",
		Rating:       5,
		Comment:      "Spotless job, highly recommend!",
		ServiceType:  "House Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev2", CreatedAt: daysAgo(150)},
		ProviderID:   "prov1",
		CustomerID:   "cust2",
		CustomerName: "James Wilson",
		Rating:       5,
		Comment:      "On time and very professional.",
		ServiceType:  "Carpet Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev3", CreatedAt: daysAgo(120)},
		ProviderID:   "prov1",
		CustomerID:   "cust1",
		CustomerName: "Emily Davis",
		Rating:       4,
		Comment:      "Good work overall, a bit pricey.",
		ServiceType:  "House Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev4", CreatedAt: daysAgo(90)},
		ProviderID:   "prov1",
		CustomerID:   "cust2",
		CustomerName: "James Wilson",
		Rating:       5,
		Comment:      "Windows look brand new.",
		ServiceType:  "Window Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev5", CreatedAt: daysAgo(60)},
		ProviderID:   "prov1",
		CustomerID:   "cust1",
		CustomerName: "Emily Davis",
		Rating:       5,
		Comment:      "Second time booking, still great.",
		ServiceType:  "House Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev6", CreatedAt: daysAgo(30)},
		ProviderID:   "prov1",
		CustomerID:   "cust2",
		CustomerName: "James Wilson",
		Rating:       5,
		Comment:      "Very thorough deep clean.",
		ServiceType:  "House Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev7", CreatedAt: daysAgo(10)},
		ProviderID:   "prov1",
		CustomerID:   "cust1",
		CustomerName: "Emily Davis",
		Rating:       5,
		Comment:      "Excellent as always.",
		ServiceType:  "Carpet Cleaning",
		ReviewerType: models.ReviewerTypeCustomer,
	},
	{
		BaseModel:        models.BaseModel{ID: "rev8", CreatedAt: daysAgo(45)},
		ProviderID:       "prov2",
		CustomerID:       "cust1",
		CustomerName:     "Emily Davis",
		Rating:           2,
		Comment:          "Left the bathroom in a mess.",
		ServiceType:      "Plumbing",
		Disputed:         true,
		ProviderResponse: strPtr("We offered a free follow-up visit."),
		ReviewerType:     models.ReviewerTypeCustomer,
	},
	{
		BaseModel:    models.BaseModel{ID: "rev9", CreatedAt: daysAgo(40)},
		ProviderID:   "prov2",
		CustomerID:   "cust2",
		CustomerName: "James Wilson",
		Rating:       4,
		Comment:      "Fixed the leak quickly.",
		ServiceType:  "Plumbing",
		ReviewerType: models.ReviewerTypeCustomer,
	},
}

var seedServiceRequestRows = []models.ServiceRequest{
	{
		BaseModel:   models.BaseModel{ID: "req1", CreatedAt: daysAgo(7)},
		CustomerID:  "cust1",
		ServiceID:   "s1",
		ServiceName: "House Cleaning",
		Description: "3-bedroom house, deep clean before moving in.",
		ZipCode:     "78701",
		City:        "Austin",
		State:       "TX",
		BudgetMin:   floatPtr(100),
		BudgetMax:   floatPtr(250),
		Status:      models.RequestStatusOpen,
	},
	{
		BaseModel:     models.BaseModel{ID: "req2", CreatedAt: daysAgo(3)},
		CustomerID:    "cust2",
		ServiceID:     "s4",
		ServiceName:   "Plumbing",
		Description:   "Kitchen sink is leaking under the cabinet.",
		ZipCode:       "75201",
		City:          "Dallas",
		State:         "TX",
		Status:        models.RequestStatusOpen,
		ScheduledDate: daysAgoPtr(-2),
	},
	{
		BaseModel:   models.BaseModel{ID: "req3", CreatedAt: daysAgo(30)},
		CustomerID:  "cust1",
		ServiceID:   "s7",
		ServiceName: "Landscaping",
		Description: "Backyard cleanup and new flower beds.",
		ZipCode:     "78701",
		City:        "Austin",
		State:       "TX",
		BudgetMin:   floatPtr(300),
		BudgetMax:   floatPtr(600),
		Status:      models.RequestStatusCompleted,
	},
}

var seedMessageRows = []models.Message{
	{
		BaseModel:        models.BaseModel{ID: "msg1", CreatedAt: daysAgo(6)},
		SenderID:         "cust1",
		ReceiverID:       "prov1",
		Text:             "Hi! Are you available this weekend?",
		OriginalLanguage: "en",
		Read:             true,
	},
	{
		BaseModel:        models.BaseModel{ID: "msg2", CreatedAt: daysAgo(6)},
		SenderID:         "prov1",
		ReceiverID:       "cust1",
		Text:             "Yes, Saturday morning works for me.",
		OriginalLanguage: "en",
		Read:             true,
	},
	{
		BaseModel:        models.BaseModel{ID: "msg3", CreatedAt: daysAgo(1)},
		SenderID:         "cust2",
		ReceiverID:       "prov2",
		Text:             "How soon can you look at the sink?",
		OriginalLanguage: "en",
		Read:             false,
	},
}

var seedRewardRows = []models.GamificationReward{
	{
		// prov1 уже получил бонус за 7 отзывов, повторной выдачи не будет
		BaseModel:  models.BaseModel{ID: "rwd1", CreatedAt: daysAgo(9)},
		ProviderID: "prov1",
		RewardType: models.RewardTypeSevenReviews,
		BonusLeads: 2,
		AwardedAt:  daysAgo(9),
	},
}

var seedLeadPurchaseRows = []models.LeadPurchase{
	{
		BaseModel:   models.BaseModel{ID: "lp1", CreatedAt: daysAgo(20)},
		ProviderID:  "prov1",
		PackageID:   "weekly_pack",
		LeadsCount:  6,
		TotalPrice:  75,
		PurchasedAt: daysAgo(20),
		ExpiresAt:   daysAgoPtr(13),
	},
	{
		BaseModel:   models.BaseModel{ID: "lp2", CreatedAt: daysAgo(2)},
		ProviderID:  "prov2",
		PackageID:   "single_lead",
		LeadsCount:  1,
		TotalPrice:  15,
		PurchasedAt: daysAgo(2),
	},
}

var seedPaymentMethodRows = []models.PaymentMethod{
	{
		BaseModel:   models.BaseModel{ID: "pm1", CreatedAt: daysAgo(100)},
		UserID:      "prov1",
		Type:        models.PaymentMethodCard,
		Last4:       "4242",
		Brand:       "visa",
		ExpiryMonth: 12,
		ExpiryYear:  2027,
		IsDefault:   true,
	},
	{
		BaseModel:   models.BaseModel{ID: "pm2", CreatedAt: daysAgo(40)},
		UserID:      "prov2",
		Type:        models.PaymentMethodCard,
		Last4:       "1881",
		Brand:       "mastercard",
		ExpiryMonth: 6,
		ExpiryYear:  2026,
		IsDefault:   true,
	},
}

var seedPaymentTransactionRows = []models.PaymentTransaction{
	{
		BaseModel:       models.BaseModel{ID: "txn1", CreatedAt: daysAgo(20)},
		UserID:          "prov1",
		Amount:          77.48, // 75 + комиссия шлюза
		Currency:        "USD",
		Type:            models.PaymentTypeLeadPurchase,
		Status:          models.PaymentStatusCompleted,
		PaymentMethodID: "pm1",
		Description:     "Weekly Package (6 leads)",
	},
	{
		BaseModel:       models.BaseModel{ID: "txn2", CreatedAt: daysAgo(15)},
		UserID:          "prov1",
		Amount:          103.19, // 99.99 + комиссия шлюза
		Currency:        "USD",
		Type:            models.PaymentTypeSubscription,
		Status:          models.PaymentStatusCompleted,
		PaymentMethodID: "pm1",
		Description:     "Gold Plan monthly subscription",
	},
}

var seedBackgroundCheckRows = []models.BackgroundCheck{
	{
		BaseModel:   models.BaseModel{ID: "bgc1", CreatedAt: daysAgo(201)},
		ProviderID:  "prov1",
		Status:      models.BackgroundCheckClear,
		InitiatedAt: daysAgo(203),
		CompletedAt: daysAgoPtr(200),
		CheckVendor: "Checkr",
		Results:     datatypes.JSON([]byte(`{"clearanceLevel":"approved","criminalRecords":0}`)),
	},
	{
		BaseModel:   models.BaseModel{ID: "bgc2", CreatedAt: daysAgo(5)},
		ProviderID:  "prov3",
		Status:      models.BackgroundCheckInProgress,
		InitiatedAt: daysAgo(5),
		CheckVendor: "Checkr",
		Results:     datatypes.JSON([]byte(`{}`)),
	},
}

var seedLeadRows = []models.Lead{
	{
		BaseModel:        models.BaseModel{ID: "lead1", CreatedAt: daysAgo(7)},
		ServiceRequestID: "req1",
		CustomerID:       "cust1",
		Price:            15,
		Status:           models.LeadStatusAvailable,
	},
	{
		BaseModel:        models.BaseModel{ID: "lead2", CreatedAt: daysAgo(3)},
		ServiceRequestID: "req2",
		CustomerID:       "cust2",
		Price:            15,
		Status:           models.LeadStatusAvailable,
	},
	{
		BaseModel:        models.BaseModel{ID: "lead3", CreatedAt: daysAgo(30)},
		ServiceRequestID: "req3",
		CustomerID:       "cust1",
		Price:            15,
		Status:           models.LeadStatusExpired,
	},
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
