package config

import "tripplanner/models"

// DefaultPlannerData returns a fresh copy of the built-in planner data.
// Callers may modify the returned value freely.
func DefaultPlannerData() PlannerData {
	return PlannerData{
		DefaultDestination: "Goa",
		Destinations: map[string]models.DestinationProfile{
			"goa":       goaProfile(),
			"kerala":    keralaProfile(),
			"rajasthan": rajasthanProfile(),
		},
		Shares:    models.BudgetShares{Accommodation: 35, Food: 25, Transport: 20, Activities: 15, Misc: 5},
		MinBudget: 1000,
		MaxDays:   30,
		Slots: map[string]SlotSetting{
			"morning":   {Fraction: 0.3, Time: "09:00 AM"},
			"afternoon": {Fraction: 0.4, Time: "02:00 PM"},
			"evening":   {Fraction: 0.3, Time: "06:00 PM"},
		},
		MealSplit: []Share{
			{Name: "breakfast", Fraction: 0.2},
			{Name: "lunch", Fraction: 0.4},
			{Name: "dinner", Fraction: 0.4},
		},
		TransportSplit: []Share{
			{Name: "outbound", Fraction: 0.6, From: "Hotel", To: "Tourist Spots"},
			{Name: "return", Fraction: 0.4, From: "Tourist Spots", To: "Hotel"},
		},
		TransportMode:     "Taxi/Auto",
		TransportDuration: "30 mins",
		Tiers:             TierThresholds{Budget: 2000, MidRange: 5000},
		Prices: PriceTables{
			HotelLevelCost:      []float64{1000, 2000, 4000, 8000, 15000},
			RestaurantLevelCost: []float64{200, 400, 800, 1500, 3000},
			RestaurantRangeCost: map[string]float64{
				"budget":    300,
				"mid_range": 800,
				"expensive": 1500,
			},
			RestaurantDefaultCost:  500,
			DefaultHotelLevel:      1,
			DefaultRestaurantLevel: 2,
			HotelNightThresholds:   []float64{2000, 4000, 8000, 15000},
			CuisineTypes: map[string]string{
				"indian_restaurant":        "Indian",
				"chinese_restaurant":       "Chinese",
				"italian_restaurant":       "Italian",
				"mexican_restaurant":       "Mexican",
				"japanese_restaurant":      "Japanese",
				"thai_restaurant":          "Thai",
				"american_restaurant":      "American",
				"french_restaurant":        "French",
				"mediterranean_restaurant": "Mediterranean",
				"seafood_restaurant":       "Seafood",
				"vegetarian_restaurant":    "Vegetarian",
				"fast_food_restaurant":     "Fast Food",
				"cafe":                     "Cafe",
				"bakery":                   "Bakery",
			},
		},
		TransportFares: []TransportFare{
			{Provider: "Ola", Type: "cab", Category: "Mini", Base: 50, PerKm: 12, Rating: 4.1, EstimatedTime: "5-8 minutes", Features: []string{"AC", "GPS Tracking", "Digital Payment"}, BookingLink: "https://book.olacabs.com/"},
			{Provider: "Ola", Type: "cab", Category: "Prime", Base: 70, PerKm: 15, Rating: 4.3, EstimatedTime: "5-8 minutes", Features: []string{"AC", "GPS Tracking", "Premium Car", "Digital Payment"}, BookingLink: "https://book.olacabs.com/"},
			{Provider: "Uber", Type: "cab", Category: "UberGo", Base: 45, PerKm: 11, Rating: 4.2, EstimatedTime: "4-7 minutes", Features: []string{"AC", "GPS Tracking", "Cashless Payment"}, BookingLink: "https://m.uber.com/"},
			{Provider: "Uber", Type: "cab", Category: "UberXL", Base: 80, PerKm: 18, Rating: 4.4, EstimatedTime: "6-10 minutes", Features: []string{"AC", "GPS Tracking", "Spacious", "Digital Payment"}, BookingLink: "https://m.uber.com/"},
			{Provider: "Rapido", Type: "cab", Category: "Rapido Cab", Base: 40, PerKm: 10, MaxKm: 15, Rating: 4.0, EstimatedTime: "3-6 minutes", Features: []string{"Budget Friendly", "Quick Booking", "Digital Payment"}, BookingLink: "https://rapido.bike/"},
			{Provider: "Local Auto", Type: "auto", Category: "Auto Rickshaw", Base: 25, PerKm: 8, MaxKm: 10, Rating: 3.8, EstimatedTime: "10-15 minutes", Features: []string{"Economical", "Local Transport", "Cash Payment"}},
			{Provider: "Rapido", Type: "auto", Category: "Rapido Auto", Base: 30, PerKm: 9, MaxKm: 12, Rating: 3.9, EstimatedTime: "8-12 minutes", Features: []string{"App Booking", "GPS Tracking", "Digital Payment"}, BookingLink: "https://rapido.bike/"},
			{Provider: "City Metro", Type: "metro", Category: "Metro", Base: 10, PerKm: 2, MaxKm: 40, Rating: 4.5, EstimatedTime: "Every 5 minutes", Features: []string{"AC", "Fast", "Eco Friendly"}},
			{Provider: "State Transport", Type: "bus", Category: "City Bus", Base: 10, PerKm: 1.5, Rating: 3.5, EstimatedTime: "Every 15 minutes", Features: []string{"Cheapest", "Wide Network"}},
			{Provider: "Indian Railways", Type: "train", Category: "Sleeper", Base: 100, PerKm: 0.6, Rating: 3.9, EstimatedTime: "Scheduled", Features: []string{"Long Distance", "Budget Friendly"}, BookingLink: "https://www.irctc.co.in/"},
		},
		Languages:       []string{"English", "Hindi", "Bengali", "Tamil", "Telugu", "Marathi", "Gujarati"},
		DefaultLanguage: "English",
		Locales: map[string]models.Locale{
			"english": {
				Summary: "Welcome to your personalized {days}-day {destination} adventure! Yatra Sathi has crafted this itinerary based on your ₹{budget} budget, ensuring you experience the best of {destination} while staying within your means.",
				Tips: []string{
					"Carry sunscreen and stay hydrated",
					"Respect local customs and traditions",
					"Try local cuisine for authentic experience",
					"Keep emergency contacts handy",
					"Bargain politely at local markets",
				},
				ActivityTips: []string{
					"Book in advance during peak season",
					"Carry water and snacks",
					"Wear comfortable shoes",
				},
				LocalInfo: []models.InfoItem{
					{Key: "currency", Value: "Indian Rupee (₹)"},
					{Key: "timeZone", Value: "IST (UTC+5:30)"},
					{Key: "electricity", Value: "230V, 50Hz"},
					{Key: "tipping", Value: "10-15% at restaurants"},
					{Key: "bargaining", Value: "Common in local markets"},
				},
				FreeTime: "Free time to explore",
			},
			"hindi": {
				Summary: "आपके व्यक्तिगत {days}-दिन के {destination} साहसिक यात्रा में आपका स्वागत है! यात्रा साथी ने आपके ₹{budget} बजट के आधार पर यह यात्रा कार्यक्रम तैयार किया है।",
				Tips: []string{
					"सनस्क्रीन लगाएं और पानी पिएं",
					"स्थानीय रीति-रिवाजों का सम्मान करें",
					"प्रामाणिक अनुभव के लिए स्थानीय भोजन आज़माएं",
					"आपातकालीन संपर्क नंबर रखें",
					"स्थानीय बाज़ारों में विनम्रता से मोल-भाव करें",
				},
				ActivityTips: []string{
					"पीक सीज़न में पहले से बुकिंग करें",
					"पानी और नाश्ता साथ रखें",
					"आरामदायक जूते पहनें",
				},
				LocalInfo: []models.InfoItem{
					{Key: "currency", Value: "भारतीय रुपया (₹)"},
					{Key: "timeZone", Value: "IST (UTC+5:30)"},
					{Key: "electricity", Value: "230V, 50Hz"},
					{Key: "tipping", Value: "रेस्टोरेंट में 10-15%"},
					{Key: "bargaining", Value: "स्थानीय बाज़ारों में आम"},
				},
				FreeTime: "घूमने के लिए खाली समय",
			},
		},
		EmergencyContacts: []models.InfoItem{
			{Key: "police", Value: "100"},
			{Key: "ambulance", Value: "108"},
			{Key: "fire", Value: "101"},
			{Key: "touristHelpline", Value: "1363"},
		},
		Weather: models.WeatherInfo{
			Temperature:    "25-32°C",
			Humidity:       "70-80%",
			Rainfall:       "Low",
			Recommendation: "Perfect weather for sightseeing!",
		},
		FoodTips: []string{
			"Try local street food for authentic flavors",
			"Visit highly-rated restaurants during off-peak hours",
			"Ask locals for hidden food gems",
			"Don't miss regional specialties",
			"Check restaurant hygiene ratings before dining",
		},
	}
}

func goaProfile() models.DestinationProfile {
	return models.DestinationProfile{
		Name:        "Goa",
		Type:        "Beach Destination",
		BestTime:    "November to March",
		Climate:     "Tropical",
		Currency:    "INR",
		Languages:   "English, Hindi, Konkani",
		Center:      models.Location{Latitude: 15.4909, Longitude: 73.8278, Address: "Panaji"},
		Attractions: []string{"Baga Beach", "Calangute Beach", "Old Goa Churches", "Dudhsagar Falls"},
		Activities: map[string][]models.ActivitySpec{
			"morning": {
				{ID: "goa-baga-walk", Name: "Beach Walk at Baga", Description: "Peaceful morning walk along the pristine beach", Location: models.Location{Latitude: 15.5553, Longitude: 73.7517, Address: "Baga Beach"}, Cost: 0, Duration: "1 hour", Rating: 4.4},
				{ID: "goa-dolphin-trip", Name: "Dolphin Spotting", Description: "Boat trip to spot dolphins in the Arabian Sea", Location: models.Location{Latitude: 15.4989, Longitude: 73.7653, Address: "Sinquerim Beach"}, Cost: 500, Duration: "2 hours", Rating: 4.3},
			},
			"afternoon": {
				{ID: "goa-old-churches", Name: "Old Goa Churches Tour", Description: "Visit historic churches and learn about Portuguese heritage", Location: models.Location{Latitude: 15.5009, Longitude: 73.9116, Address: "Old Goa"}, Cost: 200, Duration: "3 hours", Rating: 4.6},
				{ID: "goa-spice-plantation", Name: "Spice Plantation Visit", Description: "Guided tour of organic spice plantation with lunch", Location: models.Location{Latitude: 15.4027, Longitude: 74.0078, Address: "Ponda"}, Cost: 800, Duration: "4 hours", Rating: 4.4},
			},
			"evening": {
				{ID: "goa-anjuna-sunset", Name: "Sunset at Anjuna Beach", Description: "Watch beautiful sunset with beach shacks", Location: models.Location{Latitude: 15.5733, Longitude: 73.7407, Address: "Anjuna Beach"}, Cost: 300, Duration: "2 hours", Rating: 4.5},
				{ID: "goa-night-market", Name: "Night Market Shopping", Description: "Explore local handicrafts and souvenirs", Location: models.Location{Latitude: 15.5562, Longitude: 73.7688, Address: "Arpora Saturday Night Market"}, Cost: 500, Duration: "3 hours", Rating: 4.2},
			},
		},
		HotelTiers: models.HotelTiers{
			Budget:   models.HotelTier{Name: "Backpacker Hostel", Type: "Hostel", NominalCost: 1500, Rating: 4.0, Amenities: []string{"WiFi", "AC", "Breakfast"}},
			MidRange: models.HotelTier{Name: "Comfort Inn", Type: "Hotel", NominalCost: 3500, Rating: 4.2, Amenities: []string{"WiFi", "AC", "Pool", "Restaurant"}},
			Luxury:   models.HotelTier{Name: "Beach Resort", Type: "Resort", NominalCost: 8000, Rating: 4.8, Amenities: []string{"WiFi", "AC", "Pool", "Spa", "Beach Access"}},
		},
		Meals:       defaultMeals("Seafood Special", "Beachside Restaurant", "Seafood"),
		LocalPolice: "+91-832-2420016",
		LocalTripKm: 12,
	}
}

func keralaProfile() models.DestinationProfile {
	return models.DestinationProfile{
		Name:        "Kerala",
		Type:        "Backwater & Hill Station",
		BestTime:    "October to March",
		Climate:     "Tropical",
		Currency:    "INR",
		Languages:   "English, Hindi, Malayalam",
		Center:      models.Location{Latitude: 9.9312, Longitude: 76.2673, Address: "Kochi"},
		Attractions: []string{"Alleppey Backwaters", "Munnar Hills", "Kochi Fort", "Thekkady Wildlife"},
		Activities: map[string][]models.ActivitySpec{
			"morning": {
				{ID: "kerala-tea-estate", Name: "Tea Plantation Tour", Description: "Walk through the tea estates of Munnar", Location: models.Location{Latitude: 10.0889, Longitude: 77.0595, Address: "Munnar"}, Cost: 400, Duration: "3 hours", Rating: 4.6},
				{ID: "kerala-fort-kochi-walk", Name: "Fort Kochi Heritage Walk", Description: "Chinese fishing nets and colonial streets", Location: models.Location{Latitude: 9.9658, Longitude: 76.2421, Address: "Fort Kochi"}, Cost: 0, Duration: "2 hours", Rating: 4.4},
			},
			"afternoon": {
				{ID: "kerala-houseboat", Name: "Houseboat Cruise", Description: "Cruise the Alleppey backwaters on a kettuvallam", Location: models.Location{Latitude: 9.4981, Longitude: 76.3388, Address: "Alleppey"}, Cost: 1500, Duration: "4 hours", Rating: 4.7},
				{ID: "kerala-ayurveda", Name: "Ayurvedic Massage", Description: "Traditional ayurvedic treatment session", Location: models.Location{Latitude: 9.9312, Longitude: 76.2673, Address: "Kochi"}, Cost: 1200, Duration: "2 hours", Rating: 4.3},
			},
			"evening": {
				{ID: "kerala-kathakali", Name: "Kathakali Performance", Description: "Classical dance drama at a cultural centre", Location: models.Location{Latitude: 9.9650, Longitude: 76.2430, Address: "Kerala Kathakali Centre"}, Cost: 350, Duration: "2 hours", Rating: 4.5},
				{ID: "kerala-marine-drive", Name: "Marine Drive Stroll", Description: "Evening walk along the Kochi waterfront", Location: models.Location{Latitude: 9.9770, Longitude: 76.2760, Address: "Marine Drive"}, Cost: 0, Duration: "1 hour", Rating: 4.1},
			},
		},
		HotelTiers: models.HotelTiers{
			Budget:   models.HotelTier{Name: "Homestay", Type: "Homestay", NominalCost: 1200, Rating: 4.1, Amenities: []string{"WiFi", "Breakfast"}},
			MidRange: models.HotelTier{Name: "Backwater Retreat", Type: "Hotel", NominalCost: 3000, Rating: 4.3, Amenities: []string{"WiFi", "AC", "Restaurant"}},
			Luxury:   models.HotelTier{Name: "Lake Palace Resort", Type: "Resort", NominalCost: 7000, Rating: 4.8, Amenities: []string{"WiFi", "AC", "Pool", "Spa", "Lake View"}},
		},
		Meals:       defaultMeals("Kerala Sadya", "Local Restaurant", "Kerala"),
		LocalPolice: "+91-484-2394500",
		LocalTripKm: 15,
	}
}

func rajasthanProfile() models.DestinationProfile {
	return models.DestinationProfile{
		Name:        "Rajasthan",
		Type:        "Heritage & Desert",
		BestTime:    "October to March",
		Climate:     "Arid",
		Currency:    "INR",
		Languages:   "English, Hindi, Rajasthani",
		Center:      models.Location{Latitude: 26.9124, Longitude: 75.7873, Address: "Jaipur"},
		Attractions: []string{"Jaipur City Palace", "Udaipur Lake Palace", "Jaisalmer Fort", "Thar Desert"},
		Activities: map[string][]models.ActivitySpec{
			"morning": {
				{ID: "raj-amber-fort", Name: "Amber Fort Visit", Description: "Explore the hilltop fort and its mirror palace", Location: models.Location{Latitude: 26.9855, Longitude: 75.8513, Address: "Amer"}, Cost: 500, Duration: "3 hours", Rating: 4.7},
				{ID: "raj-hawa-mahal", Name: "Hawa Mahal", Description: "Photograph the palace of winds at sunrise", Location: models.Location{Latitude: 26.9239, Longitude: 75.8267, Address: "Jaipur Old City"}, Cost: 200, Duration: "1 hour", Rating: 4.5},
			},
			"afternoon": {
				{ID: "raj-city-palace", Name: "City Palace Tour", Description: "Royal residence, museums and courtyards", Location: models.Location{Latitude: 26.9258, Longitude: 75.8237, Address: "City Palace"}, Cost: 700, Duration: "3 hours", Rating: 4.6},
				{ID: "raj-bazaar", Name: "Johari Bazaar Shopping", Description: "Jewellery, textiles and block prints", Location: models.Location{Latitude: 26.9196, Longitude: 75.8270, Address: "Johari Bazaar"}, Cost: 300, Duration: "2 hours", Rating: 4.2},
			},
			"evening": {
				{ID: "raj-chokhi-dhani", Name: "Cultural Village Evening", Description: "Folk dance, puppet shows and Rajasthani dinner", Location: models.Location{Latitude: 26.7676, Longitude: 75.8340, Address: "Chokhi Dhani"}, Cost: 900, Duration: "3 hours", Rating: 4.4},
				{ID: "raj-nahargarh-sunset", Name: "Nahargarh Sunset", Description: "City views from the fort walls at dusk", Location: models.Location{Latitude: 26.9373, Longitude: 75.8155, Address: "Nahargarh Fort"}, Cost: 200, Duration: "2 hours", Rating: 4.6},
			},
		},
		HotelTiers: models.HotelTiers{
			Budget:   models.HotelTier{Name: "Heritage Guest House", Type: "Guest House", NominalCost: 1800, Rating: 4.0, Amenities: []string{"WiFi", "AC"}},
			MidRange: models.HotelTier{Name: "Haveli Hotel", Type: "Hotel", NominalCost: 4000, Rating: 4.3, Amenities: []string{"WiFi", "AC", "Rooftop Restaurant"}},
			Luxury:   models.HotelTier{Name: "Palace Hotel", Type: "Palace", NominalCost: 10000, Rating: 4.9, Amenities: []string{"WiFi", "AC", "Pool", "Spa", "Heritage Tours"}},
		},
		Meals:       defaultMeals("Dal Baati Churma", "Heritage Restaurant", "Rajasthani"),
		LocalPolice: "+91-141-2560063",
		LocalTripKm: 10,
	}
}

func defaultMeals(dinner, dinnerPlace, dinnerCuisine string) []models.MealSpec {
	return []models.MealSpec{
		{Type: "breakfast", Name: "Local Breakfast", Location: "Hotel/Local Cafe", Cuisine: "Local", Rating: 4.0},
		{Type: "lunch", Name: "Traditional Thali", Location: "Local Restaurant", Cuisine: "Regional", Rating: 4.3},
		{Type: "dinner", Name: dinner, Location: dinnerPlace, Cuisine: dinnerCuisine, Rating: 4.5},
	}
}
