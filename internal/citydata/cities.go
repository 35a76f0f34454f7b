package citydata

var cities = map[string]CityData{
	"Dubai": {
		MainMode: "Uber / Metro",
		Transport: []TransportTemplate{
			{Type: "Uber", Icon: "🚗", Description: "Uber (avg city ride)", CostPerTrip: 8, TripsPerDay: 4, Notes: "RTA Taxi also available at similar rates"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Airport to hotel area (Uber/Taxi)", CostPerTrip: 25, TripsPerDay: 0, Notes: "~30-45 min to Downtown/Marina"},
			{Type: "Metro", Icon: "🚇", Description: "Dubai Metro (Red/Green line)", CostPerTrip: 1.5, TripsPerDay: 4, Notes: "Clean, efficient, covers main business areas"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Local / Casual Dining", AvgCost: 12},
			{Tier: MealMid, Label: "Mid-range Restaurant", AvgCost: 35},
			{Tier: MealFine, Label: "Fine Dining / Client Dinner", AvgCost: 85},
		},
		Hotels: []HotelTemplate{
			{Name: "Rove Downtown", Stars: 3, PricePerNight: 85, Rating: 4.3, Neighborhood: "Downtown Dubai"},
			{Name: "Hilton Dubai Al Habtoor City", Stars: 4, PricePerNight: 150, Rating: 4.5, Neighborhood: "Al Habtoor City"},
			{Name: "JW Marriott Marquis", Stars: 5, PricePerNight: 220, Rating: 4.7, Neighborhood: "Business Bay"},
			{Name: "Atlantis The Royal", Stars: 5, PricePerNight: 450, Rating: 4.8, Neighborhood: "Palm Jumeirah"},
		},
		Timezone:              "GST (UTC+4)",
		TimezoneOffset:        4,
		Currency:              "AED",
		CurrencySymbol:        "د.إ",
		ExchangeRateToUSD:     0.27,
		AirportToHotelKm:      25,
		AirportToHotelMinutes: 35,
	},
	"Miami": {
		MainMode: "Uber / Metrorail",
		Transport: []TransportTemplate{
			{Type: "Uber", Icon: "🚗", Description: "Uber (avg city ride)", CostPerTrip: 15, TripsPerDay: 4, Notes: "Prices surge during events and rush hours"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Airport to hotel area (Uber)", CostPerTrip: 25, TripsPerDay: 0, Notes: "~25-40 min to South Beach/Downtown"},
			{Type: "Metrorail", Icon: "🚇", Description: "Miami-Dade Metrorail", CostPerTrip: 2.25, TripsPerDay: 3, Notes: "Limited coverage, good for Downtown-Airport route"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Casual / Fast-casual", AvgCost: 15},
			{Tier: MealMid, Label: "Mid-range Restaurant", AvgCost: 45},
			{Tier: MealFine, Label: "Fine Dining / Client Dinner", AvgCost: 120},
		},
		Hotels: []HotelTemplate{
			{Name: "Hampton Inn Miami Brickell", Stars: 3, PricePerNight: 140, Rating: 4.2, Neighborhood: "Brickell"},
			{Name: "Hyatt Regency Miami", Stars: 4, PricePerNight: 200, Rating: 4.4, Neighborhood: "Downtown"},
			{Name: "Four Seasons Miami", Stars: 5, PricePerNight: 380, Rating: 4.8, Neighborhood: "Brickell"},
			{Name: "Mandarin Oriental Miami", Stars: 5, PricePerNight: 450, Rating: 4.7, Neighborhood: "Brickell Key"},
		},
		Timezone:              "EST (UTC-5)",
		TimezoneOffset:        -5,
		Currency:              "USD",
		CurrencySymbol:        "$",
		ExchangeRateToUSD:     1,
		AirportToHotelKm:      15,
		AirportToHotelMinutes: 30,
	},
	"New York": {
		MainMode: "Subway / Uber",
		Transport: []TransportTemplate{
			{Type: "Uber", Icon: "🚗", Description: "Uber (avg city ride)", CostPerTrip: 20, TripsPerDay: 3, Notes: "Yellow cabs also widely available"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "JFK to Manhattan (Uber/Taxi)", CostPerTrip: 55, TripsPerDay: 0, Notes: "~45-75 min depending on traffic"},
			{Type: "Subway", Icon: "🚇", Description: "NYC Subway (MTA)", CostPerTrip: 2.9, TripsPerDay: 4, Notes: "Extensive coverage, 24/7 service"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Deli / Fast-casual", AvgCost: 18},
			{Tier: MealMid, Label: "Mid-range Restaurant", AvgCost: 55},
			{Tier: MealFine, Label: "Fine Dining / Client Dinner", AvgCost: 150},
		},
		Hotels: []HotelTemplate{
			{Name: "Pod 51", Stars: 3, PricePerNight: 160, Rating: 4.1, Neighborhood: "Midtown East"},
			{Name: "The Manhattan at Times Square", Stars: 4, PricePerNight: 230, Rating: 4.3, Neighborhood: "Midtown"},
			{Name: "The Peninsula New York", Stars: 5, PricePerNight: 550, Rating: 4.8, Neighborhood: "Fifth Avenue"},
		},
		Timezone:              "EST (UTC-5)",
		TimezoneOffset:        -5,
		Currency:              "USD",
		CurrencySymbol:        "$",
		ExchangeRateToUSD:     1,
		AirportToHotelKm:      25,
		AirportToHotelMinutes: 55,
	},
	"London": {
		MainMode: "Tube / Uber",
		Transport: []TransportTemplate{
			{Type: "Uber", Icon: "🚗", Description: "Uber (avg city ride)", CostPerTrip: 18, TripsPerDay: 3, Notes: "Black cabs also available"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Heathrow to Central London", CostPerTrip: 30, TripsPerDay: 0, Notes: "Heathrow Express: 15 min, Tube: 50 min"},
			{Type: "Tube", Icon: "🚇", Description: "London Underground", CostPerTrip: 3.5, TripsPerDay: 4, Notes: "Oyster card recommended, extensive network"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Pub Lunch / Casual", AvgCost: 16},
			{Tier: MealMid, Label: "Mid-range Restaurant", AvgCost: 50},
			{Tier: MealFine, Label: "Fine Dining / Client Dinner", AvgCost: 130},
		},
		Hotels: []HotelTemplate{
			{Name: "Premier Inn London City", Stars: 3, PricePerNight: 130, Rating: 4.2, Neighborhood: "City of London"},
			{Name: "DoubleTree by Hilton Tower of London", Stars: 4, PricePerNight: 210, Rating: 4.4, Neighborhood: "Tower Hill"},
			{Name: "The Savoy", Stars: 5, PricePerNight: 600, Rating: 4.9, Neighborhood: "Covent Garden"},
		},
		Timezone:              "GMT (UTC+0)",
		TimezoneOffset:        0,
		Currency:              "GBP",
		CurrencySymbol:        "£",
		ExchangeRateToUSD:     1.27,
		AirportToHotelKm:      30,
		AirportToHotelMinutes: 50,
	},
	"Tokyo": {
		MainMode: "Train / Subway",
		Transport: []TransportTemplate{
			{Type: "Taxi", Icon: "🚕", Description: "Taxi (avg city ride)", CostPerTrip: 12, TripsPerDay: 2, Notes: "Clean and reliable but expensive"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Narita Express to Tokyo Station", CostPerTrip: 22, TripsPerDay: 0, Notes: "~60 min express train"},
			{Type: "Subway/Train", Icon: "🚇", Description: "Tokyo Metro + JR Lines", CostPerTrip: 2, TripsPerDay: 5, Notes: "Suica/Pasmo card, world-class network"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Ramen / Bento / Yoshinoya", AvgCost: 8},
			{Tier: MealMid, Label: "Izakaya / Mid-range", AvgCost: 30},
			{Tier: MealFine, Label: "Fine Dining / Omakase", AvgCost: 120},
		},
		Hotels: []HotelTemplate{
			{Name: "Tokyu Stay Shinjuku", Stars: 3, PricePerNight: 90, Rating: 4.3, Neighborhood: "Shinjuku"},
			{Name: "Mitsui Garden Hotel Ginza", Stars: 4, PricePerNight: 170, Rating: 4.5, Neighborhood: "Ginza"},
			{Name: "Aman Tokyo", Stars: 5, PricePerNight: 700, Rating: 4.9, Neighborhood: "Otemachi"},
		},
		Timezone:              "JST (UTC+9)",
		TimezoneOffset:        9,
		Currency:              "JPY",
		CurrencySymbol:        "¥",
		ExchangeRateToUSD:     0.0067,
		AirportToHotelKm:      70,
		AirportToHotelMinutes: 60,
	},
	"Singapore": {
		MainMode: "MRT / Grab",
		Transport: []TransportTemplate{
			{Type: "Grab/Uber", Icon: "🚗", Description: "Grab (avg city ride)", CostPerTrip: 10, TripsPerDay: 4, Notes: "Grab is the dominant ride-hailing app"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Changi to CBD (Grab)", CostPerTrip: 18, TripsPerDay: 0, Notes: "~25 min, MRT also available"},
			{Type: "MRT", Icon: "🚇", Description: "Singapore MRT", CostPerTrip: 1.5, TripsPerDay: 4, Notes: "Excellent coverage, EZ-Link card"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Hawker Centre", AvgCost: 5},
			{Tier: MealMid, Label: "Restaurant / Cafe", AvgCost: 25},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 100},
		},
		Hotels: []HotelTemplate{
			{Name: "ibis Singapore", Stars: 3, PricePerNight: 100, Rating: 4.1, Neighborhood: "Bencoolen"},
			{Name: "Pan Pacific Singapore", Stars: 4, PricePerNight: 200, Rating: 4.6, Neighborhood: "Marina Bay"},
			{Name: "Marina Bay Sands", Stars: 5, PricePerNight: 400, Rating: 4.7, Neighborhood: "Marina Bay"},
		},
		Timezone:              "SGT (UTC+8)",
		TimezoneOffset:        8,
		Currency:              "SGD",
		CurrencySymbol:        "S$",
		ExchangeRateToUSD:     0.75,
		AirportToHotelKm:      20,
		AirportToHotelMinutes: 25,
	},
	"Seoul": {
		MainMode: "Subway / Taxi",
		Transport: []TransportTemplate{
			{Type: "Taxi", Icon: "🚕", Description: "Taxi (avg city ride)", CostPerTrip: 6, TripsPerDay: 3, Notes: "Kakao T app recommended"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Incheon to Seoul (AREX)", CostPerTrip: 8, TripsPerDay: 0, Notes: "AREX Express: 43 min to Seoul Station"},
			{Type: "Subway", Icon: "🚇", Description: "Seoul Metro", CostPerTrip: 1, TripsPerDay: 4, Notes: "T-money card, extensive network"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Korean BBQ / Street Food", AvgCost: 7},
			{Tier: MealMid, Label: "Restaurant", AvgCost: 20},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 80},
		},
		Hotels: []HotelTemplate{
			{Name: "Nine Tree Premier Myeongdong", Stars: 3, PricePerNight: 75, Rating: 4.3, Neighborhood: "Myeongdong"},
			{Name: "Lotte Hotel Seoul", Stars: 4, PricePerNight: 180, Rating: 4.6, Neighborhood: "Jung-gu"},
			{Name: "The Shilla Seoul", Stars: 5, PricePerNight: 350, Rating: 4.8, Neighborhood: "Jung-gu"},
		},
		Timezone:              "KST (UTC+9)",
		TimezoneOffset:        9,
		Currency:              "KRW",
		CurrencySymbol:        "₩",
		ExchangeRateToUSD:     0.00073,
		AirportToHotelKm:      55,
		AirportToHotelMinutes: 50,
	},
	"Hong Kong": {
		MainMode: "MTR / Taxi",
		Transport: []TransportTemplate{
			{Type: "Taxi", Icon: "🚕", Description: "Taxi (avg city ride)", CostPerTrip: 8, TripsPerDay: 3, Notes: "Red taxis for urban areas"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Airport Express to Central", CostPerTrip: 15, TripsPerDay: 0, Notes: "~24 min express train"},
			{Type: "MTR", Icon: "🚇", Description: "Hong Kong MTR", CostPerTrip: 1.5, TripsPerDay: 4, Notes: "Octopus card, efficient system"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Cha Chaan Teng / Street Food", AvgCost: 6},
			{Tier: MealMid, Label: "Restaurant", AvgCost: 30},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 110},
		},
		Hotels: []HotelTemplate{
			{Name: "Butterfly on Morrison", Stars: 3, PricePerNight: 90, Rating: 4.1, Neighborhood: "Wan Chai"},
			{Name: "Marco Polo Hongkong", Stars: 4, PricePerNight: 175, Rating: 4.4, Neighborhood: "Tsim Sha Tsui"},
			{Name: "The Peninsula Hong Kong", Stars: 5, PricePerNight: 500, Rating: 4.9, Neighborhood: "Tsim Sha Tsui"},
		},
		Timezone:              "HKT (UTC+8)",
		TimezoneOffset:        8,
		Currency:              "HKD",
		CurrencySymbol:        "HK$",
		ExchangeRateToUSD:     0.13,
		AirportToHotelKm:      35,
		AirportToHotelMinutes: 30,
	},
	"Paris": {
		MainMode: "Métro / Uber",
		Transport: []TransportTemplate{
			{Type: "Uber", Icon: "🚗", Description: "Uber (avg city ride)", CostPerTrip: 15, TripsPerDay: 3, Notes: "Also Bolt and local taxis"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "CDG to Paris (RER B)", CostPerTrip: 12, TripsPerDay: 0, Notes: "RER B: ~35 min to Châtelet"},
			{Type: "Métro", Icon: "🚇", Description: "Paris Métro", CostPerTrip: 2.5, TripsPerDay: 4, Notes: "Navigo card for weekly pass"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Boulangerie / Bistro", AvgCost: 14},
			{Tier: MealMid, Label: "Brasserie / Restaurant", AvgCost: 45},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 140},
		},
		Hotels: []HotelTemplate{
			{Name: "ibis Paris Montmartre", Stars: 3, PricePerNight: 110, Rating: 4.0, Neighborhood: "Montmartre"},
			{Name: "Hôtel Monge", Stars: 4, PricePerNight: 220, Rating: 4.6, Neighborhood: "Latin Quarter"},
			{Name: "Le Bristol Paris", Stars: 5, PricePerNight: 800, Rating: 4.9, Neighborhood: "Faubourg Saint-Honoré"},
		},
		Timezone:              "CET (UTC+1)",
		TimezoneOffset:        1,
		Currency:              "EUR",
		CurrencySymbol:        "€",
		ExchangeRateToUSD:     1.08,
		AirportToHotelKm:      30,
		AirportToHotelMinutes: 40,
	},
	"San Francisco": {
		MainMode: "BART / Uber",
		Transport: []TransportTemplate{
			{Type: "Uber", Icon: "🚗", Description: "Uber/Lyft (avg city ride)", CostPerTrip: 18, TripsPerDay: 3, Notes: "Lyft also very popular"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "SFO to Downtown (BART)", CostPerTrip: 10, TripsPerDay: 0, Notes: "~30 min via BART"},
			{Type: "BART", Icon: "🚇", Description: "Bay Area Rapid Transit", CostPerTrip: 3, TripsPerDay: 3, Notes: "Clipper card recommended"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Burrito / Casual", AvgCost: 16},
			{Tier: MealMid, Label: "Restaurant", AvgCost: 50},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 140},
		},
		Hotels: []HotelTemplate{
			{Name: "HI San Francisco Downtown", Stars: 3, PricePerNight: 150, Rating: 4.0, Neighborhood: "Union Square"},
			{Name: "Hotel Nikko San Francisco", Stars: 4, PricePerNight: 250, Rating: 4.4, Neighborhood: "Union Square"},
			{Name: "The St. Regis San Francisco", Stars: 5, PricePerNight: 500, Rating: 4.8, Neighborhood: "SoMa"},
		},
		Timezone:              "PST (UTC-8)",
		TimezoneOffset:        -8,
		Currency:              "USD",
		CurrencySymbol:        "$",
		ExchangeRateToUSD:     1,
		AirportToHotelKm:      20,
		AirportToHotelMinutes: 30,
	},
	"Bangkok": {
		MainMode: "BTS / Grab",
		Transport: []TransportTemplate{
			{Type: "Grab", Icon: "🚗", Description: "Grab (avg city ride)", CostPerTrip: 4, TripsPerDay: 4, Notes: "Grab is the main ride-hailing app"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Suvarnabhumi to CBD", CostPerTrip: 8, TripsPerDay: 0, Notes: "Airport Rail Link: ~30 min"},
			{Type: "BTS/MRT", Icon: "🚇", Description: "BTS Skytrain / MRT", CostPerTrip: 1.2, TripsPerDay: 4, Notes: "Rabbit card for BTS"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Street Food / Food Court", AvgCost: 3},
			{Tier: MealMid, Label: "Restaurant", AvgCost: 15},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 60},
		},
		Hotels: []HotelTemplate{
			{Name: "ibis Bangkok Sukhumvit", Stars: 3, PricePerNight: 40, Rating: 4.1, Neighborhood: "Sukhumvit"},
			{Name: "Grande Centre Point Ratchadamri", Stars: 4, PricePerNight: 90, Rating: 4.5, Neighborhood: "Ratchadamri"},
			{Name: "Mandarin Oriental Bangkok", Stars: 5, PricePerNight: 300, Rating: 4.9, Neighborhood: "Riverside"},
		},
		Timezone:              "ICT (UTC+7)",
		TimezoneOffset:        7,
		Currency:              "THB",
		CurrencySymbol:        "฿",
		ExchangeRateToUSD:     0.029,
		AirportToHotelKm:      30,
		AirportToHotelMinutes: 35,
	},
	"Jakarta": {
		MainMode: "Grab / TransJakarta",
		Transport: []TransportTemplate{
			{Type: "Grab", Icon: "🚗", Description: "Grab (avg city ride)", CostPerTrip: 3, TripsPerDay: 4, Notes: "GrabCar or GrabBike"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "CGK to CBD (Sudirman area)", CostPerTrip: 15, TripsPerDay: 0, Notes: "~60-90 min depending on traffic"},
			{Type: "TransJakarta", Icon: "🚌", Description: "TransJakarta BRT", CostPerTrip: 0.25, TripsPerDay: 3, Notes: "Bus Rapid Transit system"},
			{Type: "MRT", Icon: "🚇", Description: "Jakarta MRT", CostPerTrip: 0.7, TripsPerDay: 3, Notes: "North-South line covers CBD"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Warung / Street Food", AvgCost: 3},
			{Tier: MealMid, Label: "Restaurant", AvgCost: 12},
			{Tier: MealFine, Label: "Fine Dining / Client", AvgCost: 50},
		},
		Hotels: []HotelTemplate{
			{Name: "Ibis Jakarta Harmoni", Stars: 3, PricePerNight: 35, Rating: 4.0, Neighborhood: "Harmoni"},
			{Name: "Pullman Jakarta Indonesia", Stars: 4, PricePerNight: 80, Rating: 4.5, Neighborhood: "Thamrin"},
			{Name: "The Ritz-Carlton Jakarta", Stars: 5, PricePerNight: 180, Rating: 4.8, Neighborhood: "Mega Kuningan"},
		},
		Timezone:              "WIB (UTC+7)",
		TimezoneOffset:        7,
		Currency:              "IDR",
		CurrencySymbol:        "Rp",
		ExchangeRateToUSD:     0.000063,
		AirportToHotelKm:      30,
		AirportToHotelMinutes: 75,
	},
	"Bali": {
		MainMode: "Grab / Private Driver",
		Transport: []TransportTemplate{
			{Type: "Grab", Icon: "🚗", Description: "Grab (avg ride)", CostPerTrip: 3, TripsPerDay: 3, Notes: "Some areas restrict Grab"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Airport to Seminyak/Ubud", CostPerTrip: 12, TripsPerDay: 0, Notes: "~30-60 min"},
			{Type: "Private Driver", Icon: "🚐", Description: "Daily hire driver", CostPerTrip: 35, TripsPerDay: 1, Notes: "Full day with driver, common option"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Warung / Local", AvgCost: 3},
			{Tier: MealMid, Label: "Café / Restaurant", AvgCost: 10},
			{Tier: MealFine, Label: "Beach Club / Fine Dining", AvgCost: 45},
		},
		Hotels: []HotelTemplate{
			{Name: "OYO Kuta Beach", Stars: 3, PricePerNight: 25, Rating: 3.8, Neighborhood: "Kuta"},
			{Name: "Alila Seminyak", Stars: 4, PricePerNight: 120, Rating: 4.6, Neighborhood: "Seminyak"},
			{Name: "Four Seasons Jimbaran Bay", Stars: 5, PricePerNight: 350, Rating: 4.9, Neighborhood: "Jimbaran"},
		},
		Timezone:              "WITA (UTC+8)",
		TimezoneOffset:        8,
		Currency:              "IDR",
		CurrencySymbol:        "Rp",
		ExchangeRateToUSD:     0.000063,
		AirportToHotelKm:      15,
		AirportToHotelMinutes: 30,
	},
	"Taipei": {
		MainMode: "MRT / Uber",
		Transport: []TransportTemplate{
			{Type: "Uber/Taxi", Icon: "🚗", Description: "Uber or taxi (avg ride)", CostPerTrip: 5, TripsPerDay: 3, Notes: "Uber or local taxi apps"},
			{Type: "Airport Transfer", Icon: "✈️", Description: "Taoyuan to Taipei Main Station", CostPerTrip: 5, TripsPerDay: 0, Notes: "Airport MRT Express ~35 min"},
			{Type: "MRT", Icon: "🚇", Description: "Taipei Metro MRT", CostPerTrip: 0.8, TripsPerDay: 4, Notes: "Excellent coverage, EasyCard accepted"},
		},
		Meals: []MealCost{
			{Tier: MealBudget, Label: "Night Market / Local", AvgCost: 4},
			{Tier: MealMid, Label: "Restaurant", AvgCost: 15},
			{Tier: MealFine, Label: "Fine Dining", AvgCost: 60},
		},
		Hotels: []HotelTemplate{
			{Name: "CityInn Plus Ximending", Stars: 3, PricePerNight: 55, Rating: 4.2, Neighborhood: "Ximending"},
			{Name: "Regent Taipei", Stars: 4, PricePerNight: 130, Rating: 4.6, Neighborhood: "Zhongshan"},
			{Name: "Mandarin Oriental Taipei", Stars: 5, PricePerNight: 280, Rating: 4.8, Neighborhood: "Songshan"},
		},
		Timezone:              "CST (UTC+8)",
		TimezoneOffset:        8,
		Currency:              "TWD",
		CurrencySymbol:        "NT$",
		ExchangeRateToUSD:     0.031,
		AirportToHotelKm:      35,
		AirportToHotelMinutes: 40,
	},
}

var defaultCity = CityData{
	MainMode: "Taxi / Public Transit",
	Transport: []TransportTemplate{
		{Type: "Taxi/Uber", Icon: "🚗", Description: "Taxi or ride-hailing (avg ride)", CostPerTrip: 12, TripsPerDay: 4, Notes: "Check local ride-hailing apps"},
		{Type: "Airport Transfer", Icon: "✈️", Description: "Airport to hotel area", CostPerTrip: 30, TripsPerDay: 0, Notes: "Estimated average"},
		{Type: "Public Transit", Icon: "🚇", Description: "Local public transport", CostPerTrip: 2, TripsPerDay: 4, Notes: "Check local transit options"},
	},
	Meals: []MealCost{
		{Tier: MealBudget, Label: "Budget / Local", AvgCost: 10},
		{Tier: MealMid, Label: "Mid-range", AvgCost: 35},
		{Tier: MealFine, Label: "Fine Dining", AvgCost: 100},
	},
	Hotels: []HotelTemplate{
		{Name: "3-Star Business Hotel", Stars: 3, PricePerNight: 100, Rating: 4.0, Neighborhood: "City Center"},
		{Name: "4-Star Business Hotel", Stars: 4, PricePerNight: 180, Rating: 4.4, Neighborhood: "City Center"},
		{Name: "5-Star Luxury Hotel", Stars: 5, PricePerNight: 350, Rating: 4.7, Neighborhood: "City Center"},
	},
	Timezone:              "UTC",
	TimezoneOffset:        0,
	Currency:              "USD",
	CurrencySymbol:        "$",
	ExchangeRateToUSD:     1,
	AirportToHotelKm:      25,
	AirportToHotelMinutes: 35,
}
