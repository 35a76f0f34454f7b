package airport

var airports = []Airport{
	{Code: "ICN", Name: "Incheon International", City: "Seoul", Country: "South Korea"},
	{Code: "GMP", Name: "Gimpo International", City: "Seoul", Country: "South Korea"},
	{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan"},
	{Code: "HND", Name: "Haneda", City: "Tokyo", Country: "Japan"},
	{Code: "KIX", Name: "Kansai International", City: "Osaka", Country: "Japan"},
	{Code: "PEK", Name: "Beijing Capital", City: "Beijing", Country: "China"},
	{Code: "PVG", Name: "Pudong International", City: "Shanghai", Country: "China"},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "Hong Kong"},
	{Code: "SIN", Name: "Changi", City: "Singapore", Country: "Singapore"},
	{Code: "BKK", Name: "Suvarnabhumi", City: "Bangkok", Country: "Thailand"},
	{Code: "KUL", Name: "Kuala Lumpur International", City: "Kuala Lumpur", Country: "Malaysia"},
	{Code: "MNL", Name: "Ninoy Aquino International", City: "Manila", Country: "Philippines"},
	{Code: "SGN", Name: "Tan Son Nhat", City: "Ho Chi Minh City", Country: "Vietnam"},
	{Code: "HAN", Name: "Noi Bai International", City: "Hanoi", Country: "Vietnam"},
	{Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi", Country: "India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj", City: "Mumbai", Country: "India"},
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE"},
	{Code: "AUH", Name: "Abu Dhabi International", City: "Abu Dhabi", Country: "UAE"},
	{Code: "DOH", Name: "Hamad International", City: "Doha", Country: "Qatar"},
	{Code: "RUH", Name: "King Khalid International", City: "Riyadh", Country: "Saudi Arabia"},
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
	{Code: "EWR", Name: "Newark Liberty International", City: "New York", Country: "USA"},
	{Code: "LGA", Name: "LaGuardia", City: "New York", Country: "USA"},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA"},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "USA"},
	{Code: "MIA", Name: "Miami International", City: "Miami", Country: "USA"},
	{Code: "ATL", Name: "Hartsfield-Jackson", City: "Atlanta", Country: "USA"},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "USA"},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Country: "USA"},
	{Code: "BOS", Name: "Logan International", City: "Boston", Country: "USA"},
	{Code: "IAD", Name: "Dulles International", City: "Washington D.C.", Country: "USA"},
	{Code: "DEN", Name: "Denver International", City: "Denver", Country: "USA"},
	{Code: "LAS", Name: "Harry Reid International", City: "Las Vegas", Country: "USA"},
	{Code: "HNL", Name: "Daniel K. Inouye International", City: "Honolulu", Country: "USA"},
	{Code: "LHR", Name: "Heathrow", City: "London", Country: "UK"},
	{Code: "LGW", Name: "Gatwick", City: "London", Country: "UK"},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France"},
	{Code: "FRA", Name: "Frankfurt am Main", City: "Frankfurt", Country: "Germany"},
	{Code: "MUC", Name: "Munich", City: "Munich", Country: "Germany"},
	{Code: "AMS", Name: "Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{Code: "FCO", Name: "Leonardo da Vinci–Fiumicino", City: "Rome", Country: "Italy"},
	{Code: "MXP", Name: "Malpensa", City: "Milan", Country: "Italy"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas", City: "Madrid", Country: "Spain"},
	{Code: "BCN", Name: "Josep Tarradellas Barcelona–El Prat", City: "Barcelona", Country: "Spain"},
	{Code: "ZRH", Name: "Zürich", City: "Zurich", Country: "Switzerland"},
	{Code: "IST", Name: "Istanbul", City: "Istanbul", Country: "Turkey"},
	{Code: "SYD", Name: "Kingsford Smith", City: "Sydney", Country: "Australia"},
	{Code: "MEL", Name: "Tullamarine", City: "Melbourne", Country: "Australia"},
	{Code: "AKL", Name: "Auckland", City: "Auckland", Country: "New Zealand"},
	{Code: "GRU", Name: "Guarulhos", City: "São Paulo", Country: "Brazil"},
	{Code: "MEX", Name: "Benito Juárez International", City: "Mexico City", Country: "Mexico"},
	{Code: "CUN", Name: "Cancún International", City: "Cancún", Country: "Mexico"},
	{Code: "YYZ", Name: "Toronto Pearson International", City: "Toronto", Country: "Canada"},
	{Code: "YVR", Name: "Vancouver International", City: "Vancouver", Country: "Canada"},
	{Code: "JNB", Name: "O.R. Tambo International", City: "Johannesburg", Country: "South Africa"},
	{Code: "CAI", Name: "Cairo International", City: "Cairo", Country: "Egypt"},
	{Code: "NBO", Name: "Jomo Kenyatta International", City: "Nairobi", Country: "Kenya"},
}
