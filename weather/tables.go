package weather

// Five options per season/zone pair, picked uniformly.
var tables = map[string]map[string][]string{
	"spring": {
		"plains":   {"Sunny", "Cloudy", "Light rain", "Windy", "Mist"},
		"hills":    {"Sunny", "Cloudy", "Rain", "Windy", "Fog"},
		"mountain": {"Sunny", "Scattered snowfall", "Cloudy", "Strong wind", "Thick fog"},
		"coast":    {"Sunny", "Cloudy", "Rain", "Windy", "Sea mist"},
		"desert":   {"Sunny", "Dry heat", "Sandy wind", "Clear", "Sandstorm"},
		"forest":   {"Humid", "Light rain", "Fog", "Sun through the trees", "Breezy"},
		"sea":      {"Sea breeze", "Sunny", "Moderate waves", "Cloudy", "Windy"},
	},
	"summer": {
		"plains":   {"Sunny", "Scorching heat", "Thunderstorm", "Sultry", "Clear"},
		"hills":    {"Sunny", "Hot", "Afternoon thunderstorm", "Breezy", "Heat haze"},
		"mountain": {"Sunny", "Sudden thunderstorm", "Cool", "Wind", "Morning fog"},
		"coast":    {"Sunny", "Sea breeze", "Hot and humid", "Thunderstorm", "Mist"},
		"desert":   {"Scorching heat", "Blazing sun", "Hot wind", "Drought", "Mirage"},
		"forest":   {"Shaded", "Humidity", "Thunderstorm", "Muggy heat", "Sunny"},
		"sea":      {"Calm sea", "Sun and breeze", "Hot and humid", "Sea storm", "Windy"},
	},
	"autumn": {
		"plains":   {"Cloudy", "Rain", "Fog", "Windy", "Clear"},
		"hills":    {"Cloudy", "Persistent rain", "Thick fog", "Strong wind", "Changeable"},
		"mountain": {"Cloudy", "Rain and snow", "Fog", "Icy wind", "First snowfall"},
		"coast":    {"Cloudy", "Rain", "Strong wind", "Storm surge", "Mist"},
		"desert":   {"Hot", "Windy", "Clear", "Sandstorm", "Dry heat"},
		"forest":   {"Thick fog", "Rain", "Windy", "Humid", "Cold and damp"},
		"sea":      {"Rough sea", "Strong wind", "Rain", "Storm surge", "Cloudy"},
	},
	"winter": {
		"plains":   {"Fog", "Freezing", "Snow", "Clear and cold", "Night frost"},
		"hills":    {"Snow", "Freezing", "Fog", "Icy wind", "Ice"},
		"mountain": {"Blizzard", "Heavy snow", "Extreme frost", "Glacial wind", "Clear and freezing"},
		"coast":    {"Biting cold", "Freezing rain", "Cold wind", "Rare snow", "Freezing mist"},
		"desert":   {"Dry cold", "Sunny", "Cold nights", "Windy", "Freezing"},
		"forest":   {"Snow among the trees", "Frost", "Freezing fog", "Cold and damp", "Ice"},
		"sea":      {"Stormy sea", "Icy wind", "Freezing rain", "Storm surges", "Sea fog"},
	},
}
