package content

// NewsItem is one entry on the news feed.
type NewsItem struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// Event is one community event.
type Event struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Day      string `json:"day"`
}

// Curated feed content. Served as-is; there is no per-request generation.
func SeedNews() []NewsItem {
	return []NewsItem{
		{Title: "New Enzyme Degrading Plastic", Category: "Innovation", Summary: "Scientists find bacteria that eats PET."},
		{Title: "Global Plastic Treaty", Category: "Policy", Summary: "UN agrees on binding rules."},
		{Title: "E-Waste Gold Rush", Category: "Tech", Summary: "Recycling smartphones is now profitable."},
	}
}

func SeedEvents() []Event {
	return []Event{
		{Title: "Beach Cleanup", Location: "Santa Monica", Day: "12 OCT"},
		{Title: "E-Waste Drive", Location: "City Hall", Day: "15 OCT"},
	}
}
