package community

import "time"

// Flat records behind the community endpoints. IDs are server-assigned,
// lifecycle is insert + query, except challenge days which upsert.

type ListingID string

// Listing is one marketplace entry.
type Listing struct {
	ID         ListingID `json:"id"`
	Title      string    `json:"title"`
	Price      string    `json:"price"`
	Condition  string    `json:"condition"`
	Contact    string    `json:"contact"`
	Emoji      string    `json:"emoji"`
	SellerID   string    `json:"seller_id,omitempty"`
	SellerName string    `json:"seller_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChallengeDay tracks one day of the daily challenge. Day number is the
// logical key; two tabs writing the same day race with last-write-wins.
type ChallengeDay struct {
	Day       int       `json:"day"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarbonSubmission is one footprint questionnaire result.
type CarbonSubmission struct {
	ID        string    `json:"id"`
	Commute   string    `json:"commute"`
	Diet      string    `json:"diet"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// VolunteerSignup is one volunteer registration.
type VolunteerSignup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Interests string    `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
