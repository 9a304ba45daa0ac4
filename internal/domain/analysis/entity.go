package analysis

// NotProvided is the placeholder for optional fields the model left out,
// so the presentation layer never has to branch on null.
const NotProvided = "Not provided"

// Result is the structured outcome of classifying one item for disposal.
// Required fields are always non-empty after sanitization; optional fields
// fall back to NotProvided (or an empty, non-nil list).
type Result struct {
	DisposalMethod       string   `json:"disposal_method"`
	BinColor             string   `json:"bin_color"`
	HandlingInstructions string   `json:"handling_instructions"`
	EnvironmentalImpact  string   `json:"environmental_impact"`
	SDGConnection        string   `json:"sdg_connection"`
	UpcyclingIdeas       []string `json:"upcycling_ideas"`
	DecompositionTime    string   `json:"decomposition_time"`
	RecyclabilityScore   int      `json:"recyclability_score"`
}

// ScoreNotProvided marks an absent recyclability_score; valid scores are 1-10.
const ScoreNotProvided = 0
