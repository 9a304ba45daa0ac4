package prompt

import "fmt"

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are a waste-sorting assistant. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- disposal_method is a short label such as Recycle, Compost, Landfill or E-Waste.
- bin_color names a standard bin color category.
- handling_instructions is one or two sentences of preparation guidance.
- recyclability_score is an integer between 1 and 10.
- upcycling_ideas is an array of short strings; use an empty array when nothing applies.

Schema (example with empty values):
{
  "disposal_method": "<string>",
  "bin_color": "<string>",
  "handling_instructions": "<string>",
  "environmental_impact": "<string>",
  "sdg_connection": "<string>",
  "upcycling_ideas": ["<string>"],
  "decomposition_time": "<string>",
  "recyclability_score": 0
}`
}

// GetUserPrompt builds a compact user message around the item description.
func GetUserPrompt(item string) string {
	return fmt.Sprintf("Analyze %q for waste sorting and respond with the JSON per schema. Return JSON only with no additional text.", item)
}

// Combined returns system and user prompt as one instruction, for providers
// that take a single text part.
func Combined(item string) string {
	return GetSystemPrompt() + "\n\n" + GetUserPrompt(item)
}
