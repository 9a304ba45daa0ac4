package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullBody = `{
  "disposal_method": "Recycle",
  "bin_color": "Blue",
  "handling_instructions": "Rinse and recycle.",
  "environmental_impact": "Reduces landfill waste.",
  "sdg_connection": "SDG 12: Responsible Consumption and Production",
  "upcycling_ideas": ["Planter", "Bird feeder"],
  "decomposition_time": "450 years",
  "recyclability_score": 9
}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"no trailing fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestSanitizeRoundTrip(t *testing.T) {
	res, err := Sanitize("  ```json\n" + fullBody + "\n```  ")
	require.NoError(t, err)

	assert.Equal(t, "Recycle", res.DisposalMethod)
	assert.Equal(t, "Blue", res.BinColor)
	assert.Equal(t, "Rinse and recycle.", res.HandlingInstructions)
	assert.Equal(t, "Reduces landfill waste.", res.EnvironmentalImpact)
	assert.Equal(t, "SDG 12: Responsible Consumption and Production", res.SDGConnection)
	assert.Equal(t, []string{"Planter", "Bird feeder"}, res.UpcyclingIdeas)
	assert.Equal(t, "450 years", res.DecompositionTime)
	assert.Equal(t, 9, res.RecyclabilityScore)
}

func TestSanitizeNotJSON(t *testing.T) {
	_, err := Sanitize("I cannot analyze this.")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSanitizeMissingRequiredField(t *testing.T) {
	_, err := Sanitize(`{"bin_color":"Blue","handling_instructions":"x","environmental_impact":"y"}`)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestSanitizeEmptyRequiredField(t *testing.T) {
	_, err := Sanitize(`{"disposal_method":"","bin_color":"Blue","handling_instructions":"x","environmental_impact":"y"}`)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestSanitizeOptionalSentinels(t *testing.T) {
	res, err := Sanitize(`{"disposal_method":"Recycle","bin_color":"Blue","handling_instructions":"Rinse.","environmental_impact":"Less landfill."}`)
	require.NoError(t, err)

	assert.Equal(t, NotProvided, res.SDGConnection)
	assert.Equal(t, NotProvided, res.DecompositionTime)
	assert.NotNil(t, res.UpcyclingIdeas)
	assert.Empty(t, res.UpcyclingIdeas)
	assert.Equal(t, ScoreNotProvided, res.RecyclabilityScore)
}

func TestSanitizeScoreCoercion(t *testing.T) {
	tests := []struct {
		name    string
		score   string
		want    int
		wantErr bool
	}{
		{"numeric string", `"7"`, 7, false},
		{"number", `7`, 7, false},
		{"non-numeric string", `"high"`, 0, true},
		{"fractional", `6.5`, 0, true},
		{"out of range", `11`, 0, true},
		{"zero", `0`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"disposal_method":"Recycle","bin_color":"Blue","handling_instructions":"x","environmental_impact":"y","recyclability_score":` + tt.score + `}`
			res, err := Sanitize(body)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSchemaViolation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.RecyclabilityScore)
		})
	}
}

func TestSanitizeUpcyclingIdeasWrongType(t *testing.T) {
	body := `{"disposal_method":"Recycle","bin_color":"Blue","handling_instructions":"x","environmental_impact":"y","upcycling_ideas":"none"}`
	_, err := Sanitize(body)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}
