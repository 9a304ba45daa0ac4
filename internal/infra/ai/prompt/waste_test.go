package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPromptContainsItem(t *testing.T) {
	p := GetUserPrompt("greasy pizza box")
	assert.Contains(t, p, "greasy pizza box")
}

func TestCombinedCarriesSchemaAndItem(t *testing.T) {
	p := Combined("AA battery")
	assert.Contains(t, p, "AA battery")
	assert.Contains(t, p, "disposal_method")
	assert.Contains(t, p, "recyclability_score")
}
