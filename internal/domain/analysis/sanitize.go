package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Generative services are asked for bare JSON but routinely wrap it in
// markdown fences or stray whitespace anyway. Sanitize is the single place
// that turns that soft contract back into a typed Result.

// StripFences removes a leading ```json / ``` fence line and a trailing ```
// fence, plus surrounding whitespace. Text without fences passes through
// trimmed.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Sanitize validates raw model text against the canonical result schema.
// It strips fences, parses, checks required fields, coerces where safe and
// fills sentinels for anything optional the model left out.
func Sanitize(raw string) (*Result, error) {
	text := StripFences(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	res := &Result{
		SDGConnection:      NotProvided,
		UpcyclingIdeas:     []string{},
		DecompositionTime:  NotProvided,
		RecyclabilityScore: ScoreNotProvided,
	}

	required := []struct {
		key string
		dst *string
	}{
		{"disposal_method", &res.DisposalMethod},
		{"bin_color", &res.BinColor},
		{"handling_instructions", &res.HandlingInstructions},
		{"environmental_impact", &res.EnvironmentalImpact},
	}
	for _, f := range required {
		v, ok := fields[f.key]
		if !ok {
			return nil, fmt.Errorf("%w: missing required field %q", ErrSchemaViolation, f.key)
		}
		s, err := asText(v)
		if err != nil || s == "" {
			return nil, fmt.Errorf("%w: field %q must be a non-empty string", ErrSchemaViolation, f.key)
		}
		*f.dst = s
	}

	if v, ok := fields["sdg_connection"]; ok {
		if s, err := asText(v); err == nil && s != "" {
			res.SDGConnection = s
		}
	}
	if v, ok := fields["decomposition_time"]; ok {
		if s, err := asText(v); err == nil && s != "" {
			res.DecompositionTime = s
		}
	}

	if v, ok := fields["upcycling_ideas"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: upcycling_ideas must be a list", ErrSchemaViolation)
		}
		for _, item := range list {
			s, err := asText(item)
			if err != nil {
				return nil, fmt.Errorf("%w: upcycling_ideas entries must be strings", ErrSchemaViolation)
			}
			if s != "" {
				res.UpcyclingIdeas = append(res.UpcyclingIdeas, s)
			}
		}
	}

	if v, ok := fields["recyclability_score"]; ok {
		score, err := asScore(v)
		if err != nil {
			return nil, err
		}
		res.RecyclabilityScore = score
	}

	return res, nil
}

// asText accepts strings as-is and renders bare numbers; anything else is a
// type error left to the caller to classify.
func asText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}

// asScore coerces a recyclability score to an integer in [1,10]. Numeric
// strings are accepted; fractional or out-of-range values are rejected.
func asScore(v any) (int, error) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: recyclability_score %q is not numeric", ErrSchemaViolation, t)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: recyclability_score has unexpected type %T", ErrSchemaViolation, v)
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("%w: recyclability_score must be an integer", ErrSchemaViolation)
	}
	score := int(n)
	if score < 1 || score > 10 {
		return 0, fmt.Errorf("%w: recyclability_score %d out of range [1,10]", ErrSchemaViolation, score)
	}
	return score, nil
}
