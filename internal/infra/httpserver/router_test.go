package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalysis "github.com/ecoverse/ecosort/internal/application/analysis"
	appcommunity "github.com/ecoverse/ecosort/internal/application/community"
	appcontent "github.com/ecoverse/ecosort/internal/application/content"
	apppayments "github.com/ecoverse/ecosort/internal/application/payments"
	domanalysis "github.com/ecoverse/ecosort/internal/domain/analysis"
	infrapayments "github.com/ecoverse/ecosort/internal/infra/payments"
	"github.com/ecoverse/ecosort/internal/testutil"
)

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) Generate(ctx context.Context, item string) (string, error) {
	return g.response, g.err
}

type stubClock struct{ t time.Time }

func (c *stubClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestRouter(gen domanalysis.Generator) (http.Handler, *testutil.MemSubmissionRepo) {
	subs := &testutil.MemSubmissionRepo{}
	communitySvc := &appcommunity.Service{
		Listings:    &testutil.MemListingRepo{},
		Challenges:  &testutil.MemChallengeRepo{},
		Submissions: subs,
		Clock:       &stubClock{t: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	h := NewRouter(Deps{
		Analysis:  appanalysis.NewService(gen, nil),
		Community: communitySvc,
		Content:   appcontent.NewService(),
		Payments:  apppayments.NewService(infrapayments.NewSimulated()),
		// generous limits so tests never trip the limiter
		RateCapacity: 1000,
		RateRefill:   1000,
	})
	return h, subs
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:4711"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" +
		`{"disposal_method":"Recycle","bin_color":"Blue","handling_instructions":"Rinse and recycle.","environmental_impact":"Reduces landfill waste."}` +
		"\n```"}
	h, _ := newTestRouter(gen)

	rec := doJSON(t, h, http.MethodPost, "/api/analyze", map[string]string{"item": "plastic bottle"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res domanalysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Recycle", res.DisposalMethod)
	assert.Equal(t, "Blue", res.BinColor)
	assert.Equal(t, domanalysis.NotProvided, res.SDGConnection)
	assert.NotNil(t, res.UpcyclingIdeas)
}

func TestAnalyzeEndpointRejectsEmptyItem(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})

	for _, body := range []map[string]string{{}, {"item": "   "}} {
		rec := doJSON(t, h, http.MethodPost, "/api/analyze", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Item is required")
	}
}

func TestAnalyzeEndpointCollapsesFailureKinds(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"transport failure", &stubGenerator{err: domanalysis.ErrServiceUnavailable}},
		{"malformed", &stubGenerator{response: "I cannot analyze this."}},
		{"schema violation", &stubGenerator{response: `{"bin_color":"Blue"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(tt.gen)
			rec := doJSON(t, h, http.MethodPost, "/api/analyze", map[string]string{"item": "thing"})
			assert.Equal(t, http.StatusBadGateway, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			// one generic message regardless of internal kind
			assert.Equal(t, "could not analyze this item", body["error"])
		})
	}
}

func TestListingsRoundTrip(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})

	rec := doJSON(t, h, http.MethodPost, "/api/listings", map[string]string{
		"title":     "Bamboo shelf",
		"price":     "$15",
		"condition": "Used",
		"emoji":     "🪵",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/listings", map[string]string{
		"title": "Glass jars",
		"price": "$3",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 2)
	// newest first
	assert.Equal(t, "Glass jars", listings[0]["title"])
	assert.Equal(t, "Bamboo shelf", listings[1]["title"])
}

func TestListingsEmptyIsArray(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})
	rec := doJSON(t, h, http.MethodGet, "/api/listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListingRequiresTitle(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})
	rec := doJSON(t, h, http.MethodPost, "/api/listings", map[string]string{"price": "$1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChallengeEndpoints(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})

	for _, day := range []int{2, 4} {
		rec := doJSON(t, h, http.MethodPost, "/api/challenge", map[string]any{"day": day, "completed": true})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	}
	// upsert the same day again
	rec := doJSON(t, h, http.MethodPost, "/api/challenge", map[string]any{"day": 2, "completed": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/challenge", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var days []int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	assert.Equal(t, []int{2, 4}, days)

	rec = doJSON(t, h, http.MethodPost, "/api/challenge", map[string]any{"day": 0, "completed": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCarbonEndpoint(t *testing.T) {
	h, subs := newTestRouter(&stubGenerator{})

	rec := doJSON(t, h, http.MethodPost, "/api/carbon", map[string]string{
		"commute": "Car",
		"diet":    "Meat-heavy",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2100, body["score"])
	assert.Len(t, subs.Carbon, 1)
}

func TestVolunteerEndpoint(t *testing.T) {
	h, subs := newTestRouter(&stubGenerator{})

	rec := doJSON(t, h, http.MethodPost, "/api/volunteer", map[string]string{
		"name":      "Ada",
		"email":     "ada@example.com",
		"interests": "cleanups",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, subs.Volunteers, 1)

	rec = doJSON(t, h, http.MethodPost, "/api/volunteer", map[string]string{
		"name":  "Ada",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactEndpoint(t *testing.T) {
	h, subs := newTestRouter(&stubGenerator{})

	rec := doJSON(t, h, http.MethodPost, "/api/contact", map[string]string{
		"email":   "ada@example.com",
		"message": "Hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, subs.Contacts, 1)

	rec = doJSON(t, h, http.MethodPost, "/api/contact", map[string]string{
		"email":   "ada@example.com",
		"message": "  ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsAndEvents(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})

	rec := doJSON(t, h, http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var news []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &news))
	assert.Len(t, news, 3)

	rec = doJSON(t, h, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	assert.Len(t, events, 2)
}

func TestPaymentIntent(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})

	rec := doJSON(t, h, http.MethodPost, "/api/create-payment-intent", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body["clientSecret"], "pi_"))
	assert.Contains(t, body["clientSecret"], "_secret_")
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})
	rec := doJSON(t, h, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Endpoint not found")
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:9999")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// any localhost port is allowed for development
	assert.Equal(t, "http://localhost:9999", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
