package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/ecoverse/ecosort/internal/application/analysis"
	appcommunity "github.com/ecoverse/ecosort/internal/application/community"
	appcontent "github.com/ecoverse/ecosort/internal/application/content"
	apppayments "github.com/ecoverse/ecosort/internal/application/payments"
	domanalysis "github.com/ecoverse/ecosort/internal/domain/analysis"
	domcommunity "github.com/ecoverse/ecosort/internal/domain/community"
	"github.com/ecoverse/ecosort/internal/middleware"
)

// All analysis failure kinds collapse to this one user-facing message; the
// kinds stay distinguishable in server logs only.
const analysisFailedMsg = "could not analyze this item"

type Router struct {
	analysisSvc  *appanalysis.Service
	communitySvc *appcommunity.Service
	contentSvc   *appcontent.Service
	paymentsSvc  *apppayments.Service
}

type Deps struct {
	Analysis  *appanalysis.Service
	Community *appcommunity.Service
	Content   *appcontent.Service
	Payments  *apppayments.Service

	AllowedOrigins []string
	HealthCheckers map[string]middleware.HealthChecker

	// Requests per client IP for /api/analyze and friends
	RateCapacity int
	RateRefill   int
}

func NewRouter(d Deps) http.Handler {
	r := &Router{
		analysisSvc:  d.Analysis,
		communitySvc: d.Community,
		contentSvc:   d.Content,
		paymentsSvc:  d.Payments,
	}

	capacity, refill := d.RateCapacity, d.RateRefill
	if capacity <= 0 {
		capacity = 30
	}
	if refill <= 0 {
		refill = 1
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(req *http.Request, origin string) bool {
			for _, o := range d.AllowedOrigins {
				if o == origin {
					return true
				}
			}
			return middleware.IsLocalDevOrigin(origin)
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(capacity, refill))

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/health", middleware.HealthHandler(d.HealthCheckers))
		rt.Get("/metrics", middleware.MetricsHandler)

		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/listings", r.wrap(r.handleListListings))
		rt.Post("/listings", r.wrap(r.handleCreateListing))
		rt.Get("/challenge", r.wrap(r.handleChallengeProgress))
		rt.Post("/challenge", r.wrap(r.handleChallengeUpdate))
		rt.Post("/carbon", r.wrap(r.handleCarbon))
		rt.Post("/volunteer", r.wrap(r.handleVolunteer))
		rt.Post("/contact", r.wrap(r.handleContact))
		rt.Get("/news", r.wrap(r.handleNews))
		rt.Get("/events", r.wrap(r.handleEvents))
		rt.Post("/create-payment-intent", r.wrap(r.handlePaymentIntent))
	})

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// apiError carries a status for input problems the handler classified itself.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func badRequest(msg string) error { return &apiError{status: http.StatusBadRequest, msg: msg} }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var ae *apiError
		switch {
		case errors.As(err, &ae):
			writeError(w, ae.status, ae.msg)
		case errors.Is(err, domanalysis.ErrInvalidItem):
			writeError(w, http.StatusBadRequest, "Item is required")
		case errors.Is(err, domanalysis.ErrServiceUnavailable),
			errors.Is(err, domanalysis.ErrAnalysisTimeout),
			errors.Is(err, domanalysis.ErrMalformedResponse),
			errors.Is(err, domanalysis.ErrSchemaViolation):
			// kinds stay in the log, never in the response
			log.Printf("analysis failed: %v", err)
			writeError(w, http.StatusBadGateway, analysisFailedMsg)
		default:
			log.Printf("request failed path=%s: %v", req.URL.Path, err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, map[string]string{"error": msg})
}

// POST /api/analyze
// Body: {"item": "<description>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Item string `json:"item"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("Item is required")
	}

	middleware.IncrementAnalyses()
	res, err := r.analysisSvc.Analyze(req.Context(), body.Item)
	if err != nil {
		if !errors.Is(err, domanalysis.ErrInvalidItem) {
			middleware.IncrementAnalysesFailed()
		}
		return err
	}
	return writeJSON(w, http.StatusOK, res)
}

// GET /api/listings?limit=50
func (r *Router) handleListListings(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.communitySvc.LatestListings(req.Context(), limit)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domcommunity.Listing{}
	}
	return writeJSON(w, http.StatusOK, list)
}

// POST /api/listings
func (r *Router) handleCreateListing(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Title      string `json:"title"`
		Price      string `json:"price"`
		Condition  string `json:"condition"`
		Contact    string `json:"contact"`
		Emoji      string `json:"emoji"`
		SellerID   string `json:"seller_id"`
		SellerName string `json:"seller_name"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid listing payload")
	}
	if strings.TrimSpace(body.Title) == "" {
		return badRequest("listing title is required")
	}

	created, err := r.communitySvc.CreateListing(req.Context(), appcommunity.CreateListingCommand{
		Title:      body.Title,
		Price:      body.Price,
		Condition:  body.Condition,
		Contact:    body.Contact,
		Emoji:      body.Emoji,
		SellerID:   body.SellerID,
		SellerName: body.SellerName,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, created)
}

// GET /api/challenge → array of completed day numbers
func (r *Router) handleChallengeProgress(w http.ResponseWriter, req *http.Request) error {
	days, err := r.communitySvc.CompletedChallengeDays(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, days)
}

// POST /api/challenge
// Body: {"day": 3, "completed": true}
func (r *Router) handleChallengeUpdate(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Day       int  `json:"day"`
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid challenge payload")
	}
	if body.Day < 1 {
		return badRequest("challenge day must be positive")
	}
	if err := r.communitySvc.SetChallengeDay(req.Context(), body.Day, body.Completed); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// POST /api/carbon
// Body: {"commute": "...", "diet": "..."}
func (r *Router) handleCarbon(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Commute string `json:"commute"`
		Diet    string `json:"diet"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid carbon payload")
	}
	score, err := r.communitySvc.SubmitCarbon(req.Context(), body.Commute, body.Diet)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]int{"score": score})
}

// POST /api/volunteer
func (r *Router) handleVolunteer(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Interests string `json:"interests"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid volunteer payload")
	}
	if err := middleware.ValidateEmail(body.Email); err != nil {
		return badRequest(err.Error())
	}
	if strings.TrimSpace(body.Name) == "" {
		return badRequest("volunteer name is required")
	}
	if err := r.communitySvc.SignUpVolunteer(req.Context(), body.Name, body.Email, body.Interests); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// POST /api/contact
func (r *Router) handleContact(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid contact payload")
	}
	if err := middleware.ValidateEmail(body.Email); err != nil {
		return badRequest(err.Error())
	}
	if strings.TrimSpace(body.Message) == "" {
		return badRequest("contact message is required")
	}
	if err := r.communitySvc.SubmitContact(req.Context(), body.Email, body.Message); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/news
func (r *Router) handleNews(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.contentSvc.News())
}

// GET /api/events
func (r *Router) handleEvents(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.contentSvc.Events())
}

// POST /api/create-payment-intent
func (r *Router) handlePaymentIntent(w http.ResponseWriter, req *http.Request) error {
	secret, err := r.paymentsSvc.CreateDonationIntent(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}
