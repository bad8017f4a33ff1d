package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// buildTestApp wires every route the way main does. The store is never
// initialized in tests, so any handler that survives validation and touches
// it answers 503; a 422 therefore proves the request died before any store
// call.
func buildTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	app.Get("/", Root)
	app.Get("/schema", Schema)
	app.Get("/test", TestDatabase)

	users := app.Party("/users")
	{
		users.Post("/", CreateUser)
		users.Get("/", ListUsers)
	}
	listings := app.Party("/listings")
	{
		listings.Post("/", CreateListing)
		listings.Get("/", SearchListings)
	}
	bookings := app.Party("/bookings")
	{
		bookings.Post("/", RequestBooking)
		bookings.Get("/", ListBookings)
	}
	messages := app.Party("/messages")
	{
		messages.Post("/", SendMessage)
		messages.Get("/", GetMessages)
	}
	reviews := app.Party("/reviews")
	{
		reviews.Post("/", CreateReview)
		reviews.Get("/", ListReviews)
	}
	savedSearches := app.Party("/saved-searches")
	{
		savedSearches.Post("/", CreateSavedSearch)
		savedSearches.Get("/", ListSavedSearches)
	}
	verification := app.Party("/verification")
	{
		verification.Post("/", CreateVerificationRequest)
		verification.Get("/", ListVerificationRequests)
	}

	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func do(app *iris.Application, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestRootAndSchema(t *testing.T) {
	app := buildTestApp()

	resp := do(app, http.MethodGet, "/", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /: expected 200, got %d", resp.Code)
	}
	var root map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &root); err != nil {
		t.Fatalf("GET /: invalid JSON: %v", err)
	}
	if root["name"] != "Rent It API" || root["status"] != "ok" {
		t.Fatalf("GET /: unexpected body %v", root)
	}

	resp = do(app, http.MethodGet, "/schema", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /schema: expected 200, got %d", resp.Code)
	}
	var schema map[string]string
	json.Unmarshal(resp.Body.Bytes(), &schema)
	if schema["status"] != "ok" {
		t.Fatalf("GET /schema: unexpected body %v", schema)
	}
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	app := buildTestApp()

	resp := do(app, http.MethodGet, "/test", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /test: expected 200, got %d", resp.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("GET /test: invalid JSON: %v", err)
	}
	if body["backend"] != "running" {
		t.Fatalf("GET /test: expected backend running, got %v", body["backend"])
	}
	if body["connection_status"] != "Not Connected" {
		t.Fatalf("GET /test: expected Not Connected, got %v", body["connection_status"])
	}
}

// Every schema violation must die with a 422 before the (uninitialized)
// store could be reached.
func TestCreateRejectsInvalidPayloads(t *testing.T) {
	app := buildTestApp()

	cases := []struct {
		name   string
		target string
		body   string
	}{
		{"user missing name", "/users", `{"email":"a@b.com","role":"tenant"}`},
		{"user bad email", "/users", `{"name":"Ada","email":"nope","role":"tenant"}`},
		{"user bad role", "/users", `{"name":"Ada","email":"a@b.com","role":"admin"}`},
		{"listing bad room type", "/listings", `{"landlord_id":"u1","title":"r","description":"d","room_type":"penthouse","price":10,"price_unit":"night","location":{"lat":1,"lng":2}}`},
		{"listing negative price", "/listings", `{"landlord_id":"u1","title":"r","description":"d","room_type":"private_room","price":-5,"price_unit":"night","location":{"lat":1,"lng":2}}`},
		{"listing lat out of range", "/listings", `{"landlord_id":"u1","title":"r","description":"d","room_type":"private_room","price":10,"price_unit":"night","location":{"lat":95,"lng":2}}`},
		{"listing missing location", "/listings", `{"landlord_id":"u1","title":"r","description":"d","room_type":"private_room","price":10,"price_unit":"night"}`},
		{"booking bad date", "/bookings", `{"listing_id":"l1","tenant_id":"t1","start_date":"June 1st","end_date":"2025-06-08"}`},
		{"booking bad status", "/bookings", `{"listing_id":"l1","tenant_id":"t1","start_date":"2025-06-01","end_date":"2025-06-08","status":"pending"}`},
		{"message missing content", "/messages", `{"listing_id":"l1","sender_id":"a","receiver_id":"b"}`},
		{"review rating too high", "/reviews", `{"booking_id":"b1","reviewer_id":"a","reviewee_id":"b","rating":6}`},
		{"review rating too low", "/reviews", `{"booking_id":"b1","reviewer_id":"a","reviewee_id":"b","rating":0}`},
		{"saved search missing query", "/saved-searches", `{"tenant_id":"t1","name":"rooms"}`},
		{"verification empty documents", "/verification", `{"user_id":"u1","type":"id","document_urls":[]}`},
		{"verification bad type", "/verification", `{"user_id":"u1","type":"passport","document_urls":["https://cdn.example.com/x.pdf"]}`},
	}

	for _, tc := range cases {
		resp := do(app, http.MethodPost, tc.target, tc.body)
		if resp.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d (%s)", tc.name, resp.Code, resp.Body.String())
		}
	}
}

// Valid payloads pass validation and hit the store precondition: with no
// configured database the adapter fails with ErrUnavailable, surfaced as 503.
func TestCreateValidPayloadsReachTheStore(t *testing.T) {
	app := buildTestApp()

	cases := []struct {
		name   string
		target string
		body   string
	}{
		{"user", "/users", `{"name":"Ada","email":"ada@example.com","role":"tenant"}`},
		{"listing", "/listings", `{"landlord_id":"u1","title":"bright room","description":"near the park","room_type":"private_room","price":0,"price_unit":"month","location":{"lat":52.52,"lng":13.405}}`},
		{"booking", "/bookings", `{"listing_id":"l1","tenant_id":"t1","start_date":"2025-06-08","end_date":"2025-06-01"}`}, // reversed dates are accepted, no ordering check
		{"message", "/messages", `{"listing_id":"l1","sender_id":"a","receiver_id":"b","content":"hi"}`},
		{"review", "/reviews", `{"booking_id":"b1","reviewer_id":"a","reviewee_id":"b","rating":1}`},
		{"saved search", "/saved-searches", `{"tenant_id":"t1","name":"rooms","query":{"price_max":500}}`},
		{"verification", "/verification", `{"user_id":"u1","type":"id","document_urls":["https://cdn.example.com/x.pdf"]}`},
	}

	for _, tc := range cases {
		resp := do(app, http.MethodPost, tc.target, tc.body)
		if resp.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503 from the unconfigured store, got %d (%s)", tc.name, resp.Code, resp.Body.String())
		}
	}
}

func TestListSavedSearchesRequiresTenantID(t *testing.T) {
	app := buildTestApp()

	resp := do(app, http.MethodGet, "/saved-searches", "")
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without tenant_id, got %d", resp.Code)
	}

	// With tenant_id the request is valid and reaches the store.
	resp = do(app, http.MethodGet, "/saved-searches?tenant_id=t1", "")
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from the unconfigured store, got %d", resp.Code)
	}
}

// Geo parameters are accepted but never filtered on: the request must get
// past parameter handling to the store untouched by lat/lng/radius_km.
func TestSearchListingsAcceptsGeoParams(t *testing.T) {
	app := buildTestApp()

	resp := do(app, http.MethodGet, "/listings?lat=52.52&lng=13.405&radius_km=5", "")
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from the unconfigured store, got %d", resp.Code)
	}
}
