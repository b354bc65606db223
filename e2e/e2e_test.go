//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"welfare-app-go/internal/config"
	"welfare-app-go/internal/db"
	applicationdomain "welfare-app-go/internal/domain/application"
	authndomain "welfare-app-go/internal/domain/authn"
	contactdomain "welfare-app-go/internal/domain/contact"
	grievancedomain "welfare-app-go/internal/domain/grievance"
	listingdomain "welfare-app-go/internal/domain/listing"
	schemedomain "welfare-app-go/internal/domain/scheme"
	applicationrepo "welfare-app-go/internal/repository/postgres/application"
	authnrepo "welfare-app-go/internal/repository/postgres/authn"
	contactrepo "welfare-app-go/internal/repository/postgres/contact"
	grievancerepo "welfare-app-go/internal/repository/postgres/grievance"
	listingrepo "welfare-app-go/internal/repository/postgres/listing"
	schemerepo "welfare-app-go/internal/repository/postgres/scheme"
	"welfare-app-go/internal/transport/httpserver"
	"welfare-app-go/internal/transport/httpserver/handler"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"welfare-app-go/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.NewFromEnv()

	cfg := config.Config{
		HTTPPort:           "0",
		Env:                "test",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		BcryptCost:         bcrypt.MinCost,
		DB:                 config.DBConfig{DSN: dsn},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	authService := authndomain.NewService(authnrepo.NewPostgres(dbConn), cfg.BcryptCost)
	schemeService := schemedomain.NewService(schemerepo.NewPostgres(dbConn))
	applicationService := applicationdomain.NewService(applicationrepo.NewPostgres(dbConn))
	contactService := contactdomain.NewService(contactrepo.NewPostgres(dbConn))
	listingService := listingdomain.NewService(listingrepo.NewPostgres(dbConn))
	grievanceService := grievancedomain.NewService(grievancerepo.NewPostgres(dbConn))

	handlers := handler.New(
		authService,
		schemeService,
		applicationService,
		contactService,
		listingService,
		grievanceService,
		log,
	)
	identity := middleware.NewIdentity(authService, log)

	router := httpserver.NewRouter(cfg, handlers, identity)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE grievances, marketplace_listings, emergency_contacts, applications, schemes, accounts RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url, actorEmail string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actorEmail != "" {
		req.Header.Set(middleware.ActorHeader, actorEmail)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type userBody struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authBody struct {
	Message string   `json:"message"`
	User    userBody `json:"user"`
}

type grievanceBody struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Subject    string     `json:"subject"`
	Details    string     `json:"details"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	FiledAt    time.Time  `json:"filedAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}

type grievanceEnvelope struct {
	Message   string        `json:"message"`
	Grievance grievanceBody `json:"grievance"`
}

type listingBody struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContactInfo string    `json:"contactInfo"`
	PostedAt    time.Time `json:"postedAt"`
}

type listingEnvelope struct {
	Message string      `json:"message"`
	Listing listingBody `json:"listing"`
}

type contactBody struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
}

type contactEnvelope struct {
	Message string      `json:"message"`
	Contact contactBody `json:"contact"`
}

func registerUser(t *testing.T, client *http.Client, baseURL, email, role string) userBody {
	t.Helper()

	resp, body := requestJSON(t, client, http.MethodPost, baseURL+"/api/register", "", map[string]string{
		"email":    email,
		"password": "password",
		"role":     role,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, resp.StatusCode, string(body))
	}
	var registered authBody
	if err := json.Unmarshal(body, &registered); err != nil {
		t.Fatalf("decode register: %v", err)
	}
	return registered.User
}

func TestE2EAuthFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	user := registerUser(t, client, env.server.URL, "anna@example.com", "family")
	if user.ID == "" || user.Role != "family" {
		t.Fatalf("unexpected registered user: %+v", user)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/register", "", map[string]string{
		"email":    "anna@example.com",
		"password": "password",
		"role":     "family",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "password",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/grievances", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/grievances", "nobody@example.com", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown actor, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EGrievanceLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	admin := registerUser(t, client, env.server.URL, "admin@example.com", "admin")
	family := registerUser(t, client, env.server.URL, "boris@example.com", "family")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/grievances", family.Email, map[string]string{
		"userId":   family.Email,
		"subject":  "Broken street light",
		"details":  "The light outside block C has been out for a week.",
		"priority": "high",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var filed grievanceEnvelope
	if err := json.Unmarshal(body, &filed); err != nil {
		t.Fatalf("decode grievance: %v", err)
	}
	if filed.Grievance.Status != "Open" {
		t.Fatalf("expected Open, got %q", filed.Grievance.Status)
	}
	if filed.Grievance.ResolvedAt != nil {
		t.Fatalf("expected nil resolvedAt on filing")
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/grievances", family.Email, map[string]string{
		"userId":   admin.Email,
		"subject":  "Spoofed",
		"details":  "Filed on behalf of someone else.",
		"priority": "low",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/grievances/"+filed.Grievance.ID+"/status", family.Email, map[string]string{
		"status": "Resolved",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/grievances/"+filed.Grievance.ID+"/status", admin.Email, map[string]string{
		"status": "Resolved",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var resolved grievanceEnvelope
	if err := json.Unmarshal(body, &resolved); err != nil {
		t.Fatalf("decode grievance: %v", err)
	}
	if resolved.Grievance.Status != "Resolved" {
		t.Fatalf("expected Resolved, got %q", resolved.Grievance.Status)
	}
	if resolved.Grievance.ResolvedAt == nil {
		t.Fatalf("expected resolvedAt to be set")
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/grievances/"+filed.Grievance.ID+"/status", admin.Email, map[string]string{
		"status": "In Progress",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var reopened grievanceEnvelope
	if err := json.Unmarshal(body, &reopened); err != nil {
		t.Fatalf("decode grievance: %v", err)
	}
	if reopened.Grievance.ResolvedAt != nil {
		t.Fatalf("expected resolvedAt cleared on In Progress")
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/grievances/"+filed.Grievance.ID+"/status", admin.Email, map[string]string{
		"status": "Open",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for Open target, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/grievances", family.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var ownGrievances []grievanceBody
	if err := json.Unmarshal(body, &ownGrievances); err != nil {
		t.Fatalf("decode grievances: %v", err)
	}
	if len(ownGrievances) != 1 {
		t.Fatalf("expected 1 grievance for owner, got %d", len(ownGrievances))
	}
}

func TestE2EMarketplaceFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	seller := registerUser(t, client, env.server.URL, "carol@example.com", "family")
	other := registerUser(t, client, env.server.URL, "dmitri@example.com", "officer")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/marketplace", seller.Email, map[string]string{
		"userId":      seller.Email,
		"type":        "book",
		"title":       "Intro to Algebra",
		"description": "Lightly used textbook.",
		"contactInfo": "carol@example.com",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var published listingEnvelope
	if err := json.Unmarshal(body, &published); err != nil {
		t.Fatalf("decode listing: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/marketplace", seller.Email, map[string]string{
		"userId":      seller.Email,
		"type":        "vehicle",
		"title":       "Old car",
		"description": "Runs fine.",
		"contactInfo": "carol@example.com",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad type, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/marketplace/"+published.Listing.ID, other.Email, map[string]string{
		"title": "Hijacked",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/marketplace/"+published.Listing.ID, seller.Email, map[string]string{
		"title": "Intro to Algebra, 2nd ed.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var updated listingEnvelope
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if updated.Listing.Title != "Intro to Algebra, 2nd ed." {
		t.Fatalf("expected updated title, got %q", updated.Listing.Title)
	}
	if updated.Listing.Description != "Lightly used textbook." {
		t.Fatalf("expected untouched description, got %q", updated.Listing.Description)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/marketplace", other.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var listings []listingBody
	if err := json.Unmarshal(body, &listings); err != nil {
		t.Fatalf("decode listings: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/marketplace/"+published.Listing.ID, seller.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/marketplace/"+published.Listing.ID, seller.Email, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EEmergencyContactOwnership(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	admin := registerUser(t, client, env.server.URL, "admin@example.com", "admin")
	owner := registerUser(t, client, env.server.URL, "elena@example.com", "family")
	other := registerUser(t, client, env.server.URL, "fedor@example.com", "family")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/emergency-contacts", owner.Email, map[string]string{
		"userId":       owner.Email,
		"name":         "Mikhail",
		"phone":        "+375291234567",
		"relationship": "brother",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var added contactEnvelope
	if err := json.Unmarshal(body, &added); err != nil {
		t.Fatalf("decode contact: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/users/"+owner.Email+"/emergency-contacts", other.Email, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/users/"+owner.Email+"/emergency-contacts", admin.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", resp.StatusCode, string(body))
	}
	var contacts []contactBody
	if err := json.Unmarshal(body, &contacts); err != nil {
		t.Fatalf("decode contacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/emergency-contacts/"+added.Contact.ID, owner.Email, map[string]string{
		"phone": "+375297654321",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var updated contactEnvelope
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode contact: %v", err)
	}
	if updated.Contact.Phone != "+375297654321" {
		t.Fatalf("expected updated phone, got %q", updated.Contact.Phone)
	}
	if updated.Contact.Name != "Mikhail" {
		t.Fatalf("expected untouched name, got %q", updated.Contact.Name)
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/emergency-contacts/"+added.Contact.ID, other.Email, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner delete, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/emergency-contacts/"+added.Contact.ID, owner.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2ESchemeAndApplicationFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	admin := registerUser(t, client, env.server.URL, "admin@example.com", "admin")
	applicant := registerUser(t, client, env.server.URL, "galina@example.com", "family")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/schemes", applicant.Email, map[string]string{
		"name":        "Winter Fuel Support",
		"description": "Subsidy for heating costs.",
		"eligibility": "Households below the income threshold.",
		"category":    "financial",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/schemes", admin.Email, map[string]string{
		"name":        "Winter Fuel Support",
		"description": "Subsidy for heating costs.",
		"eligibility": "Households below the income threshold.",
		"category":    "financial",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var scheme struct {
		Message string `json:"message"`
		Scheme  struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"scheme"`
	}
	if err := json.Unmarshal(body, &scheme); err != nil {
		t.Fatalf("decode scheme: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/applications", applicant.Email, map[string]string{
		"userId":     applicant.Email,
		"schemeId":   scheme.Scheme.ID,
		"schemeName": scheme.Scheme.Name,
		"notes":      "Single income household.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var submitted struct {
		Message     string `json:"message"`
		Application struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"application"`
	}
	if err := json.Unmarshal(body, &submitted); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if submitted.Application.Status != "Pending" {
		t.Fatalf("expected Pending, got %q", submitted.Application.Status)
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/applications/"+submitted.Application.ID+"/status", applicant.Email, map[string]string{
		"status": "Approved",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin review, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/applications/"+submitted.Application.ID+"/status", admin.Email, map[string]string{
		"status": "Approved",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/applications", applicant.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var applications []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &applications); err != nil {
		t.Fatalf("decode applications: %v", err)
	}
	if len(applications) != 1 || applications[0].Status != "Approved" {
		t.Fatalf("expected 1 approved application, got %+v", applications)
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/schemes/"+scheme.Scheme.ID, admin.Email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/schemes/"+scheme.Scheme.ID, admin.Email, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d: %s", resp.StatusCode, string(body))
	}
}
