package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fundline/internal/auth"
	"fundline/internal/handler"
	"fundline/internal/model"
	"fundline/internal/repository"
	"fundline/internal/service"
)

func setupTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(
		&model.User{},
		&model.StartupPitch{},
		&model.InvestorProfile{},
		&model.Interest{},
		&model.Report{},
		&model.AdminAction{},
	))

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// A second pooled connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	userRepo := repository.NewUserRepository(gormDB)
	pitchRepo := repository.NewPitchRepository(gormDB)
	profileRepo := repository.NewInvestorProfileRepository(gormDB)
	interestRepo := repository.NewInterestRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)

	registrationService := service.NewRegistrationService(userRepo, pitchRepo, profileRepo, nil, nil)
	pitchService := service.NewPitchService(pitchRepo, interestRepo, userRepo, nil, nil)
	interestService := service.NewInterestService(pitchRepo, userRepo, interestRepo, nil)
	reportService := service.NewReportService(reportRepo)
	analyticsService := service.NewAnalyticsService(userRepo, pitchRepo, interestRepo)

	e := echo.New()
	Register(
		e,
		auth.AllowAll{},
		handler.NewDiagnosticHandler(gormDB),
		handler.NewRegistrationHandler(registrationService),
		handler.NewPitchHandler(pitchService, interestService),
		handler.NewReportHandler(reportService),
		handler.NewAdminHandler(registrationService, pitchService, analyticsService),
	)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	}
	return rec, decoded
}

func registerStartup(t *testing.T, e *echo.Echo, email, company string) (userID, startupID string) {
	t.Helper()
	rec, body := doRequest(t, e, http.MethodPost, "/api/register/startup", map[string]interface{}{
		"email":               email,
		"company_name":        company,
		"product_description": "A product worth funding.",
		"image_urls":          []string{"https://cdn.example.com/shot.png"},
		"full_name":           "Founder of " + company,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return body["user_id"].(string), body["startup_id"].(string)
}

func registerInvestor(t *testing.T, e *echo.Echo, email, name string) string {
	t.Helper()
	rec, body := doRequest(t, e, http.MethodPost, "/api/register/investor", map[string]interface{}{
		"email":     email,
		"full_name": name,
		"company":   "Test Capital",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return body["user_id"].(string)
}

func expressInterest(t *testing.T, e *echo.Echo, startupID, investorID string, amount float64) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	return doRequest(t, e, http.MethodPost, "/api/startups/"+startupID+"/interest", map[string]interface{}{
		"investor_user_id": investorID,
		"committed_amount": amount,
	})
}

func TestLiveness(t *testing.T) {
	e := setupTestServer(t)

	rec, body := doRequest(t, e, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Startup Fundraising Platform API running", body["message"])
}

func TestDatabaseDiagnostic(t *testing.T) {
	e := setupTestServer(t)

	rec, body := doRequest(t, e, http.MethodGet, "/test", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "connected", body["database"])
	require.Equal(t, "connected", body["connection_status"])
	require.NotEmpty(t, body["collections"])
}

func TestRegisterStartupTwiceIsStable(t *testing.T) {
	e := setupTestServer(t)

	userID, startupID := registerStartup(t, e, "founder@acme.test", "Acme")
	userID2, startupID2 := registerStartup(t, e, "founder@acme.test", "Acme Renamed")

	require.Equal(t, userID, userID2)
	require.Equal(t, startupID, startupID2)

	// No duplicate rows: an unfiltered listing holds exactly one pitch,
	// carrying the re-submitted company name.
	rec, body := doRequest(t, e, http.MethodGet, "/api/startups?status=", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	require.Equal(t, "Acme Renamed", items[0].(map[string]interface{})["company_name"])
}

func TestRegistrationOverwritesRole(t *testing.T) {
	e := setupTestServer(t)

	rec, body := doRequest(t, e, http.MethodPost, "/api/admin/bootstrap", map[string]interface{}{
		"email":     "root@fundline.test",
		"full_name": "Root Admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin", body["role"])
	adminID := body["user_id"].(string)

	// Re-registering the same email as a startup silently demotes the admin.
	userID, _ := registerStartup(t, e, "root@fundline.test", "Root Ventures")
	require.Equal(t, adminID, userID)

	rec, body = doRequest(t, e, http.MethodPost, "/api/admin/bootstrap", map[string]interface{}{
		"email":     "root@fundline.test",
		"full_name": "Root Admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, adminID, body["user_id"].(string))
}

func TestInterestAggregation(t *testing.T) {
	e := setupTestServer(t)

	_, startupID := registerStartup(t, e, "founder@acme.test", "Acme")
	investorA := registerInvestor(t, e, "a@invest.test", "Investor A")
	investorB := registerInvestor(t, e, "b@invest.test", "Investor B")

	rec, _ := expressInterest(t, e, startupID, investorA, 100.0)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, _ = expressInterest(t, e, startupID, investorB, 250.5)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, body := expressInterest(t, e, startupID, investorA, 0.0)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 350.5, body["total_raised"])

	rec, body = doRequest(t, e, http.MethodGet, "/api/startups/"+startupID+"/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 350.5, body["total_raised"])

	investors := body["interested_investors"].([]interface{})
	require.Len(t, investors, 3)
	first := investors[0].(map[string]interface{})
	// Newest interest first; its investor detail is joined in.
	require.Equal(t, 0.0, first["committed_amount"])
	require.Equal(t, "a@invest.test", first["investor"].(map[string]interface{})["email"])
}

func TestInterestFromNonInvestorRejected(t *testing.T) {
	e := setupTestServer(t)

	ownerID, startupID := registerStartup(t, e, "founder@acme.test", "Acme")

	rec, body := expressInterest(t, e, startupID, ownerID, 500.0)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid investor user", body["detail"])

	// No interest row was created.
	rec, body = doRequest(t, e, http.MethodGet, "/api/startups/"+startupID+"/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, body["interested_investors"])
	require.Equal(t, 0.0, body["total_raised"])
}

func TestInterestUnknownStartup(t *testing.T) {
	e := setupTestServer(t)

	investorID := registerInvestor(t, e, "a@invest.test", "Investor A")

	rec, body := expressInterest(t, e, "3e7f3c6a-55d5-4dbe-8f5b-90a4ac3c2f01", investorID, 10.0)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Startup not found", body["detail"])
}

func TestDashboardUnknownStartup(t *testing.T) {
	e := setupTestServer(t)

	rec, body := doRequest(t, e, http.MethodGet, "/api/startups/3e7f3c6a-55d5-4dbe-8f5b-90a4ac3c2f01/dashboard", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Startup not found", body["detail"])
}

func TestMalformedIDsRejected(t *testing.T) {
	e := setupTestServer(t)
	investorID := registerInvestor(t, e, "a@invest.test", "Investor A")

	paths := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/startups/not-a-uuid/dashboard", nil},
		{http.MethodPost, "/api/admin/startups/not-a-uuid/approve", nil},
		{http.MethodPost, "/api/admin/startups/not-a-uuid/reject", nil},
		{http.MethodPost, "/api/startups/not-a-uuid/interest", map[string]interface{}{
			"investor_user_id": investorID,
			"committed_amount": 1.0,
		}},
	}
	for _, p := range paths {
		rec, body := doRequest(t, e, p.method, p.path, p.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, p.path)
		require.Equal(t, "Invalid id format", body["detail"], p.path)
	}
}

func TestListDefaultsToApprovedNewestFirst(t *testing.T) {
	e := setupTestServer(t)

	_, first := registerStartup(t, e, "first@acme.test", "First")
	registerStartup(t, e, "second@acme.test", "Second")
	_, third := registerStartup(t, e, "third@acme.test", "Third")

	for _, id := range []string{first, third} {
		rec, _ := doRequest(t, e, http.MethodPost, "/api/admin/startups/"+id+"/approve", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, body := doRequest(t, e, http.MethodGet, "/api/startups", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	require.Equal(t, "Third", items[0].(map[string]interface{})["company_name"])
	require.Equal(t, "First", items[1].(map[string]interface{})["company_name"])
}

func TestApproveThenRejectLastWriteWins(t *testing.T) {
	e := setupTestServer(t)

	_, startupID := registerStartup(t, e, "founder@acme.test", "Acme")

	rec, body := doRequest(t, e, http.MethodPost, "/api/admin/startups/"+startupID+"/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "approved", body["status"])

	rec, body = doRequest(t, e, http.MethodPost, "/api/admin/startups/"+startupID+"/reject", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "rejected", body["status"])

	rec, body = doRequest(t, e, http.MethodGet, "/api/startups?status=rejected", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	require.Equal(t, startupID, items[0].(map[string]interface{})["id"])
}

func TestModerateUnknownStartup(t *testing.T) {
	e := setupTestServer(t)

	rec, body := doRequest(t, e, http.MethodPost, "/api/admin/startups/3e7f3c6a-55d5-4dbe-8f5b-90a4ac3c2f01/approve", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Startup not found", body["detail"])
}

func TestAnalyticsCountsAndTotalFunds(t *testing.T) {
	e := setupTestServer(t)

	_, approvedID := registerStartup(t, e, "approved@acme.test", "Approved Co")
	_, pendingID := registerStartup(t, e, "pending@acme.test", "Pending Co")
	investorID := registerInvestor(t, e, "a@invest.test", "Investor A")

	rec, _ := doRequest(t, e, http.MethodPost, "/api/admin/startups/"+approvedID+"/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = expressInterest(t, e, approvedID, investorID, 100.0)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = expressInterest(t, e, pendingID, investorID, 50.0)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doRequest(t, e, http.MethodGet, "/api/admin/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3.0, body["users"])
	require.Equal(t, 2.0, body["startups"])
	require.Equal(t, 1.0, body["investors"])
	require.Equal(t, 2.0, body["interests"])
	// total_funds spans every pitch regardless of moderation status.
	require.Equal(t, 150.0, body["total_funds"])
}

func TestReportsLifecycle(t *testing.T) {
	e := setupTestServer(t)

	investorID := registerInvestor(t, e, "a@invest.test", "Investor A")

	rec, body := doRequest(t, e, http.MethodPost, "/api/reports", map[string]interface{}{
		"reporter_user_id": investorID,
		"target_type":      "startup",
		"target_id":        "some-listing",
		"reason":           "Misleading claims",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body["report_id"])

	// Reporter is optional.
	rec, _ = doRequest(t, e, http.MethodPost, "/api/reports", map[string]interface{}{
		"target_type": "user",
		"reason":      "Spam",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doRequest(t, e, http.MethodGet, "/api/admin/reports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	for _, item := range items {
		require.Equal(t, "open", item.(map[string]interface{})["status"])
	}
	// Newest first.
	require.Equal(t, "Spam", items[0].(map[string]interface{})["reason"])
}

func TestValidationFailures(t *testing.T) {
	e := setupTestServer(t)

	cases := []struct {
		path string
		body map[string]interface{}
	}{
		{"/api/register/startup", map[string]interface{}{
			"email":               "not-an-email",
			"company_name":        "Acme",
			"product_description": "desc",
		}},
		{"/api/register/startup", map[string]interface{}{
			"email":               "founder@acme.test",
			"company_name":        "Acme",
			"product_description": "desc",
			"image_urls":          []string{"not a url"},
		}},
		{"/api/register/investor", map[string]interface{}{
			"email": "a@invest.test",
		}},
		{"/api/admin/bootstrap", map[string]interface{}{
			"full_name": "No Email",
		}},
		{"/api/reports", map[string]interface{}{
			"target_type": "startup",
		}},
	}
	for i, tc := range cases {
		rec, body := doRequest(t, e, http.MethodPost, tc.path, tc.body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, fmt.Sprintf("case %d: %s", i, rec.Body.String()))
		require.NotEmpty(t, body["detail"])
	}
}

func TestNegativeCommitmentRejected(t *testing.T) {
	e := setupTestServer(t)

	_, startupID := registerStartup(t, e, "founder@acme.test", "Acme")
	investorID := registerInvestor(t, e, "a@invest.test", "Investor A")

	rec, _ := expressInterest(t, e, startupID, investorID, -5.0)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
