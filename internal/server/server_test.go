package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mmex-search/internal/config"
	"mmex-search/internal/database"
	"mmex-search/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServerSuite struct {
	suite.Suite
	db     *database.DB
	server *Server

	checking *models.Account
	visa     *models.Account
	grocer   *models.Payee
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	reg := prometheus.NewRegistry()
	cfg := &config.Config{
		Server:    config.ServerConfig{CORSAllowOrigins: []string{"*"}},
		Search:    config.SearchConfig{DefaultPageLimit: 20, MaxPageLimit: 100, DateLayout: "2006-01-02", DecimalSeparator: "."},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
	s.server = New(Dependencies{
		Config:   cfg,
		DB:       s.db.DB,
		Health:   s.db,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: reg,
		Gatherer: reg,
	})

	s.checking = database.CreateTestAccount(s.T(), s.db, "Checking")
	s.visa = database.CreateTestAccount(s.T(), s.db, "Visa")
	s.grocer = database.CreateTestPayee(s.T(), s.db, "Grocery Store")

	rows := []models.Transaction{
		{AccountID: s.checking.ID, TransCode: models.TransCodeDeposit, Status: "R", Amount: decimal.NewFromInt(1500), TransDate: "2024-01-31", Notes: "January salary"},
		{AccountID: s.checking.ID, TransCode: models.TransCodeWithdrawal, Amount: decimal.RequireFromString("42.10"), TransDate: "2024-02-03", PayeeID: &s.grocer.ID, Notes: "weekly shop"},
		{AccountID: s.visa.ID, TransCode: models.TransCodeWithdrawal, Amount: decimal.RequireFromString("19.99"), TransDate: "2024-02-10", PayeeID: &s.grocer.ID, Notes: "100% organic"},
	}
	for i := range rows {
		s.Require().NoError(s.db.Create(&rows[i]).Error)
	}
}

func (s *ServerSuite) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.server.Echo.ServeHTTP(rec, req)
	return rec
}

type page struct {
	Data []struct {
		ID     int64  `json:"id"`
		Amount string `json:"amount"`
		Notes  string `json:"notes"`
	} `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func (s *ServerSuite) decodePage(rec *httptest.ResponseRecorder) page {
	var p page
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func (s *ServerSuite) TestSearch_EmptyCriteriaMatchesEverything() {
	rec := s.do(http.MethodPost, "/api/v1/transactions/search", map[string]interface{}{})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(int64(3), s.decodePage(rec).Meta.Total)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("no-store", rec.Header().Get("Cache-Control"))
}

func (s *ServerSuite) TestSearch_PayeeAndWithdrawal() {
	rec := s.do(http.MethodPost, "/api/v1/transactions/search", map[string]interface{}{
		"criteria": map[string]interface{}{
			"withdrawal": true,
			"payee_id":   fmt.Sprint(s.grocer.ID),
			"account_id": fmt.Sprint(s.checking.ID),
		},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	p := s.decodePage(rec)
	s.Require().Len(p.Data, 1)
	s.Equal("42.10", p.Data[0].Amount)
}

func (s *ServerSuite) TestSearch_NotesWildcardIsLiteral() {
	rec := s.do(http.MethodPost, "/api/v1/transactions/search", map[string]interface{}{
		"criteria": map[string]interface{}{"notes": "100%"},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	p := s.decodePage(rec)
	s.Require().Len(p.Data, 1)
	s.Equal("100% organic", p.Data[0].Notes)
}

func (s *ServerSuite) TestSearch_InvalidAmount() {
	rec := s.do(http.MethodPost, "/api/v1/transactions/search", map[string]interface{}{
		"criteria": map[string]interface{}{"amount_from": "lots"},
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "SEARCH_001")
	s.Contains(rec.Body.String(), "amount_from")
}

func (s *ServerSuite) TestSearch_ValidationErrorGoesThroughErrorHandler() {
	rec := s.do(http.MethodPost, "/api/v1/transactions/search", map[string]interface{}{
		"criteria": map[string]interface{}{"status": "X"},
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ServerSuite) TestWhere() {
	rec := s.do(http.MethodPost, "/api/v1/transactions/search/where", map[string]interface{}{"status": "R"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), "transactions.status")
}

func (s *ServerSuite) TestSavedSearchLifecycle() {
	rec := s.do(http.MethodPost, "/api/v1/searches", map[string]interface{}{
		"name":     "Groceries",
		"criteria": map[string]interface{}{"payee_id": fmt.Sprint(s.grocer.ID)},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	dup := s.do(http.MethodPost, "/api/v1/searches", map[string]interface{}{"name": "Groceries"})
	s.Equal(http.StatusConflict, dup.Code)

	results := s.do(http.MethodGet, "/api/v1/searches/"+created.Data.ID+"/results?limit=1", nil)
	s.Require().Equal(http.StatusOK, results.Code, results.Body.String())
	p := s.decodePage(results)
	s.Equal(int64(2), p.Meta.Total)
	s.Len(p.Data, 1)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/searches/"+created.Data.ID, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/searches/"+created.Data.ID, nil).Code)
}

func (s *ServerSuite) TestAccounts() {
	rec := s.do(http.MethodGet, "/api/v1/accounts", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Checking")
	s.Contains(rec.Body.String(), "Visa")
}

func (s *ServerSuite) TestHealthAndMetrics() {
	health := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, health.Code)
	s.Contains(health.Body.String(), `"register":"closed"`)

	s.do(http.MethodPost, "/api/v1/transactions/search", map[string]interface{}{})
	rec := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "transaction_search_requests_total")
}

func (s *ServerSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nowhere", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ServerSuite) TestRateLimitKeysOnPeerAddress() {
	reg := prometheus.NewRegistry()
	limited := New(Dependencies{
		Config: &config.Config{
			Server:    config.ServerConfig{CORSAllowOrigins: []string{"*"}},
			Search:    config.SearchConfig{DefaultPageLimit: 20, MaxPageLimit: 100, DateLayout: "2006-01-02", DecimalSeparator: "."},
			RateLimit: config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		},
		DB:       s.db.DB,
		Health:   s.db,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: reg,
		Gatherer: reg,
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		req.RemoteAddr = "192.0.2.44:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))
		rec := httptest.NewRecorder()
		limited.Echo.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	s.Equal([]int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
