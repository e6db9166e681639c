package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Auth:              "http://example.com/v1/auth",
		Profile:           "http://example.com/v1/profile",
		Expenses:          "http://example.com/v1/expenses",
		Budgets:           "http://example.com/v1/budgets",
		BudgetUsage:       "http://example.com/v1/budget-usage",
		Reports:           "http://example.com/v1/reports",
		RecurringExpenses: "http://example.com/v1/recurring-expenses",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/auth/signup", "OPTIONS, POST"},
		{"http://example.com/v1/auth/login", "OPTIONS, POST"},
		{"http://example.com/v1/profile", "OPTIONS, GET, PATCH, DELETE"},
		{"http://example.com/v1/profile/password", "OPTIONS, PUT"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets/2025-01", "OPTIONS, GET, PATCH, DELETE"},
		{"http://example.com/v1/budgets/2025-01/usage", "OPTIONS, GET"},
		{"http://example.com/v1/budget-usage", "OPTIONS, GET"},
		{"http://example.com/v1/reports/2025-01", "OPTIONS, GET"},
		{"http://example.com/v1/reports/trends", "OPTIONS, GET"},
		{"http://example.com/v1/recurring-expenses", "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, tt.path, "", test.Authorization(suite.token))
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	paths := []string{
		"http://example.com/v1/profile",
		"http://example.com/v1/expenses",
		"http://example.com/v1/budgets",
		"http://example.com/v1/budget-usage",
		"http://example.com/v1/reports/trends",
		"http://example.com/v1/recurring-expenses",
	}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.Equal(t, `Bearer realm="fintrack"`, r.Header().Get("WWW-Authenticate"))

			r = test.Request(suite.co, t, http.MethodGet, path, "", test.Authorization("not-a-token"))
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Email: "jane@example.com", Password: "secret"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
