package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	expense := suite.createExpense("12.50", "food", "  Lunch with colleagues ", "2025-01-05")

	suite.Assert().NotEqual(uuid.Nil, expense.ID)
	suite.Assert().True(decimal.NewFromFloat(12.5).Equal(expense.Amount))
	suite.Assert().Equal(models.CategoryFood, expense.Category)
	suite.Assert().Equal("Lunch with colleagues", expense.Description)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), expense.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateExpenseFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Zero amount", models.ExpenseEditable{Amount: decimal.Zero, Category: "Food", Date: "2025-01-05"}, "the amount must be positive"},
		{"Negative amount", models.ExpenseEditable{Amount: decimal.NewFromInt(-5), Category: "Food", Date: "2025-01-05"}, "the amount must be positive"},
		{"Unknown category", models.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: "Travel", Date: "2025-01-05"}, fmt.Sprintf("%s, got %q", models.ErrInvalidCategory, "Travel")},
		{"Invalid date", models.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: "Food", Date: "2025-02-30"}, ""},
		{"Broken JSON", `{"amount": "5"`, "the body of your request contains invalid or un-parseable data. Please check and try again"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			if tt.err != "" {
				suite.Assert().Equal(tt.err, test.DecodeError(suite.T(), r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	suite.createExpense("10", "Food", "Coffee beans", "2025-01-05")
	suite.createExpense("30", "Transportation", "Train ticket", "2025-01-20")
	suite.createExpense("5", "Food", "coffee to go", "2025-02-02")
	suite.createExpense("100", "Shopping", "Shoes", "2025-03-15")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"All, newest first", "", []string{"Shoes", "coffee to go", "Train ticket", "Coffee beans"}},
		{"Category", "?category=food", []string{"coffee to go", "Coffee beans"}},
		{"Start", "?start=2025-01-20", []string{"Shoes", "coffee to go", "Train ticket"}},
		{"End", "?end=2025-01-20", []string{"Train ticket", "Coffee beans"}},
		{"Range", "?start=2025-01-06&end=2025-02-28", []string{"coffee to go", "Train ticket"}},
		{"Match", "?match=*coffee*", []string{"coffee to go", "Coffee beans"}},
		{"Match and start", "?match=*coffee*&start=2025-02-01", []string{"coffee to go"}},
		{"Nothing", "?category=Health", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "http://example.com/v1/expenses"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var expenses v1.ExpenseListResponse
			test.DecodeResponse(suite.T(), &r, &expenses)

			descriptions := []string{}
			for _, e := range expenses.Data {
				descriptions = append(descriptions, e.Description)
			}
			suite.Assert().Equal(tt.want, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesFails() {
	for _, query := range []string{"?start=2025-13-01", "?end=yesterday", "?category=Travel", "?start=2025-02-01&end=2025-01-01"} {
		suite.Run(query, func() {
			r := suite.request(http.MethodGet, "http://example.com/v1/expenses"+query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesOfOtherUsers() {
	expense := suite.createExpense("10", "Food", "Lunch", "2025-01-05")

	token := suite.signup("john@example.com", "secret")
	auth := test.Authorization(token)

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/expenses", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Assert().Len(expenses.Data, 0)

	for _, method := range []string{http.MethodGet, http.MethodOptions, http.MethodDelete} {
		r = test.Request(suite.co, suite.T(), method, expense.Links.Self, "", auth)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.co, suite.T(), http.MethodPatch, expense.Links.Self, map[string]any{"amount": "1"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	expense := suite.createExpense("10", "Food", "Lunch", "2025-01-05")

	r := suite.request(http.MethodGet, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(expense.ID, response.Data.ID)
	suite.Assert().Equal("Lunch", response.Data.Description)

	r = suite.request(http.MethodGet, "http://example.com/v1/expenses/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	expense := suite.createExpense("10", "Food", "Lunch", "2025-01-05")

	r := suite.request(http.MethodPatch, expense.Links.Self, map[string]any{
		"amount":   "12.75",
		"category": "entertainment",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromFloat(12.75).Equal(response.Data.Amount))
	suite.Assert().Equal(models.CategoryEntertainment, response.Data.Category)
	suite.Assert().Equal("Lunch", response.Data.Description, "Fields not in the body must not change")
	suite.Assert().Equal("2025-01-05", response.Data.Date)

	// An empty description is a valid update
	r = suite.request(http.MethodPatch, expense.Links.Self, map[string]any{"description": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("", response.Data.Description)
}

func (suite *TestSuiteStandard) TestUpdateExpenseFails() {
	expense := suite.createExpense("10", "Food", "Lunch", "2025-01-05")

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{"amount": 5`},
		{"Negative amount", map[string]any{"amount": "-1"}},
		{"Unknown category", map[string]any{"category": "Travel"}},
		{"Invalid date", map[string]any{"date": "05.01.2025"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPatch, expense.Links.Self, tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}

	r := suite.request(http.MethodGet, expense.Links.Self, "")
	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(10).Equal(response.Data.Amount), "Failed updates must not change the expense")
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createExpense("10", "Food", "Lunch", "2025-01-05")

	r := suite.request(http.MethodOptions, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodOptions, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
