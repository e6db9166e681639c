package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSetBudget() {
	budget := suite.setBudget("2025-01", "500")

	suite.Assert().Equal("2025-01", budget.Month)
	suite.Assert().True(decimal.NewFromInt(500).Equal(budget.Amount))
	suite.Assert().Equal(v1.BudgetLinks{
		Self:   "http://example.com/v1/budgets/2025-01",
		Usage:  "http://example.com/v1/budgets/2025-01/usage",
		Report: "http://example.com/v1/reports/2025-01",
	}, budget.Links)

	// Setting the budget again overwrites it
	budget = suite.setBudget("2025-01", "750.50")
	suite.Assert().True(decimal.NewFromFloat(750.5).Equal(budget.Amount))

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)
	suite.Assert().Len(budgets.Data, 1)
}

func (suite *TestSuiteStandard) TestSetBudgetFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"No month", map[string]any{"amount": "500"}, "a required field is missing: monthYear"},
		{"No amount", map[string]any{"monthYear": "2025-01"}, "a required field is missing: amount"},
		{"Empty body", "", "the request body must not be empty"},
		{"Invalid month", map[string]any{"monthYear": "2025-13", "amount": "500"}, ""},
		{"Negative amount", map[string]any{"monthYear": "2025-01", "amount": "-1"}, "the amount must not be negative"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			if tt.err != "" {
				suite.Assert().Equal(tt.err, test.DecodeError(suite.T(), r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudgets() {
	suite.setBudget("2025-03", "300")
	suite.setBudget("2024-12", "100")
	suite.setBudget("2025-01", "0")

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)

	months := []string{}
	for _, b := range budgets.Data {
		months = append(months, b.Month)
	}
	suite.Assert().Equal([]string{"2024-12", "2025-01", "2025-03"}, months)
}

func (suite *TestSuiteStandard) TestGetBudget() {
	suite.setBudget("2025-01", "500")

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/2025-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().True(decimal.NewFromInt(500).Equal(budget.Data.Amount))

	// Months without a budget have an amount of 0
	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/2025-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().Equal("2025-02", budget.Data.Month)
	suite.Assert().True(budget.Data.Amount.IsZero())

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/January", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	suite.setBudget("2025-01", "500")

	r := suite.request(http.MethodPatch, "http://example.com/v1/budgets/2025-01", v1.BudgetAmount{Amount: decimal.NewFromInt(650)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().True(decimal.NewFromInt(650).Equal(budget.Data.Amount))

	r = suite.request(http.MethodPatch, "http://example.com/v1/budgets/2025-02", v1.BudgetAmount{Amount: decimal.NewFromInt(650)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodPatch, "http://example.com/v1/budgets/2025-01", map[string]any{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, "http://example.com/v1/budgets/2025-01", v1.BudgetAmount{Amount: decimal.NewFromInt(-650)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	suite.setBudget("2025-01", "500")

	r := suite.request(http.MethodDelete, "http://example.com/v1/budgets/2025-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets/2025-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsOfOtherUsers() {
	suite.setBudget("2025-01", "500")
	auth := test.Authorization(suite.signup("john@example.com", "secret"))

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budgets/2025-01", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().True(budget.Data.Amount.IsZero())

	r = test.Request(suite.co, suite.T(), http.MethodDelete, "http://example.com/v1/budgets/2025-01", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetBudgetUsage() {
	suite.setBudget("2025-01", "500")
	suite.createExpense("100", "Food", "Groceries", "2025-01-05")
	suite.createExpense("150", "Shopping", "Jacket", "2025-01-20")
	suite.createExpense("999", "Shopping", "Laptop", "2025-02-01")

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/2025-01/usage", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var usage v1.UsageResponse
	test.DecodeResponse(suite.T(), &r, &usage)
	suite.Assert().Equal("2025-01", usage.Data.MonthYear)
	suite.Assert().True(decimal.NewFromInt(500).Equal(usage.Data.BudgetAmount))
	suite.Assert().True(decimal.NewFromInt(250).Equal(usage.Data.TotalSpent))
	suite.Assert().True(usage.Data.PercentageUsed.Valid)
	suite.Assert().True(decimal.NewFromInt(50).Equal(usage.Data.PercentageUsed.Decimal))
	suite.Assert().Contains(r.Body.String(), `"percentageUsed":"50.00"`)
}

func (suite *TestSuiteStandard) TestGetBudgetUsageNoBudget() {
	suite.createExpense("80", "Food", "Groceries", "2025-02-10")

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/2025-02/usage", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("no budget set for this month", test.DecodeError(suite.T(), r.Body.Bytes()))
}
