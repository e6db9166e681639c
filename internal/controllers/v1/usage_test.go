package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetBudgetUsageHistory() {
	suite.setBudget("2025-01", "500")
	suite.setBudget("2025-03", "200")
	suite.setBudget("2025-04", "100")
	suite.createExpense("100", "Food", "Groceries", "2025-01-05")
	suite.createExpense("150", "Food", "Groceries", "2025-01-20")
	suite.createExpense("80", "Health", "Pharmacy", "2025-02-10")
	suite.createExpense("150", "Shopping", "Jacket", "2025-04-01")
	suite.createExpense("50", "Shopping", "Shirt", "2025-04-30")

	r := suite.request(http.MethodGet, "http://example.com/v1/budget-usage", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UsageListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 4)

	tests := []struct {
		month      string
		budget     int64
		spent      int64
		percentage *int64
	}{
		{"2025-01", 500, 250, ptr(int64(50))},
		{"2025-02", 0, 80, nil},
		{"2025-03", 200, 0, ptr(int64(0))},
		{"2025-04", 100, 200, ptr(int64(200))},
	}

	for i, tt := range tests {
		usage := response.Data[i]
		suite.Assert().Equal(tt.month, usage.MonthYear)
		suite.Assert().True(decimal.NewFromInt(tt.budget).Equal(usage.BudgetAmount), "%s: budget is %s", tt.month, usage.BudgetAmount)
		suite.Assert().True(decimal.NewFromInt(tt.spent).Equal(usage.TotalSpent), "%s: spent is %s", tt.month, usage.TotalSpent)

		if tt.percentage == nil {
			suite.Assert().False(usage.PercentageUsed.Valid, "%s: percentage must be null", tt.month)
			continue
		}
		suite.Assert().True(decimal.NewFromInt(*tt.percentage).Equal(usage.PercentageUsed.Decimal), "%s: percentage is %s", tt.month, usage.PercentageUsed.Decimal)
	}

	suite.Assert().Contains(r.Body.String(), `"percentageUsed":null`)
	suite.Assert().Contains(r.Body.String(), `"percentageUsed":"200.00"`)
}

func (suite *TestSuiteStandard) TestGetBudgetUsageHistoryEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/budget-usage", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UsageListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
	suite.Assert().Nil(response.Error)
}

func ptr[T any](v T) *T {
	return &v
}
