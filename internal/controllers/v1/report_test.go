package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetReport() {
	suite.createExpense("20", "Food", "Lunch", "2025-01-05")
	suite.createExpense("15.50", "Food", "Dinner", "2025-01-05")
	suite.createExpense("60", "Transportation", "Monthly ticket", "2025-01-02")
	suite.createExpense("100", "Shopping", "Other month", "2025-02-01")

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/2025-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	report := response.Data

	suite.Assert().Equal("2025-01", report.MonthYear)
	suite.Assert().True(decimal.NewFromFloat(95.5).Equal(report.TotalSpent))

	suite.Require().Len(report.CategoryBreakdown, 2)
	suite.Assert().Equal("Transportation", report.CategoryBreakdown[0].Category)
	suite.Assert().Equal("Food", report.CategoryBreakdown[1].Category)
	suite.Assert().True(decimal.NewFromFloat(35.5).Equal(report.CategoryBreakdown[1].Amount))
	suite.Assert().Equal("Transportation", report.TopSpendingCategory.Category)

	suite.Require().Len(report.DailyTotals, 2)
	suite.Assert().Equal("2025-01-02", report.DailyTotals[0].Date)
	suite.Assert().Equal("2025-01-05", report.DailyTotals[1].Date)
	suite.Assert().True(decimal.NewFromFloat(35.5).Equal(report.DailyTotals[1].Amount))
}

func (suite *TestSuiteStandard) TestGetReportEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/reports/2025-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.TotalSpent.IsZero())
	suite.Assert().Equal("None", response.Data.TopSpendingCategory.Category)
	suite.Assert().Len(response.Data.CategoryBreakdown, 0)
}

func (suite *TestSuiteStandard) TestGetReportInvalidMonth() {
	r := suite.request(http.MethodGet, "http://example.com/v1/reports/2025-1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTrends() {
	suite.createExpense("20", "Food", "Lunch", "2025-01-05")
	suite.createExpense("300", "Housing", "Rent", "2025-02-01")
	suite.createExpense("30", "Food", "Lunch", "2025-03-05")
	suite.createExpense("20", "Food", "Lunch", "2025-04-05")

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/trends", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	trends := response.Data

	suite.Require().Len(trends.Months, 4)
	suite.Assert().Equal("2025-01", trends.Months[0].MonthYear)
	suite.Assert().Equal("2025-04", trends.Months[3].MonthYear)
	suite.Assert().Equal("2025-02", trends.HighestMonth)
	suite.Assert().Equal("2025-01", trends.LowestMonth, "The earliest month wins ties")
}

func (suite *TestSuiteStandard) TestGetTrendsEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/reports/trends", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("N/A", response.Data.HighestMonth)
	suite.Assert().Equal("N/A", response.Data.LowestMonth)
}
