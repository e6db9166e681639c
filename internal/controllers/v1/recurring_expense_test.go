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

func rent() models.RecurringExpenseEditable {
	return models.RecurringExpenseEditable{
		Amount:      decimal.NewFromInt(950),
		Category:    models.CategoryHousing,
		Description: "Rent",
		NextDueDate: "2025-02-01",
	}
}

func (suite *TestSuiteStandard) TestCreateRecurringExpense() {
	recurring := suite.createRecurringExpense(rent())

	suite.Assert().NotEqual(uuid.Nil, recurring.ID)
	suite.Assert().Equal(models.RepeatMonthly, recurring.RepeatInterval, "The interval defaults to monthly")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/recurring-expenses/%s", recurring.ID), recurring.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateRecurringExpenseFails() {
	weekly := rent()
	weekly.RepeatInterval = "weekly"

	noAmount := rent()
	noAmount.Amount = decimal.Zero

	badDate := rent()
	badDate.NextDueDate = "2025-02"

	tests := []struct {
		name string
		body any
	}{
		{"Weekly", weekly},
		{"No amount", noAmount},
		{"Invalid due date", badDate},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/recurring-expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetRecurringExpenses() {
	later := rent()
	later.NextDueDate = "2025-03-15"
	later.Description = "Gym"

	suite.createRecurringExpense(later)
	suite.createRecurringExpense(rent())

	r := suite.request(http.MethodGet, "http://example.com/v1/recurring-expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Rent", response.Data[0].Description)
	suite.Assert().Equal("Gym", response.Data[1].Description)

	// Other users do not see them
	r = test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/recurring-expenses", "", test.Authorization(suite.signup("john@example.com", "secret")))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetRecurringExpense() {
	recurring := suite.createRecurringExpense(rent())

	r := suite.request(http.MethodGet, recurring.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(recurring.ID, response.Data.ID)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/recurring-expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateRecurringExpense() {
	recurring := suite.createRecurringExpense(rent())

	r := suite.request(http.MethodPatch, recurring.Links.Self, map[string]any{
		"amount":      "990",
		"nextDueDate": "2025-03-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(990).Equal(response.Data.Amount))
	suite.Assert().Equal("2025-03-01", response.Data.NextDueDate)
	suite.Assert().Equal("Rent", response.Data.Description)

	r = suite.request(http.MethodPatch, recurring.Links.Self, map[string]any{"repeatInterval": "yearly"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/v1/recurring-expenses/%s", uuid.New()), map[string]any{"amount": "1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteRecurringExpense() {
	recurring := suite.createRecurringExpense(rent())

	r := suite.request(http.MethodOptions, recurring.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodDelete, recurring.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, recurring.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
