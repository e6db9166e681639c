package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetProfile() {
	r := suite.request(http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("jane@example.com", user.Data.Email)
	suite.Assert().Equal("Doe", user.Data.LastName)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	r := suite.request(http.MethodPatch, "http://example.com/v1/profile", models.UserEditable{
		Email:     "jane.doe@example.com",
		FirstName: "Janet",
		LastName:  "Doe",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("jane.doe@example.com", user.Data.Email)
	suite.Assert().Equal("Janet", user.Data.FirstName)

	// The token stays valid as it is bound to the user ID
	r = suite.request(http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("Janet", user.Data.FirstName)
}

func (suite *TestSuiteStandard) TestUpdateProfileFails() {
	suite.signup("john@example.com", "secret")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Missing first name", models.UserEditable{Email: "jane@example.com", LastName: "Doe"}, http.StatusBadRequest},
		{"Invalid email", models.UserEditable{Email: "jane", FirstName: "Jane", LastName: "Doe"}, http.StatusBadRequest},
		{"Email of other user", models.UserEditable{Email: "john@example.com", FirstName: "Jane", LastName: "Doe"}, http.StatusConflict},
		{"Broken JSON", `{"email": 1}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPatch, "http://example.com/v1/profile", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdatePassword() {
	r := suite.request(http.MethodPut, "http://example.com/v1/profile/password", v1.PasswordChange{
		OldPassword: "wrong",
		NewPassword: "new secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the current password is incorrect", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPut, "http://example.com/v1/profile/password", v1.PasswordChange{
		OldPassword: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPut, "http://example.com/v1/profile/password", v1.PasswordChange{
		OldPassword: "correct horse battery staple",
		NewPassword: "new secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Email: "jane@example.com", Password: "correct horse battery staple"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{Email: "jane@example.com", Password: "new secret"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDeleteProfile() {
	suite.createExpense("10", "Food", "Lunch", "2025-01-05")
	suite.setBudget("2025-01", "500")

	r := suite.request(http.MethodDelete, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The token belongs to a user that does not exist anymore
	r = suite.request(http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// Signing up again starts from scratch
	suite.token = suite.signup("jane@example.com", "another secret")
	r = suite.request(http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Assert().Len(expenses.Data, 0)
}
