package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/test"
)

func (suite *TestSuiteStandard) TestSignup() {
	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/signup", v1.Signup{
		UserEditable: models.UserEditable{
			Email:     "  John@Example.com ",
			FirstName: "John",
			LastName:  "Doe",
		},
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("john@example.com", user.Data.Email)
	suite.Assert().Equal("John", user.Data.FirstName)
	suite.Assert().NotContains(r.Body.String(), "hunter2")
	suite.Assert().NotContains(r.Body.String(), "password")
}

func (suite *TestSuiteStandard) TestSignupFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Broken JSON", `{"email": "jane`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"No password", v1.Signup{UserEditable: models.UserEditable{Email: "a@example.com", FirstName: "A", LastName: "B"}}, http.StatusBadRequest, "a required field is missing: password"},
		{"No last name", v1.Signup{UserEditable: models.UserEditable{Email: "a@example.com", FirstName: "A"}, Password: "x"}, http.StatusBadRequest, "a required field is missing: lastName"},
		{"Invalid email", v1.Signup{UserEditable: models.UserEditable{Email: "not an email", FirstName: "A", LastName: "B"}, Password: "x"}, http.StatusBadRequest, `the email address is not valid: "not an email"`},
		{"Email in use", v1.Signup{UserEditable: models.UserEditable{Email: "JANE@example.com", FirstName: "A", LastName: "B"}, Password: "x"}, http.StatusConflict, "a user with this email address already exists"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/signup", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Equal(tt.err, test.DecodeError(suite.T(), r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
		Email:    "Jane@Example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var session v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &session)
	suite.Assert().NotEmpty(session.Data.Token)
	suite.Assert().Equal("jane@example.com", session.Data.User.Email)

	id, err := suite.co.Tokens.Verify(session.Data.Token)
	suite.Require().Nil(err)
	suite.Assert().Equal(session.Data.User.ID, id)
}

func (suite *TestSuiteStandard) TestLoginFails() {
	tests := []struct {
		name   string
		body   v1.Credentials
		status int
	}{
		{"Wrong password", v1.Credentials{Email: "jane@example.com", Password: "wrong"}, http.StatusUnauthorized},
		{"Unknown user", v1.Credentials{Email: "nobody@example.com", Password: "correct horse battery staple"}, http.StatusUnauthorized},
		{"No password", v1.Credentials{Email: "jane@example.com"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	// Unknown users and wrong passwords are indistinguishable
	wrong := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", tests[0].body)
	unknown := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", tests[1].body)
	suite.Assert().Equal(test.DecodeError(suite.T(), wrong.Body.Bytes()), test.DecodeError(suite.T(), unknown.Body.Bytes()))
}
