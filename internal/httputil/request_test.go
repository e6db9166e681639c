package httputil_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBindData(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"Success", `{ "name": "Groceries" }`, nil},
		{"Empty", ``, httputil.ErrRequestBodyEmpty},
		{"Broken JSON", `{ "name": "Groceries }`, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))

			var data struct {
				Name string `json:"name"`
			}
			err := httputil.BindData(c, &data)

			if tt.err == nil {
				assert.Nil(t, err)
				assert.Equal(t, "Groceries", data.Name)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBindDataTypeError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{ "name": 12 }`))

	var data struct {
		Name string `json:"name"`
	}
	err := httputil.BindData(c, &data)
	assert.Contains(t, err.Error(), "cannot unmarshal number")
}

func TestBindQuery(t *testing.T) {
	var query struct {
		Start types.Date `form:"start"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request, _ = http.NewRequest(http.MethodGet, "/?start=2025-01-05", nil)
	assert.Nil(t, httputil.BindQuery(c, &query))
	assert.Equal(t, "2025-01-05", query.Start.String())

	c.Request, _ = http.NewRequest(http.MethodGet, "/?start=yesterday", nil)
	err := httputil.BindQuery(c, &query)
	assert.ErrorIs(t, err, httputil.ErrInvalidQueryString)
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

// TestGetBodyFields verifies that GetBodyFields parses correctly.
func TestGetBodyFields(t *testing.T) {
	tests := []struct {
		name   string // Name of the test
		body   string // The body to send to the PATCH request
		fields []string
		err    error
	}{
		{"Success", `{ "amount": "12.5" }`, []string{"amount"}, nil},
		{"Field is null", `{ "description": null }`, []string{"description"}, nil},
		{"Unknown field", `{ "unknown": 1, "amount": 2 }`, []string{"amount"}, nil},
		{"Nothing set", `{}`, []string{}, nil},
		{"Empty", ``, nil, httputil.ErrRequestBodyEmpty},
		{"Unparseable", `{ "amount": "12.5 }`, nil, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodPatch, "https://example.com/", bytes.NewBufferString(tt.body))

			fields, err := httputil.GetBodyFields(c, struct {
				Amount      string `json:"amount"`
				Description string `json:"description,omitempty"`
			}{})

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestGetBodyFieldsKeepsBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{ "name": "Rent" }`))

	var data struct {
		Name string `json:"name"`
	}

	_, err := httputil.GetBodyFields(c, data)
	assert.Nil(t, err)
	assert.Nil(t, httputil.BindData(c, &data))
	assert.Equal(t, "Rent", data.Name)
}
