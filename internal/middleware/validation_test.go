package middleware

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type inquiry struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSON(t *testing.T) {
	cases := []struct {
		body    string
		wantErr bool
	}{
		{`{"name":"Ann","email":"a@b.com"}`, false},
		{`{"name":"Ann"}`, false},
		{`{"name":"Ann","unknown":true}`, true},
		{`{"name":"Ann"} {"name":"Raj"}`, true},
		{`not json`, true},
		{``, true},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(tc.body))
		var got inquiry
		err := DecodeJSON(httptest.NewRecorder(), req, &got)
		if (err != nil) != tc.wantErr {
			t.Errorf("DecodeJSON(%q): err = %v, wantErr %v", tc.body, err, tc.wantErr)
		}
	}
}

func TestProperty_FormatValidationErrorsFollowsWrapping(t *testing.T) {
	validate := validator.New()
	properties := gopter.NewProperties(nil)

	properties.Property("wrapped validator errors are still reported per field", prop.ForAll(
		func(includeName bool, includeEmail bool) bool {
			req := inquiry{}
			if includeName {
				req.Name = "Ann"
			}
			if includeEmail {
				req.Email = "a@b.com"
			}

			err := validate.Struct(req)
			wrapped := fmt.Errorf("submit contact: %w", err)
			formatted := FormatValidationErrors(wrapped)

			missing := 0
			if !includeName {
				missing++
			}
			if !includeEmail {
				missing++
			}
			if len(formatted) != missing {
				return false
			}
			for _, fe := range formatted {
				if fe.Field == "" || fe.Message != "This field is required" {
					return false
				}
			}
			return true
		},
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	if got := FormatValidationErrors(fmt.Errorf("boom")); len(got) != 0 {
		t.Errorf("expected no validation errors, got %+v", got)
	}
}
