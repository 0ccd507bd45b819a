package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerForm struct {
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	State     string `json:"state" validate:"required,len=2"`
	Zip       string `json:"zip" validate:"required,zipcode"`
}

func TestValidateSuccess(t *testing.T) {
	form := customerForm{
		FirstName: "Dan",
		Email:     "dan@example.com",
		State:     "KS",
		Zip:       "66101",
	}
	assert.Nil(t, Validate(form))
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		form    customerForm
		field   string
		message string
	}{
		{
			name:    "missing required",
			form:    customerForm{Email: "dan@example.com", State: "KS", Zip: "66101"},
			field:   "firstName",
			message: "firstName is required",
		},
		{
			name:    "bad email",
			form:    customerForm{FirstName: "Dan", Email: "not-an-email", State: "KS", Zip: "66101"},
			field:   "email",
			message: "email must be a valid email address",
		},
		{
			name:    "bad state length",
			form:    customerForm{FirstName: "Dan", Email: "dan@example.com", State: "Kansas", Zip: "66101"},
			field:   "state",
			message: "state must be exactly 2 characters long",
		},
		{
			name:    "bad zip",
			form:    customerForm{FirstName: "Dan", Email: "dan@example.com", State: "KS", Zip: "6610"},
			field:   "zip",
			message: "zip must be a valid ZIP code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := Validate(tt.form)
			require.NotNil(t, fieldErrors)
			require.Contains(t, fieldErrors, tt.field)
			assert.Contains(t, fieldErrors[tt.field], tt.message)
		})
	}
}

func TestValidateZipPlusFour(t *testing.T) {
	form := customerForm{FirstName: "Dan", Email: "dan@example.com", State: "KS", Zip: "66101-1234"}
	assert.Nil(t, Validate(form))
}

func TestValidateAllOrNothing(t *testing.T) {
	fieldErrors := Validate(customerForm{})
	require.NotNil(t, fieldErrors)
	assert.Len(t, fieldErrors, 4, "every invalid field reported")
}

func TestNormalizeOptional(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		input *string
		want  *string
	}{
		{name: "nil stays nil", input: nil, want: nil},
		{name: "blank collapses to nil", input: str(""), want: nil},
		{name: "whitespace collapses to nil", input: str("  \t "), want: nil},
		{name: "value trimmed", input: str("  note  "), want: str("note")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOptional(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
