package validation

import (
	"testing"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrenchPhonePattern(t *testing.T) {
	valid := []string{
		"0612345678",
		"06 12 34 56 78",
		"06.12.34.56.78",
		"06-12-34-56-78",
		"+33612345678",
		"+33 6 12 34 56 78",
		"0033612345678",
	}
	for _, phone := range valid {
		assert.True(t, frPhonePattern.MatchString(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"12345",
		"0012345678",
		"0012 34 56 78 90",
		"06 12 34 56",
		"+44 20 7946 0958",
		"abcdefghij",
	}
	for _, phone := range invalid {
		assert.False(t, frPhonePattern.MatchString(phone), "expected %q to be invalid", phone)
	}
}

func TestStructReportsJSONFieldName(t *testing.T) {
	type request struct {
		OwnerName string `json:"owner_name" validate:"required"`
	}

	err := Struct(request{})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "owner_name", vErr.Field)
	assert.Equal(t, "is required", vErr.Message)
}

func TestStructMessages(t *testing.T) {
	type request struct {
		Email  string   `json:"email" validate:"omitempty,email"`
		Status string   `json:"status" validate:"omitempty,oneof=Remise Retrait"`
		Photos []string `json:"photos" validate:"omitempty,min=1"`
		Date   string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	cases := []struct {
		name    string
		req     request
		field   string
		message string
	}{
		{"bad email", request{Email: "nope"}, "email", "invalid email address"},
		{"bad status", request{Status: "Perdue"}, "status", "must be one of: Remise Retrait"},
		{"bad date", request{Date: "15/03/2024"}, "date", "invalid date, expected 2006-01-02"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.req)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, tc.message, vErr.Message)
		})
	}
}

func TestStructPassesValidInput(t *testing.T) {
	type request struct {
		Phone string `json:"phone" validate:"required,frphone"`
	}
	assert.NoError(t, Struct(request{Phone: "0612345678"}))
}

func TestFrphoneAllowsClearingOptionalField(t *testing.T) {
	type patch struct {
		Phone *string `json:"phone" validate:"omitnil,frphone"`
	}

	empty := ""
	assert.NoError(t, Struct(patch{Phone: &empty}))

	bad := "12345"
	err := Struct(patch{Phone: &bad})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)
}

func TestFrphoneStillRejectsEmptyWhenRequired(t *testing.T) {
	type request struct {
		Phone string `json:"phone" validate:"required,frphone"`
	}

	err := Struct(request{})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)
	assert.Equal(t, "is required", vErr.Message)
}
