package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneFixture struct {
	Phone string `validate:"phone"`
}

func TestRegisterPhoneValidator(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterPhoneValidator(v))

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "plain digits", phone: "601234567", valid: true},
		{name: "international prefix", phone: "+48 601 234 567", valid: true},
		{name: "dashes and parentheses", phone: "(12) 345-67-89", valid: true},
		{name: "surrounding whitespace", phone: " 601234567 ", valid: true},
		{name: "too short", phone: "12345", valid: false},
		{name: "letters", phone: "telefon123", valid: false},
		{name: "empty", phone: "", valid: false},
		{name: "plus only", phone: "+", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(phoneFixture{Phone: tt.phone})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
