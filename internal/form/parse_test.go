package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/struk/internal/form"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input       string
		want        int
		wantDefault bool
	}{
		{input: "2", want: 2},
		{input: " 7 ", want: 7},
		{input: "0", want: 1, wantDefault: true},
		{input: "-1", want: 1, wantDefault: true},
		{input: "dua", want: 1, wantDefault: true},
		{input: "", want: 1, wantDefault: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, usedDefault := form.ParseQuantity(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDefault, usedDefault)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input       string
		want        int64
		wantDefault bool
	}{
		{input: "150000", want: 150000},
		{input: " 25000 ", want: 25000},
		{input: "1000.6", want: 1001},
		{input: "0", want: 0},
		{input: "-5", want: 0, wantDefault: true},
		{input: "abc", want: 0, wantDefault: true},
		{input: "", want: 0, wantDefault: true},
		{input: "9223372036854775808", want: 0, wantDefault: true},
		{input: "1e19", want: 0, wantDefault: true},
		{input: "99999999999999999999", want: 0, wantDefault: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, usedDefault := form.ParseAmount(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDefault, usedDefault)
		})
	}
}
