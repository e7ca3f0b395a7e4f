package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestFormatSalaryRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		currency string
		want     string
	}{
		{"both bounds", intp(80000), intp(120000), "USD", "$80,000 - $120,000"},
		{"only min", intp(80000), nil, "USD", "From $80,000"},
		{"only max", nil, intp(120000), "USD", "Up to $120,000"},
		{"euro", intp(60000), intp(90000), "EUR", "€60,000 - €90,000"},
		{"pounds", intp(55000), nil, "GBP", "From £55,000"},
		{"rupees", intp(1500000), nil, "INR", "From ₹1,500,000"},
		{"unknown currency falls back to USD", intp(80000), nil, "XXX", "From $80,000"},
		{"empty currency falls back to USD", intp(80000), nil, "", "From $80,000"},
		{"no grouping needed", intp(900), nil, "USD", "From $900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSalaryRange(tt.min, tt.max, tt.currency)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestFormatSalaryRange_NoBoundsMeansNoSalary(t *testing.T) {
	assert.Nil(t, FormatSalaryRange(nil, nil, "USD"))
}
