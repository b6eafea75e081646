package services

import "testing"

func TestFormatINR_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"small integer", 5, "₹5.00"},
		{"with decimals", 42.50, "₹42.50"},
		{"hundreds", 999.99, "₹999.99"},
		{"thousands", 1234.56, "₹1,234.56"},
		{"ten thousands", 12345.00, "₹12,345.00"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"ten lakhs", 1234567.89, "₹12,34,567.89"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"negative lakhs", -250000.50, "-₹2,50,000.50"},
		{"exact thousands boundary", 1000, "₹1,000.00"},
		{"exact lakh boundary", 100000, "₹1,00,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "Rs. 0"},
		{"small", 999, "Rs. 999"},
		{"thousands", 1950, "Rs. 1,950"},
		{"lakh", 100000, "Rs. 1,00,000"},
		{"crore", 10000000, "Rs. 1,00,00,000"},
		{"rounds half up", 1949.5, "Rs. 1,950"},
		{"rounds down", 1949.4, "Rs. 1,949"},
		{"sub-unit precision hidden", 350.75, "Rs. 351"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRupees(tt.input)
			if got != tt.expect {
				t.Errorf("FormatRupees(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name            string
		input           float64
		allowFractional bool
		expect          string
	}{
		{"fractional whole", 2.0, true, "2.0"},
		{"fractional tenth", 2.5, true, "2.5"},
		{"fractional zero", 0, true, "0.0"},
		{"whole", 5, false, "5"},
		{"whole rounds up", 2.7, false, "3"},
		{"whole rounds down", 2.2, false, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQuantity(tt.input, tt.allowFractional)
			if got != tt.expect {
				t.Errorf("FormatQuantity(%v, %v) = %q, want %q", tt.input, tt.allowFractional, got, tt.expect)
			}
		})
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"single digit", "5", "5"},
		{"three digits", "999", "999"},
		{"four digits", "1234", "1,234"},
		{"five digits", "12345", "12,345"},
		{"six digits", "123456", "1,23,456"},
		{"seven digits", "1234567", "12,34,567"},
		{"nine digits", "123456789", "12,34,56,789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyIndianGrouping(tt.input)
			if got != tt.expect {
				t.Errorf("applyIndianGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
