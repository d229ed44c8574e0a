package interview

import "testing"

func TestInferCardTypeFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no hint", "mujhe diwali card chahiye", ""},
		{"personal", "ek personal card banana hai", "personal"},
		{"business keyword", "business launch ke liye", "business"},
		{"corporate alias", "corporate event hai", "business"},
		{"company alias", "company anniversary", "business"},
		{"invitation", "shaadi ka invitation card", "invitation"},
		{"invite short form", "please invite sab ko", "invitation"},
		{"uppercase input", "BUSINESS CARD chahiye", "business"},
		{"multiple by first occurrence", "invitation for business meet", "invitation business"},
		{"multiple reversed order", "business party ka invite", "business invitation"},
		{"duplicate hits collapse", "business aur corporate dono", "business"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferCardTypeFromText(tt.text); got != tt.want {
				t.Fatalf("InferCardTypeFromText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
