package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5551234567", true},
		{"0000000000", true},
		{"555123456", false},
		{"55512345678", false},
		{"555123456a", false},
		{" 5551234567", false},
		{"5551234567\n", false},
		{"555-123-456", false},
		{"", false},
		{"٥٥٥١٢٣٤٥٦٧", false}, // Arabic-Indic digits
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.in))
		})
	}
}

// Every string of length ten made only of ASCII digits is valid, and
// changing any single position to a non-digit invalidates it.
func TestIsValidPhone_DigitProperty(t *testing.T) {
	base := []byte("0123456789")
	assert.True(t, IsValidPhone(string(base)))

	for i := range base {
		for _, bad := range []byte{'a', ' ', '-', '+', '.'} {
			mutated := append([]byte(nil), base...)
			mutated[i] = bad
			assert.False(t, IsValidPhone(string(mutated)), "%q", mutated)
		}
	}

	for n := 0; n <= 12; n++ {
		s := strings.Repeat("7", n)
		assert.Equal(t, n == 10, IsValidPhone(s), "length %d", n)
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"john@example.com", true},
		{"john.doe-x@mail.example.co", true},
		{"j_d@host.io", true},
		{"john@example", false},
		{"@example.com", false},
		{"john example@mail.com", false},
		{"john@example.", false},
		{"john", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.in))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "John Doe", TitleCase("john doe"))
	assert.Equal(t, "John Doe", TitleCase("JOHN DOE"))
	assert.Equal(t, "Émile Zola", TitleCase("émile zola"))
}
