package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastWorkday(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"monday goes back to friday", "2024-06-10", "2024-06-07"},
		{"saturday goes back to friday", "2024-06-08", "2024-06-07"},
		{"sunday goes back to friday", "2024-06-09", "2024-06-07"},
		{"wednesday goes back one day", "2024-06-12", "2024-06-11"},
		{"tuesday goes back one day", "2024-06-11", "2024-06-10"},
		{"friday goes back one day", "2024-06-14", "2024-06-13"},
		{"across month boundary", "2024-07-01", "2024-06-28"},
		{"across year boundary", "2025-01-01", "2024-12-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LastWorkday(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLastWorkdayRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "2024/06/10", "2024-6-1", "20240610", "2024-13-40", "abcd-ef-gh"} {
		_, err := LastWorkday(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDateAcceptsCalendarDates(t *testing.T) {
	_, err := ParseDate("2024-02-29") // leap day
	assert.NoError(t, err)
	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}
