package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ts(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestLoan_OverdueDays(t *testing.T) {
	tests := []struct {
		name     string
		expected time.Time
		actual   *time.Time
		want     int
	}{
		{name: "still open", expected: ts(8, 0), actual: nil, want: 0},
		{name: "on time", expected: ts(8, 0), actual: ptr(ts(8, 10)), want: 0},
		{name: "early", expected: ts(8, 0), actual: ptr(ts(6, 10)), want: 0},
		{name: "one day late", expected: ts(8, 0), actual: ptr(ts(9, 1)), want: 1},
		{name: "late evening still one day", expected: ts(8, 0), actual: ptr(ts(9, 23)), want: 1},
		{name: "three days late", expected: ts(8, 0), actual: ptr(ts(11, 5)), want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := Loan{ExpectedReturnDate: tt.expected, ActualReturnDate: tt.actual}
			require.Equal(t, tt.want, loan.OverdueDays())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-03-10"`)))
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2024-03-10"`, string(out))

	require.Error(t, d.UnmarshalJSON([]byte(`"10.03.2024"`)))
}
