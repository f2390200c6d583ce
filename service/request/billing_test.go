package requestsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeBill(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		elapsed  time.Duration
		price    float64
		wantDays int
		wantDue  float64
	}{
		{"same instant still costs a day", 0, 5.00, 1, 5.00},
		{"one second", time.Second, 5.00, 1, 5.00},
		{"just under a day", 23 * time.Hour, 5.00, 1, 5.00},
		{"exactly one day", 24 * time.Hour, 5.00, 1, 5.00},
		{"a day and a second rounds up", 24*time.Hour + time.Second, 5.00, 2, 10.00},
		{"2.3 days at 5.00", 55*time.Hour + 12*time.Minute, 5.00, 3, 15.00},
		{"exactly three days", 72 * time.Hour, 7.25, 3, 21.75},
		{"rounds to minor units", 72 * time.Hour, 1.111, 3, 3.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days, due := ComputeBill(base, base.Add(tc.elapsed), tc.price)
			require.Equal(t, tc.wantDays, days)
			require.Equal(t, tc.wantDue, due)
		})
	}
}

func TestPaymentMethodsFixed(t *testing.T) {
	require.Equal(t, []string{"Cash", "UPI"}, PaymentMethods)
}
