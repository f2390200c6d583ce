package requestsvc

import (
	"math"
	"time"
)

// PaymentMethods are the settlement options offered alongside a computed
// bill. Collecting the actual payment happens outside this service.
var PaymentMethods = []string{"Cash", "UPI"}

const oneDay = 24 * time.Hour

// ComputeBill counts billable days between approval and return and prices
// them. Partial days round up and a same-day return still costs one day.
func ComputeBill(decidedAt, returnedAt time.Time, pricePerDay float64) (days int, totalDue float64) {
	elapsed := returnedAt.Sub(decidedAt)
	days = int(elapsed / oneDay)
	if elapsed%oneDay > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	totalDue = round2(float64(days) * pricePerDay)
	return days, totalDue
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
