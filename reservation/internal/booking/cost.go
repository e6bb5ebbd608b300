package booking

import (
	"math"
	"time"
)

// TotalCost bills the hours between start and end at pricePerHour, rounded to cents.
// Ending before the start bills nothing.
func TotalCost(start, end time.Time, pricePerHour float64) float64 {
	hours := end.Sub(start).Hours()
	cost := math.Max(0, hours*pricePerHour)
	return math.Round(cost*100) / 100
}
