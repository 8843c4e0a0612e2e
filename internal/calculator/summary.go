package calculator

import (
	"math"
	"sort"
	"strings"
)

// paidStatus is the status value that counts as settled when computing the
// outstanding amount. Comparison ignores case and surrounding spaces.
const paidStatus = "pago"

// ChargeForSummary represents a charge with the minimal information needed for totals.
type ChargeForSummary struct {
	Amount float64
	Status string
}

// StatusTotal aggregates charges sharing one status value.
type StatusTotal struct {
	Status string
	Count  int
	Amount float64
}

// Summary is the dashboard view over a set of charges.
type Summary struct {
	Count       int
	Total       float64
	Paid        float64
	Outstanding float64       // Total of every charge whose status is not "pago"
	ByStatus    []StatusTotal // Sorted by status
}

// Summarize computes totals across charges.
//
// Statuses are opaque: each distinct string gets its own bucket, and only
// "pago" is treated specially for the paid/outstanding split. Amounts are
// rounded to cents after aggregation.
func Summarize(charges []ChargeForSummary) Summary {
	buckets := make(map[string]*StatusTotal)
	var summary Summary

	for _, c := range charges {
		bucket, exists := buckets[c.Status]
		if !exists {
			bucket = &StatusTotal{Status: c.Status}
			buckets[c.Status] = bucket
		}
		bucket.Count++
		bucket.Amount += c.Amount

		summary.Count++
		summary.Total += c.Amount
		if isPaid(c.Status) {
			summary.Paid += c.Amount
		} else {
			summary.Outstanding += c.Amount
		}
	}

	summary.ByStatus = make([]StatusTotal, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Amount = roundCents(bucket.Amount)
		summary.ByStatus = append(summary.ByStatus, *bucket)
	}
	sort.Slice(summary.ByStatus, func(i, j int) bool {
		return summary.ByStatus[i].Status < summary.ByStatus[j].Status
	})

	summary.Total = roundCents(summary.Total)
	summary.Paid = roundCents(summary.Paid)
	summary.Outstanding = roundCents(summary.Outstanding)

	return summary
}

func isPaid(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), paidStatus)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
