package domain

import (
	"encore.app/billing/model"
)

// OverallPaymentStatus is the single summary status derived across all of a
// patient's bills, used for at-a-glance display.
type OverallPaymentStatus string

const (
	OverallStatusPaid          OverallPaymentStatus = "Paid"
	OverallStatusPartiallyPaid OverallPaymentStatus = "Partially Paid"
	OverallStatusPending       OverallPaymentStatus = "Pending"
)

// DeriveOverallPaymentStatus collapses a set of bills with heterogeneous
// statuses into one overall payment status. The second return value is false
// when there is nothing to display (no bills, or no recognized status
// combination).
//
// The rules are checked in order because the conditions are not mutually
// exclusive for mixed sets: any posted bill dominates the summary, before the
// paid/pending mix is considered.
func DeriveOverallPaymentStatus(bills []model.Bill) (OverallPaymentStatus, bool) {
	if len(bills) == 0 {
		return "", false
	}

	var hasPosted, hasPending, hasPaid bool
	for _, bill := range bills {
		switch bill.Status {
		case model.BillStatusPosted:
			hasPosted = true
		case model.BillStatusPending:
			hasPending = true
		case model.BillStatusPaid:
			hasPaid = true
		}
		// Unrecognized statuses set no flag; the function stays total.
	}

	switch {
	case hasPaid && !hasPending && !hasPosted:
		return OverallStatusPaid, true
	case hasPosted:
		return OverallStatusPartiallyPaid, true
	case hasPaid && hasPending:
		return OverallStatusPartiallyPaid, true
	case hasPending && !hasPaid:
		return OverallStatusPending, true
	default:
		return "", false
	}
}
