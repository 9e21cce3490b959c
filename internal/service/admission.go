package service

import "time"

// AdmissionDecision is the outcome of the pure submit-time guard.
type AdmissionDecision int

const (
	Admit AdmissionDecision = iota
	RejectDeadline
	RejectFull
)

// CheckAdmission decides whether a new application may be created. The
// deadline comparison is a strict instant comparison, not date-only.
// Capacity is measured by confirmed occupancy: pending and accepted
// applications do not reserve a seat, only confirmed memberships count.
func CheckAdmission(now, applyBy time.Time, confirmed, slotsTotal int32) AdmissionDecision {
	if now.After(applyBy) {
		return RejectDeadline
	}
	if confirmed >= slotsTotal {
		return RejectFull
	}
	return Admit
}
