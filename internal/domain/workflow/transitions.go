// Package workflow holds the pure lifecycle rules for quotes: the
// transition table and the status projector. Nothing here touches storage
// or a clock, so callers can evaluate it as often as they like.
package workflow

import "visionpos/internal/domain/entities"

// transitionTargets is the full legality table. Preconditions (line items,
// signatures, cancel reason, sweeper-only expiration) are enforced by the
// lifecycle usecase on top of this table.
var transitionTargets = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusBuilding: {
		entities.QuoteStatusDraft,
		entities.QuoteStatusPresented,
		entities.QuoteStatusCancelled,
		entities.QuoteStatusExpired,
	},
	entities.QuoteStatusDraft: {
		entities.QuoteStatusBuilding,
		entities.QuoteStatusPresented,
		entities.QuoteStatusCancelled,
		entities.QuoteStatusExpired,
	},
	entities.QuoteStatusPresented: {
		entities.QuoteStatusSigned,
		entities.QuoteStatusCancelled,
		entities.QuoteStatusExpired,
	},
	entities.QuoteStatusSigned: {
		entities.QuoteStatusCompleted,
		entities.QuoteStatusCancelled,
		entities.QuoteStatusExpired,
	},
	entities.QuoteStatusCompleted: {},
	entities.QuoteStatusCancelled: {},
	entities.QuoteStatusExpired:   {},
}

// CanTransition reports whether the table permits from -> to.
func CanTransition(from, to entities.QuoteStatus) bool {
	for _, target := range transitionTargets[from] {
		if target == to {
			return true
		}
	}
	return false
}

// Targets returns the permitted targets from a status. Terminal states
// return an empty slice.
func Targets(from entities.QuoteStatus) []entities.QuoteStatus {
	targets := transitionTargets[from]
	out := make([]entities.QuoteStatus, len(targets))
	copy(out, targets)
	return out
}

// IsTerminal reports whether a status has zero outgoing transitions.
func IsTerminal(s entities.QuoteStatus) bool {
	targets, known := transitionTargets[s]
	return known && len(targets) == 0
}

// HasValidSignature reports whether a currently-valid signature of the
// given type exists in sigs.
func HasValidSignature(sigs []entities.SignatureRecord, t entities.SignatureType) bool {
	for _, s := range sigs {
		if s.IsValid && s.SignatureType == t {
			return true
		}
	}
	return false
}

// MissingSignatureTypes lists the signature types that still lack a valid
// capture, in the fixed EXAM, MATERIALS order.
func MissingSignatureTypes(sigs []entities.SignatureRecord) []entities.SignatureType {
	var missing []entities.SignatureType
	for _, t := range entities.SignatureTypes() {
		if !HasValidSignature(sigs, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
