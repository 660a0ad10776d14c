// Package outcome provides a generic container that holds exactly one of a
// success value or a failure value, together with the combinators needed to
// transform and chain such containers.
//
// An Outcome models single-use, linear consumption of a result: operations
// that extract the held payload hand it over and leave the container in a
// consumed state. Extracting from a slot that is not populated, extracting
// twice, or operating on the zero value are contract violations, not domain
// failures; they raise a ContractViolationError panic after writing one line
// to the sink configured via SetLogger. Domain failures, in contrast, only
// ever travel inside the failure slot and are handled by the caller.
package outcome

type slot int

const (
	// slotNone is the zero value: a raw construction that bypassed the
	// sanctioned constructors. Every operation rejects it.
	slotNone slot = iota
	slotSuccess
	slotFailure
)

// Outcome holds exactly one of a success value of type S or a failure value
// of type F. Instances must be obtained through Success or Failure; the zero
// value is invalid and is rejected at first use.
type Outcome[S, F any] struct {
	success  S
	failure  F
	slot     slot
	consumed bool
}

// Success returns an outcome populated with a success value.
func Success[S, F any](value S) *Outcome[S, F] {
	return &Outcome[S, F]{success: value, slot: slotSuccess}
}

// Failure returns an outcome populated with a failure value.
func Failure[S, F any](value F) *Outcome[S, F] {
	return &Outcome[S, F]{failure: value, slot: slotFailure}
}

// IsSuccess reports whether the success slot is populated. It never consumes
// the outcome.
func (o *Outcome[S, F]) IsSuccess() bool {
	o.check("IsSuccess")
	return o.slot == slotSuccess
}

// IsFailure reports whether the failure slot is populated. It never consumes
// the outcome.
func (o *Outcome[S, F]) IsFailure() bool {
	o.check("IsFailure")
	return o.slot == slotFailure
}

// Value hands over the success payload, leaving the outcome consumed.
// Calling Value on a failure outcome or on an already consumed outcome is a
// contract violation.
func (o *Outcome[S, F]) Value() S {
	o.check("Value")
	if o.slot != slotSuccess {
		violate("Value", "no success value is held")
	}
	if o.consumed {
		violate("Value", "success value was already consumed")
	}
	return o.takeSuccess()
}

// ValueOr hands over the success payload, or returns def when the failure
// slot is populated. The failure value is discarded in that case.
func (o *Outcome[S, F]) ValueOr(def S) S {
	o.check("ValueOr")
	if o.slot != slotSuccess {
		o.takeFailure()
		return def
	}
	if o.consumed {
		violate("ValueOr", "success value was already consumed")
	}
	return o.takeSuccess()
}

// Failure hands over the failure payload, leaving the outcome consumed.
// Calling Failure on a success outcome or on an already consumed outcome is a
// contract violation.
func (o *Outcome[S, F]) Failure() F {
	o.check("Failure")
	if o.slot != slotFailure {
		violate("Failure", "no failure value is held")
	}
	if o.consumed {
		violate("Failure", "failure value was already consumed")
	}
	return o.takeFailure()
}

// FailureOr hands over the failure payload, or returns def when the success
// slot is populated. The success value is discarded in that case.
func (o *Outcome[S, F]) FailureOr(def F) F {
	o.check("FailureOr")
	if o.slot != slotFailure {
		o.takeSuccess()
		return def
	}
	if o.consumed {
		violate("FailureOr", "failure value was already consumed")
	}
	return o.takeFailure()
}

// Expect behaves like Value but reports msg through the diagnostic sink when
// the success slot is not available.
func (o *Outcome[S, F]) Expect(msg string) S {
	o.check("Expect")
	if o.slot != slotSuccess || o.consumed {
		violate("Expect", msg)
	}
	return o.takeSuccess()
}

// ExpectFailure behaves like Failure but reports msg through the diagnostic
// sink when the failure slot is not available.
func (o *Outcome[S, F]) ExpectFailure(msg string) F {
	o.check("ExpectFailure")
	if o.slot != slotFailure || o.consumed {
		violate("ExpectFailure", msg)
	}
	return o.takeFailure()
}

// check rejects outcomes that bypassed the sanctioned constructors.
func (o *Outcome[S, F]) check(op string) {
	if o.slot == slotNone {
		violate(op, "outcome was constructed without a success or failure value")
	}
}

func (o *Outcome[S, F]) takeSuccess() S {
	var zero S
	value := o.success
	o.success = zero
	o.consumed = true
	return value
}

func (o *Outcome[S, F]) takeFailure() F {
	var zero F
	value := o.failure
	o.failure = zero
	o.consumed = true
	return value
}
