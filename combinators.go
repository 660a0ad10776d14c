package outcome

// The combinators live at package level because Go methods cannot introduce
// additional type parameters. All of them consume the outcome they are given;
// the probes (ContainsSuccess, ContainsFailure, Equal) do not.

// MapSuccess applies f to the success value and wraps the result as a new
// success. A failure passes through unchanged into the new success type.
func MapSuccess[S, F, S2 any](o *Outcome[S, F], f func(S) S2) *Outcome[S2, F] {
	o.check("MapSuccess")
	if o.IsSuccess() {
		return Success[S2, F](f(o.Value()))
	}
	return Failure[S2](o.Failure())
}

// MapFailure applies f to the failure value and wraps the result as a new
// failure. A success passes through unchanged into the new failure type.
func MapFailure[S, F, F2 any](o *Outcome[S, F], f func(F) F2) *Outcome[S, F2] {
	o.check("MapFailure")
	if o.IsFailure() {
		return Failure[S](f(o.Failure()))
	}
	return Success[S, F2](o.Value())
}

// MapSuccessOr applies f to the success value, or returns def on failure. The
// failure value is discarded.
func MapSuccessOr[S, F, U any](o *Outcome[S, F], def U, f func(S) U) U {
	o.check("MapSuccessOr")
	if o.IsSuccess() {
		return f(o.Value())
	}
	o.Failure()
	return def
}

// MapOrElse reduces the outcome to a single value of type U by applying
// exactly one of the two functions, chosen by the populated slot.
func MapOrElse[S, F, U any](o *Outcome[S, F], onFailure func(F) U, onSuccess func(S) U) U {
	o.check("MapOrElse")
	if o.IsSuccess() {
		return onSuccess(o.Value())
	}
	return onFailure(o.Failure())
}

// AndThen delegates to f on success and propagates the failure value
// unchanged otherwise. Chains of AndThen short-circuit on the first failure.
func AndThen[S, F, S2 any](o *Outcome[S, F], f func(S) *Outcome[S2, F]) *Outcome[S2, F] {
	o.check("AndThen")
	if o.IsSuccess() {
		return f(o.Value())
	}
	return Failure[S2](o.Failure())
}

// And discards the success value and returns other verbatim; a failure
// propagates instead and other is left untouched.
func And[S, F, S2 any](o *Outcome[S, F], other *Outcome[S2, F]) *Outcome[S2, F] {
	o.check("And")
	if o.IsSuccess() {
		o.Value()
		return other
	}
	return Failure[S2](o.Failure())
}

// OrElse delegates to f on failure and re-wraps the success value unchanged
// otherwise. It is the recovery dual of AndThen.
func OrElse[S, F, F2 any](o *Outcome[S, F], f func(F) *Outcome[S, F2]) *Outcome[S, F2] {
	o.check("OrElse")
	if o.IsFailure() {
		return f(o.Failure())
	}
	return Success[S, F2](o.Value())
}

// Or re-wraps the success value unchanged, or returns other verbatim on
// failure. The original failure value is discarded.
func Or[S, F, F2 any](o *Outcome[S, F], other *Outcome[S, F2]) *Outcome[S, F2] {
	o.check("Or")
	if o.IsSuccess() {
		return Success[S, F2](o.Value())
	}
	o.Failure()
	return other
}

// ContainsSuccess reports whether the success slot holds a value equal to x.
func ContainsSuccess[S comparable, F any](o *Outcome[S, F], x S) bool {
	o.check("ContainsSuccess")
	return o.slot == slotSuccess && !o.consumed && o.success == x
}

// ContainsFailure reports whether the failure slot holds a value equal to x.
func ContainsFailure[S any, F comparable](o *Outcome[S, F], x F) bool {
	o.check("ContainsFailure")
	return o.slot == slotFailure && !o.consumed && o.failure == x
}

// Equal reports whether both outcomes hold the same case with equal payloads.
// Consumed slots are empty and compare equal to each other, so two outcomes
// drained by extraction are equal regardless of what they once held.
func Equal[S, F comparable](a, b *Outcome[S, F]) bool {
	return a.slot == b.slot &&
		a.consumed == b.consumed &&
		a.success == b.success &&
		a.failure == b.failure
}
