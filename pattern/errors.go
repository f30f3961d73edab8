package pattern

import (
	err "github.com/avlov/notx"
)

const (
	UnboundHoleError = err.PatternErrors + iota
	NonLinearHoleError
	UnexpectedMetavariableError
	UnexpectedBoundFormError
	ArityError
	UnresolvableError
)

func unboundHoleError(name string) *err.Error {
	return err.Format(UnboundHoleError, "hole %q unbound in right-hand side", name)
}

func nonLinearHoleError(name string) *err.Error {
	return err.Format(NonLinearHoleError, "hole %q used more than once in the elaborated term", name)
}

func unexpectedMetavariableError(index int) *err.Error {
	return err.Format(UnexpectedMetavariableError, "unexpected metavariable ?%d in source term", index)
}

func unexpectedBoundFormError(name string) *err.Error {
	return err.Format(UnexpectedBoundFormError, "unexpected bound form for hole %q in elaborated term", name)
}

func arityError(expected, got int) *err.Error {
	return err.Format(ArityError, "pattern with %d holes applied to %d sub-terms", expected, got)
}

func unresolvableError(name string) *err.Error {
	return err.Format(UnresolvableError, "cannot resolve identifier %q", name)
}
