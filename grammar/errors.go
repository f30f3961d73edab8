package grammar

import (
	err "github.com/avlov/notx"
)

const (
	EntryDefinedError = err.GrammarErrors + iota
	UnknownEntryError
	MalformedProductionError
	EmptyTokenError
	UnexpectedTokenError
	UnexpectedEndError
	TrailingTokenError
)

func entryDefinedError(universe, name string) *err.Error {
	return err.Format(EntryDefinedError, "entry %q already defined in universe %q", name, universe)
}

func unknownEntryError(universe, name string) *err.Error {
	return err.Format(UnknownEntryError, "unknown entry %q in universe %q", name, universe)
}

func malformedProductionError(key, reason string) *err.Error {
	return err.Format(MalformedProductionError, "malformed production for %q: %s", key, reason)
}

func emptyTokenError() *err.Error {
	return err.Format(EmptyTokenError, "cannot register empty token")
}

func unexpectedTokenError(got, expected string) *err.Error {
	return err.Format(UnexpectedTokenError, "unexpected token %q, expecting %s", got, expected)
}

func unexpectedEndError(expected string) *err.Error {
	return err.Format(UnexpectedEndError, "unexpected end of input, expecting %s", expected)
}

func trailingTokenError(tok string) *err.Error {
	return err.Format(TrailingTokenError, "unexpected token %q after expression", tok)
}
