package print

import (
	err "github.com/avlov/notx"
)

const (
	UnknownNotationError = err.PrintErrors + iota
	HoleCountError
)

func unknownNotationError(key string) *err.Error {
	return err.Format(UnknownNotationError, "no print rule registered for notation %q", key)
}

func holeCountError(key string, got int) *err.Error {
	return err.Format(HoleCountError, "notation %q applied to %d sub-terms, fewer than its holes", key, got)
}
