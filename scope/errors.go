package scope

import (
	err "github.com/avlov/notx"
)

const (
	EmptyDelimiterError = err.ScopeErrors + iota
	DelimitersDeclaredError
)

func emptyDelimiterError(name string) *err.Error {
	return err.Format(EmptyDelimiterError, "empty delimiter string for scope %q", name)
}

func delimitersDeclaredError(name string) *err.Error {
	return err.Format(DelimitersDeclaredError, "delimiters already declared for scope %q", name)
}
