package format

import (
	err "github.com/avlov/notx"
)

const (
	DuplicateVariableError = err.FormatErrors + iota
	AdjacentHolesError
	PinnedLevelError
	UnknownPinError
)

func duplicateVariableError(name string) *err.Error {
	return err.Format(DuplicateVariableError, "hole %q declared twice in format string", name)
}

func adjacentHolesError(name string) *err.Error {
	return err.Format(AdjacentHolesError, "hole %q is adjacent to another hole with no separating terminal", name)
}

func pinnedLevelError(name string, level int) *err.Error {
	return err.Format(PinnedLevelError, "pinned level %d for hole %q out of range %d..%d", level, name, MinLevel, MaxLevel)
}

func unknownPinError(name string) *err.Error {
	return err.Format(UnknownPinError, "pinned hole %q not present in format string", name)
}
