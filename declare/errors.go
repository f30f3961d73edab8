package declare

import (
	err "github.com/avlov/notx"
	"github.com/avlov/notx/format"
)

const (
	LevelRangeError = err.DeclareErrors + iota
	EmptyFormatError
	EmptyInfixTokenError
)

func levelRangeError(level, min int) *err.Error {
	return err.Format(LevelRangeError, "precedence level %d out of range %d..%d", level, min, format.MaxLevel)
}

func emptyFormatError() *err.Error {
	return err.Format(EmptyFormatError, "empty format string")
}

func emptyInfixTokenError() *err.Error {
	return err.Format(EmptyInfixTokenError, "empty infix token")
}
