package object

import (
	err "github.com/avlov/notx"
)

const (
	NoDescriptorError = err.ObjectErrors + iota
	UnknownKindError
	UnknownNotationKeyError
)

func noDescriptorError(kind Kind) *err.Error {
	return err.Format(NoDescriptorError, "extension object of kind %d has no descriptor", int(kind))
}

func unknownKindError(kind int) *err.Error {
	return err.Format(UnknownKindError, "unknown extension object kind %d", kind)
}

func unknownNotationKeyError(key string) *err.Error {
	return err.Format(UnknownNotationKeyError, "no installed notation for key %q", key)
}
