package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	As           = errors.As
	Cause        = errors.Cause
	Errorf       = errors.Errorf
	Is           = errors.Is
	IsAny        = errors.IsAny
	Mark         = errors.Mark
	New          = errors.New
	Newf         = errors.Newf
	Unwrap       = errors.Unwrap
	UnwrapAll    = errors.UnwrapAll
	WithMessage  = errors.WithMessage
	WithMessagef = errors.WithMessagef
	WithStack    = errors.WithStack
	Wrap         = errors.Wrap
	Wrapf        = errors.Wrapf
)
