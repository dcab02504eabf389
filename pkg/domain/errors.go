package domain

import "errors"

// pipeline failure taxonomy, matched with errors.Is
var (
	ErrTransient = errors.New("transient network failure")
	ErrPermanent = errors.New("permanent request failure")
	ErrIntegrity = errors.New("integrity failure")
	ErrDecode    = errors.New("decode failure")

	ErrUnknownSource   = errors.New("unknown source")
	ErrCycleInProgress = errors.New("fetch cycle already in progress")
)
