package prefs

import "errors"

// Sentinel kinds for preference errors.
var (
	ErrNoPreference  = errors.New("no display preference for family")
	ErrWrongFamily   = errors.New("unit does not belong to family")
	ErrUnknownFamily = errors.New("unknown unit family")
)
