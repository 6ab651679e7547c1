package flow

import "errors"

var (
	ErrNavigation      = errors.New("navigation failed")
	ErrElementNotFound = errors.New("element not found")
	ErrTimeout         = errors.New("timed out waiting for element")
	ErrNoWindow        = errors.New("no new window to switch to")
)
