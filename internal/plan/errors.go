package plan

import "errors"

// ErrUnknownID is returned when a toggle names an id the catalog does
// not carry. Callers normally can't hit this (the UI only offers catalog
// ids), but scripted input can.
var ErrUnknownID = errors.New("plan: unknown id")
