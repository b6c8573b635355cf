package registry

import "errors"

// ErrUnknownPilot is returned by Create for an unregistered pilot ID.
var ErrUnknownPilot = errors.New("registry: unknown pilot")
