package roles

import "errors"

// ErrUnknownRole is returned when a role identifier is not part of the
// closed role set. Under correct configuration it is unreachable; seeing it
// means an account references a role the registry does not define.
var ErrUnknownRole = errors.New("roles.unknown_role")
