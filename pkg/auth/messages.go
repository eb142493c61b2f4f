package auth

import "errors"

// Client-facing messages of the original platform, in Spanish. These strings
// are part of the wire contract with existing clients.
const (
	MsgLoginOK            = "Login exitoso"
	MsgUserNotFound       = "Usuario no encontrado"
	MsgAccountDisabled    = "Usuario desactivado"
	MsgInvalidCredentials = "Contraseña incorrecta"
	MsgAuthFailed         = "Error de autenticación"
)

// Message maps an Authenticate result to the client-facing string. A nil
// error maps to the success message; unexpected errors map to a generic
// failure so internals never leak to clients.
func Message(err error) string {
	switch {
	case err == nil:
		return MsgLoginOK
	case errors.Is(err, ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, ErrAccountDisabled):
		return MsgAccountDisabled
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	default:
		return MsgAuthFailed
	}
}
