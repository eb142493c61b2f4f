package auth

import "github.com/bludee/authcore/pkg/roles"

// UserInfo is the payload returned to a client on successful
// authentication. Field names match the platform wire contract.
type UserInfo struct {
	Username     string             `json:"username"`
	Name         string             `json:"name"`
	Role         roles.Role         `json:"role"`
	Organization string             `json:"organization"`
	Email        string             `json:"email"`
	SessionToken string             `json:"session_token"`
	Capabilities []roles.Capability `json:"capabilities"`
	Modules      []roles.Module     `json:"modules"`
}
