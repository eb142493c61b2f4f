package directory

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bludee/authcore/pkg/roles"
)

//go:embed seed.yaml
var demoSeed []byte

// HashFunc derives a credential hash from a plaintext password. It decouples
// the seed loader from any concrete hashing scheme.
type HashFunc func(password string) (string, error)

// seedAccount is the YAML shape of one fixture record. Passwords are
// plaintext in the fixture and hashed at load time.
type seedAccount struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Organization string `yaml:"organization"`
	Email        string `yaml:"email"`
	Active       bool   `yaml:"active"`
	CreatedAt    string `yaml:"created_at"`
}

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

// LoadSeed parses a YAML account fixture and hashes each password with hash.
// Every referenced role must belong to the closed role set.
func LoadSeed(data []byte, hash HashFunc) ([]Account, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrInvalidSeed, err)
	}

	accounts := make([]Account, 0, len(file.Accounts))
	for _, record := range file.Accounts {
		role := roles.Role(record.Role)
		if !roles.Valid(role) {
			return nil, errors.Join(ErrInvalidSeed,
				fmt.Errorf("account %q references unknown role %q", record.Username, record.Role))
		}

		createdAt, err := time.Parse("2006-01-02", record.CreatedAt)
		if err != nil {
			return nil, errors.Join(ErrInvalidSeed,
				fmt.Errorf("account %q has invalid created_at: %w", record.Username, err))
		}

		passwordHash, err := hash(record.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %q: %w", record.Username, err)
		}

		accounts = append(accounts, Account{
			Username:     record.Username,
			PasswordHash: passwordHash,
			Name:         record.Name,
			Role:         role,
			Organization: record.Organization,
			Email:        record.Email,
			Active:       record.Active,
			CreatedAt:    createdAt,
		})
	}

	return accounts, nil
}

// DemoAccounts loads the embedded demo fixture: the four platform demo users.
func DemoAccounts(hash HashFunc) ([]Account, error) {
	return LoadSeed(demoSeed, hash)
}
