package service

import (
	"log"

	"github.com/brightbreeze/billing-api/pkg/apperror"
	"github.com/brightbreeze/billing-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// Credential configures one fixed operator account.
type Credential struct {
	Username string
	Password string
	Role     string
}

type operator struct {
	role         string
	passwordHash []byte
}

// AuthService authenticates the fixed operator accounts and issues tokens.
// The "admin" role is the privileged-operator flag gating catalog, settings
// and ledger mutations.
type AuthService struct {
	jwtManager *utils.JWTManager
	operators  map[string]operator
}

// NewAuthService hashes the configured credentials and creates the service.
func NewAuthService(jwtManager *utils.JWTManager, credentials []Credential) *AuthService {
	operators := make(map[string]operator, len(credentials))
	for _, cred := range credentials {
		if cred.Username == "" || cred.Password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("auth: failed to hash password for %q: %v", cred.Username, err)
			continue
		}
		operators[cred.Username] = operator{role: cred.Role, passwordHash: hash}
	}
	return &AuthService{jwtManager: jwtManager, operators: operators}
}

// LoginResult is a successful authentication.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login verifies a username/password pair and returns a signed token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	op, ok := s.operators[username]
	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(op.passwordHash, []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(username, op.role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Username: username, Role: op.role}, nil
}
