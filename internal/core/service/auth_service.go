package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ffpos/ffpos/internal/core/domain"
)

// AuthService matches logins against a fixed credential list. There are
// no tokens and no expiry; a session lasts until Logout.
type AuthService struct {
	mu      sync.Mutex
	users   []domain.Credential
	logger  *zap.Logger
	current *domain.User
}

func NewAuthService(users []domain.Credential, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Login checks the credentials by exact match and, on success, records
// the user as the current operator.
func (a *AuthService) Login(username, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Username == username && u.Password == password {
			a.current = &domain.User{ID: u.ID, Username: u.Username, Role: u.Role}
			a.logger.Info("login", zap.String("username", username), zap.String("role", string(u.Role)))
			return true
		}
	}
	a.logger.Info("login rejected", zap.String("username", username))
	return false
}

// Logout clears the current operator.
func (a *AuthService) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
}

// CurrentUser returns the logged-in operator, if any.
func (a *AuthService) CurrentUser() (domain.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return domain.User{}, false
	}
	return *a.current, true
}
