package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	authdomain "habitus-backend/internal/auth/domain"
)

// MemoryUserRepository is an in-memory UserRepository for tests.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]*authdomain.User // by ID
	refresh map[string]*authdomain.RefreshToken
}

// NewMemoryUserRepository creates an empty in-memory repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[string]*authdomain.User),
		refresh: make(map[string]*authdomain.RefreshToken),
	}
}

func (r *MemoryUserRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepository) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.refresh[token.Token] = &cp
	return nil
}

func (r *MemoryUserRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.refresh[token]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *MemoryUserRepository) DeleteRefreshToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.refresh, token)
	return nil
}

// MemoryDeviceTokenRepository is an in-memory DeviceTokenRepository for tests.
type MemoryDeviceTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*authdomain.DeviceToken // by token
}

// NewMemoryDeviceTokenRepository creates an empty in-memory registry.
func NewMemoryDeviceTokenRepository() *MemoryDeviceTokenRepository {
	return &MemoryDeviceTokenRepository{tokens: make(map[string]*authdomain.DeviceToken)}
}

func (r *MemoryDeviceTokenRepository) SaveToken(userID, token, deviceInfo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tokens[token]
	if ok {
		existing.UserID = userID
		existing.DeviceInfo = deviceInfo
		existing.UpdatedAt = time.Now()
		return nil
	}
	r.tokens[token] = &authdomain.DeviceToken{
		ID:         uuid.New().String(),
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	return nil
}

func (r *MemoryDeviceTokenRepository) GetTokensByUserID(userID string) ([]authdomain.DeviceToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []authdomain.DeviceToken
	for _, t := range r.tokens {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *MemoryDeviceTokenRepository) DeleteToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *MemoryDeviceTokenRepository) DeleteTokensByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}
