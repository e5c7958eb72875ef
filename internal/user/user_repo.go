package user

import (
	"context"
	"strings"
	"sync"

	usererrors "go-opscentral/internal/user/errors"

	"golang.org/x/crypto/bcrypt"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	FindAll(ctx context.Context) ([]Account, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Create(ctx context.Context, acc Account) error
}

// Roster keeps accounts in process memory. Nothing survives a restart.
type Roster struct {
	mu       sync.RWMutex
	accounts []Account
}

// NewRoster hashes every seed password with the given bcrypt cost
// (bcrypt.DefaultCost when omitted).
func NewRoster(seeds []Seed, cost ...int) (*Roster, error) {
	c := bcrypt.DefaultCost
	if len(cost) > 0 {
		c = cost[0]
	}

	r := &Roster{accounts: make([]Account, 0, len(seeds))}
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), c)
		if err != nil {
			return nil, err
		}
		r.accounts = append(r.accounts, Account{
			Username:     s.Username,
			PasswordHash: hash,
			Profile:      s.Profile,
		})
	}
	return r, nil
}

func (r *Roster) FindByUsername(ctx context.Context, username string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, acc := range r.accounts {
		if acc.Username == username {
			return &acc, nil
		}
	}
	return nil, usererrors.ErrUserNotFound
}

func (r *Roster) FindByID(ctx context.Context, id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, acc := range r.accounts {
		if acc.Profile.ID == id {
			return &acc, nil
		}
	}
	return nil, usererrors.ErrUserNotFound
}

func (r *Roster) FindAll(ctx context.Context) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *Roster) UpdateStatus(ctx context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].Profile.ID == id {
			r.accounts[i].Profile.Status = status
			return nil
		}
	}
	return usererrors.ErrUserNotFound
}

func (r *Roster) Create(ctx context.Context, acc Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Username, acc.Username) {
			return usererrors.ErrUsernameTaken
		}
		if existing.Profile.EmployeeID == acc.Profile.EmployeeID {
			return usererrors.ErrEmployeeIDTaken
		}
	}
	r.accounts = append(r.accounts, acc)
	return nil
}
