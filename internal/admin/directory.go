// Package admin holds the administrator directory: the authorization
// principals for catalog mutation, their authentication, and signup.
package admin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/grocodev/groco/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any authentication mismatch,
// whether the id is unknown or the password wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned when an administrator id is absent.
var ErrNotFound = errors.New("administrator not found")

// ErrInvalidValue is returned for empty signup fields.
var ErrInvalidValue = errors.New("invalid value")

// Bootstrap credentials present before any signup.
const (
	BootstrapID       = "idriss"
	BootstrapPassword = "idriss123"
	bootstrapName     = "Admin Principal"
	bootstrapEmail    = "admin@store.com"
)

// Directory maps administrator ids to principals. Passwords are stored
// as bcrypt hashes only.
type Directory struct {
	logger *zap.Logger

	mu     sync.Mutex
	admins map[string]*model.Administrator
	order  []string
}

func NewDirectory(logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{
		logger: logger,
		admins: map[string]*model.Administrator{},
	}
}

// Bootstrap installs the default administrator. Call once at startup,
// before any signup.
func (d *Directory) Bootstrap() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.admins[BootstrapID]; ok {
		return nil
	}
	d.insert(&model.Administrator{
		ID:           BootstrapID,
		Name:         bootstrapName,
		Email:        bootstrapEmail,
		PasswordHash: hash,
	})
	return nil
}

// Register creates a new administrator under the next sequential id
// (A0001, A0002, ... based on current directory size). The session flag
// starts unset.
func (d *Directory) Register(name, email, password string) (*model.Administrator, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidValue)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := fmt.Sprintf("A%04d", len(d.admins)+1)
	a := &model.Administrator{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	d.insert(a)

	d.logger.Info("administrator registered", zap.String("admin_id", id))
	return a, nil
}

// Authenticate checks the credential pair and, on success, marks the
// session connected and returns the principal. Unknown ids and wrong
// passwords are indistinguishable to the caller.
func (d *Directory) Authenticate(id, password string) (*model.Administrator, error) {
	d.mu.Lock()
	a, ok := d.admins[id]
	d.mu.Unlock()

	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		d.logger.Warn("authentication failed", zap.String("admin_id", id))
		return nil, ErrInvalidCredentials
	}

	a.Connect()
	d.logger.Info("administrator connected", zap.String("admin_id", id))
	return a, nil
}

// Get looks up an administrator by id.
func (d *Directory) Get(id string) (*model.Administrator, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.admins[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return a, nil
}

func (d *Directory) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.admins)
}

// insert assumes the caller holds the lock.
func (d *Directory) insert(a *model.Administrator) {
	d.admins[a.ID] = a
	d.order = append(d.order, a.ID)
}
