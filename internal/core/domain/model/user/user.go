// Package user contains the User aggregate: an authenticated identity with a
// role. Password hashing and token issuance live in the HTTP adapter; the
// aggregate only stores the hash.
package user

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrLoginIsRequired is returned when creating a user without a login.
	ErrLoginIsRequired = errs.NewValueIsRequiredError("login")
	// ErrPasswordHashIsRequired is returned when creating a user without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrFullNameIsRequired is returned when creating a user without a full name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
)

// User is a system account. Login is unique; Role gates which operations the
// account may invoke; inactive accounts cannot authenticate.
type User struct {
	id           kernel.UUID
	login        string
	passwordHash string
	fullName     string
	role         kernel.Role
	isActive     bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates an active User with the given role.
func NewUser(
	id kernel.UUID,
	login string,
	passwordHash string,
	fullName string,
	role kernel.Role,
	createdAt time.Time,
) (*User, error) {
	user := &User{
		isActive:  true,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setLogin(login),
		user.setPasswordHash(passwordHash),
		user.setFullName(fullName),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage.
func RestoreUser(
	id kernel.UUID,
	login string,
	passwordHash string,
	fullName string,
	role kernel.Role,
	isActive bool,
	createdAt time.Time,
) (*User, error) {
	user, err := NewUser(id, login, passwordHash, fullName, role, createdAt)
	if err != nil {
		return nil, err
	}
	user.isActive = isActive
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Login returns the unique login name.
func (u *User) Login() string { return u.login }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// FullName returns the user's display name.
func (u *User) FullName() string { return u.fullName }

// Role returns the user's role.
func (u *User) Role() kernel.Role { return u.role }

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool { return u.isActive }

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}
	u.login = login
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	u.fullName = fullName
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
