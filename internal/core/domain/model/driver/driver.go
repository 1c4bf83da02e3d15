// Package driver contains the Driver aggregate: the person behind the wheel,
// optionally linked one-to-one to a system user so they can advance their own
// routes. A driver is available if and only if they are not bound to an
// active route.
package driver

import (
	"errors"
	"fmt"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrFullNameIsRequired is returned when creating a driver without a name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
)

// Driver is the aggregate root for a transport driver.
type Driver struct {
	id              kernel.UUID
	userID          *kernel.UUID
	fullName        string
	phone           string
	licenseNumber   string
	experienceYears int
	isAvailable     bool

	guard guard.ConstructorGuard
}

// NewDriver creates an available Driver. userID links the driver to a system
// user account and may be nil for drivers without portal access.
func NewDriver(
	id kernel.UUID,
	userID *kernel.UUID,
	fullName string,
	phone string,
	licenseNumber string,
	experienceYears int,
) (*Driver, error) {
	driver := &Driver{
		phone:         phone,
		licenseNumber: licenseNumber,
		isAvailable:   true,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setUserID(userID),
		driver.setFullName(fullName),
		driver.setExperienceYears(experienceYears),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	userID *kernel.UUID,
	fullName string,
	phone string,
	licenseNumber string,
	experienceYears int,
	isAvailable bool,
) (*Driver, error) {
	driver := &Driver{
		phone:         phone,
		licenseNumber: licenseNumber,
		isAvailable:   isAvailable,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setUserID(userID),
		driver.setFullName(fullName),
		driver.setExperienceYears(experienceYears),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the linked user account identifier, or nil.
func (d *Driver) UserID() *kernel.UUID {
	return d.userID
}

// FullName returns the driver's full name.
func (d *Driver) FullName() string {
	return d.fullName
}

// Phone returns the contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// LicenseNumber returns the driving license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// ExperienceYears returns the driver's years of experience.
func (d *Driver) ExperienceYears() int {
	return d.experienceYears
}

// IsAvailable reports whether the driver can be assigned to a route.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// MarkBusy claims the driver for a route.
// Claiming an unavailable driver is a conflict the caller must surface
// rather than overwrite.
func (d *Driver) MarkBusy() error {
	if !d.isAvailable {
		return errs.NewResourceConflictErrorWithCause(
			"driver", d.id.String(),
			fmt.Errorf("driver is already bound to an active route"))
	}
	d.isAvailable = false
	return nil
}

// MarkAvailable frees the driver after their route completes.
// Freeing an already-available driver is rejected: it means the completion
// cascade ran twice.
func (d *Driver) MarkAvailable() error {
	if d.isAvailable {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver availability",
			fmt.Errorf("driver is not bound to an active route"))
	}
	d.isAvailable = true
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	d.userID = userID
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setExperienceYears(years int) error {
	if years < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"experience years", fmt.Errorf("%d is negative", years))
	}
	d.experienceYears = years
	return nil
}
