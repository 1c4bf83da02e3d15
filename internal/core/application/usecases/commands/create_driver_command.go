package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver profile,
// optionally linked to a user account so the driver can log in.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	userID          *kernel.UUID
	fullName        string
	phone           string
	licenseNumber   string
	experienceYears int

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	userID *kernel.UUID,
	fullName string,
	phone string,
	licenseNumber string,
	experienceYears int,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		fullName:        fullName,
		phone:           phone,
		licenseNumber:   licenseNumber,
		experienceYears: experienceYears,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return CreateDriverCommand{}, err
	}
	if err := cmd.setUserID(userID); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier the new driver will be stored under.
func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }

// UserID returns the linked user account, or nil.
func (c CreateDriverCommand) UserID() *kernel.UUID { return c.userID }

// FullName returns the driver's full name.
func (c CreateDriverCommand) FullName() string { return c.fullName }

// Phone returns the driver's phone number.
func (c CreateDriverCommand) Phone() string { return c.phone }

// LicenseNumber returns the driving license number.
func (c CreateDriverCommand) LicenseNumber() string { return c.licenseNumber }

// ExperienceYears returns the years of driving experience.
func (c CreateDriverCommand) ExperienceYears() int { return c.experienceYears }

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
