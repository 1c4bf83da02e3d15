package commands_test

import (
	"errors"
	"testing"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(userID, "lars.h", "s3cret-pass", "Lars Henriksen", kernel.RoleDriver)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	var savedUser *user.User
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) { savedUser = args.Get(1).(*user.User) }).
		Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, savedUser)
	assert.True(t, savedUser.ID().IsEqual(userID))
	assert.Equal(t, "lars.h", savedUser.Login())
	assert.Equal(t, kernel.RoleDriver, savedUser.Role())
	assert.True(t, savedUser.IsActive())

	// The stored credential must be a bcrypt hash of the submitted password.
	assert.NotEqual(t, "s3cret-pass", savedUser.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedUser.PasswordHash()), []byte("s3cret-pass")))

	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateUserCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateUserCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateUserCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), "lars.h", "s3cret-pass", "Lars Henriksen", kernel.RoleDriver)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
		Return(errors.New("duplicate login")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "duplicate login")
	uow.AssertNotCalled(t, "Commit", ctx)
}
