package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRestaurantUoW struct{ mock.Mock }

func (m *MockRestaurantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

func testRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Trattoria Bella", nil)
	require.NoError(t, err)
	return r
}

func TestSaveFeeSettingsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testRestaurant(t)
	cmd, err := commands.NewSaveFeeSettingsCommand(aggregate.ID(), pricing.RuleSetDraft{
		Type:     "distance_based",
		BaseFee:  "2.50",
		PerKmFee: "0.50",
	})
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveFeeSettingsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pricing.RuleTypeDistanceBased, aggregate.RuleSet().Type())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveFeeSettingsCommandHandler_Handle_InvalidDraft(t *testing.T) {
	ctx := t.Context()
	aggregate := testRestaurant(t)
	cmd, err := commands.NewSaveFeeSettingsCommand(aggregate.ID(), pricing.RuleSetDraft{
		Type:    "flat",
		BaseFee: "not a number",
	})
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveFeeSettingsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var validationErr *commands.FeeSettingsValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "base_fee", validationErr.FieldErrors[0].Field)
	assert.Equal(t, pricing.RuleTypeFlat, aggregate.RuleSet().Type())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "Trattoria Bella", "Europe/Berlin")
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*restaurant.Restaurant")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRestaurantCommand_Validation(t *testing.T) {
	t.Run("should reject an empty name", func(t *testing.T) {
		_, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "", "")

		require.ErrorIs(t, err, commands.ErrRestaurantNameIsRequired)
	})

	t.Run("should reject an unknown timezone", func(t *testing.T) {
		_, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "Trattoria Bella", "Mars/Olympus")

		require.Error(t, err)
	})

	t.Run("should reject a non-constructed command", func(t *testing.T) {
		var cmd commands.CreateRestaurantCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateRestaurantCommandIsNotConstructed)
	})
}

func TestUpdateRestaurantInfoCommandHandler_Handle(t *testing.T) {
	t.Run("should persist validated settings", func(t *testing.T) {
		ctx := t.Context()
		aggregate := testRestaurant(t)
		cmd, err := commands.NewUpdateRestaurantInfoCommand(
			aggregate.ID(), "+49 30 901820", "owner@example.com", "", "7.5")
		require.NoError(t, err)

		repo := new(MockRestaurantRepository)
		uow := new(MockRestaurantUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
			repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockRestaurantUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateRestaurantInfoCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "+4930901820", aggregate.Phone())
		require.NotNil(t, aggregate.DeliveryRadiusKm())
		assert.InDelta(t, 7.5, *aggregate.DeliveryRadiusKm(), 0.001)
	})

	t.Run("should reject invalid fields without persisting", func(t *testing.T) {
		ctx := t.Context()
		aggregate := testRestaurant(t)
		cmd, err := commands.NewUpdateRestaurantInfoCommand(
			aggregate.ID(), "not a phone", "", "", "")
		require.NoError(t, err)

		repo := new(MockRestaurantRepository)
		uow := new(MockRestaurantUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("RestaurantRepository").Return(repo).Once()
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockRestaurantUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateRestaurantInfoCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should require at least one field", func(t *testing.T) {
		_, err := commands.NewUpdateRestaurantInfoCommand(kernel.NewUUID(), "", "", "", "")

		require.ErrorIs(t, err, commands.ErrNoFieldsToUpdate)
	})
}
