package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func deliveryUoW(orderRepo *MockTransitionOrderRepository, deliveryRepo *MockTransitionDeliveryRepository) *MockDeliveryUoW {
	uow := new(MockDeliveryUoW)
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	uow.On("DeliveryRepository").Return(deliveryRepo).Maybe()
	return uow
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	driverActor, err := kernel.NewActorContext(3, kernel.RoleDriver)
	require.NoError(t, err)

	details := datatypes.JSON(`{"recipient":"Neema"}`)
	cmd, err := commands.NewMarkDeliveredCommand(1001, details, driverActor)
	require.NoError(t, err)

	testOrder := transitionTestOrder(t, order.Ready)
	testDelivery := activeDeliveryFor(t, 1001, 3, 9)

	orderRepo := new(MockTransitionOrderRepository)
	deliveryRepo := new(MockTransitionDeliveryRepository)
	dispatcher := new(MockEventDispatcher)
	uow := deliveryUoW(orderRepo, deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetByIDForUpdate", ctx, int64(1001)).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrderID", ctx, int64(1001)).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Dispatch", ctx, mock.AnythingOfType("[]notification.Event")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, testDelivery.Status())
	assert.Equal(t, details, testDelivery.Details())
	assert.Equal(t, order.Completed, testOrder.Status())

	dispatchCall := dispatcher.Calls[0]
	events := dispatchCall.Arguments[1].([]notification.Event)
	require.Len(t, events, 1)
	assert.Equal(t, notification.EventOrderDelivered, events[0].Type)

	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()

	driverActor, err := kernel.NewActorContext(3, kernel.RoleDriver)
	require.NoError(t, err)
	cmd, err := commands.NewMarkDeliveredCommand(1001, nil, driverActor)
	require.NoError(t, err)

	testOrder := transitionTestOrder(t, order.Ready)
	testDelivery := activeDeliveryFor(t, 1001, 3, 9)
	require.NoError(t, testDelivery.MarkDelivered(nil, time.Now()))

	orderRepo := new(MockTransitionOrderRepository)
	deliveryRepo := new(MockTransitionDeliveryRepository)
	dispatcher := new(MockEventDispatcher)
	uow := deliveryUoW(orderRepo, deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetByIDForUpdate", ctx, int64(1001)).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrderID", ctx, int64(1001)).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_CustomerForbidden(t *testing.T) {
	ctx := t.Context()

	customer, err := kernel.NewActorContext(300, kernel.RoleCustomer)
	require.NoError(t, err)
	cmd, err := commands.NewMarkDeliveredCommand(1001, nil, customer)
	require.NoError(t, err)

	factory := new(MockDeliveryUoWFactory)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewMarkDeliveredCommandHandler(factory, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}
