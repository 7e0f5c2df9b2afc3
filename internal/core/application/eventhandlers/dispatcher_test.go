package eventhandlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/eventhandlers"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, row *notification.Notification) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

type MockSMSSender struct{ mock.Mock }

func (m *MockSMSSender) Send(ctx context.Context, phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readyEvent() notification.Event {
	return notification.Event{
		OrderID:        1001,
		CustomerID:     300,
		CustomerPhone:  "+255700000001",
		Type:           notification.EventOrderReady,
		DeliveryMethod: "Standard Delivery",
	}
}

func TestDispatcher_Dispatch_FansOutAllChannels(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	sms := new(MockSMSSender)

	repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice()
	sms.On("Send", ctx, "+255700000001", mock.AnythingOfType("string")).Return(nil).Once()

	d := eventhandlers.NewDispatcher(repo, sms, discardLogger())
	d.Dispatch(ctx, []notification.Event{readyEvent()})

	repo.AssertExpectations(t)
	sms.AssertExpectations(t)

	adminRow := repo.Calls[0].Arguments[1].(*notification.Notification)
	customerRow := repo.Calls[1].Arguments[1].(*notification.Notification)
	assert.Equal(t, notification.AudienceAdmin, adminRow.Audience)
	assert.Equal(t, notification.AudienceCustomer, customerRow.Audience)
	assert.Equal(t, int64(1001), adminRow.OrderID)

	smsMessage := sms.Calls[0].Arguments[2].(string)
	assert.Contains(t, smsMessage, "ready")
}

func TestDispatcher_Dispatch_RowFailureDoesNotStopSMS(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	sms := new(MockSMSSender)

	repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
		Return(errors.New("insert failed")).
		Twice()
	sms.On("Send", ctx, "+255700000001", mock.AnythingOfType("string")).Return(nil).Once()

	d := eventhandlers.NewDispatcher(repo, sms, discardLogger())
	d.Dispatch(ctx, []notification.Event{readyEvent()})

	repo.AssertExpectations(t)
	sms.AssertExpectations(t)
}

func TestDispatcher_Dispatch_SkipsCustomerChannelsWithoutCustomer(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	sms := new(MockSMSSender)

	event := readyEvent()
	event.CustomerID = 0
	event.CustomerPhone = ""

	repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	d := eventhandlers.NewDispatcher(repo, sms, discardLogger())
	d.Dispatch(ctx, []notification.Event{event})

	repo.AssertExpectations(t)
	sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)

	adminRow := repo.Calls[0].Arguments[1].(*notification.Notification)
	require.Equal(t, notification.AudienceAdmin, adminRow.Audience)
}

func TestDispatcher_Dispatch_PickupMessage(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	sms := new(MockSMSSender)

	event := readyEvent()
	event.DeliveryMethod = "Pick Up"

	repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice()
	sms.On("Send", ctx, "+255700000001", mock.AnythingOfType("string")).Return(nil).Once()

	d := eventhandlers.NewDispatcher(repo, sms, discardLogger())
	d.Dispatch(ctx, []notification.Event{event})

	smsMessage := sms.Calls[0].Arguments[2].(string)
	assert.Contains(t, smsMessage, "pickup")
}
