package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	actor, err := kernel.NewActorContext(42, kernel.RoleAdmin)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionOrderCommand(1001, order.Processing, "", actor)
	require.NoError(t, err)

	assert.Equal(t, int64(1001), cmd.OrderID())
	assert.Equal(t, order.Processing, cmd.Target())
	assert.Empty(t, cmd.Reason())
	assert.Equal(t, actor, cmd.Actor())
	assert.NoError(t, cmd.Validate())
}

func TestNewTransitionOrderCommand_Invalid(t *testing.T) {
	actor, err := kernel.NewActorContext(42, kernel.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name    string
		orderID int64
		target  order.Status
		actor   kernel.ActorContext
		wantErr error
	}{
		{"zero order id", 0, order.Processing, actor, errs.ErrValueIsRequired},
		{"negative order id", -5, order.Processing, actor, errs.ErrValueIsRequired},
		{"unknown status", 1001, order.StatusUnknown, actor, errs.ErrValueIsInvalid},
		{"unknown role", 1001, order.Processing, kernel.ActorContext{UserID: 42}, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewTransitionOrderCommand(tt.orderID, tt.target, "", tt.actor)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransitionOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.TransitionOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
}
