package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	variationID := int64(5)
	items := []commands.LineItemInput{
		{ProductID: 7, VariationID: &variationID, Quantity: 2, UnitPrice: 25.0},
		{ProductID: 8, Quantity: 1, UnitPrice: 10.0},
	}

	cmd, err := commands.NewCreateOrderCommand(300, "+255700000001", 60.0, order.StandardDelivery, items)
	require.NoError(t, err)

	assert.Equal(t, int64(300), cmd.CustomerID())
	assert.Equal(t, "+255700000001", cmd.CustomerPhone())
	assert.InDelta(t, 60.0, cmd.Amount(), 0.001)
	assert.Equal(t, order.StandardDelivery, cmd.DeliveryMethod())
	assert.Len(t, cmd.Items(), 2)
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	validItems := []commands.LineItemInput{{ProductID: 7, Quantity: 1, UnitPrice: 10.0}}

	tests := []struct {
		name       string
		customerID int64
		method     order.DeliveryMethod
		items      []commands.LineItemInput
		wantErr    error
	}{
		{"zero customer", 0, order.StandardDelivery, validItems, errs.ErrValueIsRequired},
		{"unknown method", 300, order.MethodUnknown, validItems, errs.ErrValueIsInvalid},
		{"no items", 300, order.PickUp, nil, errs.ErrValueIsRequired},
		{
			"bad item quantity", 300, order.PickUp,
			[]commands.LineItemInput{{ProductID: 7, Quantity: 0, UnitPrice: 10.0}},
			errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.customerID, "", 10.0, tt.method, tt.items)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
