package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected kernel.Role
		wantErr  bool
	}{
		{"admin", kernel.RoleAdmin, false},
		{"staff", kernel.RoleStaff, false},
		{"driver", kernel.RoleDriver, false},
		{"customer", kernel.RoleCustomer, false},
		{"", kernel.RoleUnknown, true},
		{"manager", kernel.RoleUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := kernel.ParseRole(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
			assert.Equal(t, tt.input, role.String())
		})
	}
}

func TestNewActorContext(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		actor, err := kernel.NewActorContext(7, kernel.RoleStaff)
		require.NoError(t, err)
		assert.Equal(t, int64(7), actor.UserID)
		assert.Equal(t, kernel.RoleStaff, actor.Role)
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := kernel.NewActorContext(0, kernel.RoleStaff)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := kernel.NewActorContext(7, kernel.RoleUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActorContext_Permissions(t *testing.T) {
	staff := kernel.ActorContext{UserID: 1, Role: kernel.RoleStaff}
	admin := kernel.ActorContext{UserID: 2, Role: kernel.RoleAdmin}
	driver := kernel.ActorContext{UserID: 3, Role: kernel.RoleDriver}
	customer := kernel.ActorContext{UserID: 4, Role: kernel.RoleCustomer}

	assert.True(t, staff.CanManageOrders())
	assert.True(t, admin.CanManageOrders())
	assert.False(t, driver.CanManageOrders())
	assert.False(t, customer.CanManageOrders())

	assert.True(t, staff.CanManageDeliveries())
	assert.False(t, driver.CanManageDeliveries())

	assert.True(t, driver.CanRecordDelivery())
	assert.True(t, staff.CanRecordDelivery())
	assert.False(t, customer.CanRecordDelivery())
}
