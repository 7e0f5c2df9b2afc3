package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DeliveryMethod distinguishes orders handed to a driver from orders picked
// up in-store. Pick Up orders deliberately never acquire a delivery record.
type DeliveryMethod int

const (
	// MethodUnknown represents an invalid or undefined delivery method.
	MethodUnknown DeliveryMethod = iota

	// StandardDelivery orders are tracked by a delivery record and handed
	// to a driver/vehicle.
	StandardDelivery

	// PickUp orders are collected in-store; no delivery record exists.
	PickUp
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		StandardDelivery: "Standard Delivery",
		PickUp:           "Pick Up",
	}
}

// ParseDeliveryMethod converts a persisted delivery method string to a
// DeliveryMethod. Unknown strings are rejected with a validation error.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	for method, str := range getDeliveryMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryMethod",
		fmt.Errorf("%q is not a valid delivery method", s))
}

// Validate checks that the DeliveryMethod holds one of the defined values.
func (m DeliveryMethod) Validate() error {
	if _, ok := getDeliveryMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryMethod",
			fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the persisted representation of the method.
func (m DeliveryMethod) String() string {
	if str, ok := getDeliveryMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// RequiresDelivery reports whether orders with this method are tracked by a
// delivery record.
func (m DeliveryMethod) RequiresDelivery() bool {
	return m == StandardDelivery
}
