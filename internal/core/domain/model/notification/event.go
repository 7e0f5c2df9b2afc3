package notification

import "fmt"

// EventType classifies an order state change for template selection.
type EventType string

const (
	EventOrderProcessing   EventType = "order_processing"
	EventOrderReady        EventType = "order_ready"
	EventOrderRejected     EventType = "order_rejected"
	EventOrderCompleted    EventType = "order_completed"
	EventDriverAssigned    EventType = "driver_assigned"
	EventDeliveryCancelled EventType = "delivery_cancelled"
	EventOrderDelivered    EventType = "order_delivered"
)

// Event is the post-commit fan-out unit. Transitions return a list of
// events instead of talking to notification channels themselves; the
// dispatcher turns each event into admin/customer rows and an SMS,
// all best-effort and outside the transaction boundary.
type Event struct {
	OrderID        int64
	CustomerID     int64
	CustomerPhone  string
	Type           EventType
	DeliveryMethod string
}

// MessageFor selects the customer-facing message body for an event. The
// Ready wording depends on how the order reaches the customer.
func MessageFor(eventType EventType, deliveryMethod string) string {
	switch eventType {
	case EventOrderProcessing:
		return "Your order is being prepared."
	case EventOrderReady:
		if deliveryMethod == "Pick Up" {
			return "Your order is ready for pickup."
		}
		return "Your order is ready for delivery."
	case EventOrderRejected:
		return "Your order could not be processed. Please contact us for details."
	case EventOrderCompleted:
		return "Your order is complete. Thank you for shopping with us."
	case EventDriverAssigned:
		return "A driver has been assigned to your order."
	case EventDeliveryCancelled:
		return "Your delivery has been cancelled. Please contact us for details."
	case EventOrderDelivered:
		return "Your order has been delivered. Thank you!"
	default:
		return fmt.Sprintf("Your order status changed (%s).", eventType)
	}
}

// AdminMessageFor selects the staff-facing message body for an event.
func AdminMessageFor(eventType EventType, orderID int64) string {
	switch eventType {
	case EventOrderProcessing:
		return fmt.Sprintf("Order #%d moved to Processing.", orderID)
	case EventOrderReady:
		return fmt.Sprintf("Order #%d is ready for fulfillment.", orderID)
	case EventOrderRejected:
		return fmt.Sprintf("Order #%d was rejected.", orderID)
	case EventOrderCompleted:
		return fmt.Sprintf("Order #%d completed.", orderID)
	case EventDriverAssigned:
		return fmt.Sprintf("Driver assigned for order #%d.", orderID)
	case EventDeliveryCancelled:
		return fmt.Sprintf("Delivery for order #%d was cancelled.", orderID)
	case EventOrderDelivered:
		return fmt.Sprintf("Order #%d was delivered.", orderID)
	default:
		return fmt.Sprintf("Order #%d changed state (%s).", orderID, eventType)
	}
}

// EventTypeForStatus maps an order status name to its event type. Statuses
// without a notification (Waiting Payment) return ok=false.
func EventTypeForStatus(statusName string) (EventType, bool) {
	switch statusName {
	case "Processing":
		return EventOrderProcessing, true
	case "Ready":
		return EventOrderReady, true
	case "Rejected":
		return EventOrderRejected, true
	case "Completed":
		return EventOrderCompleted, true
	default:
		return "", false
	}
}
