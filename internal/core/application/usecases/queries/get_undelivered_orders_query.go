package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetUndeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetUndeliveredOrdersQuery must be created via NewGetUndeliveredOrdersQuery constructor",
)

// GetUndeliveredOrdersQuery counts the orders still in flight: everything
// not yet Completed and not Rejected. Feeds the store dashboard badge.
type GetUndeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredOrdersQuery creates a parameterless undelivered-count
// query.
func NewGetUndeliveredOrdersQuery() GetUndeliveredOrdersQuery {
	return GetUndeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUndeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredOrdersQueryIsNotConstructed)
}
