// Package services contains domain services: business logic spanning more
// than one aggregate that doesn't naturally belong to any single one.
// Services here are pure: they operate on aggregates the application
// layer has already loaded, and leave persistence and transaction scope to
// their callers.
package services
