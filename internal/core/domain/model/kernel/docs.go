// Package kernel contains shared value objects used across the domain model.
//
// The central type is ActorContext, the explicit identity-and-role pair that
// every state-changing operation receives. Authorization is a pure function
// of an ActorContext plus the requested operation; there is no ambient
// session state anywhere in the engine.
package kernel
