// Package order implements the order aggregate and its lifecycle.
//
// The package contains the role-gated status state machine (a transition
// table mapping each legal edge to its permitted roles), the closed
// Status/Fulfillment/Role enumerations with strict boundary parsing, the
// Order aggregate root, and the derivation of advisory urgency flags from
// order timestamps.
//
// All functions here are synchronous, pure, and side-effect free; deciding
// whether a transition is legal is separated from persisting it, which the
// adapters perform with a conditional update keyed on the previously loaded
// status.
package order
