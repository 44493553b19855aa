// Package restaurant implements the Restaurant aggregate root and its
// settings field validators.
//
// The aggregate owns a restaurant's operational settings: contact phone and
// email, the optional GeoJSON delivery zone, the optional delivery radius
// and the committed delivery-fee rule set. Fee settings are edited as a
// pricing.RuleSetDraft and only replace the committed rule set when the
// whole draft validates.
//
// The field validators (phone, email, delivery zone, delivery radius) are
// exported separately so the HTTP layer can validate individual settings
// fields as they are edited, before any save is attempted.
package restaurant
