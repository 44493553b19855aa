// Package pricing holds the delivery-fee policy model: the committed
// RuleSet value object, its unvalidated RuleSetDraft wire form, the
// QuoteContext inputs a quote is computed from, and the itemized
// FeeBreakdown result.
//
// A rule set is edited as a draft and only replaces the committed policy
// when the whole draft validates, so the fee calculator never observes a
// partially edited configuration. The evaluation itself lives in the
// services package.
package pricing
