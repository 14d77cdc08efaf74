// Package api implements the HTTP delivery layer: request models and
// their validation, per-entity resource handlers, pagination, and the
// single boundary that maps internal errors to HTTP statuses and the
// fixed JSON envelope.
package api
