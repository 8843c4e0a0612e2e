// Package models defines the core domain models for the cobrancas service.
//
// # Models
//
//   - Charge: a single billing charge ("cobrança") owed by a client
//
// # Lifecycle
//
// A charge is created with all of its fields set and receives an integer ID
// from the store. After creation only Status can change, through the
// update-status operation. Charges are never deleted by the service.
//
// Status is an opaque string. The store neither validates nor interprets it;
// the well-known values in charge.go are what the frontend sends today.
package models
