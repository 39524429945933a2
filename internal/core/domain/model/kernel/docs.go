// Package kernel provides the domain primitives shared by the dish and order models.
//
// The package includes:
//   - UUID: a value object wrapping github.com/google/uuid
//   - UUIDGenerator: the identifier source used when dishes and orders are created
//
// Identifiers are stored on entities as opaque strings so that records seeded from
// external data keep whatever id they were given; UUID only governs new ones.
package kernel
