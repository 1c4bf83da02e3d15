// Package kernel holds the primitives shared by every aggregate in the
// logistics domain.
//
//   - UUID: the identifier value object; zero values fail validation, so an
//     unvalidated identifier never reaches a repository
//   - Role: the closed set of user roles (admin, logistician, driver) with the
//     acting-for rules used by authorization checks
//
// Both types are immutable. Aggregates embed them rather than raw strings or
// third-party types, keeping the domain model independent of how identifiers
// and roles are encoded at the edges.
package kernel
