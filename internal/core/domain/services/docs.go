// Package services holds domain services: workflows that touch several
// aggregates at once and therefore cannot live on any single aggregate root.
//
// DeliveryCompletion finishes a delivery by marking the order delivered,
// completing its route, and freeing the bound vehicle and driver as one
// consistent state change. Use case handlers run it inside the same unit of
// work that persists all four aggregates.
package services
