// Package order contains the Order aggregate: the shipment request placed by
// a client, its closed status lifecycle, the document order number, and the
// append-only status history entries.
//
// The aggregate enforces its invariants through validated constructors and
// transition methods; statuses outside the closed enumeration and transitions
// that bypass the delivery completion cascade are rejected here, not in the
// adapters.
package order
