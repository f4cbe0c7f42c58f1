// Package kernel provides the shared value objects of the meal order domain.
//
// The package includes:
//   - UUID: identifier of every entity and aggregate
//   - Money: non-negative currency amount backed by a fixed-point decimal
//   - Actor: attribution recorded on catalog and stock mutations, with SystemActor
//     used for adjustments the order workflow performs on its own
//
// All values are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate.
package kernel
