// Package scalar provides the device-resident scalar value: one typed
// payload plus a validity flag, allocated through the process's current
// device memory resource.
//
// A scalar is built either from a host literal, from an Arrow scalar
// (the columnar interchange format), from a fixed-width host buffer, or
// from a decimal literal. The construction dispatcher classifies the
// host value and produces exactly one scalar; construction either fully
// succeeds or releases any partial device allocation before the error
// propagates.
//
// Key design constraints:
//   - The payload is a sealed tagged union; exactly one variant is
//     active per scalar, and the cached logical type always matches it.
//   - An invalid (null) scalar still holds a zero payload slot of the
//     right variant.
//   - Payload storage is exclusively owned; Release frees it exactly
//     once.
//   - The decimal re-tag (width change during Arrow interop) replaces
//     payload and type together, never one without the other.
package scalar
