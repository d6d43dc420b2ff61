// Package field implements arithmetic over a runtime-chosen prime field
// F_p, the finite field the 1-sparse and s-sparse recovery fingerprints
// (package onesparse, ssparse) are computed in.
//
// Field is a small, immutable value carried alongside its elements; all
// arithmetic goes through methods on Field rather than free functions, the
// way original_source's FiniteField/FieldElement pair keeps the field and
// its elements separate.
package field
