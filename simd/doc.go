// Package simd defines the optional numeric accelerator policy for array
// cells whose elements share a single float/double tag. ScalarPolicy is
// the always-available default; a platform-specific policy can be plugged
// in anywhere a Policy is accepted, as long as it produces results that
// agree with ScalarPolicy within IEEE-754 associativity latitude.
package simd
