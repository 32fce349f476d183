// Package textutil provides the text transformations the stream layer and
// its callers share: simple case folding over the Basic Multilingual Plane
// and newline normalization.
//
// Both transformations are pure. Case folding is backed by a process-wide
// table built at most once; first use from concurrent goroutines is safe.
package textutil
