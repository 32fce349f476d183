// Package charstream provides a random-access, position-stable view over
// decoded text for parser combinators to probe, advance, and backtrack over.
//
// A Stream owns an immutable rune buffer and a usable window within it.
// Iterators are cheap value types addressing one position in that window,
// or the distinguished end-of-stream position one past the last rune.
// Running off the end is not an error: forward motion clamps to the
// end-of-stream position, and reads there return EOSChar instead of
// panicking or failing. Only backward motion past the start of the window
// is rejected.
//
// A Stream's buffer is never mutated after construction, so any number of
// iterators may read it concurrently without locking.
package charstream
