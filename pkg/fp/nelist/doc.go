// Package nelist provides NonEmptyList[E], a list with at least one element
// by construction.
//
// FromSlice and FromSeq return an Option instead of panicking on empty
// input, so a value of this type is proof of non-emptiness: Head never
// fails. validate.All uses it as the accumulator for its error channel.
package nelist
