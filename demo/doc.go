// Package demo walks through the Buster/Roscoe example: a pack holding a
// mutable *Dog and a few strings is copied, the copy's dog is renamed, and the
// names seen through the original and the copy are reported.
//
// With the Shallow strategy the original's dog is renamed too, because both
// sequences hold the same *Dog. With Deep and JSON the original keeps its name.
package demo
