// Package goclone provides:
//
// - Shallow copies of slices and maps (ShallowCopy/ShallowCopyMap)
// - Reflection-based deep copies that keep shared references shared and
//   cycles cyclic (DeepCopy/DeepCopyWith), with Cloner as an opt-in hook
// - JSON round-trip copies for values whose state is fully visible to JSON
//   (DeepCopyJSON)
// - Alias detection between two value graphs (Aliases/SharesState)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the reflection walkers under internal/.
// - Place the Buster/Roscoe walkthrough under demo/ and the CLI under cmd/goclone.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	pack := []any{dog, "Ginger", "Mimi", "Ella"}
//
//	shallow := goclone.ShallowCopy(pack)
//	goclone.Aliases(pack, shallow) // [{Path:/0 OriginalPath:/0 Kind:pointer}]
//
//	deep, err := goclone.DeepCopy(pack)
//	goclone.Aliases(pack, deep) // nil
package goclone
