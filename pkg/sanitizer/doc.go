// Package sanitizer normalizes user-typed text before it is validated.
//
// A Func is a plain string transform. Chain composes transforms left to
// right:
//
//	clean := sanitizer.Chain(sanitizer.Trim, sanitizer.CollapseWhitespace)
//	clean("  Jane \t Doe ") // "Jane Doe"
//
// Transforms can also be referenced by name, which is how form schemas
// declare them:
//
//	fn, err := sanitizer.Parse([]string{"trim", "email"})
//
// None of the transforms return an error; they fall back to the input when it
// cannot be normalized. Every transform is stateless and safe for concurrent use.
package sanitizer
