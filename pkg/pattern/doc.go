// Package pattern classifies user-supplied strings by their character content.
//
// Every predicate answers the question "should this value be rejected?":
// true means the input contains something disallowed, false means it is
// acceptable. This keeps call sites uniform:
//
//	if pattern.HasNonAlphanumericPunctuation(value) {
//	    // report the field
//	}
//
// The predicates never panic and never return errors. The empty string is
// accepted by the character-class predicates and rejected by IsInvalidPhone.
// All functions are pure and safe for concurrent use.
package pattern
