// Package assign picks who gives a gift to whom.
//
// The Engine shuffles the participant list uniformly and then pairs every
// participant with the one shuffled just before them, the first wrapping
// around to the last. For two or more participants nobody draws themselves.
//
//	engine := assign.New(seed)
//	pairs, err := engine.Assign(people)
//
// Passing the same non-zero seed reproduces the same pairs for the same input.
package assign
