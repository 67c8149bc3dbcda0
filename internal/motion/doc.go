// Package motion implements the motion execution contract: the dispatch
// layer that turns a named motion, a mode, and an optional repeat count into
// a validated cursor transition.
//
// A Motion is a tagged variant over a small set of categories rather than a
// class hierarchy: directional steps, word-boundary jumps, line-relative
// column rules, document jumps, engine-backed searches, and host-registered
// custom motions. Each variant carries only the data its algorithm needs.
//
// Execution follows one template for every category:
//
//  1. Gate on mode: a motion only fires when the session mode is in its
//     declared mode set.
//  2. Empty buffer: return the cursor unchanged.
//  3. Compute a candidate position with the category algorithm, delegating
//     to the wordscan, bracket, and search engines.
//  4. Validate the candidate (line within the buffer, column within the
//     target line, where "one past the last character" is a legal resting
//     column) and commit it to the context only if valid. An invalid or
//     not-found candidate is a silent no-op, never an error.
//
// The static motion table lives in registry.go; Lookup resolves key
// sequences to motions at runtime without any reflection. The interactive
// pattern-entry state machine (SearchInput) is a sibling of motion dispatch
// and the only place where Normal/Visual transition to and from the
// SearchInput mode.
package motion
