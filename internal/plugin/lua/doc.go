// Package lua hosts user-defined motions written in Lua.
//
// A script calls motive.register{...} with a motion name, optional key
// sequence and mode list, and a move function. The move function receives a
// snapshot of the session (cursor, count, line access) and returns the
// target line and column, or nil to leave the cursor alone. Registered
// motions run through the same execution contract as the builtins: invalid
// targets are discarded, never committed.
//
// The Lua state opens only the base, table, string, and math libraries. io,
// os, debug, and package stay closed.
package lua
