// Package session owns one editing session: a buffer, a cursor, the active
// mode, and the key-dispatch state machine that feeds motions.
//
// Key handling is a small amount of pending state over the static motion
// table: accumulated count digits, a partially entered key sequence (g
// prefixes), a find/till motion waiting for its target character, and the
// interactive search prompt. Everything else is a straight table lookup
// followed by motion execution.
//
// A session is single-owner. Callers serialize access; the session does no
// locking of its own.
package session
