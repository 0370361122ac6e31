// Package todo holds the in-memory task list and the views derived from it.
//
// A Manager owns three pieces of state:
//
//   - the ordered task list (insertion order, append-only except for removals)
//   - the pending input buffer (text typed but not yet added)
//   - the filter selector (all, active, completed)
//
// Mutations never fail. Adding blank text, toggling or deleting an id that is
// not present are defined no-ops. Callers mutate and then ask for a fresh
// View or Snapshot; nothing is pushed and nothing is cached.
//
// # Task IDs
//
// IDs come from an IDGenerator. The default SequenceIDs yields T1, T2, ...
// and never repeats within a manager. UUIDs yields time-ordered UUIDv7 values.
//
// # Created labels
//
// Each task records its creation instant and a display label formatted with
// the manager's date layout. The default layout matches the en-US locale
// string, e.g. "3/14/2026, 9:26:53 AM".
package todo
