// package store implements the persistent record store: four named slots
// (playlists, journal, sessions, theme) persisted write-through as JSON
// documents, with whole-snapshot export, all-or-nothing import, and reset.
//
// Reads never fail outward: missing or corrupt slot data degrades to the
// slot's default and is logged. Mutations go through Save/Update so every
// change hits the backend before the call returns.
package store
