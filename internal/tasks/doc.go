// package tasks composes the timer engine, the record store, and the search
// providers into the application's operations: recording completed sessions
// and journal entries, building the mural timeline, managing playlists, and
// importing/exporting snapshots.
package tasks
