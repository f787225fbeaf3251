// Package store persists resources locally.
//
// Repository is the generic contract; MemoryRepository implements it over a
// locked map and BunStore over a SQLite database, used by the sync command
// to mirror the upstream resource list. All failures surface as *StoreError
// with a Kind callers can branch on through IsNotFound and IsConflict.
package store
