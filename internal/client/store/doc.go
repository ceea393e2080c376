// Package store holds the client's copies of server data.
//
// ReferenceStore owns departments and positions, UserStore owns the user
// list. Each is replaced only by its own Refresh; everything else reads.
// Derived views (active subsets, filtered users) preserve source order.
package store
