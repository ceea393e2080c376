// Package cli implements the interactive users screen: a line-oriented
// REPL that renders the filtered users table, edits filters, runs the
// create/edit form as a prompt sequence and confirms deletes.
//
// All state lives in services.UserService; this package only turns
// commands into service calls and results into text.
package cli
