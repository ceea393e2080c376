// Package services contains the orchestration behind the users screen.
//
// UserService ties together the remote gateway, the reference and user
// stores, the table filter and the edit session. Operations report their
// outcome as a Result value instead of setting shared error flags, so the
// view decides how to combine them into one banner.
package services
