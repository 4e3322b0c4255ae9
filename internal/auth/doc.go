// Package auth checks the shared admin password.
//
// The configured password is either plain text, compared in constant time, or an
// argon2id hash as printed by the hash-password command.
package auth
