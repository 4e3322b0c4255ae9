// Package main provides the entry point for the portfolio site backend.
// It serves the public portfolio pages, stores contact messages, support tickets,
// game reviews and app/website requests through gorm, sends best-effort notification
// mails and offers a password-gated admin area to triage every submission kind.
// A standalone audio converter hands uploaded files to ffmpeg and streams back an mp3.
package main
