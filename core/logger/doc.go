// Package logger is a standardized event log for interpreter sessions.
//
// Events are written as newline delimited JSON objects so a session can be
// reconstructed after the fact without scraping the terminal.
package logger
