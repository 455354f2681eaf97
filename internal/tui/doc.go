// Package tui provides terminal output and prompts for git-trunk.
//
// Splog is the logger every command writes through: plain lines on the
// console, debug lines when enabled, and an optional rotating log file.
// Prompts are only shown when both stdin and stdout are terminals.
package tui
