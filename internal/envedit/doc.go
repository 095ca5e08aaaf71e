// Package envedit applies envfile operations to files on disk.
//
// It is the layer the command line talks to: every function takes a
// context, loads the target file, runs the envfile operation, logs the
// resulting status messages and writes the file back only when it changed.
//
// Behaviour shared by all writers is controlled by Options:
//
//   - Backup:        copy the current file to <file>.bak before overwriting it
//   - SkipMalformed: drop lines without '=' (with a warning) instead of failing
//   - DryRun:        print a diff of the pending change instead of writing
package envedit
