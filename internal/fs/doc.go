// Package fs abstracts the write side of the local blob store so tests can
// inject I/O failures.
//
//   - [LocalFS]: production implementation on the os package
//   - [FaultyFS]: wraps another FileSystem and fails writes, syncs or
//     renames according to rules
//
// Operations take no context.Context: local file calls are not
// interruptible at the syscall level.
package fs
