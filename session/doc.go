// Package session wraps one lvheap structure and keeps the versions its
// operations produce.
//
// Every successful Insert or ExtractMin yields a Version: a sequence number,
// the operation, the affected value, the step trace and a snapshot taken
// after the operation. The most recent versions are kept as history
// (WithHistoryLimit, default 10). Failed operations leave the structure,
// the sequence number and the history untouched.
//
// While a trace is being replayed (BeginPlayback .. EndPlayback) mutations
// are rejected with ErrBusy, so a paced replay never observes a structure
// that has already moved on.
//
// A Session is safe for concurrent use; the wrapped structure must not be
// used directly while a Session owns it.
package session
