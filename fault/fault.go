// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AllocationError GenericError
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed     = AllocationError("node allocation failed")
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEmptyTree            = EmptyError("tree is empty")
	ErrInconsistentTree     = ProcessError("tree is inconsistent")
	ErrInvalidLimit         = InvalidError("node limit is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("operation is invalid")
	ErrInvalidPolicy        = InvalidError("removal policy is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNilAction            = InvalidError("action function is required")
	ErrNilComparator        = InvalidError("compare function is required")
	ErrNilTree              = InvalidError("tree is nil")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrTreeDestroyed        = InvalidError("tree has been destroyed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AllocationError) Error() string { return string(e) }
func (e EmptyError) Error() string      { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAllocation(e error) bool { _, ok := e.(AllocationError); return ok }
func IsErrEmpty(e error) bool      { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
