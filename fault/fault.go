// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = GenericError("already initialised")
	ErrAmountOverflow            = InvalidError("amount overflow")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrDuplicateOperation        = ExistsError("operation already has a module")
	ErrEndorsementDisabled       = InvalidError("endorsement is disabled for this badge")
	ErrInsufficientAllowance     = InvalidError("insufficient allowance")
	ErrInsufficientBalance       = InvalidError("insufficient balance")
	ErrInvalidAddress            = InvalidError("invalid address")
	ErrInvalidArguments          = InvalidError("invalid arguments")
	ErrInvalidChain              = InvalidError("invalid chain")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidCutAction          = InvalidError("invalid cut action")
	ErrInvalidIPAddress          = InvalidError("invalid IP address")
	ErrInvalidPortNumber         = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile     = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile      = InvalidError("invalid public key file")
	ErrInvalidRegion             = InvalidError("invalid storage region")
	ErrInvalidSelector           = InvalidError("invalid selector")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrKeyFileExists             = ExistsError("key file already exists")
	ErrMintDisabled              = InvalidError("mint is disabled for this badge")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrModuleAlreadyDeployed     = ExistsError("module already deployed")
	ErrModuleNotDeployed         = NotFoundError("module not deployed")
	ErrNoEndorsementToRevoke     = InvalidError("no endorsement to revoke")
	ErrNotAvailable              = ProcessError("not available while stopped")
	ErrNotInitialised            = GenericError("not initialised")
	ErrNotInitialiser            = InvalidError("module has no initialiser")
	ErrOperationNotFound         = NotFoundError("operation has no module")
	ErrOperationNotImplemented   = NotFoundError("module does not implement operation")
	ErrOverlappingRegion         = ExistsError("storage region overlaps another region")
	ErrPaymentFailed             = ProcessError("payment failed")
	ErrRateLimiting              = InvalidError("rate limiting")
	ErrReentrantCall             = ProcessError("re-entrant call")
	ErrReplaceWithSameModule     = InvalidError("operation already served by the module")
	ErrTokenAlreadyExists        = ExistsError("token already exists")
	ErrTokenNotFound             = NotFoundError("token not found")
	ErrTransactionAlreadyStarted = ProcessError("transaction already started")
	ErrTransactionNotStarted     = ProcessError("transaction not started")
	ErrTruncatedRecord           = RecordError("truncated record")
	ErrUnauthorised              = PermissionError("unauthorised")
	ErrUnauthorisedMinter        = PermissionError("minter is not authorised")
	ErrUnexpectedResult          = ProcessError("unexpected operation result")
	ErrUnknownBadge              = NotFoundError("unknown badge collection")
	ErrUnknownOperation          = NotFoundError("unknown operation")
	ErrUnknownPaymentToken       = NotFoundError("unknown payment token")
	ErrUnknownRole               = InvalidError("unknown role")
	ErrWrongDatabaseVersion      = RecordError("database version is newer than this program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
