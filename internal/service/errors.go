package service

import "errors"

// Failure taxonomy of the sync controller. Each value wraps the transport
// error of the corresponding operation.
var (
	ErrFetchListFailed = errors.New("fetch list failed")
	ErrCreateFailed    = errors.New("create failed")
	ErrSaveFailed      = errors.New("save failed")
	ErrDeleteFailed    = errors.New("delete failed")
)
