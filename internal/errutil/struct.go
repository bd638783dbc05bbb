package errutil

import "errors"

// usage / runtime / internal の 3 カテゴリを型で分ける
// プロセス終了コードへの対応付けは exit.go を参照

type UsageError struct {
	err error
}

func NewUsageError(msg string) UsageError {
	return UsageError{err: errors.New(msg)}
}

func (e UsageError) Error() string {
	return e.err.Error()
}

type RuntimeError struct {
	err error
}

func NewRuntimeError(msg string) RuntimeError {
	return RuntimeError{err: errors.New(msg)}
}

func (e RuntimeError) Error() string {
	return e.err.Error()
}

type InternalError struct {
	err error
}

func NewInternalError(msg string) InternalError {
	return InternalError{err: errors.New(msg)}
}

func (e InternalError) Error() string {
	return e.err.Error()
}
