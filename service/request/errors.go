package requestsvc

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrResourceNotFound ErrCode = "RESOURCE_NOT_FOUND"
	ErrRequestNotFound  ErrCode = "REQUEST_NOT_FOUND"
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrStateConflict    ErrCode = "STATE_CONFLICT"
	ErrDuplicate        ErrCode = "DUPLICATE_REQUEST"
	ErrBadInput         ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
