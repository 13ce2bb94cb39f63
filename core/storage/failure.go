package storage

import (
	"fmt"
	"net/http"
)

// Operation names a storage call for messages and logs.
type Operation string

const (
	OpUpload Operation = "upload"
	OpList   Operation = "list"
	OpDelete Operation = "delete"
)

// Kind classifies why a storage call failed.
type Kind string

const (
	KindAuth          Kind = "auth"
	KindPermission    Kind = "permission"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindTooLarge      Kind = "too_large"
	KindServer        Kind = "server"
	KindHTTP          Kind = "http"
	KindEmptyResponse Kind = "empty_response"
	KindParse         Kind = "parse"
	KindNetwork       Kind = "network"
	KindUnexpected    Kind = "unexpected"
)

// Failure is the typed error half of every storage result.
type Failure struct {
	// Kind is the failure class.
	Kind Kind
	// StatusCode is the HTTP status that caused the failure, or 0 when no
	// response was received.
	StatusCode int
	// Message is human readable and meant to be shown to the user as is.
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// HTTPStatus maps the failure onto the status code a gateway should answer with.
func (f *Failure) HTTPStatus() int {
	switch f.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindPermission:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindNetwork, KindServer:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// classifyStatus maps a non-2xx response onto a Failure. 409 and 413 are only
// meaningful for uploads.
func classifyStatus(op Operation, bucket string, status int, body []byte) *Failure {
	f := &Failure{StatusCode: status}

	switch {
	case status == http.StatusUnauthorized:
		f.Kind, f.Message = KindAuth, "authentication failed: check the API key"
	case status == http.StatusForbidden:
		f.Kind = KindPermission
		switch op {
		case OpList:
			f.Message = "permission denied: check bucket read permission"
		case OpDelete:
			f.Message = "permission denied: check delete permission"
		default:
			f.Message = "permission denied: check the bucket policy"
		}
	case status == http.StatusNotFound:
		f.Kind = KindNotFound
		switch op {
		case OpList:
			f.Message = "bucket not found: " + bucket
		case OpDelete:
			f.Message = "file to delete not found"
		default:
			f.Message = "bucket not found"
		}
	case op == OpUpload && status == http.StatusRequestEntityTooLarge:
		f.Kind, f.Message = KindTooLarge, "file too large"
	case op == OpUpload && status == http.StatusConflict:
		f.Kind, f.Message = KindConflict, "a file with the same name already exists"
	case status >= http.StatusInternalServerError:
		f.Kind = KindServer
		if op == OpList {
			f.Message = fmt.Sprintf("server error (%d): please retry later", status)
		} else {
			f.Message = "server error: please retry later"
		}
	default:
		text := string(body)
		if text == "" && op == OpUpload {
			text = "unknown error"
		}
		f.Kind, f.Message = KindHTTP, fmt.Sprintf("%s failed (%d): %s", op, status, text)
	}

	return f
}

func networkFailure(err error) *Failure {
	return &Failure{Kind: KindNetwork, Message: "network error: " + describe(err, "check your internet connection")}
}

func unexpectedFailure(err error) *Failure {
	return &Failure{Kind: KindUnexpected, Message: "unexpected error: " + describe(err, "please try again")}
}

func recovered(r any) *Failure {
	if err, ok := r.(error); ok {
		return unexpectedFailure(err)
	}
	return unexpectedFailure(fmt.Errorf("%v", r))
}

func describe(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
