package errors

import "net/http"

var ErrLoadFailed = &Exception{
	Message:    "failed to load tasks",
	StatusCode: http.StatusBadGateway,
}
