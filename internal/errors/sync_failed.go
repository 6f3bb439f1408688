package errors

import "net/http"

var ErrSyncFailed = &Exception{
	Message:    "failed to sync update",
	StatusCode: http.StatusBadGateway,
}
