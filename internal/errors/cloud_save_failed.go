package errors

import "net/http"

var ErrCloudSaveFailed = &Exception{
	Message:    "failed to save to cloud",
	StatusCode: http.StatusBadGateway,
}
