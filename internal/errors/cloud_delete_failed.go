package errors

import "net/http"

var ErrCloudDeleteFailed = &Exception{
	Message:    "failed to delete from cloud",
	StatusCode: http.StatusBadGateway,
}
