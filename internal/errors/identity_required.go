package errors

import "net/http"

var ErrIdentityRequired = &Exception{
	Message:    "sign in to sync tasks to the cloud",
	StatusCode: http.StatusUnauthorized,
}
