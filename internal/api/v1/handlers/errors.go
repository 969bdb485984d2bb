// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidReqBody = "Invalid request body"
	ErrMsgInvalidAppID   = "Invalid application id"
)

// Application error messages
const (
	ErrMsgAppNotFound     = "Application not found with provided id"
	ErrMsgListAppsFailed  = "Failed to list applications"
	ErrMsgCreateAppFailed = "Failed to create application"
	ErrMsgUpdateAppFailed = "Failed to update application status"
	ErrMsgDeleteAppFailed = "Failed to delete application"
)
