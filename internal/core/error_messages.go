package core

// Error codes reference
//
// Every code below is produced by MapError from the text of a wrapped error.
// Users quote the code when reporting a problem.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large
//	          Patterns: "file too large", "request body too large"
//	FILE002 - Not a CSV file
//	          Patterns: "invalid file type"
//	FILE003 - Malformed CSV
//	          Patterns: "parse csv"
//	FILE004 - No file selected
//	          Patterns: "no file provided"
//	FILE005 - Empty file
//	          Patterns: "empty file"
//	FILE006 - Unreadable upload
//	          Patterns: "read upload"
//
// # Upload Errors (UPL001-UPL099)
//
//	UPL002 - System busy
//	         Patterns: "too many concurrent"
//	UPL003 - Analysis not found
//	         Patterns: "analysis not found"
//	UPL004 - Request cancelled
//	         Patterns: "context canceled"
//	UPL005 - Request timeout
//	         Patterns: "context deadline exceeded"
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - Unsupported export format
//	         Patterns: "unsupported export format"
//
// # Request Gate Errors
//
//	AUTH001 - API key missing        Patterns: "missing api key"
//	AUTH002 - API key rejected       Patterns: "invalid api key"
//	RATE001 - Rate limited           Patterns: "rate limit"
//
// ERR000 is the fallback when nothing matches. Check the server log for the
// original error.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns are matched case-insensitively with strings.Contains.
// First match wins, so "empty file" must stay ahead of "parse csv".
var errorPatterns = []errorPattern{
	// File errors
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Upload a CSV file with a header row and data rows",
			Code:    "FILE005",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Remove unused rows or columns and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Remove unused rows or columns and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid file type",
		msg: UserMessage{
			Message: "Only CSV files are supported",
			Action:  "Choose a file whose name ends in .csv",
			Code:    "FILE002",
		},
	},
	{
		pattern: "parse csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Check that the file is comma-separated and quotes are balanced",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select a CSV file to upload",
			Code:    "FILE004",
		},
	},
	{
		pattern: "read upload",
		msg: UserMessage{
			Message: "The upload could not be read",
			Action:  "Check your connection and upload the file again",
			Code:    "FILE006",
		},
	},

	// Upload errors
	{
		pattern: "too many concurrent",
		msg: UserMessage{
			Message: "System is busy processing other files",
			Action:  "Please wait a moment and try again",
			Code:    "UPL002",
		},
	},
	{
		pattern: "analysis not found",
		msg: UserMessage{
			Message: "Analysis not found",
			Action:  "It may have been cleared from history. Upload the file again",
			Code:    "UPL003",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "UPL005",
		},
	},

	// Export errors
	{
		pattern: "unsupported export format",
		msg: UserMessage{
			Message: "Export format is not supported",
			Action:  "Choose csv or xlsx",
			Code:    "EXP001",
		},
	},

	// Request gate
	{
		pattern: "missing api key",
		msg: UserMessage{
			Message: "API key required",
			Action:  "Send your key in the X-API-Key header",
			Code:    "AUTH001",
		},
	},
	{
		pattern: "invalid api key",
		msg: UserMessage{
			Message: "API key not accepted",
			Action:  "Check the key and try again",
			Code:    "AUTH002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the zero UserMessage for nil and ERR000 when no pattern matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern.
// Unmatched errors should be logged and shown only as ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
