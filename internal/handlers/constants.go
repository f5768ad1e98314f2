package handlers

const (
	ErrInvalidJSON         = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrInternalServerError = "Internal server error"
	ErrTooManyRequests     = "Too many requests, please try again later"
	ErrLoginFailed         = "Invalid email or password"
	ErrRegistrationFailed  = "Registration failed. Please try again."
	ErrSubjectNotFound     = "Subject not found"
	ErrSessionNotFound     = "Session not found"
	ErrRequestCancelled    = "Request cancelled"

	MsgSubjectAdded       = "Subject added successfully"
	MsgSubjectUpdated     = "Subject updated successfully"
	MsgSubjectDeleted     = "Subject deleted successfully"
	MsgScheduleGenerated  = "Schedule generated successfully!"
	MsgSessionCompleted   = "Session completed"
	MsgProfileUpdated     = "Profile updated successfully"
	MsgDataReset          = "All data has been reset"
	MsgLoggedOut          = "Logged out"
	upcomingSessionsLimit = 6
)
