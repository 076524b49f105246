package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when details must not leak to the client.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unhandled failures.
	InternalServerErrorCode = 500
)

const (
	// DateFormat is the wire format for calendar dates.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02 15:04:05"
)
