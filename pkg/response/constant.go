package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "internal server error"

	InternalServerErrorCode = 500
	ServiceUnavailableCode  = 503
)
