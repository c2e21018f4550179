package response

// Success is the envelope for every 2xx response.
// Data is always serialized, so a delete yields {"data": null}.
type Success struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// Error is the envelope for every 4xx/5xx response.
type Error struct {
	StatusCode int         `json:"statusCode"`
	StatusText string      `json:"statusText"`
	Error      interface{} `json:"error"`
	Message    string      `json:"message"`
}

// OK wraps data in a success envelope with an optional message
func OK(data interface{}, message ...string) Success {
	resp := Success{Data: data}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	return resp
}

// Fail builds an error envelope
func Fail(statusCode int, statusText string, rawError interface{}, message string) Error {
	return Error{
		StatusCode: statusCode,
		StatusText: statusText,
		Error:      rawError,
		Message:    message,
	}
}

// NotFound is the envelope returned when a blog lookup misses
func NotFound(message string) Error {
	return Fail(404, "not found", "Data Not Found", message)
}

// BadRequest is the envelope returned for rejected input
func BadRequest(rawError interface{}, message string) Error {
	return Fail(400, "Bad Request", rawError, message)
}

// InternalServerError is the envelope returned for store and unexpected failures
func InternalServerError(rawError interface{}, message string) Error {
	return Fail(500, "Internal Server Error", rawError, message)
}
