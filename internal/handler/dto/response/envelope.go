package response

// Envelope wraps every successful response body.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

func OKWithMessage[T any](data T, msg string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: msg}
}
