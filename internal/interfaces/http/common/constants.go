package common

const (
	// MaxRequestBody limits JSON request bodies.
	MaxRequestBody = 1 << 20
	// MaxChatRequestBody limits the chat history a client may post.
	MaxChatRequestBody = 256 << 10
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 20
	// MaxPageLimit caps the requested page size.
	MaxPageLimit = 100
	// GenericErrorMessage is shown for every unexpected server failure.
	GenericErrorMessage = "Ошибка сервера. Попробуйте позже."
)
