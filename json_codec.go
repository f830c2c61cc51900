package zapix

// Version is JSON RPC version that allowed to use
var Version = "2.0"

// ----------------------------------------------------------------------------
// Request and Response
// ----------------------------------------------------------------------------

// clientRequest represents a JSON-RPC request sent to the server.
type clientRequest struct {
	// JSON-RPC protocol.
	Version string `json:"jsonrpc"`

	// A String containing the name of the method to be invoked.
	Method string `json:"method"`

	// A Structured value to pass as arguments to the method. An array
	// carries positional arguments, an object carries named ones.
	Params interface{} `json:"params"`

	// Auth token of the current session. Omitted when no token is held
	// and for the methods that must work before authentication.
	Auth string `json:"auth,omitempty"`

	// The request id. The server copies it into the matching response.
	ID uint64 `json:"id"`
}

// clientResponse represents a JSON-RPC response returned by the server.
type clientResponse struct {
	// JSON-RPC protocol.
	Version string `json:"jsonrpc"`

	// The Object that was returned by the invoked method.
	// As per spec the member will be omitted if there was an error.
	Result interface{} `json:"result,omitempty"`

	// An Error object if there was an error invoking the method.
	// As per spec the member will be omitted if there was no error.
	Error *APIError `json:"error,omitempty"`

	// This must be the same id as the request it is responding to.
	ID uint64 `json:"id"`
}
