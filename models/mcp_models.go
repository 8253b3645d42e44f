package models

// MCP protocol error codes. PARSE_ERROR is part of the table but the
// dispatcher currently folds unparseable bodies into INTERNAL_ERROR.
const (
	CodeParseError      = -32700
	CodeInvalidRequest  = -32600
	CodeMethodNotFound  = -32601
	CodeInvalidParams   = -32602
	CodeInternalError   = -32603
	CodeSheetError      = -32000
	CodeValidationError = -32001
	CodeDataNotFound    = -32002
)

// mcpErrorMessages maps each code to its fixed protocol message.
var mcpErrorMessages = map[int]string{
	CodeParseError:      "Parse error",
	CodeInvalidRequest:  "Invalid Request",
	CodeMethodNotFound:  "Method not found",
	CodeInvalidParams:   "Invalid params",
	CodeInternalError:   "Internal error",
	CodeSheetError:      "Sheet operation failed",
	CodeValidationError: "Validation failed",
	CodeDataNotFound:    "Requested data not found",
}

// MCPRequest represents an incoming envelope request.
// ID is opaque and echoed back verbatim, null included.
type MCPRequest struct {
	JSONRPC string                 `json:"jsonrpc"`
	Method  string                 `json:"method"`
	Params  map[string]interface{} `json:"params"`
	ID      interface{}            `json:"id"`
}

// MCPError represents the structured error object in an envelope response.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPResponse represents an envelope response carrying either a result or
// an error. ID is always present, even when it is null.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

// NewMCPError builds an error object with the fixed message for code.
func NewMCPError(code int) *MCPError {
	return &MCPError{Code: code, Message: mcpErrorMessages[code]}
}

// NewMCPErrorf builds an error object with the fixed message plus a
// diagnostic detail appended, e.g. "Sheet operation failed: <reason>".
func NewMCPErrorf(code int, detail string) *MCPError {
	return &MCPError{Code: code, Message: mcpErrorMessages[code] + ": " + detail}
}

// WithData attaches structured data (e.g. a violation list) to the error.
func (e *MCPError) WithData(data interface{}) *MCPError {
	e.Data = data
	return e
}
