// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
)

// Error codes returned by the server.
const (
	// CodeNotAcceptable reports a failed transport precondition (bad Accept header).
	CodeNotAcceptable = -32000
	CodeParseError    = mcp.PARSE_ERROR
	CodeInvalidReq    = mcp.INVALID_REQUEST
	CodeNotFound      = mcp.METHOD_NOT_FOUND
	CodeInvalidParams = mcp.INVALID_PARAMS
	CodeInternal      = mcp.INTERNAL_ERROR
)

// ErrInvalidID is wrapped by [ParseID] when an id is neither null, a string nor a number.
var ErrInvalidID = errors.New("jsonrpc: invalid id")

// Request is a decoded request envelope.
type Request struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      any            `json:"id"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params,omitempty"`
}

// Response is a response envelope. Exactly one of Result or Error is set.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is the error member of a response envelope. It also satisfies the
// error interface so handlers can return it directly.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message) }

// NewResult builds a success envelope. A nil result is sent as an empty object.
func NewResult(id any, result any) Response {
	if result == nil {
		result = map[string]any{}
	}
	return Response{JSONRPC: mcp.JSONRPC_VERSION, ID: id, Result: result}
}

// NewError builds a failure envelope.
func NewError(id any, err *Error) Response {
	return Response{JSONRPC: mcp.JSONRPC_VERSION, ID: id, Error: err}
}

// ParseID validates a decoded id and returns it unchanged when it is null, a string or a number.
func ParseID(v any) (any, error) {
	candidate := v
	switch n := v.(type) {
	case int64:
		candidate = float64(n)
	case int:
		candidate = float64(n)
	}
	if _, err := sdkjsonrpc.MakeID(candidate); err != nil {
		return nil, fmt.Errorf("%w: %T", ErrInvalidID, v)
	}
	return v, nil
}

// NotAcceptable is returned when the Accept header rules out JSON or event streams.
func NotAcceptable() *Error {
	return &Error{
		Code:    CodeNotAcceptable,
		Message: "Not Acceptable: Client must accept both application/json and text/event-stream",
	}
}

// ParseError reports a body that is not valid JSON.
func ParseError() *Error { return &Error{Code: CodeParseError, Message: "Parse error"} }

// InvalidRequest reports a structurally broken envelope.
func InvalidRequest(reason string) *Error {
	return &Error{Code: CodeInvalidReq, Message: "Invalid request: " + reason}
}

// MethodNotSupported reports an unknown method.
func MethodNotSupported(method string) *Error {
	return &Error{Code: CodeNotFound, Message: "Method not supported: " + method}
}

// UnknownTool reports a tools/call for a tool that is not registered.
func UnknownTool(name string) *Error {
	return &Error{Code: CodeNotFound, Message: "Unknown tool: " + name}
}

// InvalidArgument reports a missing or invalid parameter, naming the field.
func InvalidArgument(field string) *Error {
	return &Error{Code: CodeInvalidParams, Message: "Missing or invalid argument: " + field}
}

// UnknownResource reports a resources/read for a uri that is not registered.
func UnknownResource(uri string) *Error {
	return &Error{Code: CodeInvalidParams, Message: "Unknown resource: " + uri}
}

// Internal reports an unexpected failure while building a response.
func Internal(detail string) *Error {
	return &Error{Code: CodeInternal, Message: "Internal error: " + detail}
}
