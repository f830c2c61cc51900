// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zapix

import (
	"errors"
	"fmt"
)

// ErrorCode type for error codes
type ErrorCode int

const (
	// JErrorParse Parse error - Invalid JSON was received by the server.
	// An error occurred on the server while parsing the JSON text.
	JErrorParse ErrorCode = -32700
	// JErrorInvalidReq Invalid Request - The JSON sent is not a valid Request object.
	JErrorInvalidReq ErrorCode = -32600
	// JErrorNoMethod Method not found - The method does not exist / is not available.
	JErrorNoMethod ErrorCode = -32601
	// JErrorInvalidParams Invalid params - Invalid method parameter(s).
	JErrorInvalidParams ErrorCode = -32602
	// JErrorInternal Internal error - Internal JSON-RPC error.
	JErrorInternal ErrorCode = -32603
	// JErrorServer Server error - Reserved for implementation-defined server-errors.
	JErrorServer ErrorCode = -32000
	// JErrorTransport Transport error.
	JErrorTransport ErrorCode = -32300
	// JErrorSystem System error.
	JErrorSystem ErrorCode = -32400
	// JErrorApplication Application error.
	JErrorApplication ErrorCode = -32500
)

// NoData fills the data member of a server error that arrived without
// one. Some Zabbix errors omit it, see ZBX-9340.
const NoData = "No data"

// APIError is the error object of a JSON-RPC response.
type APIError struct {
	// A Number that indicates the error type that occurred.
	Code ErrorCode `json:"code"` /* required */

	// A String providing a short description of the error.
	// The message SHOULD be limited to a concise single sentence.
	Message string `json:"message"` /* required */

	// A Primitive or Structured value that contains additional information about the error.
	Data interface{} `json:"data"` /* optional */
}

// Error returns error message in string format
func (e *APIError) Error() string {
	return fmt.Sprintf("error %d: %s, %v", e.Code, e.Message, e.Data)
}

// ProtocolError reports a failure below the JSON-RPC layer: a transport
// error, an unexpected HTTP status, or a response body that is empty or
// cannot be decoded.
type ProtocolError struct {
	Message string
	Err     error
}

// Error returns error message in string format
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying transport or decoding error, if any.
func (e *ProtocolError) Unwrap() error { return e.Err }

// ErrInvalidCall reports a method reference invoked with both positional
// and named parameters. Nothing is sent when this happens.
var ErrInvalidCall = errors.New("zapix: found both positional and named parameters")
