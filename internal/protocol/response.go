package protocol

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// Code is the response status understood by the ssmgr console.
type Code int

const (
	CodeOK             Code = 0
	CodeInvalidCommand Code = 1
	CodeAuthFailed     Code = 2
	CodeInternal       Code = -1
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeInvalidCommand:
		return "invalid_command"
	case CodeAuthFailed:
		return "auth_failed"
	case CodeInternal:
		return "internal"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// maxResponse bounds what ReadResponse is willing to allocate.
const maxResponse = 64 << 20

type Response struct {
	Code Code            `json:"code"`
	Data json.RawMessage `json:"data,omitempty"`
}

// OK wraps data in a successful response.
func OK(data any) (Response, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return Response{}, fmt.Errorf("marshal response data: %w", err)
	}
	return Response{Code: CodeOK, Data: b}, nil
}

// Failure returns a response carrying only code.
func Failure(code Code) Response {
	return Response{Code: code}
}

// EncodeResponse serializes r with its 4-byte length prefix.
func EncodeResponse(r Response) ([]byte, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal response: %w", err)
	}
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out, uint32(len(body)))
	copy(out[4:], body)
	return out, nil
}

// ReadResponse reads one response frame from r.
func ReadResponse(r io.Reader) (Response, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Response{}, fmt.Errorf("read response length: %w", err)
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n > maxResponse {
		return Response{}, fmt.Errorf("response too large: %d bytes", n)
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return Response{}, fmt.Errorf("read response body: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, fmt.Errorf("decode response: %w", err)
	}
	return resp, nil
}
