package client

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/protocol"
)

var ErrUsage = errors.New("usage")

// Usage lists the commands understood by BuildRequest.
const Usage = `commands:
  list
  add <port> <password>
  del <port>
  pwd <port> <password>
  flow [--clear] [--start ms] [--end ms]
  version`

// HashPassword returns the trojan-go credential hash of a plaintext password:
// lowercase hex of its SHA-224 digest.
func HashPassword(password string) string {
	sum := sha256.Sum224([]byte(password))
	return hex.EncodeToString(sum[:])
}

// BuildRequest turns command-line words into a request. Passwords given to
// add and pwd are plaintext and are hashed before sending.
func BuildRequest(args []string) (protocol.Request, error) {
	if len(args) == 0 {
		return protocol.Request{}, fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, rest := args[0], args[1:]
	switch name {
	case protocol.CommandList, protocol.CommandVersion:
		if len(rest) != 0 {
			return protocol.Request{}, fmt.Errorf("%w: %s takes no arguments", ErrUsage, name)
		}
		return protocol.Request{Command: name}, nil

	case protocol.CommandDelete:
		if len(rest) != 1 {
			return protocol.Request{}, fmt.Errorf("%w: del <port>", ErrUsage)
		}
		port, err := parsePort(rest[0])
		if err != nil {
			return protocol.Request{}, err
		}
		return protocol.Request{Command: name, Port: port}, nil

	case protocol.CommandAdd, protocol.CommandChangePassword:
		if len(rest) != 2 {
			return protocol.Request{}, fmt.Errorf("%w: %s <port> <password>", ErrUsage, name)
		}
		port, err := parsePort(rest[0])
		if err != nil {
			return protocol.Request{}, err
		}
		if rest[1] == "" {
			return protocol.Request{}, fmt.Errorf("%w: empty password", ErrUsage)
		}
		return protocol.Request{Command: name, Port: port, Password: HashPassword(rest[1])}, nil

	case protocol.CommandFlow:
		return buildFlow(rest)
	}

	return protocol.Request{}, fmt.Errorf("%w: unknown command %q", ErrUsage, name)
}

func buildFlow(args []string) (protocol.Request, error) {
	opts := &protocol.Options{}

	fs := pflag.NewFlagSet("flow", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.Clear, "clear", false, "delete the reported samples")
	fs.Int64Var(&opts.StartTime, "start", 0, "window start, Unix ms")
	fs.Int64Var(&opts.EndTime, "end", 0, "window end, Unix ms")
	if err := fs.Parse(args); err != nil {
		return protocol.Request{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 0 {
		return protocol.Request{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	req := protocol.Request{Command: protocol.CommandFlow}
	if *opts != (protocol.Options{}) {
		req.Options = opts
	}
	return req, nil
}

func parsePort(s string) (int64, error) {
	port, err := strconv.ParseInt(s, 10, 64)
	if err != nil || port <= 0 {
		return 0, fmt.Errorf("%w: invalid port %q", ErrUsage, s)
	}
	return port, nil
}
