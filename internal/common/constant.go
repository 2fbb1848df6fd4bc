package common

import "time"

// AuthWindow is the maximum allowed distance between a request timestamp
// and the server clock.
const AuthWindow = 10 * time.Minute

// DefaultMaxMessageSize is the gRPC send/receive ceiling used for the
// trojan-go admin channel.
const DefaultMaxMessageSize = 20 * 1024 * 1024

// DefaultListenAddr is the ssmgr control port.
const DefaultListenAddr = "0.0.0.0:4001"
