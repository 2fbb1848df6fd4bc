package protocol

// Request is the JSON payload of a request frame, using ssmgr field names:
// "port" carries the account id and "password" the credential hash.
type Request struct {
	Command  string   `json:"command,omitempty"`
	Port     int64    `json:"port,omitempty"`
	Password string   `json:"password,omitempty"`
	Options  *Options `json:"options,omitempty"`
}

// Options narrows the flow command. Times are Unix milliseconds.
type Options struct {
	Clear     bool  `json:"clear,omitempty"`
	StartTime int64 `json:"startTime,omitempty"`
	EndTime   int64 `json:"endTime,omitempty"`
}

// Command names on the wire.
const (
	CommandList           = "list"
	CommandAdd            = "add"
	CommandDelete         = "del"
	CommandChangePassword = "pwd"
	CommandFlow           = "flow"
	CommandVersion        = "version"
)

type AccountEntry struct {
	Port     int64  `json:"port"`
	Password string `json:"password"`
}

type PortResult struct {
	Port int64 `json:"port"`
}

type FlowEntry struct {
	Port    int64 `json:"port"`
	SumFlow int64 `json:"sumFlow"`
}

type VersionResult struct {
	Version string `json:"version"`
}
