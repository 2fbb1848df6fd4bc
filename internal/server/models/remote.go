package models

// RemoteUser is a snapshot of a trojan-go user and its traffic counters
// since the last reset.
type RemoteUser struct {
	CredentialHash string
	Upload         uint64
	Download       uint64
}

func (u RemoteUser) Total() uint64 {
	return u.Upload + u.Download
}
