package models

import "time"

// Account is a provisioned ledger entry. AccountID is what the ssmgr console
// calls "port"; CredentialHash is the only identity trojan-go knows about.
type Account struct {
	AccountID      int64     `db:"account_id"`
	CredentialHash string    `db:"credential_hash"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
