package reconciler

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// plan is what one tick has to do, derived from a pair of snapshots.
type plan struct {
	toAdd    []string
	toRemove []string
	reset    []string
	samples  []models.FlowSample
}

// makePlan diffs local accounts against the remote snapshot by credential
// hash. Every remote hash is reset, matched or not, so each harvested byte
// lands in exactly one sample.
func makePlan(accounts []models.Account, users []models.RemoteUser, observedAt time.Time) plan {
	local := make(map[string]int64, len(accounts))
	for _, a := range accounts {
		local[a.CredentialHash] = a.AccountID
	}

	var p plan
	remote := make(map[string]struct{}, len(users))
	for _, u := range users {
		if _, dup := remote[u.CredentialHash]; dup {
			continue
		}
		remote[u.CredentialHash] = struct{}{}
		p.reset = append(p.reset, u.CredentialHash)

		id, ok := local[u.CredentialHash]
		if !ok {
			p.toRemove = append(p.toRemove, u.CredentialHash)
			continue
		}
		if total := u.Total(); total > 0 {
			p.samples = append(p.samples, models.FlowSample{
				AccountID:  id,
				ByteCount:  int64(total),
				ObservedAt: observedAt,
			})
		}
	}

	for hash := range local {
		if _, ok := remote[hash]; !ok {
			p.toAdd = append(p.toAdd, hash)
		}
	}

	sort.Strings(p.toAdd)
	sort.Strings(p.toRemove)
	return p
}

func (p plan) harvested() int64 {
	var n int64
	for _, s := range p.samples {
		n += s.ByteCount
	}
	return n
}
