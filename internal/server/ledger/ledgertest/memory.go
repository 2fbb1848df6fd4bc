// Package ledgertest provides an in-memory ledger.Ledger for tests.
package ledgertest

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// Memory keeps accounts and flow samples in maps and records every call by
// method name. Errs injects a failure for a method. Hooks run before a method
// is recorded and executes, outside the lock.
type Memory struct {
	mu       sync.Mutex
	accounts map[int64]string
	samples  []models.FlowSample
	calls    []string

	Errs  map[string]error
	Hooks map[string]func()
}

func New() *Memory {
	return &Memory{
		accounts: map[int64]string{},
		Errs:     map[string]error{},
		Hooks:    map[string]func(){},
	}
}

func (m *Memory) enter(method string) error {
	m.mu.Lock()
	hook := m.Hooks[method]
	m.mu.Unlock()

	if hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
	return m.Errs[method]
}

// Calls returns the method names called so far, in order.
func (m *Memory) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Samples returns every recorded flow sample.
func (m *Memory) Samples() []models.FlowSample {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.FlowSample(nil), m.samples...)
}

// SetErr injects err for method; nil clears it.
func (m *Memory) SetErr(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.Errs, method)
		return
	}
	m.Errs[method] = err
}

func (m *Memory) ListAccounts(context.Context) ([]models.Account, error) {
	if err := m.enter("ListAccounts"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Account, 0, len(m.accounts))
	for id, h := range m.accounts {
		out = append(out, models.Account{AccountID: id, CredentialHash: h})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

func (m *Memory) UpsertAccount(_ context.Context, accountID int64, credentialHash string) error {
	if err := m.enter("UpsertAccount"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[accountID] = credentialHash
	return nil
}

func (m *Memory) DeleteAccount(_ context.Context, accountID int64) error {
	if err := m.enter("DeleteAccount"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, accountID)
	return nil
}

func (m *Memory) AggregateFlow(_ context.Context, window models.FlowWindow) ([]models.AccountFlow, error) {
	if err := m.enter("AggregateFlow"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sums := map[int64]int64{}
	for _, s := range m.samples {
		if inWindow(s, window) {
			sums[s.AccountID] += s.ByteCount
		}
	}
	return sortedFlows(sums), nil
}

func (m *Memory) PurgeFlow(_ context.Context, window models.FlowWindow) (int64, error) {
	if err := m.enter("PurgeFlow"); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.samples[:0]
	var n int64
	for _, s := range m.samples {
		if inWindow(s, window) {
			n++
			continue
		}
		kept = append(kept, s)
	}
	m.samples = kept
	return n, nil
}

func (m *Memory) DrainFlow(_ context.Context, window models.FlowWindow) ([]models.AccountFlow, int64, error) {
	if err := m.enter("DrainFlow"); err != nil {
		return nil, 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sums := map[int64]int64{}
	kept := m.samples[:0]
	var n int64
	for _, s := range m.samples {
		if inWindow(s, window) {
			sums[s.AccountID] += s.ByteCount
			n++
			continue
		}
		kept = append(kept, s)
	}
	m.samples = kept
	return sortedFlows(sums), n, nil
}

func (m *Memory) RecordFlows(_ context.Context, samples []models.FlowSample) error {
	if err := m.enter("RecordFlows"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

func inWindow(s models.FlowSample, w models.FlowWindow) bool {
	ms := s.ObservedAt.UnixMilli()
	return ms >= w.Start.UnixMilli() && ms < w.End.UnixMilli()
}

func sortedFlows(sums map[int64]int64) []models.AccountFlow {
	out := make([]models.AccountFlow, 0, len(sums))
	for id, total := range sums {
		out = append(out, models.AccountFlow{AccountID: id, TotalBytes: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}
