package router

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/buildinfo"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/protocol"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// Command is one decoded control request. The set is closed: only the types
// in this file implement it.
type Command interface {
	Name() string
	execute(ctx context.Context, r *Router) (any, error)
}

type List struct{}

type Add struct {
	AccountID      int64
	CredentialHash string
}

type Delete struct {
	AccountID int64
}

type ChangePassword struct {
	AccountID      int64
	CredentialHash string
}

// Flow aggregates samples in [Start, End). Nil bounds default to the epoch and
// the current time.
type Flow struct {
	Start *time.Time
	End   *time.Time
	Clear bool
}

type Version struct{}

func (List) Name() string           { return protocol.CommandList }
func (Add) Name() string            { return protocol.CommandAdd }
func (Delete) Name() string         { return protocol.CommandDelete }
func (ChangePassword) Name() string { return protocol.CommandChangePassword }
func (Flow) Name() string           { return protocol.CommandFlow }
func (Version) Name() string        { return protocol.CommandVersion }

// ParseCommand decodes a verified payload. A payload without a command is a
// version request. Unknown commands yield common.ErrInvalidCommand; a payload
// that is not JSON is treated like a forged frame.
func ParseCommand(payload []byte) (Command, error) {
	var req protocol.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		// answered with code 2, not -1: undecodable payloads are never
		// reported as internal errors
		return nil, fmt.Errorf("%w: %w: %w", common.ErrAuth, common.ErrMalformedFrame, err)
	}

	switch req.Command {
	case "", protocol.CommandVersion:
		return Version{}, nil
	case protocol.CommandList:
		return List{}, nil
	case protocol.CommandAdd:
		if req.Password == "" {
			return nil, fmt.Errorf("%w: %s requires a password", common.ErrInvalidCommand, req.Command)
		}
		return Add{AccountID: req.Port, CredentialHash: req.Password}, nil
	case protocol.CommandDelete:
		return Delete{AccountID: req.Port}, nil
	case protocol.CommandChangePassword:
		if req.Password == "" {
			return nil, fmt.Errorf("%w: %s requires a password", common.ErrInvalidCommand, req.Command)
		}
		return ChangePassword{AccountID: req.Port, CredentialHash: req.Password}, nil
	case protocol.CommandFlow:
		f := Flow{}
		if o := req.Options; o != nil {
			f.Clear = o.Clear
			if o.StartTime > 0 {
				t := time.UnixMilli(o.StartTime)
				f.Start = &t
			}
			if o.EndTime > 0 {
				t := time.UnixMilli(o.EndTime)
				f.End = &t
			}
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidCommand, req.Command)
	}
}

func (List) execute(ctx context.Context, r *Router) (any, error) {
	accounts, err := r.ledger.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]protocol.AccountEntry, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, protocol.AccountEntry{Port: a.AccountID, Password: a.CredentialHash})
	}
	return out, nil
}

func (c Add) execute(ctx context.Context, r *Router) (any, error) {
	if err := r.ledger.UpsertAccount(ctx, c.AccountID, c.CredentialHash); err != nil {
		return nil, err
	}
	return protocol.PortResult{Port: c.AccountID}, nil
}

func (c Delete) execute(ctx context.Context, r *Router) (any, error) {
	if err := r.ledger.DeleteAccount(ctx, c.AccountID); err != nil {
		return nil, err
	}
	return protocol.PortResult{Port: c.AccountID}, nil
}

// execute deletes then re-adds the account. The two steps are not atomic; a
// concurrent list may miss the account in between.
func (c ChangePassword) execute(ctx context.Context, r *Router) (any, error) {
	if err := r.ledger.DeleteAccount(ctx, c.AccountID); err != nil {
		return nil, err
	}
	if err := r.ledger.UpsertAccount(ctx, c.AccountID, c.CredentialHash); err != nil {
		return nil, err
	}
	return protocol.AccountEntry{Port: c.AccountID, Password: c.CredentialHash}, nil
}

func (c Flow) execute(ctx context.Context, r *Router) (any, error) {
	window := models.FlowWindow{Start: time.UnixMilli(0), End: r.clock.Now()}
	if c.Start != nil {
		window.Start = *c.Start
	}
	if c.End != nil {
		window.End = *c.End
	}

	var flows []models.AccountFlow
	if c.Clear {
		// reported totals must be exactly what gets deleted
		drained, n, err := r.ledger.DrainFlow(ctx, window)
		if err != nil {
			return nil, err
		}
		flows = drained
		r.logger.Info(ctx, "flow samples purged", "count", n,
			"start", window.Start.UnixMilli(), "end", window.End.UnixMilli())
	} else {
		aggregated, err := r.ledger.AggregateFlow(ctx, window)
		if err != nil {
			return nil, err
		}
		flows = aggregated
	}

	out := make([]protocol.FlowEntry, 0, len(flows))
	for _, f := range flows {
		out = append(out, protocol.FlowEntry{Port: f.AccountID, SumFlow: f.TotalBytes})
	}
	return out, nil
}

func (Version) execute(context.Context, *Router) (any, error) {
	return protocol.VersionResult{Version: buildinfo.Version()}, nil
}
