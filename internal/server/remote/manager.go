// Package remote talks to trojan-go's administrative gRPC API.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
	pb "github.com/dmitrijs2005/ssmgrtrojan/internal/proto"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// Manager is the set of remote operations the router and reconciler need.
// Batch operations succeed or fail as a whole from the caller's view; partial
// effects on the remote side are not rolled back.
type Manager interface {
	ListActive(ctx context.Context) ([]models.RemoteUser, error)
	AddMany(ctx context.Context, hashes []string) error
	RemoveMany(ctx context.Context, hashes []string) error
	ResetCounters(ctx context.Context, hashes []string) error
	Close() error
}

type TrojanManager struct {
	conn   *grpc.ClientConn
	client pb.TrojanServerServiceClient
	logger logging.Logger
}

// NewTrojanManager creates a client for the API at addr. The channel connects
// lazily; the first call surfaces an unreachable server.
func NewTrojanManager(addr string, maxMessageSize int, l logging.Logger, opts ...grpc.DialOption) (*TrojanManager, error) {
	if maxMessageSize <= 0 {
		maxMessageSize = common.DefaultMaxMessageSize
	}
	logger := l.With("module", "remote")

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(maxMessageSize),
			grpc.MaxCallRecvMsgSize(maxMessageSize),
		),
		grpc.WithChainStreamInterceptor(loggingStreamInterceptor(logger)),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client: %w", err)
	}

	return &TrojanManager{conn: conn, client: pb.NewTrojanServerServiceClient(conn), logger: logger}, nil
}

// ListActive returns one entry per user trojan-go reports. Entries without a
// credential hash cannot be matched to an account and are skipped.
func (m *TrojanManager) ListActive(ctx context.Context) ([]models.RemoteUser, error) {
	stream, err := m.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []models.RemoteUser{}
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		u, ok := remoteUserFrom(resp)
		if !ok {
			m.logger.Debug(ctx, "skipping user without hash")
			continue
		}
		users = append(users, u)
	}

	return users, nil
}

func (m *TrojanManager) AddMany(ctx context.Context, hashes []string) error {
	return m.setUsers(ctx, "add users", hashes, pb.SetUsersRequest_Add)
}

func (m *TrojanManager) RemoveMany(ctx context.Context, hashes []string) error {
	return m.setUsers(ctx, "remove users", hashes, pb.SetUsersRequest_Delete)
}

func (m *TrojanManager) ResetCounters(ctx context.Context, hashes []string) error {
	return m.setUsers(ctx, "reset counters", hashes, pb.SetUsersRequest_Modify)
}

// setUsers opens one SetUsers stream, sends an entry per hash, closes the
// sending side and drains the responses to EOF. Responses are drained
// concurrently with sending so a large batch cannot stall on flow control.
func (m *TrojanManager) setUsers(ctx context.Context, what string, hashes []string, op pb.SetUsersRequest_Operation) error {
	if len(hashes) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := m.client.SetUsers(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}

	g := new(errgroup.Group)

	g.Go(func() error {
		for _, h := range hashes {
			if err := stream.Send(newSetUsersRequest(h, op)); err != nil {
				// the receiver reports the real status
				if errors.Is(err, io.EOF) {
					return nil
				}
				cancel()
				return err
			}
		}
		return stream.CloseSend()
	})

	g.Go(func() error {
		var rejected error
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return rejected
			}
			if err != nil {
				return err
			}
			if !resp.GetSuccess() && rejected == nil {
				rejected = fmt.Errorf("%w: %s", common.ErrRemoteRejected, resp.GetInfo())
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}

	m.logger.Debug(ctx, "batch applied", "operation", what, "count", len(hashes))
	return nil
}

// Close tears down the gRPC channel.
func (m *TrojanManager) Close() error {
	return m.conn.Close()
}
