package remote

import (
	"context"
	"errors"
	"io"
	"net"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
	pb "github.com/dmitrijs2005/ssmgrtrojan/internal/proto"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

type setOp struct {
	op         pb.SetUsersRequest_Operation
	hash       string
	hasTraffic bool
}

// fakeTrojan mimics trojan-go's TrojanServerService: one SetUsersResponse per
// request, users keyed by hash.
type fakeTrojan struct {
	pb.UnimplementedTrojanServerServiceServer

	mu      sync.Mutex
	users   map[string]models.RemoteUser
	ops     []setOp
	streams int
	reject  map[string]bool
	listErr error
}

func newFakeTrojan(users ...models.RemoteUser) *fakeTrojan {
	f := &fakeTrojan{users: map[string]models.RemoteUser{}, reject: map[string]bool{}}
	for _, u := range users {
		f.users[u.CredentialHash] = u
	}
	return f
}

func (f *fakeTrojan) ListUsers(_ *pb.ListUsersRequest, stream grpc.ServerStreamingServer[pb.ListUsersResponse]) error {
	f.mu.Lock()
	f.streams++
	listErr := f.listErr
	users := make([]models.RemoteUser, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	f.mu.Unlock()

	if listErr != nil {
		return listErr
	}

	sort.Slice(users, func(i, j int) bool { return users[i].CredentialHash < users[j].CredentialHash })
	for _, u := range users {
		if err := stream.Send(listUsersResponse(u)); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTrojan) SetUsers(stream grpc.BidiStreamingServer[pb.SetUsersRequest, pb.SetUsersResponse]) error {
	f.mu.Lock()
	f.streams++
	f.mu.Unlock()

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		ok, info := f.apply(setOp{
			op:         req.GetOperation(),
			hash:       req.GetStatus().GetUser().GetHash(),
			hasTraffic: req.GetStatus().GetTrafficTotal() != nil,
		})

		if err := stream.Send(&pb.SetUsersResponse{Success: ok, Info: info}); err != nil {
			return err
		}
	}
}

func (f *fakeTrojan) apply(o setOp) (bool, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, o)
	if f.reject[o.hash] {
		return false, "invalid user " + o.hash
	}

	switch o.op {
	case pb.SetUsersRequest_Add:
		f.users[o.hash] = models.RemoteUser{CredentialHash: o.hash}
	case pb.SetUsersRequest_Delete:
		delete(f.users, o.hash)
	case pb.SetUsersRequest_Modify:
		u, ok := f.users[o.hash]
		if !ok {
			return false, "invalid user " + o.hash
		}
		u.Upload, u.Download = 0, 0
		f.users[o.hash] = u
	}
	return true, ""
}

func (f *fakeTrojan) recordedOps() []setOp {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]setOp(nil), f.ops...)
}

func (f *fakeTrojan) streamCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streams
}

func listUsersResponse(u models.RemoteUser) *pb.ListUsersResponse {
	return &pb.ListUsersResponse{Status: &pb.UserStatus{
		User:         &pb.User{Hash: u.CredentialHash},
		TrafficTotal: &pb.Traffic{UploadTraffic: u.Upload, DownloadTraffic: u.Download},
	}}
}

// startFake serves f over an in-memory listener and returns a manager bound
// to it.
func startFake(t *testing.T, f *fakeTrojan) *TrojanManager {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterTrojanServerServiceServer(srv, f)

	go func() { _ = srv.Serve(lis) }()

	m, err := NewTrojanManager("passthrough:///bufnet", 0, logging.NewNopLogger(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = m.Close()
		srv.Stop()
	})
	return m
}

var errUnavailable = status.Error(codes.Unavailable, "trojan-go is restarting")
