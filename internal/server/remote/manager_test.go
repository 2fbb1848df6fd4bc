package remote

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
	pb "github.com/dmitrijs2005/ssmgrtrojan/internal/proto"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

func TestListActive(t *testing.T) {
	f := newFakeTrojan(
		models.RemoteUser{CredentialHash: "hashB", Upload: 60, Download: 40},
		models.RemoteUser{CredentialHash: "hashC"},
	)
	m := startFake(t, f)

	got, err := m.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RemoteUser{
		{CredentialHash: "hashB", Upload: 60, Download: 40},
		{CredentialHash: "hashC"},
	}, got)
}

func TestListActive_SkipsUsersWithoutHash(t *testing.T) {
	f := newFakeTrojan(
		models.RemoteUser{CredentialHash: "", Upload: 7},
		models.RemoteUser{CredentialHash: "hashA", Upload: 1},
	)
	m := startFake(t, f)

	got, err := m.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RemoteUser{{CredentialHash: "hashA", Upload: 1}}, got)
}

func TestNewSetUsersRequest(t *testing.T) {
	add := newSetUsersRequest("h1", pb.SetUsersRequest_Add)
	assert.Equal(t, "h1", add.GetStatus().GetUser().GetHash())
	assert.Equal(t, pb.SetUsersRequest_Add, add.GetOperation())
	assert.Nil(t, add.GetStatus().GetTrafficTotal())

	reset := newSetUsersRequest("h1", pb.SetUsersRequest_Modify)
	require.NotNil(t, reset.GetStatus().GetTrafficTotal())
	assert.Zero(t, reset.GetStatus().GetTrafficTotal().GetUploadTraffic())
	assert.Zero(t, reset.GetStatus().GetTrafficTotal().GetDownloadTraffic())
}

func TestListActive_Empty(t *testing.T) {
	m := startFake(t, newFakeTrojan())

	got, err := m.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListActive_ServerError(t *testing.T) {
	f := newFakeTrojan()
	f.listErr = errUnavailable
	m := startFake(t, f)

	_, err := m.ListActive(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestAddMany_SendsOrderedBatchOnOneStream(t *testing.T) {
	f := newFakeTrojan()
	m := startFake(t, f)

	require.NoError(t, m.AddMany(context.Background(), []string{"h1", "h2", "h3"}))

	assert.Equal(t, []setOp{
		{op: pb.SetUsersRequest_Add, hash: "h1"},
		{op: pb.SetUsersRequest_Add, hash: "h2"},
		{op: pb.SetUsersRequest_Add, hash: "h3"},
	}, f.recordedOps())
	assert.Equal(t, 1, f.streamCount())

	users, err := m.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestRemoveMany(t *testing.T) {
	f := newFakeTrojan(models.RemoteUser{CredentialHash: "h1"}, models.RemoteUser{CredentialHash: "h2"})
	m := startFake(t, f)

	require.NoError(t, m.RemoveMany(context.Background(), []string{"h2"}))

	users, err := m.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RemoteUser{{CredentialHash: "h1"}}, users)
}

func TestResetCounters_ZeroesTraffic(t *testing.T) {
	f := newFakeTrojan(models.RemoteUser{CredentialHash: "h1", Upload: 5, Download: 6})
	m := startFake(t, f)

	require.NoError(t, m.ResetCounters(context.Background(), []string{"h1"}))

	assert.Equal(t, []setOp{{op: pb.SetUsersRequest_Modify, hash: "h1", hasTraffic: true}}, f.recordedOps())

	users, err := m.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RemoteUser{{CredentialHash: "h1"}}, users)
}

func TestEmptyBatchOpensNoStream(t *testing.T) {
	f := newFakeTrojan()
	m := startFake(t, f)
	ctx := context.Background()

	require.NoError(t, m.AddMany(ctx, nil))
	require.NoError(t, m.RemoveMany(ctx, []string{}))
	require.NoError(t, m.ResetCounters(ctx, nil))

	assert.Zero(t, f.streamCount())
}

func TestSetUsers_RejectionFailsWholeBatch(t *testing.T) {
	f := newFakeTrojan()
	f.reject["bad"] = true
	m := startFake(t, f)

	err := m.AddMany(context.Background(), []string{"ok1", "bad", "ok2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "add users")
	assert.Contains(t, err.Error(), "invalid user bad")

	// remote partial effects are not rolled back
	assert.Len(t, f.recordedOps(), 3)
}

func TestClosedManagerFails(t *testing.T) {
	m := startFake(t, newFakeTrojan())
	require.NoError(t, m.Close())

	_, err := m.ListActive(context.Background())
	require.Error(t, err)

	err = m.AddMany(context.Background(), []string{"h"})
	require.Error(t, err)
}

func TestManyEntriesDoNotStall(t *testing.T) {
	f := newFakeTrojan()
	m := startFake(t, f)

	hashes := make([]string, 5000)
	for i := range hashes {
		hashes[i] = fmt.Sprintf("h%04d", i)
	}
	require.NoError(t, m.AddMany(context.Background(), hashes))
	assert.Len(t, f.recordedOps(), 5000)
}

var _ Manager = (*TrojanManager)(nil)
