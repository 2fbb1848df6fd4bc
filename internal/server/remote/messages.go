package remote

import (
	pb "github.com/dmitrijs2005/ssmgrtrojan/internal/proto"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// newSetUsersRequest builds a SetUsersRequest for one credential hash. Modify
// requests carry zeroed traffic and limits, which trojan-go treats as a
// counter reset.
func newSetUsersRequest(hash string, op pb.SetUsersRequest_Operation) *pb.SetUsersRequest {
	status := &pb.UserStatus{User: &pb.User{Hash: hash}}
	if op == pb.SetUsersRequest_Modify {
		status.TrafficTotal = &pb.Traffic{}
		status.IpLimit = 0
		status.IpCurrent = 0
	}
	return &pb.SetUsersRequest{Status: status, Operation: op}
}

// remoteUserFrom extracts the user snapshot from a ListUsersResponse. It
// reports false for entries without a credential hash.
func remoteUserFrom(resp *pb.ListUsersResponse) (models.RemoteUser, bool) {
	status := resp.GetStatus()
	hash := status.GetUser().GetHash()
	if hash == "" {
		return models.RemoteUser{}, false
	}
	traffic := status.GetTrafficTotal()
	return models.RemoteUser{
		CredentialHash: hash,
		Upload:         traffic.GetUploadTraffic(),
		Download:       traffic.GetDownloadTraffic(),
	}, true
}
