package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

func TestMakePlan(t *testing.T) {
	at := time.UnixMilli(42)

	p := makePlan(
		[]models.Account{
			{AccountID: 1, CredentialHash: "hashA"},
			{AccountID: 2, CredentialHash: "hashB"},
			{AccountID: 4, CredentialHash: "hashD"},
		},
		[]models.RemoteUser{
			{CredentialHash: "hashC", Upload: 5},
			{CredentialHash: "hashB", Upload: 60, Download: 40},
			{CredentialHash: "hashZ"},
			{CredentialHash: "hashB", Upload: 60, Download: 40},
		},
		at,
	)

	assert.Equal(t, []string{"hashA", "hashD"}, p.toAdd)
	assert.Equal(t, []string{"hashC", "hashZ"}, p.toRemove)
	assert.Equal(t, []string{"hashC", "hashB", "hashZ"}, p.reset)
	assert.Equal(t, []models.FlowSample{{AccountID: 2, ByteCount: 100, ObservedAt: at}}, p.samples)
	assert.Equal(t, int64(100), p.harvested())
}

func TestMakePlan_ZeroTrafficIsNotSampled(t *testing.T) {
	p := makePlan(
		[]models.Account{{AccountID: 1, CredentialHash: "hashA"}},
		[]models.RemoteUser{{CredentialHash: "hashA"}},
		time.Now(),
	)

	assert.Empty(t, p.toAdd)
	assert.Empty(t, p.toRemove)
	assert.Empty(t, p.samples)
	assert.Equal(t, []string{"hashA"}, p.reset)
}

func TestMakePlan_Empty(t *testing.T) {
	p := makePlan(nil, nil, time.Now())
	assert.Equal(t, plan{}, p)
}
