package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		revision string
		want     string
	}{
		{name: "untagged", want: "0.0.0-devel"},
		{name: "untagged with revision", revision: "1a2b3c4d5e", want: "0.0.0-devel+1a2b3c4"},
		{name: "tagged", tag: "1.4.0", want: "1.4.0"},
		{name: "tagged with v", tag: "v1.4.0", revision: "abcdef0123", want: "1.4.0+abcdef0"},
		{name: "tag with build metadata kept", tag: "1.4.0+ci", revision: "abcdef0123", want: "1.4.0+ci"},
		{name: "garbage tag", tag: "latest", want: "0.0.0-devel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.tag, tt.revision))
		})
	}
}

func TestVersion_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, Version())
}
