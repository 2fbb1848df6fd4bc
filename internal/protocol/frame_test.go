package protocol

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
)

const testKey = "123456"

var testNow = time.UnixMilli(1_700_000_000_000)

func mustEncode(t *testing.T, payload []byte, ts time.Time) []byte {
	t.Helper()
	frame, err := EncodeRequest(payload, testKey, ts)
	require.NoError(t, err)
	return frame
}

func TestEncodeRequest_Layout(t *testing.T) {
	payload := []byte(`{"command":"list"}`)
	frame := mustEncode(t, payload, testNow)

	require.Len(t, frame, 2+6+len(payload)+4)
	assert.Equal(t, uint16(6+len(payload)+4), binary.BigEndian.Uint16(frame))
	assert.Equal(t, uint64(testNow.UnixMilli()), getUint48(frame[2:8]))
	assert.Equal(t, payload, frame[8:8+len(payload)])

	sum := md5.Sum([]byte(strconv.FormatInt(testNow.UnixMilli(), 10) + string(payload) + testKey))
	assert.Equal(t, sum[:4], frame[len(frame)-4:])
}

func TestVerify_RoundTrip(t *testing.T) {
	payloads := []any{
		Request{Command: CommandList},
		Request{Command: CommandAdd, Port: 7, Password: "a1b2"},
		Request{Command: CommandFlow, Options: &Options{Clear: true, StartTime: 1, EndTime: 2}},
		map[string]any{"command": "version", "extra": []int{1, 2, 3}, "unicode": "ключ"},
	}

	for _, p := range payloads {
		payload, err := json.Marshal(p)
		require.NoError(t, err)

		frame := mustEncode(t, payload, testNow)
		got, err := Verify(frame, testKey, testNow.Add(time.Second))
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	}
}

func TestVerify_TamperedAuthCode(t *testing.T) {
	frame := mustEncode(t, []byte(`{"command":"list"}`), testNow)

	for bit := 0; bit < 32; bit++ {
		tampered := append([]byte(nil), frame...)
		tampered[len(tampered)-4+bit/8] ^= 1 << (bit % 8)

		_, err := Verify(tampered, testKey, testNow)
		require.Error(t, err, "bit %d", bit)
		assert.ErrorIs(t, err, common.ErrAuth)
		assert.ErrorIs(t, err, common.ErrAuthCode)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	payload := []byte(`{"command":"add","port":7,"password":"abc"}`)
	frame := mustEncode(t, payload, testNow)

	for i := 0; i < len(payload); i++ {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), frame...)
			tampered[8+i] ^= 1 << bit

			_, err := Verify(tampered, testKey, testNow)
			require.ErrorIs(t, err, common.ErrAuth, "byte %d bit %d", i, bit)
		}
	}
}

func TestVerify_WrongKey(t *testing.T) {
	frame := mustEncode(t, []byte(`{}`), testNow)
	_, err := Verify(frame, "other", testNow)
	assert.ErrorIs(t, err, common.ErrAuthCode)
}

func TestVerify_TimestampWindow(t *testing.T) {
	payload := []byte(`{"command":"version"}`)

	tests := []struct {
		name   string
		offset time.Duration
		ok     bool
	}{
		{name: "now", offset: 0, ok: true},
		{name: "9 minutes old", offset: -9 * time.Minute, ok: true},
		{name: "exactly 10 minutes old", offset: -10 * time.Minute, ok: true},
		{name: "11 minutes old", offset: -11 * time.Minute, ok: false},
		{name: "9 minutes ahead", offset: 9 * time.Minute, ok: true},
		{name: "11 minutes ahead", offset: 11 * time.Minute, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := mustEncode(t, payload, testNow.Add(tt.offset))
			_, err := Verify(frame, testKey, testNow)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrAuth)
			assert.ErrorIs(t, err, common.ErrTimestamp)
		})
	}
}

func TestVerify_Malformed(t *testing.T) {
	short := []byte{0x00, 0x05, 1, 2, 3, 4, 5}
	_, err := Verify(short, testKey, testNow)
	assert.ErrorIs(t, err, common.ErrMalformedFrame)
	assert.ErrorIs(t, err, common.ErrAuth)

	_, err = Verify([]byte{0x00}, testKey, testNow)
	assert.ErrorIs(t, err, common.ErrMalformedFrame)

	frame := mustEncode(t, []byte(`{}`), testNow)
	_, err = Verify(append(frame, 0xff), testKey, testNow)
	assert.ErrorIs(t, err, common.ErrMalformedFrame)
}

func TestSplitFrame(t *testing.T) {
	frame := mustEncode(t, []byte(`{"command":"list"}`), testNow)

	for i := 0; i < len(frame); i++ {
		_, ok := SplitFrame(frame[:i])
		assert.False(t, ok, "prefix of %d bytes must not yield a frame", i)
	}

	got, ok := SplitFrame(frame)
	require.True(t, ok)
	assert.Equal(t, frame, got)

	withTrailer := append(append([]byte(nil), frame...), 0xde, 0xad)
	got, ok = SplitFrame(withTrailer)
	require.True(t, ok)
	assert.Equal(t, frame, got)
}

func TestEncodeRequest_Limits(t *testing.T) {
	_, err := EncodeRequest(make([]byte, maxBody), testKey, testNow)
	assert.Error(t, err)

	_, err = EncodeRequest(nil, testKey, time.UnixMilli(-1))
	assert.Error(t, err)

	frame, err := EncodeRequest(make([]byte, maxBody-minBody), testKey, testNow)
	require.NoError(t, err)
	assert.Len(t, frame, lenSize+maxBody)
}

func TestVerify_ErrorsDoNotLeakDistinctionThroughErrAuth(t *testing.T) {
	stale := mustEncode(t, []byte(`{}`), testNow.Add(-time.Hour))
	_, errStale := Verify(stale, testKey, testNow)

	fresh := mustEncode(t, []byte(`{}`), testNow)
	_, errKey := Verify(fresh, "wrong", testNow)

	assert.True(t, errors.Is(errStale, common.ErrAuth))
	assert.True(t, errors.Is(errKey, common.ErrAuth))
}
