// Package protocol implements the ssmgr control protocol framing.
//
// Request frame (client to server):
//
//	LEN(2B BE) | TIMESTAMP(6B BE, Unix ms) | PAYLOAD(JSON) | AUTHCODE(4B)
//
// LEN counts every byte after itself. AUTHCODE is the first four bytes of
// MD5(decimal(TIMESTAMP) + PAYLOAD + key).
//
// Response frame (server to client):
//
//	LEN(4B BE) | JSON{"code": int, "data": any}
package protocol

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
)

const (
	lenSize  = 2
	tsSize   = 6
	codeSize = 4

	minBody = tsSize + codeSize
	maxBody = 1<<16 - 1

	maxTimestamp = 1<<48 - 1
)

// SplitFrame returns the first complete request frame held in buf. It
// reports false while the length prefix or the declared body is still
// incomplete; nothing is parsed until the whole frame is available.
func SplitFrame(buf []byte) ([]byte, bool) {
	if len(buf) < lenSize {
		return nil, false
	}
	n := int(binary.BigEndian.Uint16(buf))
	if len(buf) < lenSize+n {
		return nil, false
	}
	return buf[:lenSize+n], true
}

// Verify checks a complete frame and returns its JSON payload.
//
// The timestamp window is checked before the auth code. Every failure
// wraps common.ErrAuth.
func Verify(frame []byte, key string, now time.Time) ([]byte, error) {
	if len(frame) < lenSize {
		return nil, fmt.Errorf("%w: %w: %d bytes", common.ErrAuth, common.ErrMalformedFrame, len(frame))
	}
	n := int(binary.BigEndian.Uint16(frame))
	if n < minBody || len(frame) != lenSize+n {
		return nil, fmt.Errorf("%w: %w: declared length %d", common.ErrAuth, common.ErrMalformedFrame, n)
	}

	body := frame[lenSize:]
	ts := getUint48(body[:tsSize])
	payload := body[tsSize : n-codeSize]
	code := body[n-codeSize:]

	skew := now.Sub(time.UnixMilli(int64(ts)))
	if skew > common.AuthWindow || skew < -common.AuthWindow {
		return nil, fmt.Errorf("%w: %w: skew %s", common.ErrAuth, common.ErrTimestamp, skew)
	}

	if subtle.ConstantTimeCompare(AuthCode(ts, payload, key), code) != 1 {
		return nil, fmt.Errorf("%w: %w", common.ErrAuth, common.ErrAuthCode)
	}

	return payload, nil
}

// AuthCode computes the 4-byte authentication code. The timestamp is hashed
// as its decimal string, not as raw bytes.
func AuthCode(ts uint64, payload []byte, key string) []byte {
	h := md5.New()
	h.Write([]byte(strconv.FormatUint(ts, 10)))
	h.Write(payload)
	h.Write([]byte(key))
	return h.Sum(nil)[:codeSize]
}

// EncodeRequest builds a signed request frame for payload at ts.
func EncodeRequest(payload []byte, key string, ts time.Time) ([]byte, error) {
	ms := ts.UnixMilli()
	if ms < 0 || ms > maxTimestamp {
		return nil, fmt.Errorf("timestamp %d does not fit in 48 bits", ms)
	}
	n := minBody + len(payload)
	if n > maxBody {
		return nil, fmt.Errorf("payload too large: %d bytes", len(payload))
	}

	frame := make([]byte, lenSize+n)
	binary.BigEndian.PutUint16(frame, uint16(n))
	putUint48(frame[lenSize:], uint64(ms))
	copy(frame[lenSize+tsSize:], payload)
	copy(frame[lenSize+tsSize+len(payload):], AuthCode(uint64(ms), payload, key))

	return frame, nil
}

func getUint48(b []byte) uint64 {
	_ = b[5]
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

func putUint48(b []byte, v uint64) {
	_ = b[5]
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}
