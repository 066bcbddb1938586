package hmac

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/rvcrypto/sclcore/pkg/hash"
)

func TestHMACSHA256KnownAnswer(t *testing.T) {
	ctx := context.Background()
	key := []byte("key")
	data := []byte("The quick brown fox jumps over the lazy dog")
	want, err := hex.DecodeString("f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8")
	if err != nil {
		t.Fatalf("bad test vector: %v", err)
	}

	got, err := Sum(ctx, hash.SHA256, key, data, len(want))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("HMAC-SHA-256 = %x, want %x", got, want)
	}
}

func TestHMACDeterministicAndKeySensitive(t *testing.T) {
	ctx := context.Background()
	data := []byte("message")
	m1, err := Sum(ctx, hash.SHA256, []byte("key-a"), data, 32)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	m2, err := Sum(ctx, hash.SHA256, []byte("key-a"), data, 32)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if !bytes.Equal(m1, m2) {
		t.Errorf("HMAC not deterministic: %x != %x", m1, m2)
	}

	m3, err := Sum(ctx, hash.SHA256, []byte("key-b"), data, 32)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if bytes.Equal(m1, m3) {
		t.Errorf("HMAC did not change with a different key")
	}
}

func TestHMACLongKeyIsHashed(t *testing.T) {
	ctx := context.Background()
	longKey := bytes.Repeat([]byte{0x5a}, 200) // longer than SHA-256's 64-byte block
	if _, err := Sum(ctx, hash.SHA256, longKey, []byte("data"), 32); err != nil {
		t.Fatalf("Sum with oversized key: %v", err)
	}
}

func TestHMACTruncation(t *testing.T) {
	ctx := context.Background()
	full, err := Sum(ctx, hash.SHA256, []byte("k"), []byte("m"), 32)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	truncated, err := Sum(ctx, hash.SHA256, []byte("k"), []byte("m"), 16)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if !bytes.Equal(full[:16], truncated) {
		t.Errorf("truncated MAC %x is not a prefix of full MAC %x", truncated, full)
	}
}

func TestHMACRejectsOversizedRequest(t *testing.T) {
	ctx := context.Background()
	if _, err := Sum(ctx, hash.SHA256, []byte("k"), []byte("m"), 33); err == nil {
		t.Fatalf("Sum with macLen > digest size: want error, got nil")
	}
}

func TestHMACStreamingCoreMatchesOneShot(t *testing.T) {
	ctx := context.Background()
	key := []byte("streaming-key")
	data := []byte("some longer message body to split across multiple core calls")

	oneShot, err := Sum(ctx, hash.SHA512, key, data, 64)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}

	c, err := Init(ctx, hash.SHA512, nil, key)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < len(data); i += 7 {
		end := i + 7
		if end > len(data) {
			end = len(data)
		}
		if err := c.Core(ctx, data[i:end]); err != nil {
			t.Fatalf("Core: %v", err)
		}
	}
	streamed, err := c.Finish(ctx, 64)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if !bytes.Equal(oneShot, streamed) {
		t.Errorf("streamed HMAC %x != one-shot %x", streamed, oneShot)
	}
}
