// Package hash implements the streaming SHA-224/256/384/512 engine (C6):
// a three-call init/core/finish contract shared by all four modes, with
// a pluggable backend so the same Context can be driven by a pure
// software compression function or a simulated memory-mapped
// accelerator (see package hwaccel) while producing byte-identical
// digests.
package hash

import "github.com/rvcrypto/sclcore/pkg/sclerr"

// Mode selects the hash function. SHA-224/256 use 32-bit words and a
// 64-byte block; SHA-384/512 use 64-bit words and a 128-byte block.
type Mode int

const (
	SHA224 Mode = iota
	SHA256
	SHA384
	SHA512
)

// modeInfo collects the FIPS 180-4 per-mode constants: block size,
// untruncated and truncated (output) digest length, and initial hash
// value.
type modeInfo struct {
	blockSize  int
	fullDigest int // untruncated internal state size in bytes
	outDigest  int // SHA-224/384 truncate the full state on output
	is64       bool
	iv32       [8]uint32
	iv64       [8]uint64
}

var modeTable = map[Mode]modeInfo{
	SHA224: {
		blockSize: 64, fullDigest: 32, outDigest: 28, is64: false,
		iv32: [8]uint32{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4},
	},
	SHA256: {
		blockSize: 64, fullDigest: 32, outDigest: 32, is64: false,
		iv32: [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19},
	},
	SHA384: {
		blockSize: 128, fullDigest: 64, outDigest: 48, is64: true,
		iv64: [8]uint64{
			0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
			0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
		},
	},
	SHA512: {
		blockSize: 128, fullDigest: 64, outDigest: 64, is64: true,
		iv64: [8]uint64{
			0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
			0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
		},
	},
}

func lookupMode(m Mode) (modeInfo, error) {
	info, ok := modeTable[m]
	if !ok {
		return modeInfo{}, sclerr.InvalidMode
	}
	return info, nil
}

// BlockSize returns the input block size in bytes for mode (64 for
// SHA-224/256, 128 for SHA-384/512), used by hmac to size ipad/opad.
func BlockSize(m Mode) (int, error) {
	info, err := lookupMode(m)
	if err != nil {
		return 0, err
	}
	return info.blockSize, nil
}

// Size returns the output digest length in bytes for mode.
func Size(m Mode) (int, error) {
	info, err := lookupMode(m)
	if err != nil {
		return 0, err
	}
	return info.outDigest, nil
}
