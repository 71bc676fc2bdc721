package contract

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func parseU64(s string, chain SDKInterface) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		chain.Abort("invalid uint64: " + s)
	}
	return v
}

func parseU8(s string, chain SDKInterface) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		chain.Abort("invalid uint8: " + s)
	}
	return uint8(v)
}

// parseHex32 decodes a 64-character hex string into a 32-byte value.
func parseHex32(s string, what string, chain SDKInterface) [32]byte {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		chain.Abort("invalid " + what + ": want 32 bytes hex")
	}
	copy(out[:], b)
	return out
}

func hex32(v [32]byte) string { return hex.EncodeToString(v[:]) }

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendU8(dst []byte, v uint8) []byte { return appendU64(dst, uint64(v)) }

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}
