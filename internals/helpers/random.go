package helper

import (
	"crypto/rand"
	"encoding/hex"
)

func RandHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
