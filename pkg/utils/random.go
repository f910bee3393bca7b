package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает случайный ID вида "<prefix>_<16 hex>" (или просто 16 hex без префикса).
func GenerateID(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	id := hex.EncodeToString(b)
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
