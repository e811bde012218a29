// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package obfuscate

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 4096
	kdfKeyLength  = 32
)

// XOR returns data combined byte by byte with key, repeating key as needed.
// Applying it twice with the same key yields the original bytes. An empty
// key returns a copy of data unchanged.
func XOR(data, key []byte) []byte {
	out := make([]byte, len(data))
	if len(key) == 0 {
		copy(out, data)
		return out
	}
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// KeyFromPassphrase stretches a passphrase into an XOR key with
// PBKDF2-SHA512. The salt should be stable for a given configuration file,
// otherwise a saved file can no longer be read back.
func KeyFromPassphrase(passphrase string, salt []byte) []byte {
	if passphrase == "" {
		return nil
	}
	return pbkdf2.Key([]byte(passphrase), salt, kdfIterations, kdfKeyLength, sha512.New)
}

// Abbrev renders a key for logs without exposing it: the first and last two
// bytes in hex around an ellipsis.
func Abbrev(key []byte) string {
	const hex = "0123456789abcdef"
	enc := func(bs []byte) string {
		out := make([]byte, 0, len(bs)*2)
		for _, b := range bs {
			out = append(out, hex[b>>4], hex[b&0x0f])
		}
		return string(out)
	}
	if len(key) <= 4 {
		return "..."
	}
	return enc(key[:2]) + "..." + enc(key[len(key)-2:])
}
