// Package signer implements the Cryptome Pay request signature scheme:
// an MD5 digest over the form-urlencoded request parameters with the
// API secret appended. MD5 is fixed by the gateway's wire contract and
// must not be swapped for a stronger digest on the client side.
package signer

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"net/url"
)

// SignatureKey is the parameter that carries the signature itself. It
// never participates in signing.
const SignatureKey = "signature"

// Sign computes the signature for params using secret.
//
// Entries with empty values and any pre-existing signature entry are
// dropped, the rest are sorted by key and form-urlencoded, and the
// secret is appended to the encoded string before hashing. The result
// is 32 lowercase hex characters. The input map is not mutated, and
// insertion order never affects the output.
func Sign(params map[string]string, secret string) string {
	values := url.Values{}
	for key, value := range params {
		if key == SignatureKey || value == "" {
			continue
		}
		values.Set(key, value)
	}
	sum := md5.Sum([]byte(values.Encode() + secret))
	return hex.EncodeToString(sum[:])
}

// Verify checks the signature entry of params against the one computed
// over its remaining entries. Payloads without a signature entry are
// rejected without any computation. The comparison is constant time.
func Verify(params map[string]string, secret string) bool {
	received, ok := params[SignatureKey]
	if !ok {
		return false
	}
	expected := Sign(params, secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}
