package test

import (
	"math/rand/v2"
	"strings"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns an alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)

	var b strings.Builder
	n := minLen + rand.IntN(maxLen-minLen+1)
	b.Grow(n)
	for range n {
		b.WriteByte(alphanumeric[rand.IntN(len(alphanumeric))])
	}
	return b.String()
}

// RandomEmail builds a throwaway address for signup scenarios.
func RandomEmail() string {
	return strings.ToLower(RandomASCIIString(6, 12)) + "@placement.test"
}
