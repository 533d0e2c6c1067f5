package auth

import "crypto/rand"

const otpLength = 6

// generateNumericCode draws uniform random digits. Bytes at or above the
// largest multiple of 10 are rejected so no digit is favored.
func generateNumericCode(length int) string {
	const digits = "0123456789"
	const limit = 250

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, digits[b%10])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
