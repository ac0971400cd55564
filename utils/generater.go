package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateOTP returns a 6-digit one-time code for the password reset flow.
func GenerateOTP() string {
	var buf [4]byte
	rand.Read(buf[:])
	n := uint(buf[0])<<24 | uint(buf[1])<<16 | uint(buf[2])<<8 | uint(buf[3])
	return fmt.Sprintf("%06d", n%1000000)
}
