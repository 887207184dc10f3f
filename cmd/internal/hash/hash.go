package hash

import (
	"crypto/sha256"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Sha256Hash returns the sha256 hash of the input string
func Sha256Hash(input string) string {
	hash := sha256.New()
	hash.Write([]byte(input))
	hashSum := hash.Sum(nil)
	return fmt.Sprintf("%x", hashSum)
}

// StableGuid returns a GUID that is always the same for the same input.
func StableGuid(input string) string {
	h := xxh3.HashString128(input).Bytes()
	guid, _ := uuid.FromBytes(h[:])
	return guid.String()
}

// StableNumber returns a decimal number with the requested number of digits that is always the same for
// the same input. The first digit is never zero.
func StableNumber(input string, digits int) string {
	h := xxh3.HashString(input)
	number := strconv.FormatUint(h, 10)
	for len(number) < digits {
		h = xxh3.HashString(number)
		number += strconv.FormatUint(h, 10)
	}

	number = number[:digits]
	if number[0] == '0' {
		number = "1" + number[1:]
	}

	return number
}
