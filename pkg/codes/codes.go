package codes

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

// Length of recharge codes handed out to agents.
const Length = 8

var ErrGenerate = errors.New("failed to generate code")

// New returns a random numeric code of the given length whose last digit is
// a Luhn check digit, so clients can reject typos before hitting the API.
func New(length int) (string, error) {
	if length < 2 {
		return "", ErrGenerate
	}

	body := make([]byte, 0, length-1)
	for i := 0; i < length-1; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", ErrGenerate
		}
		body = append(body, byte('0')+byte(n.Int64()))
	}

	for check := 0; check <= 9; check++ {
		candidate := string(body) + strconv.Itoa(check)
		if goluhn.Validate(candidate) == nil {
			return candidate, nil
		}
	}
	return "", ErrGenerate
}

func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	return goluhn.Validate(code) == nil
}
