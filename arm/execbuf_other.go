//go:build !unix

package arm

import "errors"

// VerifyExecutableMapping is unavailable on non-unix platforms.
func VerifyExecutableMapping(code []byte) error {
	return errors.New("arm: executable-mapping verification is only supported on unix")
}
