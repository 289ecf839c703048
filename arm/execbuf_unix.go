//go:build unix

package arm

import "golang.org/x/sys/unix"

// VerifyExecutableMapping copies code into a fresh anonymous mapping,
// switches it to read+execute, and tears it down again. It proves the
// buffer is legal to place in real executable memory on this platform
// without actually jumping into it — turning code into a callable
// function pointer is the host's job, not the interpreter's.
func VerifyExecutableMapping(code []byte) error {
	if len(code) == 0 {
		return nil
	}

	size := len(code)
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return err
	}
	defer unix.Munmap(mem)

	copy(mem, code)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return err
	}
	return nil
}
