//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var advice = map[AccessPattern]int{
	AccessDefault:    unix.MADV_NORMAL,
	AccessSequential: unix.MADV_SEQUENTIAL,
	AccessRandom:     unix.MADV_RANDOM,
	AccessWillNeed:   unix.MADV_WILLNEED,
}

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, &os.PathError{Op: "mmap", Path: f.Name(), Err: err}
	}
	return data, unix.Munmap, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	a, ok := advice[pattern]
	if !ok {
		a = unix.MADV_NORMAL
	}
	// Advisory only: kernels that reject the hint still serve the reads.
	if err := unix.Madvise(data, a); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
