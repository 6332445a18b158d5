package memory

import (
	"fmt"
	"os"
)

// LoadROM zeroes the full 64 KiB address space of b, then reads the flat,
// headerless binary at path into b starting at load, returning the number
// of bytes copied. At most 0x10000-load bytes are copied; a ROM image that
// would spill past the top of the address space is truncated rather than
// wrapped, matching the original loader's memset-then-fread behavior.
func LoadROM(b Bank, path string, load uint16) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading rom %s: %w", path, err)
	}

	for addr := 0; addr < 1<<16; addr++ {
		b.Write(uint16(addr), 0)
	}

	max := int(0x10000 - uint32(load))
	n := len(data)
	if n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		b.Write(load+uint16(i), data[i])
	}
	return n, nil
}

// Dump writes the full 64 KiB address space of b to path, byte for byte,
// matching the original simulator's -m memory-dump option.
func Dump(b Bank, path string) error {
	var buf [1 << 16]byte
	for i := range buf {
		buf[i] = b.Read(uint16(i))
	}
	if err := os.WriteFile(path, buf[:], 0o644); err != nil {
		return fmt.Errorf("writing memory dump %s: %w", path, err)
	}
	return nil
}
