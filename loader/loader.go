package loader

import (
	"fmt"
	"os"

	"vaxcore/cpu"
)

// LoadImage copies a flat binary image into ram starting at base. Unlike
// the assembler pipeline this core has no symbol table or directive
// processing: the image is already linked machine code and data, exactly
// as the executor's out-of-scope bus would receive from boot ROM or a
// loaded program file.
func LoadImage(ram *RAM, base uint32, image []byte) error {
	imgLen, err := cpu.SafeIntToUint32(len(image))
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	if uint64(base)+uint64(imgLen) > uint64(ram.Size()) {
		return fmt.Errorf("loader: image of %d bytes at %#08x exceeds RAM size %#x", imgLen, base, ram.Size())
	}
	copy(ram.bytes[base:], image)
	return nil
}

// LoadFile reads path and loads its contents into ram at base.
func LoadFile(ram *RAM, base uint32, path string) error {
	image, err := os.ReadFile(path) // #nosec G304 -- caller-provided image path
	if err != nil {
		return fmt.Errorf("loader: failed to read image %q: %w", path, err)
	}
	return LoadImage(ram, base, image)
}
