package mips

import (
	"encoding/binary"
	"io"
	"log"
	"os"
)

// LoadImage reads a raw big-endian MIPS program image from path and
// writes it into TEXT starting wherever the last LoadImage call on
// this Memory left off (TextBase for the first call). Multiple calls
// concatenate in the order given, rather than each overwriting TEXT
// from the start.
func LoadImage(mem *Memory, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return loadImageFrom(mem, f)
}

func loadImageFrom(mem *Memory, r io.Reader) error {
	var words int
	buf := make([]byte, 4)
	for {
		n, err := io.ReadFull(r, buf)
		if n == 0 {
			break
		}

		// A final partial word (n < 4) is zero-padded rather than
		// dropped, so a truncated image still loads its trailing bytes.
		word := make([]byte, 4)
		copy(word, buf[:n])

		// Program files are big-endian on disk; storage is
		// little-endian, so read-back through Read32 reproduces the
		// on-disk word value as a u32.
		value := binary.BigEndian.Uint32(word)
		little := make([]byte, 4)
		binary.LittleEndian.PutUint32(little, value)

		if !mem.WriteBytes(TextBase+mem.loadOffset, little) {
			return ErrMemoryFault
		}
		mem.loadOffset += 4
		words++

		if n < 4 || err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}
	log.Printf("mips: read %d words from program into memory", words)
	return nil
}
