package mips

import "encoding/binary"

// Fixed address-space layout. These never change at runtime; the five
// regions are declared once and dispatched by linear scan in
// declaration order.
const (
	DataBase  = 0x10000000
	DataSize  = 0x00100000
	TextBase  = 0x00400000
	TextSize  = 0x00100000
	StackBase = 0x7FF00000
	StackSize = 0x00100000
	KDataBase = 0x90000000
	KDataSize = 0x00100000
	KTextBase = 0x80000000
	KTextSize = 0x00100000
)

// MemRegion is a flat, zero-initialized byte buffer backing one fixed
// address range.
type MemRegion struct {
	Base  uint32
	Size  uint32
	Bytes []byte
}

func newRegion(base, size uint32) MemRegion {
	return MemRegion{Base: base, Size: size, Bytes: make([]byte, size)}
}

// Contains reports whether addr falls within this region.
func (r *MemRegion) Contains(addr uint32) bool {
	return addr >= r.Base && addr < r.Base+r.Size
}

func (r *MemRegion) read8(addr uint32) uint8 {
	return r.Bytes[addr-r.Base]
}

func (r *MemRegion) read16(addr uint32) uint16 {
	off := addr - r.Base
	return binary.LittleEndian.Uint16(r.Bytes[off : off+2])
}

func (r *MemRegion) read32(addr uint32) uint32 {
	off := addr - r.Base
	return binary.LittleEndian.Uint32(r.Bytes[off : off+4])
}

func (r *MemRegion) write8(addr uint32, v uint8) {
	r.Bytes[addr-r.Base] = v
}

func (r *MemRegion) write16(addr uint32, v uint16) {
	off := addr - r.Base
	binary.LittleEndian.PutUint16(r.Bytes[off:off+2], v)
}

func (r *MemRegion) write32(addr uint32, v uint32) {
	off := addr - r.Base
	binary.LittleEndian.PutUint32(r.Bytes[off:off+4], v)
}

func (r *MemRegion) writeBytes(addr uint32, bs []byte) {
	off := addr - r.Base
	copy(r.Bytes[off:], bs)
}

// Memory is the ordered, fixed sequence of five address regions.
type Memory struct {
	Regions [5]MemRegion

	// loadOffset tracks how far into TEXT the program loader has
	// written so far, so that multiple program images concatenate
	// instead of overwriting one another.
	loadOffset uint32
}

// NewMemory constructs the five regions, all zeroed, in the declaration
// order DATA/TEXT/STACK/KDATA/KTEXT.
func NewMemory() *Memory {
	return &Memory{
		Regions: [5]MemRegion{
			newRegion(DataBase, DataSize),
			newRegion(TextBase, TextSize),
			newRegion(StackBase, StackSize),
			newRegion(KDataBase, KDataSize),
			newRegion(KTextBase, KTextSize),
		},
	}
}

// region returns a pointer to the first region containing addr, or nil
// if addr falls outside every region.
func (m *Memory) region(addr uint32) *MemRegion {
	for i := range m.Regions {
		if m.Regions[i].Contains(addr) {
			return &m.Regions[i]
		}
	}
	return nil
}

// Read32 returns the word at addr, or ok=false if addr is undefined.
func (m *Memory) Read32(addr uint32) (v uint32, ok bool) {
	if r := m.region(addr); r != nil {
		return r.read32(addr), true
	}
	return 0, false
}

// Read16 returns the halfword at addr, or ok=false if addr is undefined.
func (m *Memory) Read16(addr uint32) (v uint16, ok bool) {
	if r := m.region(addr); r != nil {
		return r.read16(addr), true
	}
	return 0, false
}

// Read8 returns the byte at addr, or ok=false if addr is undefined.
func (m *Memory) Read8(addr uint32) (v uint8, ok bool) {
	if r := m.region(addr); r != nil {
		return r.read8(addr), true
	}
	return 0, false
}

// Write32 stores v at addr and reports success.
func (m *Memory) Write32(addr uint32, v uint32) bool {
	if r := m.region(addr); r != nil {
		r.write32(addr, v)
		return true
	}
	return false
}

// Write16 stores the low halfword of v at addr, preserving the other
// bytes of the containing word, and reports success.
func (m *Memory) Write16(addr uint32, v uint16) bool {
	if r := m.region(addr); r != nil {
		r.write16(addr, v)
		return true
	}
	return false
}

// Write8 stores the low byte of v at addr, preserving the other bytes
// of the containing word, and reports success.
func (m *Memory) Write8(addr uint32, v uint8) bool {
	if r := m.region(addr); r != nil {
		r.write8(addr, v)
		return true
	}
	return false
}

// WriteBytes writes bs starting at addr and reports success. Used only
// by the program loader, which supplies exactly four bytes at a time.
func (m *Memory) WriteBytes(addr uint32, bs []byte) bool {
	if r := m.region(addr); r != nil {
		r.writeBytes(addr, bs)
		return true
	}
	return false
}
