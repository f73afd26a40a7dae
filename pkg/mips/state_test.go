package mips

import (
	"os"
	"path/filepath"
	"testing"
)

func writeImageFile(t *testing.T, words ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(path, words, 0o644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}
	return path
}

func TestNewMachineLoadsImageAndSetsPC(t *testing.T) {
	path := writeImageFile(t, 0x24, 0x08, 0x00, 0x05) // ADDIU r8, r0, 5
	m, err := NewMachine(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Current.PC != TextBase {
		t.Errorf("PC = 0x%08X, want 0x%08X", m.Current.PC, uint32(TextBase))
	}
	if m.Next != m.Current {
		t.Error("expected Next to mirror Current right after construction")
	}
	if !m.Running {
		t.Error("expected a freshly constructed machine to be running")
	}
	for i, r := range m.Current.Regs {
		if r != 0 {
			t.Errorf("Regs[%d] = %d, want 0", i, r)
		}
	}
	word, ok := m.Memory.Read32(TextBase)
	if !ok || word != 0x24080005 {
		t.Errorf("loaded word = (0x%08X, %v), want (0x24080005, true)", word, ok)
	}
}

func TestNewMachineRejectsMissingFile(t *testing.T) {
	if _, err := NewMachine(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Error("expected an error opening a nonexistent image")
	}
}

func TestSetRegUpdatesBothSnapshots(t *testing.T) {
	m := newTestMachine()
	if ok := m.SetReg(8, 42); !ok {
		t.Fatal("SetReg(8, 42) failed")
	}
	if m.Current.Regs[8] != 42 || m.Next.Regs[8] != 42 {
		t.Errorf("Current=%d Next=%d, want both 42", m.Current.Regs[8], m.Next.Regs[8])
	}
}

func TestSetRegRejectsOutOfRange(t *testing.T) {
	m := newTestMachine()
	if m.SetReg(32, 1) {
		t.Error("expected SetReg(32, ...) to fail")
	}
	if m.SetReg(-1, 1) {
		t.Error("expected SetReg(-1, ...) to fail")
	}
}

func TestSetRegZeroIsANoOp(t *testing.T) {
	m := newTestMachine()
	if ok := m.SetReg(0, 99); !ok {
		t.Fatal("SetReg(0, ...) should report success")
	}
	if m.Current.Regs[0] != 0 || m.Next.Regs[0] != 0 {
		t.Error("expected R0 to remain zero")
	}
}

func TestSetHILO(t *testing.T) {
	m := newTestMachine()
	m.SetHI(0x11)
	m.SetLO(0x22)
	if m.Current.HI != 0x11 || m.Next.HI != 0x11 {
		t.Error("expected HI set in both snapshots")
	}
	if m.Current.LO != 0x22 || m.Next.LO != 0x22 {
		t.Error("expected LO set in both snapshots")
	}
}

func TestCommitPinsRegisterZero(t *testing.T) {
	m := newTestMachine()
	m.Next.Regs[0] = 0xFFFFFFFF
	m.commit()
	if m.Current.Regs[0] != 0 {
		t.Errorf("R0 = %d after commit, want 0", m.Current.Regs[0])
	}
}

func TestCommitIncrementsInstrCountAndMirrorsNext(t *testing.T) {
	m := newTestMachine()
	m.Next.Regs[4] = 123
	m.Next.PC = 0x00400004
	before := m.InstrCount
	m.commit()
	if m.InstrCount != before+1 {
		t.Errorf("InstrCount = %d, want %d", m.InstrCount, before+1)
	}
	if m.Current.Regs[4] != 123 {
		t.Errorf("Current.Regs[4] = %d, want 123", m.Current.Regs[4])
	}
	if m.Current != m.Next {
		t.Error("expected Next to mirror Current after commit")
	}
}

func TestResetReloadsOriginalImages(t *testing.T) {
	path := writeImageFile(t, 0x24, 0x08, 0x00, 0x05)
	m, err := NewMachine(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Step(); err != nil {
		t.Fatalf("unexpected error stepping: %v", err)
	}
	if m.Current.Regs[8] != 5 || m.InstrCount != 1 {
		t.Fatal("sanity check failed: expected one executed instruction before reset")
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("unexpected error on reset: %v", err)
	}
	if m.Current.Regs[8] != 0 {
		t.Errorf("R8 = %d after reset, want 0", m.Current.Regs[8])
	}
	if m.InstrCount != 0 {
		t.Errorf("InstrCount = %d after reset, want 0", m.InstrCount)
	}
	if m.Current.PC != TextBase {
		t.Errorf("PC = 0x%08X after reset, want 0x%08X", m.Current.PC, uint32(TextBase))
	}
	if !m.Running {
		t.Error("expected machine to be running again after reset")
	}
}

func TestResetWithNewImages(t *testing.T) {
	path1 := writeImageFile(t, 0x24, 0x08, 0x00, 0x05)
	path2 := writeImageFile(t, 0x24, 0x08, 0x00, 0x09)
	m, err := NewMachine(path1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Reset(path2); err != nil {
		t.Fatalf("unexpected error on reset: %v", err)
	}
	if err := m.Step(); err != nil {
		t.Fatalf("unexpected error stepping: %v", err)
	}
	if m.Current.Regs[8] != 9 {
		t.Errorf("R8 = %d, want 9 (reset should have loaded the new image)", m.Current.Regs[8])
	}
}
