package rds

import "testing"

func block(label BlockLabel, data uint16) RawBlock {
	return RawBlock{Label: label, Data: data}
}

// addGroup feeds one complete group's four blocks and returns the mask
// from the final (D) block.
func addGroup(d *Decoder, a, b, c, dd uint16) UpdateMask {
	d.Add(block(BlockA, a))
	d.Add(block(BlockB, b))
	d.Add(block(BlockC, c))
	return d.Add(block(BlockD, dd))
}

func TestDecoder_PIAcceptOnSecondReception(t *testing.T) {
	d := NewDecoder(false)

	mask := addGroup(d, 0x1234, 0x0000, 0x0000, 0x0000)
	if mask.Has(MaskPI) {
		t.Fatalf("PI accepted on first reception")
	}
	if d.PI != 0 {
		t.Fatalf("PI set before confirmation: got %#x", d.PI)
	}

	mask = addGroup(d, 0x1234, 0x0000, 0x0000, 0x0000)
	if !mask.Has(MaskPI) {
		t.Fatalf("PI not accepted on second identical reception")
	}
	if d.PI != 0x1234 {
		t.Fatalf("PI = %#x, want 0x1234", d.PI)
	}

	mask = addGroup(d, 0x1234, 0x0000, 0x0000, 0x0000)
	if mask.Has(MaskPI) {
		t.Fatalf("PI re-triggered on third identical reception")
	}
}

func TestDecoder_BlockAssembler(t *testing.T) {
	t.Run("C-prime accepted in place of C", func(t *testing.T) {
		d := NewDecoder(false)
		d.Add(block(BlockA, 0x1111))
		d.Add(block(BlockB, 0x0000))
		d.Add(block(BlockCPrime, 0x0000))
		mask := d.Add(block(BlockD, 0x0000))
		if d.Statistics.GroupCount != 1 {
			t.Fatalf("GroupCount = %d, want 1", d.Statistics.GroupCount)
		}
		_ = mask
	})

	t.Run("out of order block resets state machine", func(t *testing.T) {
		d := NewDecoder(false)
		d.Add(block(BlockA, 0x1111))
		d.Add(block(BlockC, 0x0000)) // expected B, got C
		if d.Statistics.GroupErrorCount != 1 {
			t.Fatalf("GroupErrorCount = %d, want 1", d.Statistics.GroupErrorCount)
		}
		// state machine should have reset to Empty; a fresh A starts cleanly
		d.Add(block(BlockA, 0x2222))
		d.Add(block(BlockB, 0x0000))
		d.Add(block(BlockC, 0x0000))
		d.Add(block(BlockD, 0x0000))
		if d.Statistics.GroupCount != 1 {
			t.Fatalf("GroupCount = %d, want 1", d.Statistics.GroupCount)
		}
	})

	t.Run("uncorrectable block counts as block error and never advances", func(t *testing.T) {
		d := NewDecoder(false)
		d.Add(RawBlock{Label: BlockA, Data: 0x1111, Uncorrectable: true})
		if d.Statistics.BlockErrorCount != 1 {
			t.Fatalf("BlockErrorCount = %d, want 1", d.Statistics.BlockErrorCount)
		}
		if d.Statistics.GroupErrorCount != 1 {
			t.Fatalf("GroupErrorCount = %d, want 1", d.Statistics.GroupErrorCount)
		}
	})
}

func TestDecoder_Reset(t *testing.T) {
	d := NewDecoder(true)
	addGroup(d, 0x1234, 0x0000, 0x0000, 0x0000)
	addGroup(d, 0x1234, 0x0000, 0x0000, 0x0000)
	if d.PI == 0 {
		t.Fatalf("setup failed: PI not accepted")
	}

	d.Reset(true)
	if !d.IsRBDS {
		t.Fatalf("IsRBDS not preserved across Reset")
	}
	if d.Statistics.GroupCount == 0 {
		t.Fatalf("Statistics not preserved when preserveStatistics=true")
	}
	if d.PI != 0 {
		t.Fatalf("PI not cleared by Reset: got %#x", d.PI)
	}

	d.Reset(false)
	if d.Statistics.GroupCount != 0 {
		t.Fatalf("Statistics not cleared when preserveStatistics=false")
	}
}

func TestDecoder_GroupValueCopy(t *testing.T) {
	d := NewDecoder(false)
	addGroup(d, 0x1234, 0x5678, 0x0000, 0x0000)
	g := d.Group()
	if g.PI != 0x1234 {
		t.Fatalf("Group().PI = %#x, want 0x1234", g.PI)
	}
	// mutating the returned value must not affect the decoder's state
	g.PI = 0xffff
	if d.Group().PI != 0x1234 {
		t.Fatalf("Group() did not return an independent copy")
	}
}
