package rds

import "testing"

func sendGroup3(d *Decoder, odaGroupID uint8, odaVersionB bool, aid uint16) UpdateMask {
	lsb := (odaGroupID << 1) & 0x1e
	if odaVersionB {
		lsb |= 0x01
	}
	bWord := groupBWord(3, false, false, 0, lsb)
	dWord := aid
	return addGroup(d, 0x1000, uint16(bWord), 0, dWord)
}

func TestGroup3_ODARegistration(t *testing.T) {
	d := NewDecoder(false)
	mask := sendGroup3(d, 5, false, 0x1234)
	if !mask.Has(MaskODA) {
		t.Fatalf("ODA not registered on first announcement")
	}
	if d.ODA.Size != 1 {
		t.Fatalf("ODA.Size = %d, want 1", d.ODA.Size)
	}
	if d.DecodeInformation&DecodeInfoODA == 0 {
		t.Fatalf("DecodeInfoODA not set")
	}
}

func TestGroup3_ODAUpdateExistingEntry(t *testing.T) {
	d := NewDecoder(false)
	sendGroup3(d, 5, false, 0x1234)
	mask := sendGroup3(d, 5, false, 0x5678)
	if !mask.Has(MaskODA) {
		t.Fatalf("changing an existing ODA entry's AID did not signal MaskODA")
	}
	if d.ODA.Size != 1 {
		t.Fatalf("ODA.Size = %d, want 1 (update, not append)", d.ODA.Size)
	}
	if d.ODA.ODA[0].AID != 0x5678 {
		t.Fatalf("AID = %#x, want 0x5678 (updated)", d.ODA.ODA[0].AID)
	}
}

func TestGroup3_TMCSystemVariant0(t *testing.T) {
	d := NewDecoder(false)
	send := func() UpdateMask {
		return sendGroup3WithSystem(d, 0, 0x12, true, true, 0x3)
	}
	send()
	mask := send()
	if !mask.Has(MaskTMCSystem) {
		t.Fatalf("TMC system parameters not accepted on second identical reception")
	}
	if d.TMC.System.LTN != 0x12 {
		t.Fatalf("LTN = %#x, want 0x12", d.TMC.System.LTN)
	}
	if !d.TMC.System.AFI || !d.TMC.System.EnhancedMode {
		t.Fatalf("AFI/EnhancedMode not decoded: %+v", d.TMC.System)
	}
	if d.TMC.System.MGS != 0x3 {
		t.Fatalf("MGS = %#x, want 0x3", d.TMC.System.MGS)
	}

	// a third identical reception must not re-signal the mask
	mask = send()
	if mask.Has(MaskTMCSystem) {
		t.Fatalf("TMC system re-signaled on third identical reception")
	}
}

// sendGroup3WithSystem builds a type-3A group announcing the TMC system
// AID and carrying a variant-0 payload in block C.
func sendGroup3WithSystem(d *Decoder, odaGroupID uint8, ltn uint8, afi, enhanced bool, mgs uint8) UpdateMask {
	lsb := (odaGroupID << 1) & 0x1e
	bWord := groupBWord(3, false, false, 0, lsb)

	cLSB := mgs & 0x0f
	if afi {
		cLSB |= 0x20
	}
	if enhanced {
		cLSB |= 0x10
	}
	cMSB := (ltn >> 2) & 0x0f
	cLSB |= (ltn & 0x03) << 6
	cWord := uint16(cMSB)<<8 | uint16(cLSB)

	return addGroup(d, 0x1000, uint16(bWord), cWord, uint16(aidTMCSystemA))
}
