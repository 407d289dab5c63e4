package rds

import "testing"

func sendGroup4(d *Decoder, mjd uint32, utcHour, utcMinute, utcOffset uint8) UpdateMask {
	bLSB := uint8((mjd >> 15) & 0x03)
	cMSB := uint8((mjd >> 7) & 0xff)
	cLSB := uint8((mjd<<1)&0xff) | (utcHour >> 4)
	dMSB := (utcHour&0x0f)<<4 | (utcMinute >> 2)
	dLSB := (utcMinute&0x03)<<6 | (utcOffset & 0x3f)

	bWord := groupBWord(4, false, false, 0, bLSB)
	cWord := uint16(cMSB)<<8 | uint16(cLSB)
	dWord := uint16(dMSB)<<8 | uint16(dLSB)
	return addGroup(d, 0x1000, uint16(bWord), cWord, dWord)
}

func TestGroup4_MJDAcceptedOnSecondReception(t *testing.T) {
	d := NewDecoder(false)
	// MJD 58849 = 2020-01-01, 12:00 UTC, no offset.
	mask := sendGroup4(d, 58849, 12, 0, 0)
	if mask.Has(MaskTime) {
		t.Fatalf("time accepted on first reception")
	}
	mask = sendGroup4(d, 58849, 12, 0, 0)
	if !mask.Has(MaskTime) {
		t.Fatalf("time not accepted on second identical reception")
	}
	if d.Time.Year() != 2020 || d.Time.Month() != 1 || d.Time.Day() != 1 {
		t.Fatalf("decoded date = %v, want 2020-01-01", d.Time)
	}
	if d.Time.Hour() != 12 {
		t.Fatalf("decoded hour = %d, want 12", d.Time.Hour())
	}
}

func TestGroup4_LocalOffsetApplied(t *testing.T) {
	d := NewDecoder(false)
	sendGroup4(d, 58849, 12, 0, 2)
	mask := sendGroup4(d, 58849, 12, 0, 2)
	if !mask.Has(MaskTime) {
		t.Fatalf("time not accepted")
	}
	if d.Time.Hour() != 13 {
		t.Fatalf("hour = %d, want 13 (12 UTC + two half-hours)", d.Time.Hour())
	}
	_, offsetSeconds := d.Time.Zone()
	if offsetSeconds != 3600 {
		t.Fatalf("zone offset = %d, want 3600", offsetSeconds)
	}
}

func TestGroup4_NegativeOffset(t *testing.T) {
	d := NewDecoder(false)
	// bit 5 (0x20) selects the negative direction
	sendGroup4(d, 58849, 12, 0, 0x20|2)
	mask := sendGroup4(d, 58849, 12, 0, 0x20|2)
	if !mask.Has(MaskTime) {
		t.Fatalf("time not accepted")
	}
	if d.Time.Hour() != 11 {
		t.Fatalf("hour = %d, want 11 (12 UTC - two half-hours)", d.Time.Hour())
	}
}

func TestGroup4_VersionBIgnored(t *testing.T) {
	d := NewDecoder(false)
	bWord := groupBWord(4, true, false, 0, 0)
	mask := addGroup(d, 0x1000, uint16(bWord), 0, 0)
	if mask != 0 {
		t.Fatalf("version B group 4 produced an update: %v", mask)
	}
}
