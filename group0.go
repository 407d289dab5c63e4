package rds

// decodeGroup0 extracts TA, MS, PS, DI and (version A only) AF from a
// type-0 group (§4.3).
func (d *Decoder) decodeGroup0() UpdateMask {
	var mask UpdateMask
	lsb := d.group.DataBLSB

	ta := lsb&0x10 != 0
	if d.TA != ta {
		d.TA = ta
		mask |= MaskTA
	}
	d.ValidFields |= MaskTA

	ms := lsb&0x08 != 0
	if d.MS != ms {
		d.MS = ms
		mask |= MaskMS
	}
	d.ValidFields |= MaskMS

	segment := lsb & 0x03
	d.addPS(int(segment)*2, d.group.DataDMSB)
	allValid := d.addPS(int(segment)*2+1, d.group.DataDLSB)
	if allValid {
		if d.PS != d.psNew {
			d.PS = d.psNew
			mask |= MaskPS
		}
		d.ValidFields |= MaskPS
	}

	if updated := d.accumulateDI(segment, lsb&0x04 != 0); updated {
		mask |= MaskDI
	}

	if d.group.Version == VersionA {
		if d.addAF() {
			mask |= MaskAF
		}
	}

	return mask
}

// addPS stages one PS character at position pos (0..7), validating it
// once the same character has been seen twice in a row at that
// position. Any mismatch at any position invalidates all 8 positions —
// a deliberately conservative policy so that PS drift is never adopted
// partially (§4.3).
func (d *Decoder) addPS(pos int, c byte) bool {
	if c == d.psNew[pos] {
		d.psValid[pos] = true
	} else {
		d.psNew[pos] = c
		d.psValid = [8]bool{}
	}
	for _, v := range d.psValid {
		if !v {
			return false
		}
	}
	return true
}

// accumulateDI folds one bit of the Decoder Information nibble into the
// staging buffer. Segments must arrive in order 0,1,2,3; an out-of-order
// segment restarts accumulation (§4.3, §9 note 5).
func (d *Decoder) accumulateDI(segment uint8, bit bool) (updated bool) {
	if segment != 0 && segment != d.nextDISegment {
		d.nextDISegment = 0
		d.diNew = 0
		return false
	}
	if bit {
		d.diNew |= 1 << segment
	} else {
		d.diNew &^= 1 << segment
	}
	if segment == 3 {
		d.nextDISegment = 0
		if d.DI != d.diNew {
			d.DI = d.diNew
			updated = true
		}
		d.ValidFields |= MaskDI
		return updated
	}
	d.nextDISegment = segment + 1
	return false
}

// addAF classifies the two AF bytes carried in block C of a type-0A
// group and folds any new frequencies into the station's AF set
// (§4.3). msb carries the announced-count and LF/MF-follows sentinels;
// when it signals LF/MF, lsb is consumed as that LF/MF value rather
// than also being treated as an independent VHF byte.
func (d *Decoder) addAF() (updated bool) {
	msb := d.group.DataCMSB
	lsb := d.group.DataCLSB

	if msb == 250 {
		if d.addLFMF(lsb) {
			updated = true
		}
		lsb = 0
	}
	if msb >= 224 && msb <= 249 {
		d.AF.AnnouncedAF = int(msb) - 224
	}
	if msb >= 1 && msb <= 204 {
		if d.AF.add(vhfFreq(msb)) {
			updated = true
		}
	}
	if lsb >= 1 && lsb <= 204 {
		if d.AF.add(vhfFreq(lsb)) {
			updated = true
		}
	}
	if d.AF.complete() {
		d.ValidFields |= MaskAF
	}
	return updated
}

func vhfFreq(af uint8) uint32 {
	return 87_500_000 + uint32(af)*100_000
}

// addLFMF decodes an LF/MF AF index using the AF byte itself as the
// table index, per the resolution of Open Question 1: IEC 62106 indexes
// 1..15 map to 153kHz.. in 9kHz steps, 16.. map to 531kHz.. in 9kHz
// steps.
func (d *Decoder) addLFMF(n uint8) bool {
	var freq uint32
	switch {
	case n >= 1 && n <= 15:
		freq = 153_000 + uint32(n-1)*9_000
	case n >= 16:
		freq = 531_000 + uint32(n-16)*9_000
	default:
		return false
	}
	return d.AF.add(freq)
}
