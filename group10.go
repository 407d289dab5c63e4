package rds

// decodeGroup10 extracts PTYN (Program-Type Name) from type-10A groups
// (§4.9). The 8-character name is split across two 4-character halves,
// each published only once the same 4 bytes arrive twice in a row for
// that half.
func (d *Decoder) decodeGroup10() UpdateMask {
	if d.group.Version != VersionA {
		return 0
	}

	var mask UpdateMask

	segment := d.group.DataBLSB & 0x01
	abFlag := d.group.DataBLSB&0x10 != 0

	if abFlag != d.PTYNABFlag {
		d.PTYNABFlag = abFlag
		d.PTYN = [8]byte{}
		d.ptynNew = [2][4]byte{}
		d.ptynValid = [2]bool{}
		d.ValidFields &^= MaskPTYN
		mask |= MaskPTYN
	}

	chars := [4]byte{d.group.DataCMSB, d.group.DataCLSB, d.group.DataDMSB, d.group.DataDLSB}

	if chars == d.ptynNew[segment] {
		d.ptynValid[segment] = true
	} else {
		d.ptynNew[segment] = chars
		d.ptynValid[segment] = false
	}

	if d.ptynValid[0] && d.ptynValid[1] {
		var ptyn [8]byte
		copy(ptyn[0:4], d.ptynNew[0][:])
		copy(ptyn[4:8], d.ptynNew[1][:])
		d.ValidFields |= MaskPTYN
		if ptyn != d.PTYN {
			d.PTYN = ptyn
			mask |= MaskPTYN
		}
	}

	return mask
}
