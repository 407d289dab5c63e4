package rds

// decodeGroup1 extracts ECC (variant 0) and LC (variant 3) from version
// A groups, each gated by the "received twice" rule (§4.4). Other
// variant codes carry slow-labeling information this decoder doesn't
// interpret and are silently ignored.
func (d *Decoder) decodeGroup1() UpdateMask {
	if d.group.Version != VersionA {
		return 0
	}

	var mask UpdateMask
	variant := (d.group.DataCMSB >> 4) & 0x07

	switch variant {
	case 0:
		if d.eccStaged.Observe(d.group.DataCLSB) {
			d.ValidFields |= MaskECC
			if d.ECC != d.group.DataCLSB {
				mask |= MaskECC
			}
			d.ECC = d.group.DataCLSB
		}
	case 3:
		if d.lcStaged.Observe(d.group.DataCLSB) {
			d.ValidFields |= MaskLC
			if d.LC != d.group.DataCLSB {
				mask |= MaskLC
			}
			d.LC = d.group.DataCLSB
		}
	}
	return mask
}
