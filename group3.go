package rds

// aidTMCSystemA and aidTMCSystemB are the two Application IDs that mark
// a type-3A ODA announcement as carrying the TMC system parameters
// (ISO 14819-6).
const (
	aidTMCSystemA uint16 = 0xcd46
	aidTMCSystemB uint16 = 0xcd47
)

// decodeGroup3 registers an Open Data Application announcement and, if
// the announced AID identifies TMC, feeds the group to the TMC system
// decoder (§4.6).
func (d *Decoder) decodeGroup3() UpdateMask {
	if d.group.Version != VersionA {
		return 0
	}

	var mask UpdateMask

	entry := ODAEntry{
		GroupID: (d.group.DataBLSB & 0x1e) >> 1,
		AID:     uint16(d.group.DataDMSB)<<8 | uint16(d.group.DataDLSB),
	}
	if d.group.DataBLSB&0x01 != 0 {
		entry.Version = VersionB
	} else {
		entry.Version = VersionA
	}

	before := d.ODA
	if d.ODA.addOrUpdate(entry) {
		d.DecodeInformation |= DecodeInfoODA
	}
	if d.ODA != before {
		mask |= MaskODA
	}

	if entry.AID == aidTMCSystemA || entry.AID == aidTMCSystemB {
		mask |= d.decodeTMCSystem()
	}

	return mask
}

// decodeTMCSystem extracts the TMC system parameters announced in a
// type-3A group's block C, gated by the "same group received twice"
// rule on a staging slot separate from the one used for TMC user
// messages (§4.6).
func (d *Decoder) decodeTMCSystem() UpdateMask {
	if !d.prevTMCSysGroup.Observe(d.group) {
		return 0
	}

	sys := d.TMC.System
	variant := d.group.DataCMSB >> 6

	switch variant {
	case 0:
		sys.LTN = ((d.group.DataCMSB & 0x0f) << 2) | (d.group.DataCLSB >> 6)
		sys.AFI = d.group.DataCLSB&0x20 != 0
		sys.EnhancedMode = d.group.DataCLSB&0x10 != 0
		sys.MGS = d.group.DataCLSB & 0x0f
	case 1:
		sys.Gap = (d.group.DataCMSB & 0x30) >> 4
		sys.SID = ((d.group.DataCMSB & 0x0f) << 2) | (d.group.DataCLSB >> 6)
		if sys.EnhancedMode {
			sys.TA = (d.group.DataCLSB & 0x30) >> 4
			sys.TW = (d.group.DataCLSB & 0x0c) >> 2
			sys.TD = d.group.DataCLSB & 0x03
		}
	}

	d.ValidFields |= MaskTMCSystem
	if sys != d.TMC.System {
		d.TMC.System = sys
		return MaskTMCSystem
	}
	return 0
}
