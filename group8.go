package rds

const (
	tmcFlagSingleGroup = 0x10
	tmcFlagTuningInfo  = 0x08
)

// decodeGroup8 is the entry point for TMC user messages (§4.8). Version
// A only; gated by the "same group twice in a row" rule on a staging
// slot dedicated to TMC user messages (separate from the one used for
// TMC system parameters). Once accepted, the staged candidate is
// invalidated so a third identical reception — the usual number of
// repetitions for an RDS-TMC group — doesn't re-trigger the same
// message.
func (d *Decoder) decodeGroup8() UpdateMask {
	if d.group.Version != VersionA {
		return 0
	}

	if !d.prevTMCGroup.Observe(d.group) {
		return 0
	}
	d.prevTMCGroup.Invalidate()

	lsb := d.group.DataBLSB
	singleGroup := lsb&tmcFlagSingleGroup != 0
	tuningInfo := lsb&tmcFlagTuningInfo != 0

	switch {
	case singleGroup && !tuningInfo:
		return d.decodeTMCSingleGroup()
	case !singleGroup && !tuningInfo:
		return d.decodeTMCMultiGroup()
	default:
		// TuningInfo variants 4..9: acknowledged, not decoded.
		return 0
	}
}

// tmcPrimaryFields reads the fields common to a single-group message and
// the first group of a multi-group message out of blocks C and D.
func (d *Decoder) tmcPrimaryFields() TMCMessage {
	return TMCMessage{
		FollowDiversion: d.group.DataCMSB&0x80 != 0,
		NegDirection:    d.group.DataCMSB&0x40 != 0,
		Extent:          (d.group.DataCMSB & 0x38) >> 3,
		Event:           uint16(d.group.DataCMSB&0x07)<<8 | uint16(d.group.DataCLSB),
		Location:        uint16(d.group.DataDMSB)<<8 | uint16(d.group.DataDLSB),
	}
}

// decodeTMCSingleGroup publishes a complete TmcMessage from one 8A group.
func (d *Decoder) decodeTMCSingleGroup() UpdateMask {
	msg := d.tmcPrimaryFields()
	msg.DP = d.group.DataBLSB & 0x07

	d.TMC.Msg = msg
	d.ValidFields |= MaskTMCSingleGroup
	d.ValidFields &^= MaskTMCMultiGroup
	return MaskTMCSingleGroup
}

// decodeTMCMultiGroup assembles a TmcMessage spread across two to five
// groups, reassembling the optional-field payload into 28-bit windows as
// each subsequent group arrives and unpacking it once the message
// completes (§4.8).
func (d *Decoder) decodeTMCMultiGroup() UpdateMask {
	cMSB := d.group.DataCMSB
	grpSeqID := (cMSB & 0x30) >> 4
	continuityID := d.group.DataBLSB & 0x07

	firstGroup := cMSB&0x80 != 0
	secondGroup := cMSB&0x40 != 0

	completed := false

	switch {
	case firstGroup:
		d.newTMCMsg = d.tmcPrimaryFields()
		d.continuityID = continuityID
		d.optionalLen = 0

	case secondGroup && continuityID == d.continuityID:
		d.grpSeqID = grpSeqID
		d.optionalTMC[0] = packOptionalWindow(d.group)
		d.optionalLen = 1
		completed = grpSeqID == 0

	case continuityID == d.continuityID && grpSeqID == d.grpSeqID-1:
		d.grpSeqID = grpSeqID
		if d.optionalLen < len(d.optionalTMC) {
			d.optionalTMC[d.optionalLen] = packOptionalWindow(d.group)
			d.optionalLen++
		}
		completed = grpSeqID == 0

	default:
		return 0
	}

	if !completed {
		return 0
	}

	d.TMC.Msg = d.newTMCMsg
	d.TMC.Additional = decodeTMCAdditional(d.optionalTMC[:d.optionalLen])
	d.ValidFields |= MaskTMCMultiGroup
	d.ValidFields &^= MaskTMCSingleGroup
	return MaskTMCMultiGroup
}

// packOptionalWindow packs the 28 bits of optional-field payload carried
// by a continuation group (bits 11..0 of block C, followed by all 16
// bits of block D) into a single 32-bit word, left-aligned to bit 31
// with the low 4 bits zeroed, matching the windowed layout bitCursor
// expects.
func packOptionalWindow(g Group) uint32 {
	c := uint32(g.DataCMSB&0x0f)<<8 | uint32(g.DataCLSB)
	d := uint32(g.DataDMSB)<<8 | uint32(g.DataDLSB)
	return (c<<20 | d<<4) & 0xfffffff0
}
