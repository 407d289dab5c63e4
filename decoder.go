package rds

import "time"

// decodeState tracks where the block assembler is within one group.
type decodeState uint8

const (
	stateEmpty decodeState = iota
	stateAReceived
	stateBReceived
	stateCReceived
)

// blockInvalid is a label value that never matches BlockA..BlockCPrime,
// used to mark an uncorrectable block so it can't advance the assembler.
const blockInvalid BlockLabel = 0xff

// Decoder reassembles a stream of RDS blocks into groups and extracts
// the station's broadcast metadata. A Decoder instance is a plain state
// machine: create one with NewDecoder, feed it blocks with Add, and read
// its exported fields between calls. Decoder is not safe for concurrent
// use; callers needing multiple readers must serialize externally.
type Decoder struct {
	IsRBDS bool

	// Always-present fields (§3 Data Model).
	PI         uint16
	PTY        uint8
	TP         bool
	TA         bool
	MS         bool
	DI         uint8
	LC         uint8
	ECC        uint8
	RTABFlag   bool
	PTYNABFlag bool

	// Variable-length fields.
	PS       [8]byte
	RT       [64]byte
	RTLength int
	PTYN     [8]byte
	AF       AFSet
	ODA      ODASet
	Time     time.Time
	TMC      TMC

	Statistics        Statistics
	ValidFields       UpdateMask
	DecodeInformation DecodeInfo

	// staging / private state — never read directly by callers.
	state     decodeState
	rawBlocks [4]RawBlock
	group     Group

	piStaged  Staged[uint16]
	ptyStaged Staged[uint8]
	eccStaged Staged[uint8]
	lcStaged  Staged[uint8]
	mjdStaged Staged[uint32]

	psNew   [8]byte
	psValid [8]bool

	ptynNew   [2][4]byte
	ptynValid [2]bool

	rtNew         [64]byte
	nextRTSegment int

	diNew         uint8
	nextDISegment uint8

	utcHour, utcMinute, utcOffset uint8

	prevTMCGroup    Staged[Group]
	prevTMCSysGroup Staged[Group]
	newTMCMsg       TMCMessage
	optionalTMC     [4]uint32
	optionalLen     int
	continuityID    uint8
	grpSeqID        uint8
}

// NewDecoder returns an empty decoder. isRBDS selects the PTY name table
// (RDS vs. RBDS) used by PTYString.
func NewDecoder(isRBDS bool) *Decoder {
	return &Decoder{IsRBDS: isRBDS}
}

// Close releases the decoder. It always returns nil: the decoder owns no
// external resource, but Close is provided so Decoder satisfies the same
// lifecycle shape as the rest of this package's callers expect from
// stream-processing types.
func (d *Decoder) Close() error {
	return nil
}

// Reset clears all staged and public decoder state. If preserveStatistics
// is true, Statistics is restored after the reset; IsRBDS is always
// restored.
func (d *Decoder) Reset(preserveStatistics bool) {
	isRBDS := d.IsRBDS
	stats := d.Statistics
	*d = Decoder{}
	d.IsRBDS = isRBDS
	if preserveStatistics {
		d.Statistics = stats
	}
}

// Group returns a copy of the most recently completed group.
func (d *Decoder) Group() Group {
	return d.group
}

// Add feeds one received block into the assembler. It returns the mask
// of public fields that changed as a direct result of this call; the
// mask is 0 unless this block completed a group.
func (d *Decoder) Add(block RawBlock) UpdateMask {
	d.Statistics.BlockCount++

	label := block.Label
	if block.Uncorrectable {
		label = blockInvalid
		d.Statistics.BlockErrorCount++
	} else if block.Corrected {
		d.Statistics.BlockCorrectedCount++
	}

	switch d.state {
	case stateEmpty:
		if label == BlockA {
			d.state = stateAReceived
			d.rawBlocks = [4]RawBlock{}
			d.rawBlocks[0] = block
		} else {
			d.Statistics.GroupErrorCount++
		}

	case stateAReceived:
		if label == BlockB {
			d.state = stateBReceived
			d.rawBlocks[1] = block
		} else {
			d.Statistics.GroupErrorCount++
			d.state = stateEmpty
		}

	case stateBReceived:
		if label == BlockC || label == BlockCPrime {
			d.state = stateCReceived
			d.rawBlocks[2] = block
		} else {
			d.Statistics.GroupErrorCount++
			d.state = stateEmpty
		}

	case stateCReceived:
		d.state = stateEmpty
		if label == BlockD {
			d.rawBlocks[3] = block
			d.Statistics.GroupCount++
			return d.decodeGroup()
		}
		d.Statistics.GroupErrorCount++

	default:
		d.state = stateEmpty
		d.Statistics.GroupErrorCount++
	}
	return 0
}

// decodeGroup extracts the group-type-independent fields from blocks A
// and B, stores the raw payload of C and D, and dispatches to the
// group-type-specific decoder.
func (d *Decoder) decodeGroup() UpdateMask {
	d.group = Group{}

	mask := d.decodeBlockA(d.rawBlocks[0])
	mask |= d.decodeBlockB(d.rawBlocks[1])
	d.decodeBlockC(d.rawBlocks[2])
	d.decodeBlockD(d.rawBlocks[3])

	mask |= d.dispatchGroup()
	return mask
}

// decodeBlockA extracts PI, gated by the "received twice" rule (§4.2).
func (d *Decoder) decodeBlockA(b RawBlock) UpdateMask {
	pi := b.Data
	d.group.PI = pi

	var mask UpdateMask
	if pi != d.PI {
		if d.piStaged.Observe(pi) {
			d.PI = pi
			d.ValidFields |= MaskPI
			mask |= MaskPI
		}
	}
	return mask
}

// decodeBlockB extracts group id, version, TP, PTY and the group-type
// payload nibble (§4.2). TP is accepted immediately; PTY follows the
// "received twice" rule.
func (d *Decoder) decodeBlockB(b RawBlock) UpdateMask {
	w := b.Data

	d.group.GroupID = uint8(w >> 12)
	if w&0x0800 != 0 {
		d.group.Version = VersionB
	} else {
		d.group.Version = VersionA
	}
	d.group.DataBLSB = uint8(w & 0x1f)

	var mask UpdateMask
	tp := w&0x0400 != 0
	if d.TP != tp {
		d.TP = tp
		mask |= MaskTP
	}
	d.ValidFields |= MaskTP

	pty := uint8((w >> 5) & 0x1f)
	if d.PTY == pty {
		d.ptyStaged.Observe(pty)
		return mask
	}
	if d.ptyStaged.Observe(pty) {
		d.PTY = pty
		d.ValidFields |= MaskPTY
		mask |= MaskPTY
	}
	return mask
}

func (d *Decoder) decodeBlockC(b RawBlock) {
	d.group.DataCMSB = b.msb()
	d.group.DataCLSB = b.lsb()
}

func (d *Decoder) decodeBlockD(b RawBlock) {
	d.group.DataDMSB = b.msb()
	d.group.DataDLSB = b.lsb()
}

// dispatchGroup routes a completed group to its group-type decoder,
// counting every group type seen regardless of whether a decoder is
// registered for it.
func (d *Decoder) dispatchGroup() UpdateMask {
	id := d.group.GroupID
	d.Statistics.GroupTypeCount[id]++

	switch id {
	case 0:
		return d.decodeGroup0()
	case 1:
		return d.decodeGroup1()
	case 2:
		return d.decodeGroup2()
	case 3:
		return d.decodeGroup3()
	case 4:
		return d.decodeGroup4()
	case 8:
		return d.decodeGroup8()
	case 10:
		return d.decodeGroup10()
	default:
		return 0
	}
}
