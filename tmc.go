package rds

// MaxTMCAdditional bounds the number of optional fields a single TMC
// multi-group message can carry. Four 28-bit windows hold at most 28
// four-bit labels with zero-length data (the degenerate case), so 28 is
// a safe static bound; in practice messages carry far fewer.
const MaxTMCAdditional = 28

// TMCSystemParams holds the system parameters announced by type-3A
// groups carrying the TMC system AID (0xCD46 / 0xCD47), decoded from
// their variant-0 and variant-1 payloads (ISO 14819-1).
type TMCSystemParams struct {
	LTN           uint8 // Location Table Number
	AFI           bool  // Alternative Frequency Indicator
	EnhancedMode  bool
	MGS           uint8 // Message Geographical Scope
	Gap           uint8
	SID           uint8 // Service Identifier
	TA            uint8 // activity time
	TW            uint8 // window time
	TD            uint8 // delay time
}

// TMCMessage is a decoded TMC user message: the primary event location
// and description fields common to both single-group and multi-group
// encodings.
type TMCMessage struct {
	DP              uint8 // duration + persistence
	FollowDiversion bool
	NegDirection    bool
	Extent          uint8
	Event           uint16
	Location        uint16
}

// TMCAdditionalField is one (label, data) record unpacked from a
// multi-group message's optional-information bit stream (ISO 14819-1
// §5.5.1).
type TMCAdditionalField struct {
	Label uint8
	Data  uint16
}

// TMCAdditionalSet is the collection of optional fields attached to the
// most recently decoded multi-group TMC message.
type TMCAdditionalSet struct {
	Size   int
	Fields [MaxTMCAdditional]TMCAdditionalField
}

// TMC groups together everything the decoder knows about the Traffic
// Message Channel: the system parameters announced for this station,
// and the most recently validated user message (single- or
// multi-group) along with any optional fields it carried.
type TMC struct {
	System     TMCSystemParams
	Msg        TMCMessage
	Additional TMCAdditionalSet
}

// additionalLUT is the ISO 14819-1 §5.5.1 table of data-field lengths
// (in bits) indexed by 4-bit label.
var additionalLUT = [16]int{3, 3, 5, 5, 5, 8, 8, 8, 8, 11, 16, 16, 16, 16, 0, 0}

// decodeTMCAdditional unpacks the optional-field bit stream carried in
// up to four 28-bit windows (see bitCursor) into a TMCAdditionalSet.
func decodeTMCAdditional(words []uint32) TMCAdditionalSet {
	var set TMCAdditionalSet
	cursor := newBitCursor(words, 28)
	for set.Size < MaxTMCAdditional {
		labelBits, ok := cursor.read(4)
		if !ok {
			break
		}
		label := uint8(labelBits)
		length := additionalLUT[label]
		data, ok := cursor.read(length)
		if !ok {
			break
		}
		if label == 15 {
			continue
		}
		set.Fields[set.Size] = TMCAdditionalField{Label: label, Data: uint16(data)}
		set.Size++
	}
	return set
}
