package rds

// UpdateMask is a bitmask of RDS fields. Add returns the set of fields
// whose public value changed as a result of decoding one group;
// Decoder.ValidFields accumulates every field that has been validated
// since the last Reset, except that the RT and PTYN bits are cleared when
// their A/B flag toggles and the TMC single-group and multi-group bits
// each clear the other.
type UpdateMask uint32

const (
	MaskPI UpdateMask = 1 << iota
	MaskPTY
	MaskPS
	MaskRT
	MaskTP
	MaskTA
	MaskMS
	MaskDI
	MaskAF
	MaskECC
	MaskLC
	MaskTime
	MaskTMCSingleGroup
	MaskTMCMultiGroup
	MaskTMCSystem
	MaskPTYN
	MaskODA
)

// Has reports whether all bits of other are set in m.
func (m UpdateMask) Has(other UpdateMask) bool { return m&other == other }

// DecodeInfo is a bitmask of decoder-level capabilities observed on the
// air, independent of any specific field's value.
type DecodeInfo uint32

const (
	// DecodeInfoODA is set the first time any Open Data Application is
	// successfully registered in the ODA table.
	DecodeInfoODA DecodeInfo = 1 << iota
)
