package rds

import "github.com/kb9vck/rdsdecode/rdsdata"

// PTYString returns the display name for the currently decoded PTY,
// choosing the RDS or RBDS table per IsRBDS.
func (d *Decoder) PTYString() string {
	return rdsdata.PTY(d.PTY, d.IsRBDS)
}

// CountryString returns the ISO 3166 country code derived from ECC and
// the PI code's country nibble.
func (d *Decoder) CountryString() string {
	return rdsdata.Country(d.ECC, uint8(d.PI>>12))
}

// LanguageString returns the display name for the currently decoded LC.
func (d *Decoder) LanguageString() string {
	return rdsdata.Language(d.LC)
}

// CoverageString returns the coverage-area name derived from the PI
// code's area-coverage nibble.
func (d *Decoder) CoverageString() string {
	return rdsdata.Coverage(uint8(d.PI >> 8))
}
