package rdsdata

var coverageLUT = [16]string{
	"Local", "International", "National", "Supra-Regional",
	"Regional 1", "Regional 2", "Regional 3", "Regional 4",
	"Regional 5", "Regional 6", "Regional 7", "Regional 8",
	"Regional 9", "Regional 10", "Regional 11", "Regional 12",
}

// Coverage returns the coverage-area name for the 4-bit code carried in
// bits 8-11 of the PI code.
func Coverage(code uint8) string {
	return coverageLUT[code&0x0f]
}
