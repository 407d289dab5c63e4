// Package rdsdata holds the static lookup tables IEC 62106 and NRSC-4
// define for turning numeric RDS fields into display strings: program
// type, country, language and coverage area.
package rdsdata

// rdsPTY is the European (IEC 62106) Programme Type name table.
var rdsPTY = [32]string{
	"None", "News", "Affairs", "Info", "Sport", "Education", "Drama",
	"Culture", "Science", "Varied Speech", "Pop Music",
	"Rock Music", "Easy Listening", "Light Classics M",
	"Serious Classics", "Other Music", "Weather", "Finance",
	"Children", "Social Affairs", "Religion", "Phone In",
	"Travel & Touring", "Leisure & Hobby", "Jazz Music",
	"Country Music", "National Music", "Oldies Music", "Folk Music",
	"Documentary", "Alarm Test", "Alarm!",
}

// rbdsPTY is the North American (NRSC-4) Programme Type name table.
var rbdsPTY = [32]string{
	"None", "News", "Information", "Sports", "Talk", "Rock",
	"Classic Rock", "Adult Hits", "Soft Rock", "Top 40", "Country",
	"Oldies", "Soft", "Nostalgia", "Jazz", "Classical",
	"R&B", "Soft R&B", "Foreign Language", "Religious Music",
	"Religious Talk", "Personality", "Public", "College",
	"Spanish Talk", "Spanish Music", "Hip-Hop", "Unassigned",
	"Unassigned", "Weather", "Emergency Test", "Emergency",
}

// PTY returns the display name for a Programme Type code, choosing the
// RDS or RBDS table. It returns "" for a code outside 0..31.
func PTY(pty uint8, isRBDS bool) string {
	if pty >= 32 {
		return ""
	}
	if isRBDS {
		return rbdsPTY[pty]
	}
	return rdsPTY[pty]
}
