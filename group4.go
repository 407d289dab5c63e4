package rds

import "time"

// decodeGroup4 extracts the Modified Julian Day, UTC time and local
// offset carried by a type-4A group and, once the same MJD has been
// seen twice in a row, converts the whole thing into a time.Time
// (§4.7). Only version A carries date/time; version B is ignored.
func (d *Decoder) decodeGroup4() UpdateMask {
	if d.group.Version != VersionA {
		return 0
	}

	mjd := uint32(d.group.DataBLSB&0x03)<<15 |
		uint32(d.group.DataCMSB)<<7 |
		uint32(d.group.DataCLSB>>1)

	if !d.mjdStaged.Observe(mjd) {
		return 0
	}

	d.utcHour = ((d.group.DataCLSB & 0x01) << 4) | (d.group.DataDMSB >> 4)
	d.utcMinute = ((d.group.DataDMSB & 0x0f) << 2) | (d.group.DataDLSB >> 6)
	d.utcOffset = d.group.DataDLSB & 0x3f

	t := decodeMJD(mjd, d.utcHour, d.utcMinute, d.utcOffset)

	d.ValidFields |= MaskTime
	if !t.Equal(d.Time) {
		d.Time = t
		return MaskTime
	}
	return 0
}

// decodeMJD converts an RDS Modified Julian Day plus UTC hour/minute and
// a signed half-hour local offset into a civil time.Time, following the
// Annex G formulas of IEC 62106. utcOffset's bit 5 is the sign; bits 0-4
// are the magnitude in half-hour units.
func decodeMJD(mjd uint32, utcHour, utcMinute, utcOffset uint8) time.Time {
	offset := int(utcOffset & 0x1f)
	hour := int(utcHour)
	minute := int(utcMinute)

	negative := utcOffset&0x20 != 0
	if negative {
		hour -= offset / 2
		minute -= (offset % 2) * 30
	} else {
		hour += offset / 2
		minute += (offset % 2) * 30
	}

	fmjd := float64(mjd)
	y := int((fmjd - 15078.2) / 365.25)
	m := int((fmjd - 14956.1 - float64(int(float64(y)*365.25))) / 30.6001)
	dd := int(fmjd - 14956 - float64(int(float64(y)*365.25)) - float64(int(float64(m)*30.6001)))

	k := 0
	if m == 14 || m == 15 {
		k = 1
	}
	y = y + k
	m = m - 1 - k*12

	gmtoff := offset * 1800
	if negative {
		gmtoff = -gmtoff
	}
	loc := time.FixedZone("", gmtoff)

	return time.Date(y+1900, time.Month(m), dd, hour, minute, 0, 0, loc)
}
