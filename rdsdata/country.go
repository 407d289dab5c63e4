package rdsdata

// europeanCountries is the IEC 62106 Annex N country-code table for
// Extended Country Codes 0xE0-0xE4 (ITU Region 1, Europe). It is indexed
// [ecc-0xE0][country-code], where country-code is the top nibble of the
// PI code. The standard leaves some entries undefined; those are held
// as "". 0xE4's entry 7 is explicitly defined as a bare dash.
var europeanCountries = [5][16]string{
	{
		"", "DE", "DZ", "AD", "IL", "IT", "BE", "RU", "PS", "AL",
		"AT", "HU", "MT", "DE", "", "EG",
	},
	{
		"", "GR", "CY", "SM", "CH", "JO", "FI", "LU", "BG", "DK",
		"GI", "IQ", "GB", "LY", "RO", "FR",
	},
	{
		"", "MA", "CZ", "PL", "VA", "SK", "SY", "TN", "", "LI",
		"IS", "MC", "LT", "RS", "ES", "NO",
	},
	{
		"", "ME", "IE", "TR", "MK", "", "", "", "NL", "LV",
		"LB", "AZ", "HR", "KZ", "SE", "BY",
	},
	{
		"", "MD", "EE", "KG", "", "", "UA", "-", "PT", "SI",
		"AM", "", "GE", "", "", "BA",
	},
}

// Country returns the ISO 3166 country code for an Extended Country
// Code plus PI country-code nibble. Only Europe (ECC 0xE0-0xE4) is
// covered; everything else reports "Unknown", matching the scope IEC
// 62106 has actually standardized region tables for.
func Country(ecc uint8, piCountryCode uint8) string {
	region := ecc >> 4
	sub := ecc & 0x0f
	if region != 0x0e || sub > 0x04 {
		return "Unknown"
	}
	name := europeanCountries[sub][piCountryCode&0x0f]
	if name == "" {
		return "Unknown"
	}
	return name
}
