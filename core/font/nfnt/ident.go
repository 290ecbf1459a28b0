package nfnt

import "strconv"

// Font family numbers of the classic Macintosh system fonts.
var familyNames = map[int]string{
	0:  "Chicago", // system font
	1:  "Geneva",  // application font
	2:  "New York",
	3:  "Geneva",
	4:  "Monaco",
	5:  "Venice",
	6:  "London",
	7:  "Athens",
	8:  "San Francisco",
	9:  "Toronto",
	11: "Cairo",
	12: "Los Angeles",
	13: "Zapf Dingbats",
	14: "Bookman",
	15: "Helvetica Narrow",
	16: "Palatino",
	18: "Zapf Chancery",
	20: "Times",
	21: "Helvetica",
	22: "Courier",
	23: "Symbol",
	24: "Mobile",
	33: "Avant Garde",
	34: "New Century Schoolbook",
}

// FamilyName returns the name of a classic font family number, or "" if
// the family is unknown.
func FamilyName(family int) string {
	return familyNames[family]
}

// ParseResourceID interprets a FONT resource ID. IDs have to be strings of
// decimal digits. A resource ID encodes font family and point size as
// family*128 + size; name is empty for unknown families.
func ParseResourceID(id string) (resID int, name string, size int, err error) {
	if id == "" {
		return 0, "", 0, errInvalidID(id)
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return 0, "", 0, errInvalidID(id)
		}
	}
	resID, err = strconv.Atoi(id)
	if err != nil { // overflow
		return 0, "", 0, errInvalidID(id)
	}
	return resID, FamilyName(resID >> 7), resID & 0x7f, nil
}
