package figure

import "strconv"

// Info describes f as "A <color> <shape> - <area>". The area is computed
// on each call and printed in its shortest decimal form, e.g. "12" or "78.53".
func Info(f Figure) string {
	return "A " + string(f.Color()) + " " + string(f.Shape()) + " - " +
		strconv.FormatFloat(f.Area(), 'f', -1, 64)
}
