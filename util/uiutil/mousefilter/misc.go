package mousefilter

import "image"

// Pixels the pointer has to travel from the press point before a drag starts.
const MovePad = 3

func DetectMove(press, p image.Point) bool {
	r := image.Rectangle{press, press}
	// padding to detect intention to move/drag
	r = r.Inset(-MovePad) // negative inset (outset)
	return !p.In(r)
}
