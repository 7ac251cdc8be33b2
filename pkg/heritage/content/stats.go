package content

import "strconv"

// StatKind selects which engagement figure Stat derives.
type StatKind int

const (
	StatLikes StatKind = iota
	StatComments
)

const (
	likesFactor    = 123
	likesBound     = 5000
	commentsFactor = 45
	commentsBound  = 300
)

// Stat derives a display figure for an item from its id alone. The result
// is a pure function of (id, kind): the same id always shows the same
// numbers.
//
// The id's code points are summed, scaled and reduced. Likes above 1000
// render as thousands with one decimal, rounded half up ("4.3k").
func Stat(id string, kind StatKind) string {
	sum := checksum(id)
	if kind == StatLikes {
		return formatThousands((sum * likesFactor) % likesBound)
	}
	return strconv.Itoa((sum * commentsFactor) % commentsBound)
}

func checksum(id string) int {
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	return sum
}

// formatThousands rounds half up on integers, so 1150 is "1.2k". Binary
// float formatting such as JavaScript's toFixed(1) gives "1.1k" there.
func formatThousands(v int) string {
	if v <= 1000 {
		return strconv.Itoa(v)
	}
	tenths := (v + 50) / 100
	return strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10) + "k"
}
