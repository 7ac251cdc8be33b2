package constants

// Glyphs used by the terminal shell.
const (
	Home     = "⌂"
	Explore  = "◎"
	Saved    = "★"
	Profile  = "☺"
	Bookmark = "★"
	Unmarked = "☆"
	Likes    = "♥"
	Comments = "✎"
	Rating   = "★"
	Location = "⌖"
	Duration = "◷"
)
