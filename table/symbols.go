package table

// Miscellaneous symbols, U+2600.. subset, and ornamental dingbats,
// U+1F670.. subset. Values follow the reference data.
//
//nolint:gochecknoglobals
var blockSymbols = map[rune]string{
	'♔': "white king", '♕': "white queen", '♖': "white rook",
	'♗': "white bishop", '♘': "white knight", '♙': "white pawn",
	'♚': "black king", '♛': "black queen", '♜': "black rook",
	'♝': "black bishop", '♞': "black knight", '♟': "black pawn",
	'♠': "spades", '♡': "hearts", '♢': "diamonds", '♣': "clubs",
	'♤': "spades", '♥': "hearts", '♦': "diamonds", '♧': "clubs",
	'♯': "#",
}

//nolint:gochecknoglobals
var blockDingbats = map[rune]string{
	0x1F670: "et", 0x1F671: "et", 0x1F672: "et", 0x1F673: "et",
	0x1F674: "&", 0x1F675: "&",
	0x1F676: "\"", 0x1F677: "\"",
	0x1F678: ",,",
	0x1F679: "!?", 0x1F67A: "!?", 0x1F67B: "!?",
}

func init() {
	merge(blockSymbols)
	merge(blockDingbats)
}
