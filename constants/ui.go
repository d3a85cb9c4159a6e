package constants

// Cell rendering uses 2 terminal columns per logical cell so the playfield
// appears roughly square (terminal glyphs are ~2:1 tall:wide).
const (
	// CellWidth is the number of screen columns per logical cell
	CellWidth = 2

	// SnakeSegment is drawn for every body cell
	SnakeSegment = "██"

	// BonusFoodSymbol marks the time-limited bonus food
	BonusFoodSymbol = "✦✦"
)

// FoodSymbols is the rotating set a new food picks its glyph from.
var FoodSymbols = []string{"()", "[]", "{}", "<>", "##", "**", "@@"}

// GameTitle is the ASCII-art logo shown on the menu screen.
var GameTitle = []string{
	"  ╔═╗╔╗╔╔═╗╦╔═╔═╗  ",
	"  ╚═╗║║║╠═╣╠╩╗║╣   ",
	"  ╚═╝╝╚╝╩ ╩╩ ╩╚═╝  ",
}

// GameSubtitle is shown under the logo.
const GameSubtitle = "~ Terminal Snake ~"

// MenuItems in display and selection order. The engine dispatches on the
// index, so order changes here must be mirrored in the menu handler.
var MenuItems = []string{"Start Game", "High Scores", "Help", "Quit"}

// Menu row markers
const (
	MenuMarker = " ▶ "
	MenuSpacer = "   "
)

// Hint lines
const (
	MenuHint   = "↑/↓ navigate  Enter/Space select  Q quit"
	GameHints  = "P=pause  M=menu  R=restart  Q=quit"
	ReturnHint = "Press any key to return"
)

// HelpText is the body of the help screen.
var HelpText = []string{
	"Arrow keys / WASD ─ move the snake",
	"P ─ pause / resume",
	"R ─ restart game",
	"M / Esc ─ back to menu",
	"Q ─ quit",
	"",
	"Eat food to grow and score points.",
	"Avoid walls and your own tail!",
	"Speed increases every 5 points.",
	"Enter your initials for high scores!",
}

// InitialsHints explain the initials-entry controls.
var InitialsHints = []string{
	"↑/↓ = change letter",
	"←/→ = move cursor",
	"Enter = confirm",
	"Esc = skip",
}
