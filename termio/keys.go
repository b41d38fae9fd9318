package termio

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gamesetup"
)

var specialKeys = map[tcell.Key]gamesetup.Key{
	tcell.KeyEscape:     ebiten.KeyEscape,
	tcell.KeyEnter:      ebiten.KeyEnter,
	tcell.KeyTab:        ebiten.KeyTab,
	tcell.KeyBackspace:  ebiten.KeyBackspace,
	tcell.KeyBackspace2: ebiten.KeyBackspace,
	tcell.KeyDelete:     ebiten.KeyDelete,
	tcell.KeyUp:         ebiten.KeyArrowUp,
	tcell.KeyDown:       ebiten.KeyArrowDown,
	tcell.KeyLeft:       ebiten.KeyArrowLeft,
	tcell.KeyRight:      ebiten.KeyArrowRight,
	tcell.KeyHome:       ebiten.KeyHome,
	tcell.KeyEnd:        ebiten.KeyEnd,
	tcell.KeyPgUp:       ebiten.KeyPageUp,
	tcell.KeyPgDn:       ebiten.KeyPageDown,
}

var runeKeys = map[rune]gamesetup.Key{
	' ':  ebiten.KeySpace,
	'-':  ebiten.KeyMinus,
	'=':  ebiten.KeyEqual,
	',':  ebiten.KeyComma,
	'.':  ebiten.KeyPeriod,
	'/':  ebiten.KeySlash,
	';':  ebiten.KeySemicolon,
	'\'': ebiten.KeyQuote,
	'[':  ebiten.KeyBracketLeft,
	']':  ebiten.KeyBracketRight,
	'\\': ebiten.KeyBackslash,
	'`':  ebiten.KeyBackquote,
}

// KeyOf maps a tcell key event to an ebiten key. Letters map regardless
// of case.
func KeyOf(ev *tcell.EventKey) (gamesetup.Key, bool) {
	if ev.Key() != tcell.KeyRune {
		k, ok := specialKeys[ev.Key()]
		return k, ok
	}
	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z':
		return ebiten.KeyA + gamesetup.Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return ebiten.KeyA + gamesetup.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return ebiten.KeyDigit0 + gamesetup.Key(r-'0'), true
	}
	k, ok := runeKeys[r]
	return k, ok
}
