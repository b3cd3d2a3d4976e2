package input

import (
	"github.com/gdamore/tcell/v2"
)

var runeMoves = map[rune]Direction{
	'w': DirUp, 'W': DirUp, 'k': DirUp,
	's': DirDown, 'S': DirDown, 'j': DirDown,
	'a': DirLeft, 'A': DirLeft, 'h': DirLeft,
	'd': DirRight, 'D': DirRight, 'l': DirRight,
}

var keyMoves = map[tcell.Key]Direction{
	tcell.KeyUp:    DirUp,
	tcell.KeyDown:  DirDown,
	tcell.KeyLeft:  DirLeft,
	tcell.KeyRight: DirRight,
}

// Translate parses a tcell event into an Intent
// Phase-dependent meaning (Space starts on menus, fires in play) is left to the caller
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Intent{
			Type:    IntentPointer,
			CellX:   x,
			CellY:   y,
			Pressed: ev.Buttons()&tcell.Button1 != 0,
		}
	case *tcell.EventKey:
		return translateKey(ev)
	}
	return Intent{}
}

func translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return Intent{Type: IntentQuit}
	case tcell.KeyCtrlS:
		return Intent{Type: IntentToggleMute}
	case tcell.KeyEnter:
		return Intent{Type: IntentStart}
	case tcell.KeyEscape:
		return Intent{Type: IntentMenu}
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}

	if dir, ok := keyMoves[ev.Key()]; ok {
		return Intent{Type: IntentMove, Dir: dir}
	}
	return Intent{}
}

func translateRune(r rune) Intent {
	if dir, ok := runeMoves[r]; ok {
		return Intent{Type: IntentMove, Dir: dir}
	}
	switch r {
	case ' ':
		return Intent{Type: IntentFire}
	case '1', '2', '3':
		return Intent{Type: IntentChoose, Index: int(r - '1')}
	case 'q', 'Q':
		return Intent{Type: IntentQuit}
	case 'm', 'M':
		return Intent{Type: IntentToggleMute}
	case 'c', 'C':
		return Intent{Type: IntentClearHistory}
	}
	return Intent{}
}
