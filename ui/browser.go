package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"rune-savior/ds"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/dregistry"
)

const (
	StateKinds   = "kinds"
	StateIDs     = "ids"
	StateRecord  = "record"
	DefaultPage  = 20
	headerHeight = 6
)

// Browser walks a loaded registry: kinds, then the ids of a kind, then one
// record.
type Browser struct {
	registry   *dregistry.Registry
	kinds      []dcodec.Kind
	state      string
	kindCursor int
	idCursor   int
	ids        []int32
	record     string
	page       int
}

func CreateBrowser(registry *dregistry.Registry) Browser {
	return Browser{
		registry: registry,
		kinds:    registry.Kinds(),
		state:    StateKinds,
		page:     DefaultPage,
	}
}

func (b Browser) currentKind() dcodec.Kind {
	return b.kinds[b.kindCursor]
}

func (b Browser) currentView() dregistry.View {
	view, ok := b.registry.Table(b.currentKind())
	if !ok {
		err := ds.ErrUnreachableCode{Caller: "Browser.currentView"}
		log.Panic(err)
	}
	return view
}

func (b Browser) describe(id int32) string {
	lhm, ok := b.currentView().Describe(id)
	if !ok {
		return fmt.Sprintf("%s %d is not loaded", b.currentKind(), id)
	}
	bs, err := json.MarshalIndent(lhm, "", "  ")
	if err != nil {
		err := errors.Wrap(err, "Browser.describe MarshalIndent error")
		return err.Error()
	}
	return string(bs)
}

func clamp(i int, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (b Browser) moveCursor(delta int) Browser {
	switch b.state {
	case StateKinds:
		b.kindCursor = clamp(b.kindCursor+delta, len(b.kinds))
	case StateIDs:
		if len(b.ids) > 0 {
			b.idCursor = clamp(b.idCursor+delta, len(b.ids))
		}
	}
	return b
}

func (b Browser) enter() Browser {
	switch b.state {
	case StateKinds:
		b.ids = b.currentView().IDs()
		b.idCursor = 0
		b.state = StateIDs
	case StateIDs:
		if len(b.ids) > 0 {
			b.record = b.describe(b.ids[b.idCursor])
			b.state = StateRecord
		}
	}
	return b
}

func (b Browser) back() Browser {
	switch b.state {
	case StateIDs:
		b.state = StateKinds
	case StateRecord:
		b.state = StateIDs
	}
	return b
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > headerHeight {
			b.page = msg.Height - headerHeight
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "up", "k":
			return b.moveCursor(-1), nil
		case "down", "j":
			return b.moveCursor(1), nil
		case "pgup":
			return b.moveCursor(-b.page), nil
		case "pgdown":
			return b.moveCursor(b.page), nil
		case "enter", "right", "l":
			return b.enter(), nil
		case "esc", "left", "h", "backspace":
			return b.back(), nil
		}
	}
	return b, nil
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func cursorLine(selected bool, line string) string {
	if selected {
		return "> " + line + "\n"
	}
	return "  " + line + "\n"
}

func (b Browser) View() string {
	output := strings.Builder{}
	output.WriteString("RUNE SAVIOR\n\n")
	output.WriteString(fmt.Sprintf("Revision: %d\n", b.registry.Revision()))

	switch b.state {
	case StateKinds:
		output.WriteString("Choose a kind\n\n")
		for i, kind := range b.kinds {
			view, _ := b.registry.Table(kind)
			line := fmt.Sprintf("%-12s %d", kind, view.Size())
			output.WriteString(cursorLine(i == b.kindCursor, line))
		}
	case StateIDs:
		output.WriteString(fmt.Sprintf("%s: %d definitions\n\n", b.currentKind(), len(b.ids)))
		if len(b.ids) == 0 {
			output.WriteString("  nothing loaded\n")
			break
		}
		start := b.idCursor - b.idCursor%b.page
		end := clamp(start+b.page, len(b.ids)+1)
		for i := start; i < end; i++ {
			output.WriteString(cursorLine(i == b.idCursor, fmt.Sprintf("%d", b.ids[i])))
		}
	case StateRecord:
		output.WriteString(fmt.Sprintf("%s %d\n\n", b.currentKind(), b.ids[b.idCursor]))
		output.WriteString(b.record)
		output.WriteString("\n")
	default:
		err := fmt.Sprintf(`Browser.View unreachable code: invalid state "%s"`, b.state)
		log.Panic(err)
	}
	return output.String()
}
