package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RicGue02/LifeOS/internal/engine"
)

// RunBoard shows the day board for day until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, day time.Time, out io.Writer) error {
	m := newBoardModel(ctx, svc, day)
	p := tea.NewProgram(m, tea.WithOutput(out))

	unsubscribe := subscribeAwards(svc.Events(), func(msg tea.Msg) { go p.Send(msg) })
	defer unsubscribe()

	_, err := p.Run()
	return err
}

// subscribeAwards forwards experience and level-up events to send.
func subscribeAwards(events *engine.Events, send func(tea.Msg)) (unsubscribe func()) {
	return events.Subscribe(func(ev engine.Event) {
		switch ev.Kind {
		case engine.EventLevelUp, engine.EventExperienceAwarded:
			send(eventMsg{ev: ev})
		}
	})
}
