// Package tui places one player's fleet from an interactive terminal.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saeidalz13/battleship-setup/api"
	"github.com/saeidalz13/battleship-setup/internal/error/i18n"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/command"
)

type model struct {
	game         *mb.Game
	role         mb.PlayerRole
	locale       string
	input        string
	notice       string
	lastErr      string
	showOpponent bool
}

func New(game *mb.Game, role mb.PlayerRole, locale string) tea.Model {
	return initialModel(game, role, locale)
}

func initialModel(game *mb.Game, role mb.PlayerRole, locale string) model {
	return model{
		game:   game,
		role:   role,
		locale: locale,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(), nil
		case tea.KeyTab:
			m.showOpponent = !m.showOpponent
		case tea.KeyBackspace:
			if runes := []rune(m.input); len(runes) > 0 {
				m.input = string(runes[:len(runes)-1])
			}
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

// submit runs the typed line through the same text grammar as scripts.
// Only placements and view switches make sense here.
func (m model) submit() model {
	line := strings.TrimSpace(m.input)
	m.input = ""
	m.notice = ""
	m.lastErr = ""
	if line == "" {
		return m
	}

	payload, err := api.ParseTextCommand(line)
	if err != nil {
		m.lastErr = i18n.Localize(err, m.locale)
		return m
	}

	var signal mc.Signal
	if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
		m.lastErr = "invalid command"
		return m
	}

	switch *signal.Code {
	case mc.CodePlaceShip:
		respMsg := api.NewRequest(m.locale, payload).HandlePlaceShip(m.game, m.role)
		if respMsg.Error != nil {
			m.lastErr = respMsg.Error.Message
			return m
		}
		m.notice = i18n.Message(m.locale, i18n.KeyShipPlaced, respMsg.Payload.ShipType.String(), strings.ToUpper(respMsg.Payload.Position), respMsg.Payload.Direction)
		if respMsg.Payload.IsReady {
			m.notice += "\n" + i18n.Message(m.locale, i18n.KeyPlayerReady)
		}
	case mc.CodeOwnerView:
		m.showOpponent = false
	case mc.CodeOpponentView:
		m.showOpponent = true
	default:
		m.lastErr = fmt.Sprintf("%q is not available here", line)
	}
	return m
}

func (m model) View() string {
	s := fmt.Sprintf("Fleet setup - game %s, %s player %s\n\n", m.game.Uuid(), m.role, m.game.PlayerUuid(m.role))

	if m.showOpponent {
		s += "As seen by the opponent:\n"
		s += m.game.OpponentView(m.role).String()
	} else {
		s += m.game.OwnerView(m.role).String()
	}

	remaining := m.game.RemainingShips(m.role)
	names := make([]string, len(remaining))
	for i, st := range remaining {
		names[i] = fmt.Sprintf("%s (%d)", st, st.Size())
	}
	s += fmt.Sprintf("\nRemaining: %s\n\n", strings.Join(names, ", "))

	if m.notice != "" {
		s += m.notice + "\n"
	}
	if m.lastErr != "" {
		s += "error: " + m.lastErr + "\n"
	}

	s += "> " + m.input + "_\n"
	s += "\nType <position> <ship> <direction>, e.g. B4 Carrier E\n"
	s += "enter: place  tab: opponent view  esc: quit\n"
	return s
}
