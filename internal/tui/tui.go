// Package tui renders a single-player blackjack table in the terminal:
// a betting stage, per-hand decisions gated by the engine's legal
// options, the dealer's face-down hole card, and settlement between
// rounds.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/guizado/blackjack/internal/deck"
	"github.com/guizado/blackjack/internal/game"
	"github.com/guizado/blackjack/internal/session"
)

type phase int

const (
	phaseBetting phase = iota
	phaseActing
	phaseSettled
	phaseBroke
)

// Model is the Bubble Tea model for the blackjack table
type Model struct {
	session       *session.Session
	denominations []int
	logger        *log.Logger

	phase    phase
	wager    int
	current  int // hand index being played
	results  []game.Result
	errMsg   string
	quitting bool

	keys keyMap
	help help.Model
}

type keyMap struct {
	Chips   []key.Binding
	Cancel  key.Binding
	Deal    key.Binding
	Hit     key.Binding
	Stand   key.Binding
	Double  key.Binding
	Split   key.Binding
	Proceed key.Binding
	Quit    key.Binding
}

func newKeyMap(denominations []int) keyMap {
	chips := make([]key.Binding, len(denominations))
	for i, d := range denominations {
		k := fmt.Sprintf("%d", i+1)
		chips[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, fmt.Sprintf("bet %d", d)),
		)
	}
	return keyMap{
		Chips:   chips,
		Cancel:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel bet")),
		Deal:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "deal")),
		Hit:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		Double:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "double down")),
		Split:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "split")),
		Proceed: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next round")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.Double, k.Split, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// New creates a table model over the given session
func New(sess *session.Session, denominations []int, logger *log.Logger) *Model {
	return &Model{
		session:       sess,
		denominations: denominations,
		logger:        logger.WithPrefix("tui"),
		keys:          newKeyMap(denominations),
		help:          help.New(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	m.errMsg = ""
	switch m.phase {
	case phaseBetting:
		return m.updateBetting(keyMsg)
	case phaseActing:
		return m.updateActing(keyMsg)
	case phaseSettled:
		return m.updateSettled(keyMsg)
	case phaseBroke:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateBetting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for i, chip := range m.keys.Chips {
		if key.Matches(msg, chip) {
			d := m.denominations[i]
			if m.wager+d > m.session.Round().Bankroll() {
				m.errMsg = "not enough in the bankroll for that chip"
				return m, nil
			}
			m.wager += d
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.wager = 0
	case key.Matches(msg, m.keys.Deal):
		if err := m.session.StartRound(m.wager); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.wager = 0
		m.current = 0
		m.phase = phaseActing
		m.advance()
	}
	return m, nil
}

func (m *Model) updateActing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var opt game.Option
	switch {
	case key.Matches(msg, m.keys.Hit):
		opt = game.Hit
	case key.Matches(msg, m.keys.Stand):
		opt = game.Stand
	case key.Matches(msg, m.keys.Double):
		opt = game.Double
	case key.Matches(msg, m.keys.Split):
		opt = game.Split
	default:
		return m, nil
	}

	options, err := m.session.Round().AvailableOptions(m.current)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if !optionOffered(options, opt) {
		m.errMsg = fmt.Sprintf("%s is not available on this hand", opt)
		return m, nil
	}
	if err := m.session.Apply(opt, m.current); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.advance()
	return m, nil
}

// advance moves the cursor to the next open hand, or finishes the round
// when every hand is done.
func (m *Model) advance() {
	r := m.session.Round()
	if !r.Finished() {
		for i, h := range r.Player().Hands() {
			if !h.IsFinished() {
				m.current = i
				return
			}
		}
	}

	results, err := m.session.CompleteRound()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.logger.Debug("round settled", "hands", len(results))
	m.results = results
	m.phase = phaseSettled
}

func (m *Model) updateSettled(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Proceed) {
		return m, nil
	}
	m.session.NextRound()
	m.results = nil
	if m.session.Broke() {
		m.phase = phaseBroke
		return m, nil
	}
	m.phase = phaseBetting
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("♠ ♥ Blackjack ♣ ♦"))
	b.WriteString("\n\n")
	b.WriteString(m.viewDealer())
	b.WriteString("\n")
	b.WriteString(m.viewHands())
	b.WriteString("\n")
	b.WriteString(BankrollStyle.Render(fmt.Sprintf("Bankroll: %d", m.session.Round().Bankroll())))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseBetting:
		b.WriteString(m.viewBetting())
	case phaseActing:
		b.WriteString(m.viewOptions())
	case phaseSettled:
		b.WriteString(m.viewResults())
	case phaseBroke:
		b.WriteString(LossStyle.Render("You're out of money, better luck next time"))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + ErrorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewDealer() string {
	d := m.session.Round().Dealer()
	cards := renderCards(d.VisibleCards())
	if d.HasHoleCard() {
		cards += " " + HiddenCardStyle.Render("[??]")
	}
	if cards == "" {
		cards = InfoStyle.Render("(waiting to deal)")
	}
	value := ""
	if len(d.VisibleCards()) > 0 {
		value = fmt.Sprintf("  %d", d.Value())
	}
	return fmt.Sprintf("Dealer  %s%s\n", cards, value)
}

func (m *Model) viewHands() string {
	var b strings.Builder
	for i, h := range m.session.Round().Player().Hands() {
		line := fmt.Sprintf("Hand %d  %s  %d", i+1, renderCards(h.Cards()), h.Value())
		if h.Bet() > 0 {
			line += InfoStyle.Render(fmt.Sprintf("  (bet %d)", h.Bet()))
		}
		if h.IsBust() {
			line += " " + LossStyle.Render("bust")
		}
		if m.phase == phaseActing && i == m.current {
			b.WriteString(ChosenHandStyle.Render(line))
		} else {
			b.WriteString(HandStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewBetting() string {
	var chips []string
	for i, d := range m.denominations {
		chips = append(chips, fmt.Sprintf("[%d] %d", i+1, d))
	}
	return OptionsStyle.Render(fmt.Sprintf("Wager: %d", m.wager)) + "\n" +
		InfoStyle.Render(strings.Join(chips, "  ")+"  [x] cancel  [enter] deal  [q] quit")
}

func (m *Model) viewOptions() string {
	options, err := m.session.Round().AvailableOptions(m.current)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	var parts []string
	for _, o := range options {
		switch o {
		case game.Hit:
			parts = append(parts, "[h] hit")
		case game.Stand:
			parts = append(parts, "[s] stand")
		case game.Double:
			parts = append(parts, "[d] double")
		case game.Split:
			parts = append(parts, "[p] split")
		}
	}
	return OptionsStyle.Render(strings.Join(parts, "  ")) + "\n" + m.help.View(m.keys)
}

func (m *Model) viewResults() string {
	var b strings.Builder
	for _, res := range m.results {
		line := fmt.Sprintf("Hand %d: %s", res.HandIndex+1, res.Outcome)
		if res.Payout > 0 {
			line += fmt.Sprintf(" (+%d)", res.Payout)
			b.WriteString(WinStyle.Render(line))
		} else {
			line += fmt.Sprintf(" (-%d)", res.Bet)
			b.WriteString(LossStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render("[enter] next round  [q] quit"))
	return b.String()
}

func renderCards(cards []deck.Card) string {
	var parts []string
	for _, c := range cards {
		s := fmt.Sprintf("[%s]", c)
		if c.IsRed() {
			parts = append(parts, RedCardStyle.Render(s))
		} else {
			parts = append(parts, BlackCardStyle.Render(s))
		}
	}
	return strings.Join(parts, " ")
}

func optionOffered(options []game.Option, opt game.Option) bool {
	for _, o := range options {
		if o == opt {
			return true
		}
	}
	return false
}

// Run starts the interactive table and blocks until the player quits or
// goes broke.
func Run(sess *session.Session, denominations []int, logger *log.Logger) error {
	p := tea.NewProgram(New(sess, denominations, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
