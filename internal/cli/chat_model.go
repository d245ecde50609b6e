package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"healthassist/internal/cli/formatter"
	"healthassist/internal/service"
)

// replyDelay is how long a finished reply is held back before it is shown,
// so the assistant appears to take a moment to think. Purely presentation;
// the turn itself is processed immediately.
const replyDelay = time.Second

type turnDoneMsg struct {
	generation int
	reply      string
	err        error
}

type revealMsg struct {
	generation int
}

type resetDoneMsg struct {
	generation int
	intro      string
	err        error
}

// chatModel is the interactive chat view. The generation counter cancels
// stale deliveries: any turn or reveal carrying an old generation is dropped,
// which is how a reset discards an in-flight reply.
type chatModel struct {
	chat  service.ChatService
	input textinput.Model
	spin  spinner.Model

	messages   []string
	generation int
	waiting    bool
	pending    string
	err        error
}

func newChatModel(chat service.ChatService, intro string) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &chatModel{
		chat:     chat,
		input:    ti,
		spin:     sp,
		messages: []string{botLine(intro)},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			return m, m.reset()
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" || m.waiting {
				return m, nil
			}
			return m, m.submit(text)
		}

	case turnDoneMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.waiting = false
			m.err = msg.err
			return m, nil
		}
		m.pending = msg.reply
		gen := m.generation
		return m, tea.Tick(replyDelay, func(time.Time) tea.Msg {
			return revealMsg{generation: gen}
		})

	case revealMsg:
		if msg.generation != m.generation || m.pending == "" {
			return m, nil
		}
		m.messages = append(m.messages, botLine(m.pending))
		m.pending = ""
		m.waiting = false
		return m, nil

	case resetDoneMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.messages = []string{botLine(msg.intro)}
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.waiting {
		b.WriteString(m.spin.View())
		b.WriteString(formatter.Dim("thinking..."))
		b.WriteString("\n")
	} else {
		prompt := formatter.StylePurple.Render("you") + formatter.Dim("> ")
		b.WriteString(prompt)
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(formatter.Dim("enter send · ctrl+r restart · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// submit processes the utterance in the background and bumps the spinner.
func (m *chatModel) submit(text string) tea.Cmd {
	m.messages = append(m.messages, userLine(text))
	m.generation++
	m.waiting = true
	m.err = nil
	gen := m.generation

	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			turn, err := m.chat.SubmitUtterance(context.Background(), text)
			if err != nil {
				return turnDoneMsg{generation: gen, err: err}
			}
			return turnDoneMsg{generation: gen, reply: turn.BotMessage.Content}
		},
	)
}

// reset bumps the generation first so an in-flight reply from the old session
// can never surface in the new one.
func (m *chatModel) reset() tea.Cmd {
	m.generation++
	m.waiting = false
	m.pending = ""
	m.err = nil
	gen := m.generation

	return func() tea.Msg {
		intro, err := m.chat.Reset(context.Background())
		if err != nil {
			return resetDoneMsg{generation: gen, err: err}
		}
		return resetDoneMsg{generation: gen, intro: intro.Content}
	}
}

func userLine(text string) string {
	return formatter.StylePurple.Render("You: ") + text
}

func botLine(text string) string {
	return formatter.StyleBlue.Render("Assistant: ") + text
}
