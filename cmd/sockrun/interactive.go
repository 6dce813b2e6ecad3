package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/smallnest/ringbuffer"
	"golang.org/x/sys/unix"

	"github.com/wirebind/rawsock/socket"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selfStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	peerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	pendingSize   = 64 * 1024
	pollInterval  = 50 * time.Millisecond
	maxTranscript = 200
)

// chatModel drives a line-oriented conversation over a nonblocking socket.
// Outgoing bytes are staged in a ring buffer and drained whenever the kernel
// will take them; incoming bytes are polled on a timer so the TUI never
// blocks in read(2).
type chatModel struct {
	sock       *socket.Socket
	input      textinput.Model
	pending    *ringbuffer.RingBuffer
	carry      []byte
	transcript []string
	addr       string
	peerClosed bool
	err        error
}

type tickMsg time.Time

func newChatModel(sock *socket.Socket, addr string) *chatModel {
	ti := textinput.New()
	ti.Placeholder = "type and press enter"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &chatModel{
		sock:    sock,
		input:   ti,
		pending: ringbuffer.New(pendingSize),
		addr:    addr,
	}
}

func (m *chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.sock.Close()
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			if line == "" || m.peerClosed {
				return m, nil
			}
			if _, err := m.pending.Write([]byte(line + "\n")); err != nil {
				m.appendLine(errorStyle.Render("send buffer full, dropped line"))
				return m, nil
			}
			m.appendLine(selfStyle.Render("you: " + line))
			m.input.Reset()
			return m, nil
		}

	case tickMsg:
		m.pump()
		if m.err != nil {
			m.sock.Close()
			return m, tea.Quit
		}
		return m, tick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// pump drains staged writes and polls for incoming bytes, stopping at the
// first would-block in either direction. Bytes consumed from the ring but
// not yet accepted by the kernel wait in carry, which is always sent before
// the ring is read again so the stream order is preserved.
func (m *chatModel) pump() {
	buf := make([]byte, 4096)

	for {
		if len(m.carry) == 0 {
			if m.pending.Length() == 0 {
				break
			}
			n, _ := m.pending.Read(buf)
			if n == 0 {
				break
			}
			m.carry = append(m.carry[:0], buf[:n]...)
		}
		w, err := m.sock.Write(m.carry)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				// Kernel buffer full; retry next tick.
				break
			}
			m.err = err
			return
		}
		m.carry = m.carry[w:]
		if len(m.carry) > 0 {
			break
		}
	}

	if m.peerClosed {
		return
	}
	for {
		n, err := m.sock.Read(buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				return
			}
			m.err = err
			return
		}
		if n == 0 {
			m.peerClosed = true
			m.appendLine(helpStyle.Render("peer closed the connection"))
			return
		}
		for _, line := range strings.Split(strings.TrimRight(string(buf[:n]), "\n"), "\n") {
			m.appendLine(peerStyle.Render("peer: " + line))
		}
	}
}

func (m *chatModel) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

func (m *chatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sockrun"))
	b.WriteString(" ")
	b.WriteString(m.addr)
	b.WriteString("\n\n")

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter send • esc quit"))

	return b.String()
}

func runInteractive(addr string) error {
	sock, err := dial(addr)
	if err != nil {
		return err
	}
	if err := sock.Nonblock(); err != nil {
		sock.Close()
		return err
	}

	p := tea.NewProgram(newChatModel(sock, addr), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
