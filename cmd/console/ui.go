package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

const PlaceHolderText = "Type a command, e.g. north, take lantern..."

// transcriptEntry is one line of play: the player's command and the
// engine's reply.
type transcriptEntry struct {
	command string
	message string
	success bool
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	session      *state.PlayerState
	transcript   []transcriptEntry
	gameTitle    string
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// Game selection state
	showGameModal bool
	games         []game.Info
	selectedGame  int
	loadingGames  bool

	// Quit confirmation state
	showQuitModal bool
}

type gamesLoadedMsg struct {
	games []game.Info
	err   error
}

type sessionStartedMsg struct {
	session *state.PlayerState
	err     error
}

type outcomeMsg struct {
	command string
	outcome *state.Outcome
	err     error
}

type sessionMsg struct {
	session *state.PlayerState
	err     error
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:        cfg,
		client:        client,
		textarea:      ta,
		chatViewport:  chatVp,
		metaViewport:  metaVp,
		ready:         false,
		showGameModal: true,
		loadingGames:  true,
		selectedGame:  0,
	}
}

func writeMetadata(ps *state.PlayerState, title string) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Game:\n")
	content.WriteString(title + "\n\n")

	content.WriteString("Session ID:\n")
	content.WriteString(ps.SessionID[:8] + "...\n\n")

	content.WriteString("Room:\n")
	content.WriteString(game.DisplayName(ps.CurrentRoom) + "\n\n")

	content.WriteString("Inventory:\n")
	if len(ps.Inventory) == 0 {
		content.WriteString("Empty\n")
	} else {
		for _, itemID := range ps.Inventory {
			content.WriteString("• " + game.DisplayName(itemID) + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("Rooms visited:\n%d\n\n", len(ps.History)))

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+Y: Copy log\n")

	return content.String()
}

// writeChatContent rebuilds the transcript for the current viewport width
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE ENGINE") + "\n\n")
	content.WriteString("Type commands below to explore: north, take lantern, examine lantern, look, inventory.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 10))) + "\n\n")

	for _, entry := range m.transcript {
		content.WriteString(userStyle.Render("> "+entry.command) + "\n")
		style := successStyle
		if !entry.success {
			style = failureStyle
		}
		content.WriteString(style.Render(wordwrap.String(entry.message, max(chatWidth-6, 10))) + "\n\n")
	}

	if m.loading {
		content.WriteString(loadingStyle.Render("...") + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// transcriptText renders the raw transcript for clipboard copy.
func (m *ConsoleUI) transcriptText() string {
	var b strings.Builder
	for _, entry := range m.transcript {
		fmt.Fprintf(&b, "> %s\n%s\n", entry.command, entry.message)
	}
	return b.String()
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.showGameModal {
		return m.loadGames()
	}
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle game modal first
	if m.showGameModal {
		return m.updateGameModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		if m.session != nil {
			m.metaViewport.SetContent(writeMetadata(m.session, m.gameTitle))
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			// Best effort; clipboard may be unavailable over SSH
			_ = clipboard.WriteAll(m.transcriptText())
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			m.loading = true
			m.writeChatContent()

			return m, m.sendAction(input)
		}

	case outcomeMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.transcript = append(m.transcript, transcriptEntry{
				command: msg.command,
				message: errorStyle.Render("Error: " + msg.err.Error()),
				success: false,
			})
		} else {
			message := msg.outcome.Message
			if msg.outcome.FinalReached {
				message += " You have reached your destination!"
			}
			m.transcript = append(m.transcript, transcriptEntry{
				command: msg.command,
				message: message,
				success: msg.outcome.Success,
			})
		}
		m.writeChatContent()
		return m, m.refreshSession()

	case sessionMsg:
		if msg.err == nil && msg.session != nil {
			m.session = msg.session
			m.metaViewport.SetContent(writeMetadata(m.session, m.gameTitle))
		}
	}

	// Update components for non-mouse events
	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) sendAction(input string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := sendAction(m.client, m.config.APIBaseURL, m.session.GameID, m.session.SessionID, input)
		return outcomeMsg{command: input, outcome: outcome, err: err}
	}
}

func (m ConsoleUI) refreshSession() tea.Cmd {
	return func() tea.Msg {
		ps, err := getSession(m.client, m.config.APIBaseURL, m.session.GameID, m.session.SessionID)
		return sessionMsg{ps, err}
	}
}

func (m ConsoleUI) loadGames() tea.Cmd {
	return func() tea.Msg {
		games, err := listGames(m.client, m.config.APIBaseURL)
		return gamesLoadedMsg{games, err}
	}
}

func (m ConsoleUI) startSession(gameID string) tea.Cmd {
	return func() tea.Msg {
		ps, err := startSession(m.client, m.config.APIBaseURL, gameID)
		return sessionStartedMsg{ps, err}
	}
}

func (m ConsoleUI) updateGameModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case gamesLoadedMsg:
		m.loadingGames = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.games = msg.games
		}

	case sessionStartedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.session = msg.session
			m.gameTitle = m.games[m.selectedGame].Title
			m.showGameModal = false
			if m.width > 0 && m.height > 0 {
				chatWidth := int(float64(m.width)*0.75) - 4
				metaWidth := m.width - chatWidth - 6
				m.chatViewport.Width = chatWidth - 2
				m.chatViewport.Height = m.height - 7
				m.metaViewport.Width = metaWidth - 2
				m.metaViewport.Height = m.height - 4
				m.textarea.SetWidth(chatWidth - 4)
			}
			m.writeChatContent()
			m.metaViewport.SetContent(writeMetadata(m.session, m.gameTitle))
			m.textarea.Focus()
			m.ready = true
		}
		return m, textarea.Blink

	case tea.KeyMsg:
		if m.loadingGames {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		if m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedGame > 0 {
				m.selectedGame--
			}
		case tea.KeyDown:
			if m.selectedGame < len(m.games)-1 {
				m.selectedGame++
			}
		case tea.KeyEnter:
			if len(m.games) > 0 {
				m.loading = true
				return m, m.startSession(m.games[m.selectedGame].ID)
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if !m.showGameModal {
					m.textarea.Focus()
					return m, textarea.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderGameModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingGames {
		content.WriteString(modalTitleStyle.Render("Loading Games..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while we fetch available games..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load games: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else if m.loading {
		content.WriteString(modalTitleStyle.Render("Starting Session..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Setting up your adventure..."))
	} else {
		content.WriteString(modalTitleStyle.Render("Select a Game"))
		content.WriteString("\n\n")

		for i, g := range m.games {
			if i == m.selectedGame {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", g.Title)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", g.Title)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showGameModal {
		return m.renderGameModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 10))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
