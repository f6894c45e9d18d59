// Package console implements the interactive terminal menu over the catalog
// services.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"songvault/internal/app/playlists"
	"songvault/internal/app/songs"
	"songvault/internal/app/users"
	"songvault/internal/models"
)

// Manager drives the menu loop. The logged-in user lives only here; every
// service call receives the identity explicitly.
type Manager struct {
	users     *users.Service
	songs     *songs.Service
	playlists *playlists.Service

	in      *bufio.Scanner
	out     io.Writer
	styles  *palette
	current *models.User
}

// New builds a Manager reading from stdin and writing to stdout.
func New(users *users.Service, songs *songs.Service, playlists *playlists.Service) *Manager {
	return &Manager{
		users:     users,
		songs:     songs,
		playlists: playlists,
		in:        bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
		styles:    newPalette(),
	}
}

// Run loops between the login menu and the main menu until the user exits or
// input is exhausted.
func (m *Manager) Run(ctx context.Context) {
	for {
		var done bool
		if m.current == nil {
			done = m.loginMenu(ctx)
		} else {
			done = m.mainMenu(ctx)
		}
		if done {
			fmt.Fprintln(m.out, m.styles.ok.Render("Goodbye!"))
			return
		}
	}
}

func (m *Manager) loginMenu(ctx context.Context) (exit bool) {
	m.header("LOGIN / REGISTRATION")
	fmt.Fprintln(m.out, "1. Login")
	fmt.Fprintln(m.out, "2. Register New User")
	fmt.Fprintln(m.out, "3. View All Users")
	fmt.Fprintln(m.out, "4. Exit")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.login(ctx)
	case 2:
		m.register(ctx)
	case 3:
		m.viewAllUsers(ctx)
	case 4:
		return true
	case -1:
		return true
	default:
		m.failf("Invalid option, please try again.")
	}
	return false
}

func (m *Manager) mainMenu(ctx context.Context) (exit bool) {
	m.header("SONG & PLAYLIST MANAGEMENT")
	fmt.Fprintf(m.out, "Logged in as: %s (%s)\n", m.current.Username, m.current.Role)
	songLabel := "2. Song Management"
	if !m.current.IsAdmin() {
		songLabel += " (view only)"
	}
	fmt.Fprintln(m.out, "1. User Management")
	fmt.Fprintln(m.out, songLabel)
	fmt.Fprintln(m.out, "3. Playlist Management")
	fmt.Fprintln(m.out, "4. Reports & Statistics")
	fmt.Fprintln(m.out, "5. Logout")
	fmt.Fprintln(m.out, "6. Exit")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.userMenu(ctx)
	case 2:
		m.songMenu(ctx)
	case 3:
		m.playlistMenu(ctx)
	case 4:
		m.showReports(ctx)
	case 5:
		fmt.Fprintln(m.out, m.styles.ok.Render("Goodbye, "+m.current.Username+"!"))
		m.current = nil
	case 6:
		return true
	case -1:
		return true
	default:
		m.failf("Invalid option, please try again.")
	}
	return false
}

func (m *Manager) login(ctx context.Context) {
	username := m.prompt("Enter username: ")
	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		m.failf("Login failed: %v", err)
		return
	}
	m.current = user
	m.okf("Login successful! Welcome, %s", user.Username)
}

func (m *Manager) register(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("REGISTER NEW USER"))
	username := m.prompt("Enter username: ")
	email := m.prompt("Enter email: ")
	role := models.RoleUser
	if answer := strings.ToLower(m.prompt("Are you an admin? (y/n): ")); answer == "y" || answer == "yes" {
		role = models.RoleAdmin
	}

	user, err := m.users.Create(ctx, &models.User{Username: username, Email: email, Role: role})
	if err != nil {
		m.failf("Registration failed: %v", err)
		return
	}
	m.okf("User registered successfully!")
	fmt.Fprintf(m.out, "   ID: %s\n   Username: %s\n   Role: %s\n", user.ID, user.Username, user.Role)
}

func (m *Manager) showReports(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("REPORTS & STATISTICS"))

	allUsers, err := m.users.List(ctx)
	if err != nil {
		m.failf("Error generating reports: %v", err)
		return
	}
	allSongs, err := m.songs.List(ctx)
	if err != nil {
		m.failf("Error generating reports: %v", err)
		return
	}
	allPlaylists, err := m.playlists.List(ctx)
	if err != nil {
		m.failf("Error generating reports: %v", err)
		return
	}

	fmt.Fprintf(m.out, "Total Users: %d\n", len(allUsers))
	fmt.Fprintf(m.out, "Total Songs: %d\n", len(allSongs))
	fmt.Fprintf(m.out, "Total Playlists: %d\n", len(allPlaylists))

	if len(allSongs) > 0 {
		top, err := m.songs.MostLiked(ctx, 5)
		if err != nil {
			m.failf("Error generating reports: %v", err)
			return
		}
		fmt.Fprintln(m.out, "\nTop liked songs:")
		for _, song := range top {
			fmt.Fprintf(m.out, "   %s by %s (%d likes)\n", song.Title, song.Artist, song.LikeCount)
		}
	}
	m.pause()
}

// prompt reads one trimmed line. Returns "" when input is exhausted.
func (m *Manager) prompt(label string) string {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

// promptInt reads a menu choice. Returns -1 when input is exhausted, 0 on a
// non-numeric entry.
func (m *Manager) promptInt(label string) int {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
	if err != nil {
		return 0
	}
	return n
}

func (m *Manager) header(title string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.title.Render(title))
}

func (m *Manager) okf(format string, args ...any) {
	fmt.Fprintln(m.out, m.styles.ok.Render(fmt.Sprintf(format, args...)))
}

func (m *Manager) failf(format string, args ...any) {
	fmt.Fprintln(m.out, m.styles.fail.Render(fmt.Sprintf(format, args...)))
}

func (m *Manager) pause() {
	fmt.Fprintln(m.out, m.styles.help.Render("\nPress Enter to continue..."))
	m.in.Scan()
}
