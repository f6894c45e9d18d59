package console

import (
	"context"
	"fmt"
	"sort"

	"songvault/internal/app/users"
	"songvault/internal/models"
)

func (m *Manager) userMenu(ctx context.Context) {
	m.header("USER MANAGEMENT")
	if m.current.IsAdmin() {
		fmt.Fprintln(m.out, "1. View All Users")
		fmt.Fprintln(m.out, "2. Search User by Username")
		fmt.Fprintln(m.out, "3. Update User Role")
		fmt.Fprintln(m.out, "4. User Statistics")
		fmt.Fprintln(m.out, "5. View My Profile")
		fmt.Fprintln(m.out, "6. Update My Profile")
		fmt.Fprintln(m.out, "7. My Liked Songs")
		fmt.Fprintln(m.out, "8. Back to Main Menu")

		switch m.promptInt("Choose an option: ") {
		case 1:
			m.viewAllUsers(ctx)
		case 2:
			m.searchUser(ctx)
		case 3:
			m.updateUserRole(ctx)
		case 4:
			m.userStatistics(ctx)
		case 5:
			m.viewMyProfile()
		case 6:
			m.updateMyProfile(ctx)
		case 7:
			m.viewMyLikedSongs(ctx)
		case 8, -1:
		default:
			m.failf("Invalid option, please try again.")
		}
		return
	}

	fmt.Fprintln(m.out, "1. View My Profile")
	fmt.Fprintln(m.out, "2. Update My Profile")
	fmt.Fprintln(m.out, "3. My Liked Songs")
	fmt.Fprintln(m.out, "4. Search User by Username")
	fmt.Fprintln(m.out, "5. Back to Main Menu")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.viewMyProfile()
	case 2:
		m.updateMyProfile(ctx)
	case 3:
		m.viewMyLikedSongs(ctx)
	case 4:
		m.searchUser(ctx)
	case 5, -1:
	default:
		m.failf("Invalid option, please try again.")
	}
}

func (m *Manager) viewAllUsers(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("ALL USERS"))
	list, err := m.users.List(ctx)
	if err != nil {
		m.failf("Error fetching users: %v", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No users found.")
		return
	}
	fmt.Fprintf(m.out, "%-38s %-20s %-30s %-8s\n", "ID", "USERNAME", "EMAIL", "ROLE")
	for _, u := range list {
		fmt.Fprintf(m.out, "%-38s %-20s %-30s %-8s\n", u.ID, u.Username, u.Email, u.Role)
	}
	m.pause()
}

func (m *Manager) searchUser(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("SEARCH USER"))
	username := m.prompt("Enter username: ")
	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		m.failf("User not found: %v", err)
		return
	}
	m.printUser(user)
	m.pause()
}

func (m *Manager) updateUserRole(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("UPDATE USER ROLE"))
	username := m.prompt("Enter username: ")
	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		m.failf("User not found: %v", err)
		return
	}
	fmt.Fprintf(m.out, "Current role: %s\n", user.Role)

	role := models.RoleUser
	if answer := m.prompt("New role (admin/user): "); answer == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}
	updated, err := m.users.Update(ctx, user.ID, users.UpdateParams{Role: role})
	if err != nil {
		m.failf("Update failed: %v", err)
		return
	}
	m.okf("Role updated: %s is now %s", updated.Username, updated.Role)
}

func (m *Manager) userStatistics(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("USER STATISTICS"))
	list, err := m.users.List(ctx)
	if err != nil {
		m.failf("Error fetching users: %v", err)
		return
	}
	admins := 0
	for _, u := range list {
		if u.IsAdmin() {
			admins++
		}
	}
	fmt.Fprintf(m.out, "Total users: %d (admins: %d)\n", len(list), admins)

	ranked := make([]*models.User, len(list))
	copy(ranked, list)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].LikedSongs) > len(ranked[j].LikedSongs)
	})
	fmt.Fprintln(m.out, "\nMost active users (by liked songs):")
	for i, u := range ranked {
		if i == 5 {
			break
		}
		fmt.Fprintf(m.out, "   %s (%d liked)\n", u.Username, len(u.LikedSongs))
	}
	m.pause()
}

func (m *Manager) viewMyProfile() {
	fmt.Fprintln(m.out, m.styles.title.Render("MY PROFILE"))
	m.printUser(m.current)
	m.pause()
}

func (m *Manager) updateMyProfile(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("UPDATE MY PROFILE"))
	fmt.Fprintln(m.out, m.styles.help.Render("Leave a field blank to keep the current value."))
	username := m.prompt(fmt.Sprintf("Username [%s]: ", m.current.Username))
	email := m.prompt(fmt.Sprintf("Email [%s]: ", m.current.Email))

	updated, err := m.users.Update(ctx, m.current.ID, users.UpdateParams{Username: username, Email: email})
	if err != nil {
		m.failf("Update failed: %v", err)
		return
	}
	m.current = updated
	m.okf("Profile updated.")
	m.printUser(updated)
}

func (m *Manager) viewMyLikedSongs(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("MY LIKED SONGS"))
	ids, err := m.users.LikedSongs(ctx, m.current.ID)
	if err != nil {
		m.failf("Error fetching liked songs: %v", err)
		return
	}
	if len(ids) == 0 {
		fmt.Fprintln(m.out, "You have not liked any songs yet.")
		return
	}
	for _, id := range ids {
		song, err := m.songs.Get(ctx, id)
		if err != nil {
			fmt.Fprintf(m.out, "   %s (no longer in catalog)\n", id)
			continue
		}
		fmt.Fprintf(m.out, "   %s by %s\n", song.Title, song.Artist)
	}
	m.pause()
}

func (m *Manager) printUser(u *models.User) {
	fmt.Fprintf(m.out, "   ID: %s\n   Username: %s\n   Email: %s\n   Role: %s\n   Liked songs: %d\n",
		u.ID, u.Username, u.Email, u.Role, len(u.LikedSongs))
}
