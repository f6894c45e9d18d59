package console

import (
	"context"
	"fmt"

	"songvault/internal/app/songs"
	"songvault/internal/models"
)

func (m *Manager) songMenu(ctx context.Context) {
	m.header("SONG MANAGEMENT")
	if m.current.IsAdmin() {
		fmt.Fprintln(m.out, "1. Add New Song")
		fmt.Fprintln(m.out, "2. View All Songs")
		fmt.Fprintln(m.out, "3. Update Song")
		fmt.Fprintln(m.out, "4. Delete Song")
		fmt.Fprintln(m.out, "5. Search Songs")
		fmt.Fprintln(m.out, "6. Popular Songs")
		fmt.Fprintln(m.out, "7. Like / Unlike a Song")
		fmt.Fprintln(m.out, "8. Songs by Genre")
		fmt.Fprintln(m.out, "9. Back to Main Menu")

		switch m.promptInt("Choose an option: ") {
		case 1:
			m.addSong(ctx)
		case 2:
			m.viewAllSongs(ctx)
		case 3:
			m.updateSong(ctx)
		case 4:
			m.deleteSong(ctx)
		case 5:
			m.searchSongs(ctx)
		case 6:
			m.popularSongs(ctx)
		case 7:
			m.likeSong(ctx)
		case 8:
			m.songsByGenre(ctx)
		case 9, -1:
		default:
			m.failf("Invalid option, please try again.")
		}
		return
	}

	fmt.Fprintln(m.out, "1. View All Songs")
	fmt.Fprintln(m.out, "2. Search Songs")
	fmt.Fprintln(m.out, "3. Popular Songs")
	fmt.Fprintln(m.out, "4. Like / Unlike a Song")
	fmt.Fprintln(m.out, "5. Songs by Genre")
	fmt.Fprintln(m.out, "6. Back to Main Menu")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.viewAllSongs(ctx)
	case 2:
		m.searchSongs(ctx)
	case 3:
		m.popularSongs(ctx)
	case 4:
		m.likeSong(ctx)
	case 5:
		m.songsByGenre(ctx)
	case 6, -1:
	default:
		m.failf("Invalid option, please try again.")
	}
}

func (m *Manager) addSong(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("ADD NEW SONG"))
	candidate := &models.Song{
		Title:    m.prompt("Title: "),
		Artist:   m.prompt("Artist: "),
		Album:    m.prompt("Album: "),
		Genre:    m.prompt("Genre: "),
		Duration: m.promptInt("Duration (seconds): "),
	}
	song, err := m.songs.Create(ctx, candidate, m.current.ID)
	if err != nil {
		m.failf("Could not add song: %v", err)
		return
	}
	m.okf("Song added: %s by %s (id %s)", song.Title, song.Artist, song.ID)
}

func (m *Manager) viewAllSongs(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("ALL SONGS"))
	list, err := m.songs.List(ctx)
	if err != nil {
		m.failf("Error fetching songs: %v", err)
		return
	}
	m.printSongs(list)
	m.pause()
}

func (m *Manager) updateSong(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("UPDATE SONG"))
	id := m.prompt("Song id: ")
	song, err := m.songs.Get(ctx, id)
	if err != nil {
		m.failf("Song not found: %v", err)
		return
	}
	fmt.Fprintf(m.out, "Updating %q by %s\n", song.Title, song.Artist)
	fmt.Fprintln(m.out, m.styles.help.Render("Leave a field blank to keep the current value."))

	params := songs.UpdateParams{
		Title:  m.prompt(fmt.Sprintf("Title [%s]: ", song.Title)),
		Artist: m.prompt(fmt.Sprintf("Artist [%s]: ", song.Artist)),
		Album:  m.prompt(fmt.Sprintf("Album [%s]: ", song.Album)),
		Genre:  m.prompt(fmt.Sprintf("Genre [%s]: ", song.Genre)),
	}
	if raw := m.prompt(fmt.Sprintf("Duration [%d]: ", song.Duration)); raw != "" {
		fmt.Sscanf(raw, "%d", &params.Duration)
	}

	updated, err := m.songs.Update(ctx, id, params, m.current.ID)
	if err != nil {
		m.failf("Update failed: %v", err)
		return
	}
	m.okf("Song updated: %s by %s", updated.Title, updated.Artist)
}

func (m *Manager) deleteSong(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("DELETE SONG"))
	id := m.prompt("Song id: ")
	if err := m.songs.Delete(ctx, id, m.current.ID); err != nil {
		m.failf("Delete failed: %v", err)
		return
	}
	m.okf("Song deleted.")
}

func (m *Manager) searchSongs(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("SEARCH SONGS"))
	term := m.prompt("Search by title or artist: ")
	list, err := m.songs.Search(ctx, term)
	if err != nil {
		m.failf("Search failed: %v", err)
		return
	}
	m.printSongs(list)
	m.pause()
}

func (m *Manager) popularSongs(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("POPULAR SONGS"))
	list, err := m.songs.MostLiked(ctx, songs.DefaultMostLikedLimit)
	if err != nil {
		m.failf("Error fetching popular songs: %v", err)
		return
	}
	for i, song := range list {
		fmt.Fprintf(m.out, "%2d. %s by %s (%d likes)\n", i+1, song.Title, song.Artist, song.LikeCount)
	}
	m.pause()
}

func (m *Manager) likeSong(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("LIKE / UNLIKE SONG"))
	id := m.prompt("Song id: ")
	song, err := m.songs.ToggleLike(ctx, id, m.current.ID)
	if err != nil {
		m.failf("Could not toggle like: %v", err)
		return
	}
	// ToggleLike also rewrote the liked set; refresh the session copy.
	if refreshed, err := m.users.Get(ctx, m.current.ID); err == nil {
		m.current = refreshed
	}
	if m.current.HasLikedSong(song.ID) {
		m.okf("You now like %q (%d likes)", song.Title, song.LikeCount)
	} else {
		m.okf("Like removed from %q (%d likes)", song.Title, song.LikeCount)
	}
}

func (m *Manager) songsByGenre(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("SONGS BY GENRE"))
	genre := m.prompt("Genre: ")
	list, err := m.songs.ByGenre(ctx, genre)
	if err != nil {
		m.failf("Error fetching songs: %v", err)
		return
	}
	m.printSongs(list)
	m.pause()
}

func (m *Manager) printSongs(list []*models.Song) {
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No songs found.")
		return
	}
	fmt.Fprintf(m.out, "%-38s %-25s %-20s %-12s %5s %6s\n", "ID", "TITLE", "ARTIST", "GENRE", "SECS", "LIKES")
	for _, s := range list {
		fmt.Fprintf(m.out, "%-38s %-25s %-20s %-12s %5d %6d\n", s.ID, s.Title, s.Artist, s.Genre, s.Duration, s.LikeCount)
	}
}
