package console

import (
	"context"
	"fmt"

	"songvault/internal/app/playlists"
	"songvault/internal/models"
)

func (m *Manager) playlistMenu(ctx context.Context) {
	m.header("PLAYLIST MANAGEMENT")
	fmt.Fprintln(m.out, "1. View All Playlists")
	fmt.Fprintln(m.out, "2. My Playlists")
	fmt.Fprintln(m.out, "3. Create Playlist")
	fmt.Fprintln(m.out, "4. Update Playlist")
	fmt.Fprintln(m.out, "5. Delete Playlist")
	fmt.Fprintln(m.out, "6. Add Song to Playlist")
	fmt.Fprintln(m.out, "7. Remove Song from Playlist")
	fmt.Fprintln(m.out, "8. Playlist Details")
	fmt.Fprintln(m.out, "9. Back to Main Menu")

	switch m.promptInt("Choose an option: ") {
	case 1:
		m.viewAllPlaylists(ctx)
	case 2:
		m.viewMyPlaylists(ctx)
	case 3:
		m.createPlaylist(ctx)
	case 4:
		m.updatePlaylist(ctx)
	case 5:
		m.deletePlaylist(ctx)
	case 6:
		m.addSongToPlaylist(ctx)
	case 7:
		m.removeSongFromPlaylist(ctx)
	case 8:
		m.playlistDetails(ctx)
	case 9, -1:
	default:
		m.failf("Invalid option, please try again.")
	}
}

func (m *Manager) viewAllPlaylists(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("ALL PLAYLISTS"))
	list, err := m.playlists.List(ctx)
	if err != nil {
		m.failf("Error fetching playlists: %v", err)
		return
	}
	m.printPlaylists(list)
	m.pause()
}

func (m *Manager) viewMyPlaylists(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("MY PLAYLISTS"))
	list, err := m.playlists.ListForUser(ctx, m.current.ID)
	if err != nil {
		m.failf("Error fetching playlists: %v", err)
		return
	}
	m.printPlaylists(list)
	m.pause()
}

func (m *Manager) createPlaylist(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("CREATE PLAYLIST"))
	name := m.prompt("Name: ")
	description := m.prompt("Description: ")

	playlist, err := m.playlists.Create(ctx, name, description, m.current.ID)
	if err != nil {
		m.failf("Could not create playlist: %v", err)
		return
	}
	m.okf("Playlist created: %s (id %s)", playlist.Name, playlist.ID)
}

func (m *Manager) updatePlaylist(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("UPDATE PLAYLIST"))
	id := m.prompt("Playlist id: ")
	playlist, err := m.playlists.Get(ctx, id)
	if err != nil {
		m.failf("Playlist not found: %v", err)
		return
	}
	fmt.Fprintln(m.out, m.styles.help.Render("Leave the name blank to keep the current one."))
	params := playlists.UpdateParams{
		Name:        m.prompt(fmt.Sprintf("Name [%s]: ", playlist.Name)),
		Description: m.prompt(fmt.Sprintf("Description [%s]: ", playlist.Description)),
	}

	updated, err := m.playlists.Update(ctx, id, params, m.current.ID)
	if err != nil {
		m.failf("Update failed: %v", err)
		return
	}
	m.okf("Playlist updated: %s", updated.Name)
}

func (m *Manager) deletePlaylist(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("DELETE PLAYLIST"))
	id := m.prompt("Playlist id: ")
	if err := m.playlists.Delete(ctx, id, m.current.ID); err != nil {
		m.failf("Delete failed: %v", err)
		return
	}
	m.okf("Playlist deleted.")
}

func (m *Manager) addSongToPlaylist(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("ADD SONG TO PLAYLIST"))
	playlistID := m.prompt("Playlist id: ")
	songID := m.prompt("Song id: ")

	playlist, err := m.playlists.AddSong(ctx, playlistID, songID, m.current.ID)
	if err != nil {
		m.failf("Could not add song: %v", err)
		return
	}
	m.okf("Song added. %s now holds %d songs.", playlist.Name, playlist.SongCount())
}

func (m *Manager) removeSongFromPlaylist(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("REMOVE SONG FROM PLAYLIST"))
	playlistID := m.prompt("Playlist id: ")
	songID := m.prompt("Song id: ")

	playlist, err := m.playlists.RemoveSong(ctx, playlistID, songID, m.current.ID)
	if err != nil {
		m.failf("Could not remove song: %v", err)
		return
	}
	m.okf("Song removed. %s now holds %d songs.", playlist.Name, playlist.SongCount())
}

func (m *Manager) playlistDetails(ctx context.Context) {
	fmt.Fprintln(m.out, m.styles.title.Render("PLAYLIST DETAILS"))
	id := m.prompt("Playlist id: ")
	playlist, err := m.playlists.Get(ctx, id)
	if err != nil {
		m.failf("Playlist not found: %v", err)
		return
	}

	fmt.Fprintf(m.out, "   Name: %s\n   Description: %s\n   Owner: %s\n   Songs: %d\n",
		playlist.Name, playlist.Description, playlist.OwnerID, playlist.SongCount())
	for i, songID := range playlist.SongIDs {
		song, err := m.songs.Get(ctx, songID)
		if err != nil {
			fmt.Fprintf(m.out, "   %2d. %s (no longer in catalog)\n", i+1, songID)
			continue
		}
		fmt.Fprintf(m.out, "   %2d. %s by %s\n", i+1, song.Title, song.Artist)
	}
	m.pause()
}

func (m *Manager) printPlaylists(list []*models.Playlist) {
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No playlists found.")
		return
	}
	fmt.Fprintf(m.out, "%-38s %-25s %-38s %5s\n", "ID", "NAME", "OWNER", "SONGS")
	for _, p := range list {
		fmt.Fprintf(m.out, "%-38s %-25s %-38s %5d\n", p.ID, p.Name, p.OwnerID, p.SongCount())
	}
}
