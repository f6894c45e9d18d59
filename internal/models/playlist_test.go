package models

import (
	"strings"
	"testing"
)

func TestPlaylistValidate(t *testing.T) {
	valid := Playlist{Name: "Travelling", Description: "90s Bollywood", OwnerID: "user-1"}

	tests := []struct {
		name    string
		mutate  func(p *Playlist)
		wantErr bool
	}{
		{name: "valid playlist", mutate: func(p *Playlist) {}},
		{name: "missing name", mutate: func(p *Playlist) { p.Name = "" }, wantErr: true},
		{name: "name too long", mutate: func(p *Playlist) { p.Name = strings.Repeat("x", 51) }, wantErr: true},
		{name: "description too long", mutate: func(p *Playlist) { p.Description = strings.Repeat("x", 201) }, wantErr: true},
		{name: "empty description allowed", mutate: func(p *Playlist) { p.Description = "" }},
		{name: "missing owner", mutate: func(p *Playlist) { p.OwnerID = "" }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestPlaylistSongOrder(t *testing.T) {
	p := Playlist{Name: "mix", OwnerID: "user-1"}

	p.AddSong("a")
	p.AddSong("b")
	p.AddSong("c")

	if !p.ContainsSong("b") {
		t.Fatalf("expected playlist to contain b")
	}
	if p.SongCount() != 3 {
		t.Fatalf("expected 3 songs, got %d", p.SongCount())
	}

	p.RemoveSong("b")
	if got := strings.Join(p.SongIDs, ","); got != "a,c" {
		t.Fatalf("expected removal to preserve order a,c, got %s", got)
	}

	p.RemoveSong("missing")
	if p.SongCount() != 2 {
		t.Fatalf("removing an absent song changed the playlist")
	}
}
