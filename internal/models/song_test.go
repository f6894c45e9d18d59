package models

import (
	"strings"
	"testing"
)

func TestSongValidate(t *testing.T) {
	valid := Song{Title: "Perfect", Artist: "Ed Sheeran", Album: "Deluxe", Genre: "Soft Rock", Duration: 423}

	tests := []struct {
		name    string
		mutate  func(s *Song)
		wantErr bool
	}{
		{name: "valid song", mutate: func(s *Song) {}},
		{name: "missing title", mutate: func(s *Song) { s.Title = "" }, wantErr: true},
		{name: "title too long", mutate: func(s *Song) { s.Title = strings.Repeat("x", 101) }, wantErr: true},
		{name: "missing artist", mutate: func(s *Song) { s.Artist = "" }, wantErr: true},
		{name: "album too long", mutate: func(s *Song) { s.Album = strings.Repeat("x", 51) }, wantErr: true},
		{name: "empty album allowed", mutate: func(s *Song) { s.Album = "" }},
		{name: "zero duration", mutate: func(s *Song) { s.Duration = 0 }, wantErr: true},
		{name: "duration too long", mutate: func(s *Song) { s.Duration = 3601 }, wantErr: true},
		{name: "negative like count", mutate: func(s *Song) { s.LikeCount = -1 }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestSongLikeCountFloor(t *testing.T) {
	s := Song{Title: "t", Artist: "a", Duration: 10}

	s.DecrementLikeCount()
	if s.LikeCount != 0 {
		t.Fatalf("like count went negative: %d", s.LikeCount)
	}

	s.IncrementLikeCount()
	s.IncrementLikeCount()
	s.DecrementLikeCount()
	if s.LikeCount != 1 {
		t.Fatalf("expected like count 1, got %d", s.LikeCount)
	}
}
