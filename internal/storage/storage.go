package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists the local profile and match history in an embedded
// sqlite file. Everything here is client-local; nothing game-critical
// lives in it.
type Store struct {
	db *sql.DB
}

// Profile is what the menus remember between launches.
type Profile struct {
	NickName    string
	AvatarIndex int
	SoundOn     bool
}

// MatchRecord is one finished match from this client's point of view.
type MatchRecord struct {
	RoomID   string
	Score    int
	Won      bool
	PlayedAt string
}

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}

	sqlStmt := `CREATE TABLE IF NOT EXISTS profile (id INTEGER PRIMARY KEY CHECK (id = 1), nick_name TEXT, avatar_index INTEGER, sound_on INTEGER);`
	sqlStmt += `CREATE TABLE IF NOT EXISTS match_history (id INTEGER PRIMARY KEY AUTOINCREMENT, room_id TEXT, score INTEGER, won INTEGER, played_at DATETIME DEFAULT CURRENT_TIMESTAMP);`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Profile loads the saved profile. A fresh install gets defaults.
func (s *Store) Profile() Profile {
	profile := Profile{SoundOn: true}

	var soundOn int
	err := s.db.QueryRow(`SELECT nick_name, avatar_index, sound_on FROM profile WHERE id = 1`).
		Scan(&profile.NickName, &profile.AvatarIndex, &soundOn)
	if err != nil {
		return profile
	}
	profile.SoundOn = soundOn != 0
	return profile
}

func (s *Store) SaveProfile(profile Profile) error {
	soundOn := 0
	if profile.SoundOn {
		soundOn = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO profile (id, nick_name, avatar_index, sound_on) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET nick_name = excluded.nick_name, avatar_index = excluded.avatar_index, sound_on = excluded.sound_on`,
		profile.NickName, profile.AvatarIndex, soundOn,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *Store) RecordMatch(roomID string, score int, won bool) error {
	wonInt := 0
	if won {
		wonInt = 1
	}
	_, err := s.db.Exec(`INSERT INTO match_history (room_id, score, won) VALUES (?, ?, ?)`, roomID, score, wonInt)
	if err != nil {
		return fmt.Errorf("record match: %w", err)
	}
	return nil
}

// RecentMatches returns the latest n finished matches, newest first.
func (s *Store) RecentMatches(n int) []MatchRecord {
	records := make([]MatchRecord, 0, n)

	rows, err := s.db.Query(`SELECT room_id, score, won, played_at FROM match_history ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return records
	}
	defer rows.Close()

	for rows.Next() {
		var record MatchRecord
		var won int
		if err := rows.Scan(&record.RoomID, &record.Score, &won, &record.PlayedAt); err != nil {
			continue
		}
		record.Won = won != 0
		records = append(records, record)
	}
	return records
}
