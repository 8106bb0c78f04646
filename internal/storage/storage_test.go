package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yaniv-client/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestProfileDefaultsOnFreshInstall(t *testing.T) {
	s := openTestStore(t)

	profile := s.Profile()
	assert.Empty(t, profile.NickName)
	assert.Zero(t, profile.AvatarIndex)
	assert.True(t, profile.SoundOn)
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)

	err := s.SaveProfile(storage.Profile{NickName: "Dana", AvatarIndex: 3, SoundOn: false})
	require.NoError(t, err)

	profile := s.Profile()
	assert.Equal(t, "Dana", profile.NickName)
	assert.Equal(t, 3, profile.AvatarIndex)
	assert.False(t, profile.SoundOn)

	// A second save overwrites the single row instead of adding one.
	err = s.SaveProfile(storage.Profile{NickName: "Omer", AvatarIndex: 1, SoundOn: true})
	require.NoError(t, err)
	assert.Equal(t, "Omer", s.Profile().NickName)
}

func TestMatchHistoryNewestFirst(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordMatch("room-1", 42, false))
	require.NoError(t, s.RecordMatch("room-2", 0, true))
	require.NoError(t, s.RecordMatch("room-3", 17, false))

	records := s.RecentMatches(2)
	require.Len(t, records, 2)
	assert.Equal(t, "room-3", records[0].RoomID)
	assert.Equal(t, "room-2", records[1].RoomID)
	assert.True(t, records[1].Won)
	assert.NotEmpty(t, records[0].PlayedAt)
}

func TestRecentMatchesEmptyHistory(t *testing.T) {
	s := openTestStore(t)
	assert.Empty(t, s.RecentMatches(10))
}
