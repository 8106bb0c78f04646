package room

// Inbound room event payloads, one struct per server-pushed room
// event.

type RoomCreatedPayload struct {
	RoomID  string   `json:"roomId"`
	Players []Player `json:"players"`
	Config  *Config  `json:"config"`
}

type PlayerJoinedPayload struct {
	RoomID                 string   `json:"roomId"`
	Players                []Player `json:"players"`
	Config                 *Config  `json:"config"`
	CanStartTheGameIn10Sec bool     `json:"canStartTheGameIn10Sec,omitempty"`
}

type VotesConfigPayload struct {
	RoomID string            `json:"roomId"`
	Votes  map[string]Config `json:"votes"`
}

type PlayerLeftPayload struct {
	RoomID   string            `json:"roomId"`
	PlayerID string            `json:"playerId"`
	Players  []Player          `json:"players"`
	Votes    map[string]Config `json:"votes,omitempty"`
}

type StartGamePayload struct {
	RoomID  string   `json:"roomId"`
	Config  *Config  `json:"config"`
	Players []Player `json:"players"`
}

type RoomErrorPayload struct {
	Message string `json:"message"`
}
