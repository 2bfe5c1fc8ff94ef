package team

// Location is where a player currently is, either ad-hoc on the roster
// (bench/field only) or inside a game lineup (bench/field/inactive).
type Location string

const (
	LocationBench    Location = "bench"
	LocationField    Location = "field"
	LocationInactive Location = "inactive"
)

// Side identifies which team a scoring event belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// TimerStatus is the running state of a game's match clock.
type TimerStatus string

const (
	TimerStopped TimerStatus = "stopped"
	TimerRunning TimerStatus = "running"
)

// EventGoal is the only event kind currently recorded.
const EventGoal = "goal"

// Position is a free-form (x, y) placement on the field diagram.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Player is an identity record on the roster. Location and Position are the
// ad-hoc arrangement used outside of any game; per-game placement lives in
// PlayerLineupState.
type Player struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	JerseyNumber int       `json:"jerseyNumber"`
	Location     Location  `json:"location"`
	Position     *Position `json:"position,omitempty"`
}

// Name returns "First Last" with a lone name rendered without padding.
func (p Player) Name() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// PlayerLineupState is one player's bookkeeping within one game.
//
// PlaytimerStart is a wall-clock instant in Unix milliseconds, non-nil only
// while the player is accruing time, which requires the game clock to be
// running and the player to be on field or inactive. PlaytimeSeconds holds
// finalized time only; the live total is computed on demand.
type PlayerLineupState struct {
	PlayerID        string    `json:"playerId"`
	Location        Location  `json:"location"`
	Position        *Position `json:"position,omitempty"`
	PlaytimeSeconds int       `json:"playtimeSeconds"`
	PlaytimerStart  *int64    `json:"playtimerStartTime,omitempty"`
	IsStarter       bool      `json:"isStarter"`
	SubbedOnCount   int       `json:"subbedOnCount"`
	SubbedOffCount  int       `json:"subbedOffCount"`
}

// GameEvent is one entry in a game's scoring ledger. Timestamp is Unix
// milliseconds and doubles as the "most recent per side" ordering key.
type GameEvent struct {
	ID        string `json:"id"`
	Kind      string `json:"type"`
	Side      Side   `json:"team"`
	ScorerID  string `json:"scorerId,omitempty"`
	AssistID  string `json:"assistId,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Game is one fixture and all of its match-time state.
//
// HomeScore and AwayScore mirror the event ledger; they are written only by
// the two ledger operations on the engine. Lineup is nil until first needed
// (lazy-initialized from the roster), while Events is always non-nil.
type Game struct {
	ID                   string              `json:"id"`
	Opponent             string              `json:"opponent"`
	Date                 string              `json:"date"`
	Time                 string              `json:"time"`
	IsHome               bool                `json:"isHome"`
	Season               string              `json:"season,omitempty"`
	Competition          string              `json:"competition,omitempty"`
	HomeScore            int                 `json:"homeScore"`
	AwayScore            int                 `json:"awayScore"`
	TimerStatus          TimerStatus         `json:"timerStatus"`
	TimerStart           *int64              `json:"timerStartTime,omitempty"`
	TimerElapsedSeconds  int                 `json:"timerElapsedSeconds"`
	IsExplicitlyFinished bool                `json:"isExplicitlyFinished"`
	Lineup               []PlayerLineupState `json:"lineup,omitempty"`
	Events               []GameEvent         `json:"events"`
}

// SavedLineupEntry is one player's slot in a saved template.
type SavedLineupEntry struct {
	PlayerID string    `json:"playerId"`
	Location Location  `json:"location"`
	Position *Position `json:"position,omitempty"`
}

// SavedLineup is a named roster-wide snapshot of locations and positions,
// independent of any game.
type SavedLineup struct {
	Name    string             `json:"name"`
	Entries []SavedLineupEntry `json:"entries"`
}

// GameHistory holds most-recently-used season and competition tags, each
// entry unique, most recent first. Used to default new games.
type GameHistory struct {
	Seasons      []string `json:"seasons"`
	Competitions []string `json:"competitions"`
}

// RecordClass names one persisted document. The store keeps exactly one
// record per class.
type RecordClass string

const (
	RecordTeamName     RecordClass = "teamName"
	RecordTeamLogo     RecordClass = "teamLogo"
	RecordPlayers      RecordClass = "players"
	RecordGames        RecordClass = "games"
	RecordSavedLineups RecordClass = "savedLineups"
	RecordGameHistory  RecordClass = "gameHistory"
)

// AllRecordClasses lists every record class in load order.
var AllRecordClasses = []RecordClass{
	RecordTeamName,
	RecordTeamLogo,
	RecordPlayers,
	RecordGames,
	RecordSavedLineups,
	RecordGameHistory,
}

// State is the full application snapshot. Every engine mutation computes the
// next State from the current one and installs it atomically before the
// commit hook observes it.
type State struct {
	TeamName     string
	TeamLogo     string
	Players      []Player
	Games        []Game
	SavedLineups []SavedLineup
	History      GameHistory
}

// NewState returns an empty snapshot with non-nil collections.
func NewState() *State {
	return &State{
		Players:      []Player{},
		Games:        []Game{},
		SavedLineups: []SavedLineup{},
		History:      GameHistory{Seasons: []string{}, Competitions: []string{}},
	}
}
