package gestures

import "sync"

// ArenaMember is a recognizer competing for a pointer.
type ArenaMember interface {
	// AcceptGesture is called when the member wins the arena.
	AcceptGesture(pointerID int64)
	// RejectGesture is called when the member loses the arena.
	RejectGesture(pointerID int64)
}

// DefaultArena is the arena shared by recognizers unless a host supplies
// its own.
var DefaultArena = NewGestureArena()

// GestureArena disambiguates between recognizers tracking the same pointer.
//
// Each pointer gets one contest. Recognizers join with Add while the pointer
// is down; Close seals membership once the down event has been dispatched.
// A member that becomes confident calls Resolve to claim the gesture, or
// Reject to drop out. Sweep forces a resolution when the pointer is released.
type GestureArena struct {
	mu       sync.Mutex
	contests map[int64]*arenaContest
}

type arenaContest struct {
	members []ArenaMember
	holders []ArenaMember
	winner  ArenaMember
	closed  bool
}

// NewGestureArena creates an empty arena.
func NewGestureArena() *GestureArena {
	return &GestureArena{contests: make(map[int64]*arenaContest)}
}

// Add registers a member for the contest over pointerID.
func (a *GestureArena) Add(pointerID int64, member ArenaMember) {
	a.mu.Lock()
	contest := a.contests[pointerID]
	if contest == nil {
		contest = &arenaContest{}
		a.contests[pointerID] = contest
	}
	contest.members = append(contest.members, member)
	a.mu.Unlock()
}

// Hold defers resolution for pointerID until the holding member resolves or
// rejects. Used by recognizers that need more movement before deciding.
func (a *GestureArena) Hold(pointerID int64, member ArenaMember) {
	a.mu.Lock()
	if contest := a.contests[pointerID]; contest != nil {
		contest.holders = append(contest.holders, member)
	}
	a.mu.Unlock()
}

// Close seals the contest membership. If a single unheld member remains it
// wins immediately.
func (a *GestureArena) Close(pointerID int64) {
	a.mu.Lock()
	contest := a.contests[pointerID]
	if contest == nil {
		a.mu.Unlock()
		return
	}
	contest.closed = true
	winner, losers := contest.tryResolve()
	a.mu.Unlock()

	notifyResolution(pointerID, winner, losers)
}

// Resolve declares member the winner of the contest over pointerID.
// All other members are rejected.
func (a *GestureArena) Resolve(pointerID int64, member ArenaMember) {
	a.mu.Lock()
	contest := a.contests[pointerID]
	if contest == nil || contest.winner != nil {
		a.mu.Unlock()
		return
	}
	contest.winner = member
	var losers []ArenaMember
	for _, m := range contest.members {
		if m != member {
			losers = append(losers, m)
		}
	}
	contest.members = []ArenaMember{member}
	contest.holders = nil
	a.mu.Unlock()

	notifyResolution(pointerID, member, losers)
}

// Reject removes member from the contest over pointerID. If the contest is
// closed and a single unheld member remains, it wins.
func (a *GestureArena) Reject(pointerID int64, member ArenaMember) {
	a.mu.Lock()
	contest := a.contests[pointerID]
	if contest == nil {
		a.mu.Unlock()
		return
	}
	for i, m := range contest.members {
		if m == member {
			contest.members = append(contest.members[:i], contest.members[i+1:]...)
			break
		}
	}
	for i, m := range contest.holders {
		if m == member {
			contest.holders = append(contest.holders[:i], contest.holders[i+1:]...)
			break
		}
	}
	var winner ArenaMember
	var losers []ArenaMember
	if contest.closed {
		winner, losers = contest.tryResolve()
	}
	if len(contest.members) == 0 {
		delete(a.contests, pointerID)
	}
	a.mu.Unlock()

	member.RejectGesture(pointerID)
	notifyResolution(pointerID, winner, losers)
}

// Sweep forces resolution when the pointer is released: the first remaining
// member wins and the contest ends.
func (a *GestureArena) Sweep(pointerID int64) {
	a.mu.Lock()
	contest := a.contests[pointerID]
	if contest == nil {
		a.mu.Unlock()
		return
	}
	delete(a.contests, pointerID)
	var winner ArenaMember
	var losers []ArenaMember
	if contest.winner == nil && len(contest.members) > 0 {
		winner = contest.members[0]
		losers = contest.members[1:]
	}
	a.mu.Unlock()

	notifyResolution(pointerID, winner, losers)
}

// tryResolve returns the winner and losers if the contest can settle now.
// Caller must hold the arena lock.
func (c *arenaContest) tryResolve() (ArenaMember, []ArenaMember) {
	if c.winner != nil || len(c.holders) > 0 || len(c.members) != 1 {
		return nil, nil
	}
	c.winner = c.members[0]
	return c.winner, nil
}

func notifyResolution(pointerID int64, winner ArenaMember, losers []ArenaMember) {
	if winner != nil {
		winner.AcceptGesture(pointerID)
	}
	for _, loser := range losers {
		loser.RejectGesture(pointerID)
	}
}
