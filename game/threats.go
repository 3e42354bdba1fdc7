package game

// JumpThreat is an imminent capture: the tiger can jump the goat onto the
// landing position on its next turn.
type JumpThreat struct {
	Tiger   int
	Goat    int
	Landing int
}

// JumpThreats enumerates every capture currently available to the tigers, in
// stable arena order.
func JumpThreats(gs *GameState) []JumpThreat {
	var threats []JumpThreat
	for _, from := range gs.Positions(Tiger) {
		for _, j := range gs.Board.JumpsFrom(from) {
			if gs.Cells[j.Over] == Goat && gs.Cells[j.To] == Empty {
				threats = append(threats, JumpThreat{Tiger: from, Goat: j.Over, Landing: j.To})
			}
		}
	}
	return threats
}

// ThreatCount returns the number of captures available to the tigers.
func ThreatCount(gs *GameState) int {
	return len(JumpThreats(gs))
}

// IsSafePlacement reports whether putting a goat on id leaves that goat out
// of reach of an immediate jump.
func IsSafePlacement(gs *GameState, id int) bool {
	next := gs.Copy()
	next.Cells[id] = Goat
	for _, t := range JumpThreats(next) {
		if t.Goat == id {
			return false
		}
	}
	return true
}

// IsSafeGoatMove reports whether a goat movement avoids an immediate capture:
// the moved goat must not become a jump victim and the move must not uncover
// a capture on another goat.
func IsSafeGoatMove(gs *GameState, m Move) bool {
	next := gs.Copy()
	next.Cells[m.To] = Goat
	next.Cells[m.From] = Empty
	for _, t := range JumpThreats(next) {
		if t.Goat == m.To {
			return false
		}
	}
	return ThreatCount(next) <= ThreatCount(gs)
}

// PlacementRisk scores how exposed a goat placed on id would be: 100 per
// tiger jump whose victim is that goat.
func PlacementRisk(gs *GameState, id int) int {
	next := gs.Copy()
	next.Cells[id] = Goat
	risk := 0
	for _, t := range JumpThreats(next) {
		if t.Goat == id {
			risk += 100
		}
	}
	return risk
}
