package main

// TeamFilter is a tagged choice between "every team" and one specific team.
// The ALL sentinel from the dropdown is translated into the tag at the HTTP
// boundary, so the predicate below never compares row teams against "ALL".
type TeamFilter struct {
	all  bool
	team string
}

func AllTeams() TeamFilter {
	return TeamFilter{all: true}
}

func SpecificTeam(name string) TeamFilter {
	return TeamFilter{team: name}
}

func (f TeamFilter) Matches(team string) bool {
	return f.all || f.team == team
}

// FilterSelection is the current value of every dashboard widget except the
// metric dropdown. It is rebuilt per request and never stored.
type FilterSelection struct {
	Team       TeamFilter
	Archetypes map[string]bool
	AgeMin     int
	AgeMax     int
}

// SelectAll builds the dashboard's initial selection: all teams, every
// archetype, the full observed age range.
func (ds *Dataset) SelectAll() FilterSelection {
	archetypes := make(map[string]bool, len(ds.Archetypes))
	for _, a := range ds.Archetypes {
		archetypes[a] = true
	}
	return FilterSelection{
		Team:       AllTeams(),
		Archetypes: archetypes,
		AgeMin:     ds.AgeMin,
		AgeMax:     ds.AgeMax,
	}
}

// FilterPlayers returns the primary-table rows matching the selection, in
// table order. An empty archetype selection matches nothing.
func FilterPlayers(players []PlayerRecord, sel FilterSelection) []PlayerRecord {
	var out []PlayerRecord
	for _, p := range players {
		if !sel.Team.Matches(p.Team) {
			continue
		}
		if !sel.Archetypes[p.Archetype] {
			continue
		}
		if p.Age < sel.AgeMin || p.Age > sel.AgeMax {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterCombined applies the same predicate to the joined table. A nil field
// fails its predicate term, so salary rows that never matched the primary
// table drop out of every selection.
func FilterCombined(rows []CombinedRow, sel FilterSelection) []CombinedRow {
	var out []CombinedRow
	for _, r := range rows {
		if !sel.Team.all {
			if r.Team == nil || *r.Team != sel.Team.team {
				continue
			}
		}
		if r.Archetype == nil || !sel.Archetypes[*r.Archetype] {
			continue
		}
		if r.Age == nil || *r.Age < sel.AgeMin || *r.Age > sel.AgeMax {
			continue
		}
		out = append(out, r)
	}
	return out
}
