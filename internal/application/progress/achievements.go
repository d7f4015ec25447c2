package progress

import "sort"

// AchievementID identifies an achievement
type AchievementID int

const (
	HighFlyer AchievementID = iota + 1
	Protected
	KeyMaster
	BossSlayer
	GameMaster
)

var achievementText = map[AchievementID][2]string{
	HighFlyer:  {"High Flyer", "Acquired the double jump ability!"},
	Protected:  {"Protected", "Acquired a protective shield!"},
	KeyMaster:  {"Key Master", "Collected all keys in a level!"},
	BossSlayer: {"Boss Slayer", "Defeated the level boss!"},
	GameMaster: {"Game Master", "Completed all levels!"},
}

// Title returns the display title
func (id AchievementID) Title() string {
	if t, ok := achievementText[id]; ok {
		return t[0]
	}
	return "Unknown"
}

// Description returns the display description
func (id AchievementID) Description() string {
	return achievementText[id][1]
}

// String returns the title
func (id AchievementID) String() string { return id.Title() }

// Achievements is the set of unlocked achievements
type Achievements struct {
	unlocked map[AchievementID]struct{}
}

// NewAchievements creates an empty achievement set
func NewAchievements() *Achievements {
	return &Achievements{unlocked: make(map[AchievementID]struct{})}
}

// Unlock adds an achievement. It returns false if it was already unlocked.
func (a *Achievements) Unlock(id AchievementID) bool {
	if _, ok := a.unlocked[id]; ok {
		return false
	}
	a.unlocked[id] = struct{}{}
	return true
}

// Has reports whether the achievement is unlocked
func (a *Achievements) Has(id AchievementID) bool {
	_, ok := a.unlocked[id]
	return ok
}

// Len returns the number of unlocked achievements
func (a *Achievements) Len() int { return len(a.unlocked) }

// List returns the unlocked achievements in ID order
func (a *Achievements) List() []AchievementID {
	ids := make([]AchievementID, 0, len(a.unlocked))
	for id := range a.unlocked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
