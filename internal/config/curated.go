package config

import (
	"fmt"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/draftboard/internal/domain/rankings"
)

// CuratedLists holds the hand-picked player annotations applied on top of
// the merged rankings. The defaults ship compiled in and are replaced
// wholesale when CURATED_LISTS_PATH points at a JSON file.
type CuratedLists struct {
	LotteryTickets []string                `json:"lottery_tickets"`
	Sleepers       []string                `json:"sleepers"`
	Handcuffs      []rankings.HandcuffPair `json:"handcuffs"`
}

// LoadCuratedLists returns the compiled-in lists when path is empty.
func LoadCuratedLists(path string) (CuratedLists, error) {
	if path == "" {
		return DefaultCuratedLists(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return CuratedLists{}, fmt.Errorf("read curated lists: %w", err)
	}

	var lists CuratedLists
	if err := sonic.Unmarshal(raw, &lists); err != nil {
		return CuratedLists{}, fmt.Errorf("parse curated lists %s: %w", path, err)
	}

	return lists, nil
}

// DefaultCuratedLists is the 2025 draft prep set.
func DefaultCuratedLists() CuratedLists {
	return CuratedLists{
		LotteryTickets: []string{
			"Trevor Lawrence",
			"C.J. Stroud",
			"J.J. McCarthy",
			"Jacory Croskey-Merritt",
			"Rashid Shaheed",
			"Luther Burden III",
			"Cedric Tillman",
			"Jaydon Blue",
			"Marquise Brown",
			"DeMario Douglas",
			"Isaac Guerendo",
			"Chig Okonkwo",
			"Woody Marks",
			"Will Shipley",
			"Adonai Mitchell",
			"Dyami Brown",
			"Elijah Arroyo",
			"Isaac TeSlaa",
			"Kayshon Boutte",
			"Darren Waller",
		},
		Sleepers: []string{
			"Jacory Croskey-Merritt",
			"Ollie Gordon II",
			"Dyami Brown",
			"Dont'e Thornton Jr.",
			"Tory Horton",
			"Sean Tucker",
			"Tyler Shough",
			"Isaiah Davis",
			"Shedeur Sanders",
			"Jaylin Lane",
		},
		Handcuffs: []rankings.HandcuffPair{
			{Starter: "James Conner", Backup: "Trey Benson"},
			{Starter: "Bijan Robinson", Backup: "Tyler Allgeier"},
			{Starter: "Derrick Henry", Backup: "Keaton Mitchell"},
			{Starter: "James Cook", Backup: "Ray Davis"},
			{Starter: "Chuba Hubbard", Backup: "Rico Dowdle"},
			{Starter: "D'Andre Swift", Backup: "Kyle Monangai"},
			{Starter: "Chase Brown", Backup: "Tahj Brooks"},
			{Starter: "Jerome Ford", Backup: "Dylan Sampson"},
			{Starter: "Javonte Williams", Backup: "Jaydon Blue"},
			{Starter: "J.K. Dobbins", Backup: "RJ Harvey"},
			{Starter: "Jahmyr Gibbs", Backup: "David Montgomery"},
			{Starter: "Josh Jacobs", Backup: "Chris Brooks"},
			{Starter: "Nick Chubb", Backup: "Dameon Pierce"},
			{Starter: "Jonathan Taylor", Backup: "DJ Giddens"},
			{Starter: "Travis Etienne Jr.", Backup: "Tank Bigsby"},
			{Starter: "Isiah Pacheco", Backup: "Kareem Hunt"},
			{Starter: "Omarion Hampton", Backup: "Najee Harris"},
			{Starter: "Kyren Williams", Backup: "Blake Corum"},
			{Starter: "Ashton Jeanty", Backup: "Zamir White"},
			{Starter: "De'Von Achane", Backup: "Ollie Gordon II"},
			{Starter: "Aaron Jones Sr.", Backup: "Jordan Mason"},
			{Starter: "TreVeyon Henderson", Backup: "Rhamondre Stevenson"},
			{Starter: "Alvin Kamara", Backup: "Kendre Miller"},
			{Starter: "Tyrone Tracy Jr.", Backup: "Cam Skattebo"},
			{Starter: "Breece Hall", Backup: "Braelon Allen"},
			{Starter: "Saquon Barkley", Backup: "Will Shipley"},
			{Starter: "Jaylen Warren", Backup: "Kaleb Johnson"},
			{Starter: "Kenneth Walker III", Backup: "Zach Charbonnet"},
			{Starter: "Christian McCaffrey", Backup: "Brian Robinson Jr."},
			{Starter: "Bucky Irving", Backup: "Rachaad White"},
			{Starter: "Tony Pollard", Backup: "Tyjae Spears"},
			{Starter: "Jacory Croskey-Merritt", Backup: "Austin Ekeler"},
		},
	}
}
