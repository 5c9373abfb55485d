package domain

import "fmt"

// UnknownCategoryError signale une valeur catégorielle hors de l'ensemble
// attendu. Politique: remontée à l'appelant, jamais ignorée silencieusement.
type UnknownCategoryError struct {
	Column string
	Value  string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category: %q", e.Column, e.Value)
}

// State représente un état australien couvert par le dataset AAL
type State string

const (
	StateNSW State = "NSW"
	StateNT  State = "NT"
	StateQLD State = "QLD"
	StateSA  State = "SA"
	StateTAS State = "TAS"
	StateVIC State = "VIC"
	StateWA  State = "WA"
)

// CustomerGroup représente un groupe démographique de clients
type CustomerGroup string

const (
	GroupKids    CustomerGroup = "Kids"
	GroupMen     CustomerGroup = "Men"
	GroupWomen   CustomerGroup = "Women"
	GroupSeniors CustomerGroup = "Seniors"
)

// TimeOfDay représente le créneau horaire d'une vente
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "Morning"
	TimeAfternoon TimeOfDay = "Afternoon"
	TimeEvening   TimeOfDay = "Evening"
)

// Les ensembles sont figés: toute valeur hors liste est une erreur de données.
var (
	allStates = []State{StateNSW, StateNT, StateQLD, StateSA, StateTAS, StateVIC, StateWA}
	allGroups = []CustomerGroup{GroupKids, GroupMen, GroupWomen, GroupSeniors}
	allTimes  = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening}
)

// AllStates retourne la liste des états connus
func AllStates() []State {
	return append([]State{}, allStates...)
}

// AllGroups retourne la liste des groupes de clients connus
func AllGroups() []CustomerGroup {
	return append([]CustomerGroup{}, allGroups...)
}

// AllTimesOfDay retourne la liste des créneaux horaires connus
func AllTimesOfDay() []TimeOfDay {
	return append([]TimeOfDay{}, allTimes...)
}

// ParseState valide et convertit une valeur brute en State
func ParseState(value string) (State, error) {
	for _, s := range allStates {
		if string(s) == value {
			return s, nil
		}
	}
	return "", &UnknownCategoryError{Column: "State", Value: value}
}

// ParseCustomerGroup valide et convertit une valeur brute en CustomerGroup
func ParseCustomerGroup(value string) (CustomerGroup, error) {
	for _, g := range allGroups {
		if string(g) == value {
			return g, nil
		}
	}
	return "", &UnknownCategoryError{Column: "Group", Value: value}
}

// ParseTimeOfDay valide et convertit une valeur brute en TimeOfDay
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	for _, t := range allTimes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", &UnknownCategoryError{Column: "Time", Value: value}
}
