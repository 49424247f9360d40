package listing

import (
	"fmt"
	"strings"
)

// Condition is the marketplace condition domain for media items. Only these
// six values are valid; free text is never accepted.
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionNewOther   Condition = "New other"
	ConditionUsed       Condition = "Used"
	ConditionVeryGood   Condition = "Very Good"
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
)

// conditionIDs maps each condition to the marketplace's numeric condition code.
var conditionIDs = map[Condition]string{
	ConditionNew:        "1000",
	ConditionNewOther:   "1500",
	ConditionUsed:       "3000",
	ConditionVeryGood:   "4000",
	ConditionGood:       "5000",
	ConditionAcceptable: "6000",
}

// conditionAliases is the fixed coercion table for override phrases. Keys are
// lowercase. This is a lookup table, not free-text parsing; anything absent
// here is rejected.
var conditionAliases = map[string]Condition{
	"new":         ConditionNew,
	"brand new":   ConditionNew,
	"sealed":      ConditionNew,
	"new other":   ConditionNewOther,
	"new (other)": ConditionNewOther,
	"like new":    ConditionNewOther,
	"open box":    ConditionNewOther,
	"used":        ConditionUsed,
	"very good":   ConditionVeryGood,
	"good":        ConditionGood,
	"acceptable":  ConditionAcceptable,
	"fair":        ConditionAcceptable,
}

// Conditions returns the full condition domain in code order.
func Conditions() []Condition {
	return []Condition{
		ConditionNew,
		ConditionNewOther,
		ConditionUsed,
		ConditionVeryGood,
		ConditionGood,
		ConditionAcceptable,
	}
}

// Valid reports whether c is a member of the condition domain.
func (c Condition) Valid() bool {
	_, ok := conditionIDs[c]
	return ok
}

// ID returns the marketplace numeric code for the condition, or "" for
// values outside the domain.
func (c Condition) ID() string {
	return conditionIDs[c]
}

// ConditionFromID resolves a marketplace numeric code back to its condition.
func ConditionFromID(id string) (Condition, bool) {
	for condition, code := range conditionIDs {
		if code == id {
			return condition, true
		}
	}
	return "", false
}

// CoerceCondition resolves a caller-supplied condition phrase through the
// alias table. Unrecognized values return ErrUnrecognizedOverride.
func CoerceCondition(value string) (Condition, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if cond, ok := conditionAliases[key]; ok {
		return cond, nil
	}
	return "", fmt.Errorf("%w: condition %q", ErrUnrecognizedOverride, value)
}
