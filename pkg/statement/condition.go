package statement

// Condition is one of the fixed sensor predicates that can guard an IF,
// IF_ELSE, or WHILE statement.
type Condition int

const (
	NextIsEmpty Condition = iota
	NextIsNotEmpty
	NextIsEnemy
	NextIsNotEnemy
	NextIsFriend
	NextIsNotFriend
	NextIsWall
	NextIsNotWall
	Random
	True

	numConditions
)

// conditionNames holds the BL source spellings, indexed by Condition.
var conditionNames = [numConditions]string{
	NextIsEmpty:     "next-is-empty",
	NextIsNotEmpty:  "next-is-not-empty",
	NextIsEnemy:     "next-is-enemy",
	NextIsNotEnemy:  "next-is-not-enemy",
	NextIsFriend:    "next-is-friend",
	NextIsNotFriend: "next-is-not-friend",
	NextIsWall:      "next-is-wall",
	NextIsNotWall:   "next-is-not-wall",
	Random:          "random",
	True:            "true",
}

var conditionByName = func() map[string]Condition {
	m := make(map[string]Condition, numConditions)
	for c, name := range conditionNames {
		m[name] = Condition(c)
	}
	return m
}()

// String returns the BL source spelling of c.
func (c Condition) String() string {
	if c < 0 || c >= numConditions {
		return "?"
	}
	return conditionNames[c]
}

// ConditionByName maps a BL source spelling to its Condition.
func ConditionByName(name string) (Condition, bool) {
	c, ok := conditionByName[name]
	return c, ok
}

// Conditions returns all condition spellings in catalog order.
func Conditions() []string {
	return conditionNames[:]
}
