package provider

import (
	"strings"
)

// Known first names of stock vendor voices. Some vendors report no gender,
// so the name is the only hint available.
var (
	maleNames = []string{
		"adam", "antoni", "arnold", "bill", "brian", "callum", "charlie",
		"clyde", "daniel", "dave", "drew", "eric", "ethan", "fin", "george",
		"giovanni", "harry", "james", "jeremy", "josh", "liam", "michael",
		"onyx", "patrick", "paul", "roger", "sam", "thomas", "will",
	}

	femaleNames = []string{
		"alice", "aria", "bella", "charlotte", "domi", "dorothy", "elli",
		"emily", "freya", "gigi", "glinda", "grace", "jessica", "jessie",
		"lily", "matilda", "mimi", "nicole", "nova", "rachel", "sarah",
		"serena", "shimmer",
	}
)

// InferGender guesses a voice gender from its display name when the vendor
// does not report one, defaulting to neutral.
func InferGender(name string) Gender {
	first := strings.ToLower(name)

	if i := strings.IndexAny(first, " -_"); i > 0 {
		first = first[:i]
	}

	for _, n := range maleNames {
		if first == n {
			return GenderMale
		}
	}

	for _, n := range femaleNames {
		if first == n {
			return GenderFemale
		}
	}

	return GenderNeutral
}
