package names

import "dragon-clan/element"

var (
	prefixes = []string{
		"Aer", "Ign", "Aqu", "Terr", "Zeph", "Cryo", "Pyro", "Nyx", "Lux", "Umbr",
		"Dra", "Vor", "Kyr", "Zar", "Xen", "Nex", "Rex", "Vex", "Zor", "Kor",
		"Thal", "Mal", "Val", "Gal", "Kal", "Tal", "Sal", "Dal", "Fal", "Hal",
	}
	middles = []string{
		"on", "en", "in", "an", "un", "ar", "or", "ir", "ur", "er",
		"ath", "eth", "ith", "oth", "uth", "ach", "ech", "ich", "och", "uch",
		"ra", "la", "na", "ma", "ta", "sa", "da", "fa", "ga", "ka",
	}
	suffixes = []string{
		"is", "us", "as", "os", "es", "ix", "ax", "ox", "ex", "yx",
		"ion", "eon", "ian", "ean", "oan", "urn", "orn", "arn", "ern",
		"th", "nth", "rth", "lth", "mth", "dra", "ra", "la", "na", "ma",
	}
)

type elementNames struct {
	prefixes []string
	suffixes []string
}

var byElement = map[element.Element]elementNames{
	element.Fire: {
		prefixes: []string{"Ign", "Pyro", "Flar", "Blaz", "Ember", "Scorch", "Infer", "Cind"},
		suffixes: []string{"is", "ion", "ra", "th", "ix", "ax"},
	},
	element.Water: {
		prefixes: []string{"Aqu", "Hydr", "Mar", "Tid", "Flow", "Riv", "Oce", "Wav"},
		suffixes: []string{"a", "ia", "is", "us", "an", "en"},
	},
	element.Earth: {
		prefixes: []string{"Terr", "Ston", "Rock", "Cryst", "Gran", "Clay", "Mud", "Grav"},
		suffixes: []string{"a", "is", "us", "an", "on", "th"},
	},
	element.Wind: {
		prefixes: []string{"Aer", "Zeph", "Gust", "Breez", "Storm", "Temp", "Cycl", "Whirl"},
		suffixes: []string{"a", "is", "us", "on", "an", "ix"},
	},
	element.Lightning: {
		prefixes: []string{"Volt", "Thund", "Bolt", "Spark", "Flash", "Strik", "Shock", "Electr"},
		suffixes: []string{"a", "is", "us", "on", "ix", "ax"},
	},
	element.Ice: {
		prefixes: []string{"Cryo", "Frost", "Glac", "Ic", "Frig", "Chill", "Freez", "Cryst"},
		suffixes: []string{"a", "is", "us", "on", "an", "ix"},
	},
}

var (
	clanAdjectives = []string{
		"Fireborn", "Storm", "Ancient", "Eternal", "Shadow", "Crystal", "Thunder",
		"Dragon", "Mystic", "Sacred", "Frozen", "Blazing", "Golden", "Silver",
		"Iron", "Steel", "Frost", "Flame", "Wind", "Earth", "Lightning", "Ice",
		"Noble", "Royal", "Wild", "Fierce", "Mighty", "Legendary", "Divine",
		"Dark", "Bright", "Savage", "Wise", "Bold", "Swift", "Strong",
	}
	clanNouns = []string{
		"Clan", "Order", "Brotherhood", "Sisterhood", "Guild", "Circle", "Council",
		"Alliance", "Legion", "Guard", "Keep", "Tower", "Sanctuary", "Haven",
		"Stronghold", "Fortress", "Realm", "Domain", "Tribe", "Nation", "Empire",
		"Dynasty", "House", "Bloodline", "Lineage", "Horde", "Flight", "Wing",
	}
)
