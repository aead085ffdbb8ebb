package reference

// Built-in tables so the generator runs without any external data files.
// Overridable per table through LoadFile.

var defaultMaleFirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard",
	"Joseph", "Thomas", "Charles", "Christopher", "Daniel", "Matthew",
	"Anthony", "Mark", "Donald", "Steven", "Paul", "Andrew", "Joshua",
	"Kenneth", "Kevin", "Brian", "George", "Timothy", "Ronald", "Edward",
	"Jason", "Jeffrey", "Ryan", "Jacob", "Gary", "Nicholas", "Eric",
	"Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
}

var defaultFemaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
	"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret",
	"Sandra", "Ashley", "Kimberly", "Emily", "Donna", "Michelle", "Carol",
	"Amanda", "Dorothy", "Melissa", "Deborah", "Stephanie", "Rebecca",
	"Sharon", "Laura", "Cynthia", "Kathleen", "Amy", "Angela", "Shirley",
	"Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
}

var defaultLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var defaultEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com",
}

var defaultCompanySuffixes = []string{
	"Inc", "LLC", "Group", "Ltd", "and Sons", "PLC",
}

var defaultPhonePatterns = []string{
	"(###) ###-####",
	"###-###-####",
	"+1-###-###-####",
	"### ### ####",
}

func defaultTables() map[string][]string {
	return map[string][]string{
		TableMaleFirstNames:   defaultMaleFirstNames,
		TableFemaleFirstNames: defaultFemaleFirstNames,
		TableLastNames:        defaultLastNames,
		TableEmailDomains:     defaultEmailDomains,
		TableCompanySuffixes:  defaultCompanySuffixes,
		TablePhonePatterns:    defaultPhonePatterns,
	}
}
