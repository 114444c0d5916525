package fortune10

// Curated Fortune 10 dataset: named executives and directors with their
// fiscal-2024 compensation (fiscal 2023 for Exxon Mobil), sourced from proxy
// statements and investor relations pages. Companies that do not disclose a
// cap budget carry zero and fall back to the configured default.

type execEntry struct {
	name    string
	title   string
	salary  float64
	bonus   float64
	stock   float64
	other   float64
	year    int // zero means the dataset default year
	retired bool
}

type boardEntry struct {
	name string
	role string // empty means plain Director
	lead bool
	exec bool // sits on the board as an officer, not independent
}

type companyEntry struct {
	name      string
	ticker    string
	sector    string
	founded   int
	marketCap float64
	revenue   float64
	capBudget float64
	execs     []execEntry
	board     []boardEntry
}

const datasetYear = 2024

var companies = []companyEntry{
	{
		name:      "Walmart Inc.",
		ticker:    "WMT",
		sector:    "Retail",
		founded:   1962,
		marketCap: 450_000_000_000,
		revenue:   648_100_000_000,
		capBudget: 125_000_000,
		execs: []execEntry{
			{name: "Doug McMillon", title: "President & CEO", salary: 1_505_000, bonus: 4_356_000, stock: 20_375_000, other: 221_294},
			{name: "John Furner", title: "President & CEO, Walmart U.S.", salary: 1_315_000, bonus: 2_820_000, stock: 11_753_000, other: 190_720},
			{name: "Suresh Kumar", title: "Executive Vice President & Chief Technology Officer", salary: 1_138_000, bonus: 2_475_000, stock: 12_264_000, other: 109_182},
			{name: "Kathryn McLay", title: "President & CEO, Walmart International", salary: 1_003_000, bonus: 2_379_000, stock: 11_242_000},
			{name: "John David Rainey", title: "Executive Vice President & Chief Financial Officer", salary: 1_033_000, bonus: 2_234_000, stock: 11_752_000, other: 266_837},
			{name: "Chris Nicholas", title: "President & CEO, Sam's Club", salary: 899_808, bonus: 2_009_000, stock: 8_176_000, other: 100_791},
		},
		board: []boardEntry{
			{name: "Greg Penner", role: "Chair"},
			{name: "Cesar Conde"},
			{name: "Timothy P. Flynn"},
			{name: "Sarah Friar"},
			{name: "Carla Harris"},
			{name: "Tom Horton"},
			{name: "Marissa Mayer"},
			{name: "Doug McMillon", exec: true},
			{name: "Bob Moritz"},
			{name: "Brian Niccol"},
			{name: "Randall Stephenson", role: "Lead Independent Director", lead: true},
			{name: "Steuart Walton"},
		},
	},
	{
		name:      "Amazon.com, Inc.",
		ticker:    "AMZN",
		sector:    "E-commerce & Cloud Services",
		founded:   1994,
		marketCap: 1_650_000_000_000,
		revenue:   554_000_000_000,
		capBudget: 150_000_000,
		execs: []execEntry{
			{name: "Andy Jassy", title: "President & CEO", salary: 365_000, other: 1_230_000},
			{name: "Jeff Bezos", title: "Executive Chair", salary: 81_840, other: 1_600_000},
			{name: "Matt Garman", title: "CEO, Amazon Web Services", salary: 365_000, stock: 32_800_000},
			{name: "Brian Olsavsky", title: "Senior Vice President & Chief Financial Officer", salary: 365_000, stock: 25_700_000},
			{name: "Douglas Herrington", title: "CEO, Worldwide Stores", salary: 365_000, stock: 34_200_000},
		},
		board: []boardEntry{
			{name: "Jeff Bezos", role: "Executive Chair", exec: true},
			{name: "Andy Jassy", exec: true},
			{name: "Keith B. Alexander"},
			{name: "Edith W. Cooper"},
			{name: "Jamie S. Gorelick"},
			{name: "Daniel P. Huttenlocher"},
			{name: "Andrew Y. Ng"},
			{name: "Indra K. Nooyi"},
			{name: "Jonathan J. Rubinstein"},
			{name: "Brad D. Smith"},
			{name: "Patricia Q. Stonesifer"},
			{name: "Wendell P. Weeks"},
		},
	},
	{
		name:      "UnitedHealth Group Incorporated",
		ticker:    "UNH",
		sector:    "Healthcare (Insurance)",
		founded:   1977,
		marketCap: 460_000_000_000,
		revenue:   371_600_000_000,
		capBudget: 120_000_000,
		execs: []execEntry{
			{name: "Andrew Witty", title: "Chief Executive Officer", salary: 1_500_000, bonus: 1_500_000, stock: 23_000_000, other: 339_097},
			{name: "John Rex", title: "President & Chief Financial Officer", salary: 1_342_000, bonus: 2_100_000, stock: 15_001_000, other: 287_929},
			{name: "Heather Cianfrocco", title: "EVP & CEO of Optum", salary: 1_000_000, bonus: 1_500_000, stock: 8_001_000, other: 948_035},
			{name: "Christopher Zaetta", title: "EVP & Chief Legal Officer", salary: 748_077, bonus: 890_000, stock: 5_001_000, other: 234_152},
			{name: "Erin McSweeney", title: "EVP & Chief People Officer", salary: 800_000, bonus: 825_000, stock: 4_501_000, other: 142_835},
		},
		board: []boardEntry{
			{name: "Andrew Witty", exec: true},
			{name: "Stephen Hemsley", role: "Chair"},
			{name: "Michele Hooper", role: "Lead Independent Director", lead: true},
			{name: "Timothy Flynn"},
			{name: "Paul Garcia"},
			{name: "Kristen Gil"},
			{name: "F. William McNabb III"},
			{name: "Valerie Montgomery Rice"},
			{name: "John Noseworthy"},
		},
	},
	{
		name:      "Apple Inc.",
		ticker:    "AAPL",
		sector:    "Technology",
		founded:   1976,
		marketCap: 2_680_000_000_000,
		revenue:   383_300_000_000,
		capBudget: 220_000_000,
		execs: []execEntry{
			{name: "Tim Cook", title: "Chief Executive Officer", salary: 3_000_000, bonus: 12_000_000, stock: 58_088_946, other: 1_520_856},
			{name: "Luca Maestri", title: "Chief Financial Officer", salary: 1_000_000, bonus: 4_000_000, stock: 22_157_075, other: 22_182},
			{name: "Kate Adams", title: "General Counsel & SVP, Legal and Global Security", salary: 1_000_000, bonus: 4_000_000, stock: 22_157_075, other: 22_182},
			{name: "Deirdre O'Brien", title: "SVP Retail + People", salary: 1_000_000, bonus: 4_000_000, stock: 22_157_075, other: 27_557},
			{name: "Jeff Williams", title: "Chief Operating Officer", salary: 1_000_000, bonus: 4_000_000, stock: 22_157_075, other: 20_737},
		},
		board: []boardEntry{
			{name: "Arthur D. Levinson", role: "Chair"},
			{name: "Wanda Austin"},
			{name: "Tim Cook", exec: true},
			{name: "Alex Gorsky"},
			{name: "Andrea Jung"},
			{name: "Monica Lozano"},
			{name: "Ronald D. Sugar"},
			{name: "Susan L. Wagner"},
		},
	},
	{
		name:      "CVS Health Corporation",
		ticker:    "CVS",
		sector:    "Healthcare (Pharmacy & Health Services)",
		founded:   1963,
		marketCap: 96_000_000_000,
		revenue:   357_800_000_000,
		capBudget: 110_000_000,
		execs: []execEntry{
			{name: "J. David Joyner", title: "President & Chief Executive Officer", salary: 1_103_495, stock: 16_499_887, other: 205_410},
			{name: "Karen Lynch", title: "Former President & Chief Executive Officer", salary: 1_191_781, bonus: 2_383_562, stock: 17_999_842, other: 1_856_281, retired: true},
			{name: "Prem Shah", title: "EVP & Co-President, Pharmacy and Consumer Wellness", salary: 972_917, stock: 11_999_825, other: 293_113},
			{name: "Tilak Mandadi", title: "EVP, Ventures & Chief Digital, Data, Analytics and Technology Officer", salary: 1_000_000, bonus: 583_000, stock: 9_499_832, other: 278_511},
			{name: "Thomas Cowhey", title: "EVP & Chief Financial Officer", salary: 998_387, bonus: 436_000, stock: 5_999_830, other: 208_434},
			{name: "Heidi Capozzi", title: "EVP & Chief People Officer", salary: 265_625, bonus: 1_500_000, stock: 4_999_989, other: 85_134},
		},
		board: []boardEntry{
			{name: "Fernando Aguirre"},
			{name: "Jeffrey R. Balser"},
			{name: "C. David Brown II"},
			{name: "Alecia A. Decoudreaux"},
			{name: "Roger N. Farah"},
			{name: "Anne M. Finucane"},
			{name: "J. David Joyner", exec: true},
			{name: "J. Scott Kirby"},
			{name: "Michael F. Mahoney", role: "Lead Independent Director", lead: true},
			{name: "Leslie V. Norwalk"},
			{name: "Larry Robbins"},
			{name: "Guy P. Sansone"},
			{name: "Douglas H. Shulman"},
		},
	},
	{
		name:      "Berkshire Hathaway Inc.",
		ticker:    "BRK.A",
		sector:    "Conglomerate",
		founded:   1839,
		marketCap: 875_000_000_000,
		revenue:   364_500_000_000,
		capBudget: 90_000_000,
		execs: []execEntry{
			{name: "Warren Buffett", title: "Chairman & Chief Executive Officer", salary: 100_000, other: 313_595},
			{name: "Greg Abel", title: "Vice Chairman (Non-Insurance) & CEO-designate", salary: 16_000_000, bonus: 3_000_000, other: 1_000_000},
			{name: "Ajit Jain", title: "Vice Chairman (Insurance)", salary: 16_000_000, bonus: 3_000_000, other: 1_000_000},
		},
		board: []boardEntry{
			{name: "Warren Buffett", role: "Chairman & CEO", exec: true},
			{name: "Greg Abel", exec: true},
			{name: "Ajit Jain", exec: true},
			{name: "Howard G. Buffett"},
			{name: "Susan Decker"},
			{name: "Mark Suzman"},
			{name: "Julia Hartz"},
			{name: "Todd Combs"},
			{name: "Ted Weschler"},
			{name: "Ron Olson"},
			{name: "Meryl Witmer"},
		},
	},
	{
		name:      "Alphabet Inc.",
		ticker:    "GOOGL",
		sector:    "Technology",
		founded:   2015,
		marketCap: 1_940_000_000_000,
		revenue:   307_400_000_000,
		capBudget: 180_000_000,
		execs: []execEntry{
			{name: "Sundar Pichai", title: "Chief Executive Officer", salary: 2_015_000, stock: 405_630, other: 8_304_000},
			{name: "Anat Ashkenazi", title: "Chief Financial Officer", salary: 1_580_000, bonus: 9_900_000, stock: 38_500_000},
			{name: "Ruth Porat", title: "President & Chief Investment Officer", salary: 1_600_000, stock: 27_000_000, other: 2_560_000},
			{name: "Prabhakar Raghavan", title: "Senior Vice President, Knowledge & Information", salary: 1_600_000, stock: 43_970_000, other: 3_020_000},
			{name: "Philip Schindler", title: "Chief Business Officer", salary: 1_600_000, stock: 43_970_000, other: 3_030_000},
			{name: "Kent Walker", title: "President, Global Affairs & Chief Legal Officer", salary: 1_600_000, stock: 27_140_000, other: 3_020_000},
		},
		board: []boardEntry{
			{name: "Larry Page"},
			{name: "Sergey Brin"},
			{name: "Sundar Pichai", exec: true},
			{name: "Frances Arnold"},
			{name: "John L. Hennessy", role: "Chair"},
			{name: "R. Martin Chavez"},
			{name: "L. John Doerr"},
			{name: "Roger W. Ferguson Jr."},
			{name: "K. Ram Shriram"},
			{name: "Robin L. Washington"},
		},
	},
	{
		name:      "Exxon Mobil Corporation",
		ticker:    "XOM",
		sector:    "Energy",
		founded:   1870,
		marketCap: 420_000_000_000,
		revenue:   344_600_000_000,
		capBudget: 140_000_000,
		execs: []execEntry{
			{name: "Darren Woods", title: "Chairman & Chief Executive Officer", salary: 6_662_000, stock: 23_199_750, other: 7_058_148, year: 2023},
			{name: "Jack Williams", title: "Senior Vice President", salary: 4_492_000, stock: 12_785_640, other: 5_659_676, year: 2023},
			{name: "Neil Chapman", title: "Senior Vice President", salary: 4_481_000, stock: 12_785_640, other: 4_648_802, year: 2023},
			{name: "Karen McKee", title: "President, Product Solutions (Vice President)", salary: 3_862_000, stock: 10_599_708, other: 5_632_589, year: 2023},
			{name: "Kathryn Mikells", title: "Senior Vice President & Chief Financial Officer", salary: 4_375_000, stock: 12_146_358, other: 1_526_198, year: 2023},
		},
		board: []boardEntry{
			{name: "Darren Woods", role: "Chairman & CEO", exec: true},
			{name: "Joseph L. Hooley", role: "Lead Independent Director", lead: true},
			{name: "Susan K. Avery"},
			{name: "Angela Braly"},
			{name: "Kenneth Frazier"},
		},
	},
	{
		name:      "McKesson Corporation",
		ticker:    "MCK",
		sector:    "Healthcare Distribution",
		founded:   1833,
		marketCap: 75_000_000_000,
		revenue:   301_500_000_000,
		capBudget: 95_000_000,
		execs: []execEntry{
			{name: "Brian Tyler", title: "Chief Executive Officer", salary: 1_490_000, bonus: 3_142_410, stock: 13_500_408, other: 864_725},
			{name: "Britt Vitalone", title: "Executive Vice President & Chief Financial Officer", salary: 937_500, bonus: 1_335_938, stock: 4_350_396, other: 158_827},
			{name: "Michele Lau", title: "Executive Vice President & Chief Legal Officer", salary: 175_000, bonus: 199_500, stock: 6_851_529, other: 80_225},
			{name: "LeAnn Smith", title: "Executive Vice President & Chief Human Resources Officer", salary: 635_418, bonus: 724_377, stock: 2_000_379, other: 80_941},
			{name: "Tom Rodgers", title: "Executive Vice President & Chief Strategy & Business Development Officer", salary: 611_750, bonus: 697_395, stock: 1_750_716, other: 119_115},
		},
		board: []boardEntry{
			{name: "Richard H. Carmona, M.D."},
			{name: "Dominic J. Caruso"},
			{name: "W. Roy Dunbar"},
			{name: "Deborah Dunsire, M.D."},
			{name: "James H. Hinton"},
			{name: "Donald R. Knauss", role: "Chair"},
			{name: "Bradley E. Lerman"},
			{name: "Maria N. Martinez"},
			{name: "Kevin M. Ozan"},
			{name: "Brian Tyler", exec: true},
			{name: "Kathleen Wilson-Thompson"},
		},
	},
	{
		name:    "Cencora, Inc.",
		ticker:  "COR",
		sector:  "Pharmaceutical Distribution & Services",
		founded: 1985,
		// Cencora discloses no cap budget; the configured default applies.
		execs: []execEntry{
			{name: "Steven H. Collis", title: "Executive Chairman (former President & CEO)", salary: 1_464_959, bonus: 4_101_886, stock: 12_500_101, other: 408_225},
			{name: "James F. Cleary", title: "Executive Vice President & Chief Financial Officer", salary: 885_943, bonus: 1_417_509, stock: 6_600_508, other: 100_000},
			{name: "Robert P. Mauch", title: "President & Chief Executive Officer", salary: 1_039_959, bonus: 2_079_919, stock: 6_000_127, other: 133_187},
			{name: "Elizabeth S. Campbell", title: "Executive Vice President & Chief Legal Officer", salary: 721_967, bonus: 1_155_148, stock: 5_700_587, other: 91_362},
			{name: "Silvana Battaglia", title: "Executive Vice President & Chief Human Resources Officer", salary: 625_984, bonus: 1_001_574, stock: 3_600_373, other: 92_281},
		},
		board: []boardEntry{
			{name: "Ornella Barra"},
			{name: "Werner Baumann"},
			{name: "Frank K. Clyburn"},
			{name: "Steven H. Collis", exec: true},
			{name: "D. Mark Durcan"},
			{name: "Lon R. Greenberg"},
			{name: "Lorence H. Kim, M.D."},
			{name: "Robert P. Mauch", exec: true},
			{name: "Redonda G. Miller, M.D."},
			{name: "Dennis M. Nally"},
			{name: "Lauren M. Tyler"},
		},
	},
}
