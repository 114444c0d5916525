package league_test

import (
	"testing"

	"github.com/okian/execap/internal/domain/league"
	"github.com/okian/execap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fixtureRecords() *model.RecordSet {
	return &model.RecordSet{
		Source: "fixture",
		Year:   2024,
		Companies: []model.CompanyRecord{
			{Slug: "acme", Name: "Acme Corp", Ticker: "ACM", MarketCapUSD: 900e9, CapBudgetUSD: 100_000_000},
			{Slug: "globex", Name: "Globex", Ticker: "GBX", MarketCapUSD: 500e9, CapBudgetUSD: 80_000_000},
			{Slug: "initech", Name: "Initech", Ticker: "INI", MarketCapUSD: 100e9},
		},
		People: []model.PersonRecord{
			{ID: "ada_lovelace", FullName: "Ada Lovelace", CurrentTitle: "Chief Executive Officer", IsExecutive: true, Status: model.StatusActive},
			{ID: "grace_hopper", FullName: "Grace Hopper", CurrentTitle: "Chief Financial Officer", IsExecutive: true, Status: model.StatusActive},
			{ID: "alan_turing", FullName: "Alan Turing", CurrentTitle: "Chief Executive Officer", IsExecutive: true, Status: model.StatusActive},
			{ID: "edsger_dijkstra", FullName: "Edsger Dijkstra", CurrentTitle: "Chief Technology Officer", IsExecutive: true, Status: model.StatusRetired},
			{ID: "barbara_liskov", FullName: "Barbara Liskov", IsDirector: true, Status: model.StatusActive},
		},
		ExecutiveComp: []model.ExecutiveCompensation{
			{CompanySlug: "acme", PersonID: "ada_lovelace", FiscalYear: 2024, SalaryUSD: 1_500_000, StockAwardsUSD: 38_500_000, TotalCompUSD: 40_000_000},
			{CompanySlug: "acme", PersonID: "grace_hopper", FiscalYear: 2024, SalaryUSD: 1_000_000, StockAwardsUSD: 19_000_000, TotalCompUSD: 20_000_000},
			{CompanySlug: "globex", PersonID: "alan_turing", FiscalYear: 2024, SalaryUSD: 2_000_000, StockAwardsUSD: 88_000_000, TotalCompUSD: 90_000_000},
			// prior year, must not touch 2024 cap figures
			{CompanySlug: "acme", PersonID: "ada_lovelace", FiscalYear: 2023, TotalCompUSD: 35_000_000},
			{CompanySlug: "globex", PersonID: "edsger_dijkstra", FiscalYear: 2022, TotalCompUSD: 12_000_000},
			// duplicate person/year figure
			{CompanySlug: "acme", PersonID: "ada_lovelace", FiscalYear: 2024, TotalCompUSD: 99_000_000},
			// unknown company and unknown person
			{CompanySlug: "hooli", PersonID: "ada_lovelace", FiscalYear: 2024, TotalCompUSD: 1},
			{CompanySlug: "acme", PersonID: "nobody", FiscalYear: 2024, TotalCompUSD: 1},
		},
		DirectorComp: []model.DirectorCompensation{
			{CompanySlug: "acme", PersonID: "barbara_liskov", FiscalYear: 2024, FeesCashUSD: 100_000, StockAwardsUSD: 200_000},
		},
		DirectorProfiles: []model.DirectorProfile{
			{CompanySlug: "acme", PersonID: "barbara_liskov", Role: "Chair", Independent: true},
		},
	}
}

func TestBuild(t *testing.T) {
	Convey("Given a loaded record set", t, func() {
		rs := fixtureRecords()

		Convey("When a snapshot is built for 2024", func() {
			snap, err := league.Build(rs, 2024)
			So(err, ShouldBeNil)

			Convey("Then companies carry year-scoped cap figures", func() {
				acme, err := snap.Company("acme")
				So(err, ShouldBeNil)
				So(acme.Cap.SpendUSD, ShouldEqual, 60_300_000) // two execs + one director
				So(acme.Cap.BudgetUSD, ShouldEqual, 100_000_000)
				So(acme.Cap.CapSpaceUSD, ShouldEqual, 39_700_000)
				So(acme.Cap.OverBudget, ShouldBeFalse)
				So(acme.Absent, ShouldBeFalse)
				So(acme.Roster, ShouldHaveLength, 2)
				So(acme.Roster[0].PersonName, ShouldEqual, "Ada Lovelace")
				So(acme.Board, ShouldHaveLength, 1)
				So(acme.Board[0].Role, ShouldEqual, "Chair")
				So(acme.Board[0].Independent, ShouldBeTrue)
			})

			Convey("Then an over-budget company is flagged", func() {
				globex, err := snap.Company("globex")
				So(err, ShouldBeNil)
				So(globex.Cap.SpendUSD, ShouldEqual, 90_000_000)
				So(globex.Cap.OverBudget, ShouldBeTrue)
				So(globex.Cap.LuxuryTax, ShouldBeTrue)
			})

			Convey("Then a company with no rows for the year stays valid", func() {
				initech, err := snap.Company("initech")
				So(err, ShouldBeNil)
				So(initech.Absent, ShouldBeTrue)
				So(initech.Cap.SpendUSD, ShouldEqual, 0)
				So(initech.Cap.CapSpaceUSD, ShouldEqual, initech.Cap.BudgetUSD)
				So(initech.Cap.BudgetUSD, ShouldEqual, 50_000_000) // undisclosed, default applies
			})

			Convey("Then malformed and duplicate rows surface as issues, not data", func() {
				So(snap.Issues(), ShouldHaveLength, 3)
				ada, err := snap.Person("ada_lovelace")
				So(err, ShouldBeNil)
				So(ada.CurrentCompUSD, ShouldEqual, 40_000_000)
			})

			Convey("Then careers span every loaded year", func() {
				ada, err := snap.Person("ada_lovelace")
				So(err, ShouldBeNil)
				So(ada.Career.YearsActive, ShouldEqual, 2)
				So(ada.Career.TotalEarningsUSD, ShouldEqual, 75_000_000)
				So(ada.Career.HighestSingleYearUSD, ShouldEqual, 40_000_000)
				So(ada.Contracts[0].FiscalYear, ShouldEqual, 2024)
			})

			Convey("Then years list every fiscal year present, descending", func() {
				So(snap.Years(), ShouldResemble, []int{2024, 2023, 2022})
			})

			Convey("Then lookups for unknown keys fail cleanly", func() {
				_, err := snap.Company("hooli")
				So(err, ShouldEqual, league.ErrCompanyNotFound)
				_, err = snap.Person("nobody")
				So(err, ShouldEqual, league.ErrPersonNotFound)
			})
		})

		Convey("When built for a different year", func() {
			snap, err := league.Build(rs, 2023)
			So(err, ShouldBeNil)

			Convey("Then only that year's rows count toward spend", func() {
				acme, err := snap.Company("acme")
				So(err, ShouldBeNil)
				So(acme.Cap.SpendUSD, ShouldEqual, 35_000_000)
				So(acme.Roster, ShouldHaveLength, 1)
				globex, err := snap.Company("globex")
				So(err, ShouldBeNil)
				So(globex.Absent, ShouldBeTrue)
			})
		})

		Convey("When the record set is nil", func() {
			_, err := league.Build(nil, 2024)
			So(err, ShouldEqual, league.ErrNilRecords)
		})

		Convey("When built twice from the same records", func() {
			a, err := league.Build(rs, 2024)
			So(err, ShouldBeNil)
			b, err := league.Build(rs, 2024)
			So(err, ShouldBeNil)

			Convey("Then orderings are deterministic and versions unique", func() {
				So(a.Version(), ShouldNotEqual, b.Version())
				av, bv := a.Standings(), b.Standings()
				So(av, ShouldHaveLength, len(bv))
				for i := range av {
					So(av[i].Slug, ShouldEqual, bv[i].Slug)
				}
			})
		})
	})
}

func TestSnapshotQueries(t *testing.T) {
	Convey("Given a built snapshot", t, func() {
		snap, err := league.Build(fixtureRecords(), 2024)
		So(err, ShouldBeNil)

		Convey("Standings order by market cap desc", func() {
			st := snap.Standings()
			So(st, ShouldHaveLength, 3)
			So(st[0].Slug, ShouldEqual, "acme")
			So(st[1].Slug, ShouldEqual, "globex")
			So(st[2].Slug, ShouldEqual, "initech")
		})

		Convey("TopCapSpace orders by remaining room desc and caps at n", func() {
			top := snap.TopCapSpace(2)
			So(top, ShouldHaveLength, 2)
			So(top[0].Slug, ShouldEqual, "initech") // 50M room
			So(top[1].Slug, ShouldEqual, "acme")    // 39.7M room
			So(snap.TopCapSpace(0), ShouldBeNil)
			So(snap.TopCapSpace(100), ShouldHaveLength, 3)
		})

		Convey("TopContracts orders by total desc with name tie-break", func() {
			top := snap.TopContracts(10)
			So(top, ShouldHaveLength, 3)
			So(top[0].PersonName, ShouldEqual, "Alan Turing")
			So(top[1].PersonName, ShouldEqual, "Ada Lovelace")
			So(top[2].PersonName, ShouldEqual, "Grace Hopper")
			So(top[0].CapHitPct, ShouldEqual, 112.5)
		})

		Convey("PositionLeaders matches normalized title tokens", func() {
			ceos := snap.PositionLeaders("CEO", 10)
			So(ceos, ShouldBeEmpty) // titles spell the role out

			ceos = snap.PositionLeaders("Chief Executive Officer", 10)
			So(ceos, ShouldHaveLength, 2)
			So(ceos[0].PersonName, ShouldEqual, "Alan Turing")

			cfos := snap.PositionLeaders("chief financial officer", 10)
			So(cfos, ShouldHaveLength, 1)
			So(cfos[0].PersonName, ShouldEqual, "Grace Hopper")
		})

		Convey("FreeAgents lists inactive people with their last line", func() {
			fas := snap.FreeAgents(league.FreeAgentFilter{})
			So(fas, ShouldHaveLength, 1)
			So(fas[0].PersonID, ShouldEqual, "edsger_dijkstra")
			So(fas[0].LastYear, ShouldEqual, 2022)
			So(fas[0].LastCompUSD, ShouldEqual, 12_000_000)

			So(snap.FreeAgents(league.FreeAgentFilter{MinLastComp: 20_000_000}), ShouldBeEmpty)
			So(snap.FreeAgents(league.FreeAgentFilter{Title: "chief technology officer"}), ShouldHaveLength, 1)
			So(snap.FreeAgents(league.FreeAgentFilter{Title: "chief executive officer"}), ShouldBeEmpty)
		})

		Convey("Summary rolls up the league", func() {
			sum := snap.Summary()
			So(sum.Companies, ShouldEqual, 3)
			So(sum.Contracts, ShouldEqual, 3)
			So(sum.FreeAgents, ShouldEqual, 1)
			So(sum.AbsentCompanies, ShouldEqual, 1)
			So(sum.OverBudgetCompanies, ShouldEqual, 1)
			So(sum.TotalSpendUSD, ShouldEqual, 150_300_000)
			So(sum.TotalBudgetUSD, ShouldEqual, 230_000_000)
		})
	})
}
