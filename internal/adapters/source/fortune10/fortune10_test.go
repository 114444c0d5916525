package fortune10_test

import (
	"context"
	"testing"

	"github.com/okian/execap/internal/adapters/source/fortune10"
	"github.com/okian/execap/internal/domain/league"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the bundled dataset loader", t, func() {
		l := fortune10.New()
		So(l.Name(), ShouldEqual, "fortune10")

		Convey("When loading for 2024", func() {
			rs, err := l.Load(context.Background(), 2024)
			So(err, ShouldBeNil)

			Convey("Then all ten companies are present", func() {
				So(rs.Companies, ShouldHaveLength, 10)
				So(rs.Source, ShouldEqual, "fortune10")
				So(rs.LoadID, ShouldNotBeEmpty)

				_, ok := rs.Company("apple_inc")
				So(ok, ShouldBeTrue)
				walmart, ok := rs.Company("walmart_inc")
				So(ok, ShouldBeTrue)
				So(walmart.Ticker, ShouldEqual, "WMT")
				So(walmart.CapBudgetUSD, ShouldEqual, 125_000_000)
			})

			Convey("Then an undisclosed cap budget stays zero", func() {
				cencora, ok := rs.Company("cencora_inc")
				So(ok, ShouldBeTrue)
				So(cencora.CapBudgetUSD, ShouldEqual, 0)
			})

			Convey("Then executives carry compensation rows", func() {
				cook, ok := rs.Person("tim_cook")
				So(ok, ShouldBeTrue)
				So(cook.IsExecutive, ShouldBeTrue)

				var total float64
				for _, row := range rs.ExecutiveComp {
					if row.PersonID == "tim_cook" {
						total = row.Total()
					}
				}
				So(total, ShouldEqual, 3_000_000+12_000_000+58_088_946+1_520_856)
			})

			Convey("Then board members become directors with synthesized pay", func() {
				penner, ok := rs.Person("greg_penner")
				So(ok, ShouldBeTrue)
				So(penner.IsDirector, ShouldBeTrue)

				var seat bool
				for _, row := range rs.DirectorComp {
					if row.PersonID == "greg_penner" {
						seat = true
						So(row.Total(), ShouldEqual, 150_000+175_000+25_000)
					}
				}
				So(seat, ShouldBeTrue)
				So(rs.DirectorPolicies, ShouldNotBeEmpty)
			})

			Convey("Then a board seat held by an executive adds no duplicate person", func() {
				var count int
				for _, p := range rs.People {
					if p.ID == "doug_mcmillon" {
						count++
					}
				}
				So(count, ShouldEqual, 1)
			})

			Convey("Then the set feeds a snapshot build cleanly", func() {
				snap, err := league.Build(rs, 2024)
				So(err, ShouldBeNil)
				So(snap.Issues(), ShouldBeEmpty)
				So(snap.Years(), ShouldResemble, []int{2024, 2023})

				// Exxon's filings are fiscal 2023; it shows absent for 2024.
				exxon, err := snap.Company("exxon_mobil_corporation")
				So(err, ShouldBeNil)
				So(exxon.Roster, ShouldBeEmpty)
				So(exxon.Absent, ShouldBeTrue)
			})
		})
	})
}
