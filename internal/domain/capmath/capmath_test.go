package capmath_test

import (
	"testing"

	"github.com/okian/execap/internal/domain/capmath"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCalculator(t *testing.T) {
	Convey("Given a calculator with defaults", t, func() {
		c := capmath.New()

		Convey("When a company discloses no budget", func() {
			info := c.Derive(0, 10_000_000)

			Convey("Then the default budget applies", func() {
				So(info.BudgetUSD, ShouldEqual, 50_000_000)
				So(info.CapSpaceUSD, ShouldEqual, 40_000_000)
				So(info.UtilizationPct, ShouldEqual, 20)
				So(info.OverBudget, ShouldBeFalse)
			})
		})

		Convey("When a company has zero spend", func() {
			info := c.Derive(120_000_000, 0)

			Convey("Then cap space equals the full budget", func() {
				So(info.CapSpaceUSD, ShouldEqual, 120_000_000)
				So(info.UtilizationPct, ShouldEqual, 0)
				So(info.LuxuryTax, ShouldBeFalse)
			})
		})

		Convey("When spend exceeds the budget", func() {
			info := c.Derive(100_000_000, 130_000_000)

			Convey("Then both the over-budget and luxury-tax flags trip", func() {
				So(info.OverBudget, ShouldBeTrue)
				So(info.LuxuryTax, ShouldBeTrue)
				So(info.CapSpaceUSD, ShouldEqual, -30_000_000)
			})
		})
	})

	Convey("Given a calculator with a lowered luxury-tax threshold", t, func() {
		c := capmath.New(
			capmath.WithDefaultBudget(80_000_000),
			capmath.WithLuxuryTaxThreshold(0.9),
		)

		Convey("When spend sits between threshold and budget", func() {
			info := c.Derive(100_000_000, 95_000_000)

			Convey("Then the tax flag trips without over-budget", func() {
				So(info.LuxuryTax, ShouldBeTrue)
				So(info.OverBudget, ShouldBeFalse)
			})
		})

		Convey("When no budget is disclosed", func() {
			So(c.Budget(0), ShouldEqual, 80_000_000)
		})
	})

	Convey("Given cap-hit computations", t, func() {
		c := capmath.New()

		So(c.CapHitPct(200_000_000, 50_000_000), ShouldEqual, 25)
		So(c.CapHitPct(0, 5_000_000), ShouldEqual, 10)
	})
}
