package model_test

import (
	"testing"

	"github.com/okian/execap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSlugify(t *testing.T) {
	Convey("Given company and person names", t, func() {
		Convey("Then slugs should collapse punctuation and case", func() {
			So(model.Slugify("Berkshire Hathaway Inc."), ShouldEqual, "berkshire_hathaway_inc")
			So(model.Slugify("Amazon.com, Inc."), ShouldEqual, "amazon_com_inc")
			So(model.Slugify("Doug McMillon"), ShouldEqual, "doug_mcmillon")
			So(model.Slugify("  "), ShouldEqual, "unknown")
		})
	})
}

func TestParseMoney(t *testing.T) {
	Convey("Given currency cells", t, func() {
		Convey("When the cell is well formed", func() {
			v, err := model.ParseMoney("$1,505,000")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1505000)

			v, err = model.ParseMoney("(25000)")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, -25000)
		})

		Convey("When the cell is blank-ish", func() {
			for _, s := range []string{"", "NA", "n/a", "None", "-"} {
				v, err := model.ParseMoney(s)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 0)
			}
		})

		Convey("When the cell is garbage", func() {
			_, err := model.ParseMoney("twelve dollars")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseCountAndPercent(t *testing.T) {
	Convey("Given share counts and percentages", t, func() {
		v, err := model.ParseCount("1,234,567")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 1234567)

		v, err = model.ParseCount("12.0")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 12)

		_, err = model.ParseCount("lots")
		So(err, ShouldNotBeNil)

		p, err := model.ParsePercent("<1%")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, 1)

		p, err = model.ParsePercent("2.3")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, 2.3)
	})
}

func TestParseDate(t *testing.T) {
	Convey("Given date cells", t, func() {
		d, ok := model.ParseDate("2024-12-31")
		So(ok, ShouldBeTrue)
		So(d.Year(), ShouldEqual, 2024)

		d, ok = model.ParseDate("1/31/2024")
		So(ok, ShouldBeTrue)
		So(d.Month(), ShouldEqual, 1)

		_, ok = model.ParseDate("yesterday")
		So(ok, ShouldBeFalse)
	})
}

func TestCompensationTotal(t *testing.T) {
	Convey("Given compensation rows", t, func() {
		Convey("When the filing discloses a total", func() {
			c := model.ExecutiveCompensation{SalaryUSD: 1, TotalCompUSD: 100}
			So(c.Total(), ShouldEqual, 100)
		})

		Convey("When the total column is blank", func() {
			c := model.ExecutiveCompensation{
				SalaryUSD:       1_000_000,
				BonusUSD:        500_000,
				StockAwardsUSD:  2_000_000,
				AllOtherCompUSD: 50_000,
			}
			So(c.Total(), ShouldEqual, 3_550_000)
		})

		Convey("Director totals behave the same way", func() {
			d := model.DirectorCompensation{FeesCashUSD: 150_000, StockAwardsUSD: 175_000}
			So(d.Total(), ShouldEqual, 325_000)
		})
	})
}

func TestFreeAgent(t *testing.T) {
	Convey("Given person records", t, func() {
		So(model.PersonRecord{Status: model.StatusActive}.FreeAgent(), ShouldBeFalse)
		So(model.PersonRecord{Status: model.StatusRetired}.FreeAgent(), ShouldBeTrue)
		So(model.PersonRecord{}.FreeAgent(), ShouldBeFalse)
	})
}
