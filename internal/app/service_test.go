package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okian/execap/internal/adapters/source"
	service "github.com/okian/execap/internal/app"
	"github.com/okian/execap/internal/domain/league"
	"github.com/okian/execap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// stubSource serves canned record sets and can be flipped into outage mode.
type stubSource struct {
	down  bool
	loads int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(_ context.Context, year int) (*model.RecordSet, error) {
	s.loads++
	if s.down {
		return nil, fmt.Errorf("%w: bucket unreachable", source.ErrSourceUnavailable)
	}
	return &model.RecordSet{
		Source: "stub",
		Year:   year,
		Companies: []model.CompanyRecord{
			{Slug: "acme", Name: "Acme Corp", MarketCapUSD: 1e12, CapBudgetUSD: 100_000_000},
		},
		People: []model.PersonRecord{
			{ID: "ada_lovelace", FullName: "Ada Lovelace", CurrentTitle: "Chief Executive Officer", IsExecutive: true, Status: model.StatusActive},
		},
		ExecutiveComp: []model.ExecutiveCompensation{
			{CompanySlug: "acme", PersonID: "ada_lovelace", FiscalYear: year, TotalCompUSD: 40_000_000},
		},
	}, nil
}

func TestService(t *testing.T) {
	Convey("Given a service over a healthy source", t, func() {
		src := &stubSource{}
		svc := service.New(service.WithSource(src), service.WithDefaultYear(2024))

		Convey("Before Start no snapshot is served", func() {
			_, err := svc.Snapshot()
			So(err, ShouldEqual, service.ErrNotReady)
		})

		Convey("Start performs the initial refresh", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(src.loads, ShouldEqual, 1)

			snap, err := svc.Snapshot()
			So(err, ShouldBeNil)
			So(snap.Year(), ShouldEqual, 2024)

			Convey("Queries delegate to the published snapshot", func() {
				sum, err := svc.Summary()
				So(err, ShouldBeNil)
				So(sum.Companies, ShouldEqual, 1)

				c, err := svc.Company("acme")
				So(err, ShouldBeNil)
				So(c.Cap.SpendUSD, ShouldEqual, 40_000_000)

				p, err := svc.Person("ada_lovelace")
				So(err, ShouldBeNil)
				So(p.CurrentCompUSD, ShouldEqual, 40_000_000)

				_, err = svc.Company("hooli")
				So(errors.Is(err, league.ErrCompanyNotFound), ShouldBeTrue)

				years, err := svc.Years()
				So(err, ShouldBeNil)
				So(years, ShouldResemble, []int{2024})
			})

			Convey("A failed refresh keeps the previous snapshot serving", func() {
				before, _ := svc.Snapshot()
				src.down = true

				_, err := svc.Refresh(context.Background(), 2024)
				So(errors.Is(err, source.ErrSourceUnavailable), ShouldBeTrue)

				after, err := svc.Snapshot()
				So(err, ShouldBeNil)
				So(after.Version(), ShouldEqual, before.Version())
			})

			Convey("A refresh replaces the snapshot atomically", func() {
				before, _ := svc.Snapshot()
				snap, err := svc.Refresh(context.Background(), 2023)
				So(err, ShouldBeNil)
				So(snap.Version(), ShouldNotEqual, before.Version())
				So(snap.Year(), ShouldEqual, 2023)

				current, _ := svc.Snapshot()
				So(current.Version(), ShouldEqual, snap.Version())
			})

			Convey("Refresh with year zero uses the configured default", func() {
				snap, err := svc.Refresh(context.Background(), 0)
				So(err, ShouldBeNil)
				So(snap.Year(), ShouldEqual, 2024)
			})

			Convey("Stats describe the published snapshot", func() {
				stats := svc.GetStats()
				So(stats["ready"], ShouldBeTrue)
				So(stats["companies"], ShouldEqual, 1)
				So(stats["source"], ShouldEqual, "stub")
			})
		})
	})

	Convey("Given a source that is down at startup", t, func() {
		src := &stubSource{down: true}
		svc := service.New(service.WithSource(src), service.WithDefaultYear(2024))

		Convey("Start degrades to an empty league", func() {
			So(svc.Start(context.Background()), ShouldBeNil)

			snap, err := svc.Snapshot()
			So(err, ShouldBeNil)
			So(snap.Summary().Companies, ShouldEqual, 0)
			So(snap.Warnings(), ShouldHaveLength, 1)
			So(snap.Warnings()[0], ShouldContainSubstring, "initial load failed")

			Convey("A later refresh recovers", func() {
				src.down = false
				_, err := svc.Refresh(context.Background(), 2024)
				So(err, ShouldBeNil)

				sum, err := svc.Summary()
				So(err, ShouldBeNil)
				So(sum.Companies, ShouldEqual, 1)
			})
		})
	})

	Convey("Cap options flow into the build", t, func() {
		src := &stubSource{}
		svc := service.New(
			service.WithSource(src),
			service.WithDefaultYear(2024),
			service.WithCapBudget(75_000_000),
			service.WithLuxuryTaxThreshold(0.5),
		)
		So(svc.Start(context.Background()), ShouldBeNil)

		c, err := svc.Company("acme")
		So(err, ShouldBeNil)
		// acme discloses its own budget; threshold still applies
		So(c.Cap.BudgetUSD, ShouldEqual, 100_000_000)
		So(c.Cap.LuxuryTax, ShouldBeFalse) // 40M < 50M threshold
	})
}
