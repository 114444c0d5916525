package dedupe_test

import (
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/execap/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestKeyedSet(t *testing.T) {
	Convey("Given a new keyed set", t, func() {
		d := dedupe.NewKeyedSet()

		Convey("When recording a fresh key", func() {
			seen := d.SeenAndRecord("executive_compensation|doug_mcmillon|2024")

			Convey("Then it should return false and record the key", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording the same key twice", func() {
			d.SeenAndRecord("executive_compensation|doug_mcmillon|2024")
			seen := d.SeenAndRecord("executive_compensation|doug_mcmillon|2024")

			Convey("Then the second record should report seen", func() {
				So(seen, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When the same person appears in different years", func() {
			So(d.SeenAndRecord(dedupe.PersonYearKey("executive_compensation", "tim_cook", 2023)), ShouldBeFalse)
			So(d.SeenAndRecord(dedupe.PersonYearKey("executive_compensation", "tim_cook", 2024)), ShouldBeFalse)

			Convey("Then both keys should be recorded", func() {
				So(d.Size(), ShouldEqual, 2)
			})
		})

		Convey("When recording concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					d.SeenAndRecord(fmt.Sprintf("key-%d", n%10))
				}(i)
			}
			wg.Wait()

			Convey("Then only distinct keys should be stored", func() {
				So(d.Size(), ShouldEqual, 10)
			})
		})
	})
}

func TestPersonYearKey(t *testing.T) {
	Convey("Given key components", t, func() {
		key := dedupe.PersonYearKey("director_compensation", "carla_harris", 2024)
		So(key, ShouldEqual, "director_compensation|carla_harris|2024")
	})
}
