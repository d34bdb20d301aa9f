package seed_test

import (
	"testing"

	"balancewheel/internal/domain/wheel"
	"balancewheel/internal/seed"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateInputs(t *testing.T) {
	Convey("Given the demo input generator", t, func() {
		Convey("When generating many input sets", func() {
			for i := 0; i < 50; i++ {
				ratings, notes := seed.GenerateInputs()

				So(len(ratings), ShouldEqual, len(wheel.Categories()))
				for _, c := range wheel.Categories() {
					r, ok := ratings[c]
					So(ok, ShouldBeTrue)
					So(r, ShouldBeBetweenOrEqual, wheel.MinRating, wheel.MaxRating)
					_, ok = notes[c]
					So(ok, ShouldBeTrue)
				}

				snap, err := wheel.BuildSnapshot(ratings, notes)
				So(err, ShouldBeNil)
				So(snap.Validate(), ShouldBeNil)
			}
		})
	})
}
