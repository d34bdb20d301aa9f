package wheel_test

import (
	"errors"
	"testing"

	"balancewheel/internal/domain/wheel"

	. "github.com/smartystreets/goconvey/convey"
)

func allFives() map[wheel.Category]int {
	ratings := make(map[wheel.Category]int)
	for _, c := range wheel.Categories() {
		ratings[c] = 5
	}
	return ratings
}

func TestCategories(t *testing.T) {
	Convey("Given the fixed category set", t, func() {
		cats := wheel.Categories()

		Convey("Then there are six categories in declaration order", func() {
			So(cats, ShouldResemble, []wheel.Category{
				wheel.Physical,
				wheel.Emotional,
				wheel.Professional,
				wheel.Creativity,
				wheel.Financial,
				wheel.Adventures,
			})
		})

		Convey("And mutating the returned slice does not leak", func() {
			cats[0] = "Tampered"
			So(wheel.Categories()[0], ShouldEqual, wheel.Physical)
		})

		Convey("And Known reports membership", func() {
			So(wheel.Known(wheel.Financial), ShouldBeTrue)
			So(wheel.Known("Spiritual"), ShouldBeFalse)
		})
	})
}

func TestDefaultSnapshot(t *testing.T) {
	Convey("Given the default snapshot", t, func() {
		snap := wheel.DefaultSnapshot()

		Convey("Then every category is rated 5 with an empty note", func() {
			So(len(snap), ShouldEqual, 6)
			for _, c := range wheel.Categories() {
				So(snap[c].Rating, ShouldEqual, wheel.DefaultRating)
				So(snap[c].Note, ShouldEqual, "")
			}
		})

		Convey("And it satisfies the snapshot invariant", func() {
			So(snap.Validate(), ShouldBeNil)
		})
	})
}

func TestBuildSnapshot(t *testing.T) {
	Convey("Given parallel rating and note inputs", t, func() {
		Convey("When all six categories are rated", func() {
			ratings := allFives()
			ratings[wheel.Physical] = 9
			notes := map[wheel.Category]string{wheel.Physical: "new gym routine"}

			snap, err := wheel.BuildSnapshot(ratings, notes)

			Convey("Then the snapshot carries the inputs", func() {
				So(err, ShouldBeNil)
				So(snap[wheel.Physical], ShouldResemble, wheel.Record{Rating: 9, Note: "new gym routine"})
				So(snap[wheel.Emotional], ShouldResemble, wheel.Record{Rating: 5})
			})
		})

		Convey("When a category rating is missing", func() {
			ratings := allFives()
			delete(ratings, wheel.Adventures)

			_, err := wheel.BuildSnapshot(ratings, nil)

			Convey("Then it is rejected as invalid", func() {
				So(errors.Is(err, wheel.ErrInvalidSnapshot), ShouldBeTrue)
			})
		})

		Convey("When a rating is out of range", func() {
			ratings := allFives()
			ratings[wheel.Creativity] = 11

			_, err := wheel.BuildSnapshot(ratings, nil)

			Convey("Then it is rejected as invalid", func() {
				So(errors.Is(err, wheel.ErrInvalidSnapshot), ShouldBeTrue)
			})
		})

		Convey("When an unknown category appears", func() {
			ratings := allFives()
			ratings["Spiritual"] = 5

			_, err := wheel.BuildSnapshot(ratings, nil)

			Convey("Then it is rejected", func() {
				So(errors.Is(err, wheel.ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})
}

func TestSnapshotProjections(t *testing.T) {
	Convey("Given a snapshot", t, func() {
		ratings := map[wheel.Category]int{
			wheel.Physical:     1,
			wheel.Emotional:    2,
			wheel.Professional: 3,
			wheel.Creativity:   4,
			wheel.Financial:    5,
			wheel.Adventures:   6,
		}
		notes := map[wheel.Category]string{
			wheel.Physical:   "a",
			wheel.Adventures: "f",
		}
		snap, err := wheel.BuildSnapshot(ratings, notes)
		So(err, ShouldBeNil)

		Convey("Then Ratings follows category order", func() {
			So(snap.Ratings(), ShouldResemble, []int{1, 2, 3, 4, 5, 6})
		})

		Convey("And Notes follows category order", func() {
			So(snap.Notes(), ShouldResemble, []string{"a", "", "", "", "", "f"})
		})
	})
}
