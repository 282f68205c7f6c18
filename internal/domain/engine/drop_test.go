package engine_test

import (
	"testing"

	"github.com/gridironlabs/draftboard/internal/domain/engine"
	"github.com/gridironlabs/draftboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// rbPool builds a ranked RB pool from descending projections.
func rbPool(points ...float64) []model.Player {
	pool := make([]model.Player, len(points))
	for i, pts := range points {
		pool[i] = player(string(rune('a'+i)), model.RB, pts)
	}
	return pool
}

func TestScorePool(t *testing.T) {
	Convey("Given a sorted RB pool of projections 30,28,25,22,20,18", t, func() {
		pool := rbPool(30, 28, 25, 22, 20, 18)

		Convey("When scoring with k=3", func() {
			scores, err := engine.ScorePool(pool, 3)
			So(err, ShouldBeNil)

			Convey("Then the top player drops 30 - mean(28,25,22) = 5", func() {
				So(scores[pool[0].ID], ShouldAlmostEqual, 5.0)
			})

			Convey("And every non-final player matches the windowed mean", func() {
				// 28 - mean(25,22,20)
				So(scores[pool[1].ID], ShouldAlmostEqual, 28-(25+22+20)/3.0)
				// 20 - mean(18): window shrinks near the end
				So(scores[pool[4].ID], ShouldAlmostEqual, 2.0)
			})

			Convey("And the last player has no entry", func() {
				_, ok := scores[pool[5].ID]
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the window is wider than the pool", func() {
			scores, err := engine.ScorePool(pool, 50)
			So(err, ShouldBeNil)

			Convey("Then the mean covers whatever successors remain", func() {
				So(scores[pool[0].ID], ShouldAlmostEqual, 30-(28+25+22+20+18)/5.0)
				So(len(scores), ShouldEqual, len(pool)-1)
			})
		})

		Convey("When k is zero", func() {
			_, err := engine.ScorePool(pool, 0)

			Convey("Then the input is rejected", func() {
				So(err, ShouldEqual, engine.ErrInvalidWindow)
			})
		})
	})

	Convey("Given a single-player pool", t, func() {
		Convey("When scoring", func() {
			scores, err := engine.ScorePool(rbPool(30), 3)
			So(err, ShouldBeNil)

			Convey("Then no score is produced", func() {
				So(scores, ShouldBeEmpty)
			})
		})
	})

	Convey("Given an empty pool", t, func() {
		Convey("When scoring", func() {
			scores, err := engine.ScorePool(nil, 3)
			So(err, ShouldBeNil)
			So(scores, ShouldBeEmpty)
		})
	})
}

func TestComputeDrops(t *testing.T) {
	cfg := &model.LeagueConfig{
		Teams:     2,
		QBSlots:   1,
		RBSlots:   1,
		FlexSlots: 1,
	}

	Convey("Given a snapshot with open RB need", t, func() {
		snap := model.Snapshot{
			Config: cfg,
			Players: []model.Player{
				player("rb-1", model.RB, 30),
				player("rb-2", model.RB, 28),
				player("rb-3", model.RB, 25),
				player("rb-4", model.RB, 22),
			},
		}

		Convey("When computing drops with k=3", func() {
			drops, err := engine.ComputeDrops(snap, 3)
			So(err, ShouldBeNil)

			Convey("Then the RB pool is scored", func() {
				So(drops["rb-1"], ShouldAlmostEqual, 5.0)
			})

			Convey("And the last-ranked RB has no entry", func() {
				_, ok := drops["rb-4"]
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When computing twice on the unchanged snapshot", func() {
			first, err1 := engine.ComputeDrops(snap, 3)
			second, err2 := engine.ComputeDrops(snap, 3)
			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)

			Convey("Then the output is identical", func() {
				So(len(second), ShouldEqual, len(first))
				for id, drop := range first {
					So(second[id], ShouldAlmostEqual, drop)
				}
			})
		})

		Convey("When computing with k=0", func() {
			_, err := engine.ComputeDrops(snap, 0)

			Convey("Then the input is rejected", func() {
				So(err, ShouldEqual, engine.ErrInvalidWindow)
			})
		})
	})

	Convey("Given a player ranked in both its position pool and FLEX", t, func() {
		drafted := 7
		snap := model.Snapshot{
			Config: cfg,
			Players: []model.Player{
				player("rb-1", model.RB, 30),
				player("rb-2", model.RB, 20),
				player("rb-3", model.RB, 10),
				player("wr-1", model.WR, 28),
				player("wr-2", model.WR, 26),
				// Drafted, unprojected QB: leaves QB need open but its
				// pool empty, so only RB and FLEX produce scores.
				{ID: "qb-1", Position: model.QB, PickNumber: &drafted},
			},
		}

		Convey("When FLEX is still needed", func() {
			drops, err := engine.ComputeDrops(snap, 2)
			So(err, ShouldBeNil)

			Convey("Then the FLEX score supersedes the position score", func() {
				// RB pool: rb-1 drop = 30 - mean(20,10) = 15
				// FLEX pool ranked: rb-1(30), wr-1(28), wr-2(26), rb-2(20), rb-3(10)
				// rb-1 FLEX drop = 30 - mean(28,26) = 3
				So(engine.FlexOverridesPosition, ShouldBeTrue)
				So(drops["rb-1"], ShouldAlmostEqual, 3.0)
			})

			Convey("And FLEX scores players whose own position need is zero", func() {
				// WR has no starter slots here, so wr-1 is scored only by FLEX.
				So(drops["wr-1"], ShouldAlmostEqual, 28-(26+20)/2.0)
			})
		})
	})

	Convey("Given a snapshot without league configuration", t, func() {
		snap := model.Snapshot{
			Players: []model.Player{player("rb-1", model.RB, 30), player("rb-2", model.RB, 20)},
		}

		Convey("When computing drops", func() {
			drops, err := engine.ComputeDrops(snap, 3)

			Convey("Then nothing is scored and no error is raised", func() {
				So(err, ShouldBeNil)
				So(drops, ShouldBeEmpty)
			})
		})
	})

	Convey("Given players without projections", t, func() {
		snap := model.Snapshot{
			Config: cfg,
			Players: []model.Player{
				player("rb-1", model.RB, 30),
				player("rb-2", model.RB, 20),
				unprojected("rb-ghost", model.RB),
			},
		}

		Convey("When computing drops", func() {
			drops, err := engine.ComputeDrops(snap, 3)
			So(err, ShouldBeNil)

			Convey("Then unprojected players never appear in the output", func() {
				_, ok := drops["rb-ghost"]
				So(ok, ShouldBeFalse)
			})

			Convey("And they do not disturb their neighbors' windows", func() {
				So(drops["rb-1"], ShouldAlmostEqual, 10.0)
			})
		})
	})
}
