package engine_test

import (
	"testing"

	"github.com/gridironlabs/draftboard/internal/domain/engine"
	"github.com/gridironlabs/draftboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveNeeds(t *testing.T) {
	Convey("Given a 12-team league with 2 RB starter slots", t, func() {
		cfg := &model.LeagueConfig{
			Teams:     12,
			QBSlots:   1,
			RBSlots:   2,
			WRSlots:   2,
			FlexSlots: 1,
		}

		Convey("When 20 RBs have been drafted", func() {
			needs := engine.ResolveNeeds(cfg, map[model.Position]int{model.RB: 20})

			Convey("Then 4 RB starters remain needed", func() {
				So(needs.Position[model.RB], ShouldEqual, 4)
			})

			Convey("And untouched positions report their full requirement", func() {
				So(needs.Position[model.QB], ShouldEqual, 12)
				So(needs.Position[model.WR], ShouldEqual, 24)
			})
		})

		Convey("When a position is drafted past its requirement", func() {
			needs := engine.ResolveNeeds(cfg, map[model.Position]int{model.RB: 30})

			Convey("Then its need clamps to zero", func() {
				So(needs.Position[model.RB], ShouldEqual, 0)
			})
		})
	})

	Convey("Given FLEX slots fed by eligible-position surplus", t, func() {
		cfg := &model.LeagueConfig{
			Teams:     12,
			QBSlots:   1,
			RBSlots:   2,
			WRSlots:   2,
			FlexSlots: 2,
		}

		Convey("When RB has surplus 3 and WR has surplus 2", func() {
			drafted := map[model.Position]int{
				model.QB: 12, // exactly required, no surplus
				model.RB: 27, // 24 required -> surplus 3
				model.WR: 26, // 24 required -> surplus 2
			}
			needs := engine.ResolveNeeds(cfg, drafted)

			Convey("Then FLEX need is 24 minus the shared surplus", func() {
				So(needs.Flex, ShouldEqual, 19)
			})

			Convey("And the FLEX pool would still be scored even with position needs at zero", func() {
				So(needs.Position[model.QB], ShouldEqual, 0)
				So(needs.Position[model.RB], ShouldEqual, 0)
				So(needs.Flex, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When surplus exceeds the FLEX requirement", func() {
			drafted := map[model.Position]int{model.RB: 60}
			needs := engine.ResolveNeeds(cfg, drafted)

			Convey("Then FLEX need clamps to zero", func() {
				So(needs.Flex, ShouldEqual, 0)
			})
		})

		Convey("When surplus grows while teams and slots stay fixed", func() {
			prev := engine.ResolveNeeds(cfg, map[model.Position]int{model.RB: 24}).Flex
			for drafted := 25; drafted <= 50; drafted++ {
				cur := engine.ResolveNeeds(cfg, map[model.Position]int{model.RB: drafted}).Flex
				So(cur, ShouldBeLessThanOrEqualTo, prev)
				So(cur, ShouldBeGreaterThanOrEqualTo, 0)
				prev = cur
			}
		})
	})

	Convey("Given TE surplus with the default eligibility set", t, func() {
		cfg := &model.LeagueConfig{Teams: 10, TESlots: 1, FlexSlots: 1}

		Convey("When TE is drafted far past its requirement", func() {
			needs := engine.ResolveNeeds(cfg, map[model.Position]int{model.TE: 25})

			Convey("Then TE surplus never satisfies FLEX", func() {
				So(needs.Flex, ShouldEqual, 10)
			})
		})
	})

	Convey("Given a league that adds TE to the FLEX set", t, func() {
		cfg := &model.LeagueConfig{
			Teams:        10,
			TESlots:      1,
			FlexSlots:    1,
			FlexEligible: []model.Position{model.RB, model.WR, model.TE},
		}

		Convey("When TE carries surplus", func() {
			needs := engine.ResolveNeeds(cfg, map[model.Position]int{model.TE: 14})

			Convey("Then the surplus counts against FLEX", func() {
				So(needs.Flex, ShouldEqual, 6)
			})
		})
	})

	Convey("Given no league configuration", t, func() {
		Convey("When resolving needs", func() {
			needs := engine.ResolveNeeds(nil, map[model.Position]int{model.RB: 5})

			Convey("Then every need is zero", func() {
				So(needs.Flex, ShouldEqual, 0)
				for _, pos := range []model.Position{model.QB, model.RB, model.WR, model.TE} {
					So(needs.Position[pos], ShouldEqual, 0)
				}
			})
		})
	})
}
