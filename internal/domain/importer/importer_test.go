package importer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gridironlabs/draftboard/internal/domain/importer"
	"github.com/gridironlabs/draftboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePlayers(t *testing.T) {
	Convey("Given a well-formed players CSV", t, func() {
		csv := strings.Join([]string{
			"name,position,team,projected_points,bye_week,predicted_pick",
			"Josh Allen,QB,BUF,285.5,12,8",
			"Christian McCaffrey,rb,SF,245.8,9,",
			"San Francisco 49ers,DST,SF,125.8,,",
		}, "\n")

		Convey("When parsing", func() {
			players, err := importer.ParsePlayers(strings.NewReader(csv))
			So(err, ShouldBeNil)

			Convey("Then every row becomes a player with a fresh id", func() {
				So(len(players), ShouldEqual, 3)
				So(players[0].ID, ShouldNotBeEmpty)
				So(players[0].ID, ShouldNotEqual, players[1].ID)
			})

			Convey("And positions are normalized", func() {
				So(players[1].Position, ShouldEqual, model.RB)
				So(players[2].Position, ShouldEqual, model.DST)
			})

			Convey("And optional fields default sensibly", func() {
				So(*players[0].PredictedPick, ShouldEqual, 8)
				So(players[1].PredictedPick, ShouldBeNil)
				So(players[2].ByeWeek, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a CSV without the optional columns", t, func() {
		csv := "name,position,team,projected_points\nCooper Kupp,WR,LAR,265.2\n"

		Convey("When parsing", func() {
			players, err := importer.ParsePlayers(strings.NewReader(csv))

			Convey("Then it parses with defaults", func() {
				So(err, ShouldBeNil)
				So(len(players), ShouldEqual, 1)
				So(players[0].ByeWeek, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a CSV with a UTF-8 BOM", t, func() {
		csv := "\uFEFFname,position,team,projected_points\nTravis Kelce,TE,KC,195.4\n"

		Convey("When parsing", func() {
			players, err := importer.ParsePlayers(strings.NewReader(csv))

			Convey("Then the BOM does not break the header", func() {
				So(err, ShouldBeNil)
				So(players[0].Name, ShouldEqual, "Travis Kelce")
			})
		})
	})

	Convey("Given invalid rows", t, func() {
		csv := strings.Join([]string{
			"name,position,team,projected_points,bye_week",
			"Josh Allen,QB,BUF,285.5,12",
			",QB,BUF,100,1",
			"Nobody,XX,FA,50,2",
			"Shaky Hands,RB,DEN,not-a-number,3",
		}, "\n")

		Convey("When parsing", func() {
			players, err := importer.ParsePlayers(strings.NewReader(csv))

			Convey("Then no players are returned at all", func() {
				So(players, ShouldBeNil)
			})

			Convey("And every row error is collected", func() {
				var verr *importer.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(len(verr.Rows), ShouldEqual, 3)
				So(verr.Rows[0].Row, ShouldEqual, 3)
				So(verr.Rows[0].Message, ShouldContainSubstring, "name")
				So(verr.Rows[1].Message, ShouldContainSubstring, "position")
				So(verr.Rows[2].Message, ShouldContainSubstring, "projected_points")
			})
		})
	})

	Convey("Given a broken header", t, func() {
		Convey("When a required column is missing", func() {
			_, err := importer.ParsePlayers(strings.NewReader("name,position,team\nA,QB,BUF\n"))

			var verr *importer.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(verr.Reason, ShouldContainSubstring, "projected_points")
		})

		Convey("When an unknown column sneaks in", func() {
			_, err := importer.ParsePlayers(strings.NewReader("name,position,team,projected_points,salary\n"))

			var verr *importer.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(verr.Reason, ShouldContainSubstring, "salary")
		})

		Convey("When the file is empty", func() {
			_, err := importer.ParsePlayers(strings.NewReader(""))

			var verr *importer.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
		})
	})
}
