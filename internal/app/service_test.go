package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gridironlabs/draftboard/internal/adapters/repository"
	service "github.com/gridironlabs/draftboard/internal/app"
	"github.com/gridironlabs/draftboard/internal/domain/engine"
	"github.com/gridironlabs/draftboard/internal/domain/importer"
	"github.com/gridironlabs/draftboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const samplePlayersCSV = `name,position,team,projected_points,bye_week
Josh Allen,QB,BUF,285.5,12
Patrick Mahomes,QB,KC,280.1,10
Christian McCaffrey,RB,SF,245.8,9
Bijan Robinson,RB,ATL,230.4,11
Breece Hall,RB,NYJ,220.9,7
Cooper Kupp,WR,LAR,265.2,10
Justin Jefferson,WR,MIN,260.7,13
Travis Kelce,TE,KC,195.4,10
Justin Tucker,K,BAL,145.2,13
`

func startService(t *testing.T) *service.Service {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc := service.New(
		service.WithDBPath(filepath.Join(t.TempDir(), "draft.db")),
		service.WithDropWindow(3),
		service.WithPickRetries(2),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func intPtr(v int) *int { return &v }

func TestServiceDraftFlow(t *testing.T) {
	Convey("Given a started service with imported players", t, func() {
		svc := startService(t)
		ctx := context.Background()

		res, err := svc.ImportPlayers(ctx, strings.NewReader(samplePlayersCSV))
		So(err, ShouldBeNil)
		So(res.Inserted, ShouldEqual, 9)

		players, err := svc.ListPlayers(ctx)
		So(err, ShouldBeNil)
		So(len(players), ShouldEqual, 9)

		Convey("When toggling a player's draft state", func() {
			result, err := svc.ToggleDraft(ctx, players[0].ID)
			So(err, ShouldBeNil)

			Convey("Then the player is drafted with pick 1", func() {
				So(result.Drafted, ShouldBeTrue)
				So(*result.Player.PickNumber, ShouldEqual, 1)
			})

			Convey("And toggling again undrafts without renumbering others", func() {
				second, err := svc.ToggleDraft(ctx, players[1].ID)
				So(err, ShouldBeNil)
				So(*second.Player.PickNumber, ShouldEqual, 2)

				undone, err := svc.ToggleDraft(ctx, players[0].ID)
				So(err, ShouldBeNil)
				So(undone.Drafted, ShouldBeFalse)
				So(undone.Player.PickNumber, ShouldBeNil)

				// The freed number is never reused.
				third, err := svc.ToggleDraft(ctx, players[2].ID)
				So(err, ShouldBeNil)
				So(*third.Player.PickNumber, ShouldEqual, 3)
			})
		})

		Convey("When toggling an unknown player", func() {
			_, err := svc.ToggleDraft(ctx, "missing")

			Convey("Then ErrNotFound surfaces", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When resetting the draft", func() {
			_, err := svc.ToggleDraft(ctx, players[0].ID)
			So(err, ShouldBeNil)
			So(svc.ResetDraft(ctx), ShouldBeNil)

			listed, err := svc.ListPlayers(ctx)
			So(err, ShouldBeNil)
			for _, p := range listed {
				So(p.PickNumber, ShouldBeNil)
			}
		})
	})
}

func TestServiceComputeDrops(t *testing.T) {
	Convey("Given a service with players and league settings", t, func() {
		svc := startService(t)
		ctx := context.Background()

		_, err := svc.ImportPlayers(ctx, strings.NewReader(samplePlayersCSV))
		So(err, ShouldBeNil)

		_, err = svc.UpdateSettings(ctx, service.SettingsUpdate{
			Teams:     intPtr(2),
			QBSlots:   intPtr(1),
			RBSlots:   intPtr(1),
			WRSlots:   intPtr(1),
			TESlots:   intPtr(0),
			FlexSlots: intPtr(1),
		})
		So(err, ShouldBeNil)

		Convey("When computing drops", func() {
			drops, err := svc.ComputeDrops(ctx, 2)
			So(err, ShouldBeNil)

			Convey("Then scored pools produce entries", func() {
				So(len(drops), ShouldBeGreaterThan, 0)
			})

			Convey("And a kicker is never scored", func() {
				players, _ := svc.ListPlayers(ctx)
				for _, p := range players {
					if p.Position == "K" {
						_, ok := drops[p.ID]
						So(ok, ShouldBeFalse)
					}
				}
			})

			Convey("And a second run over the unchanged pool is identical", func() {
				again, err := svc.ComputeDrops(ctx, 2)
				So(err, ShouldBeNil)
				So(len(again), ShouldEqual, len(drops))
				for id, drop := range drops {
					So(again[id], ShouldAlmostEqual, drop)
				}
			})
		})

		Convey("When computing with an invalid window", func() {
			_, err := svc.ComputeDrops(ctx, 0)

			Convey("Then the request is rejected", func() {
				So(errors.Is(err, engine.ErrInvalidWindow), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service without league settings", t, func() {
		svc := startService(t)
		ctx := context.Background()

		_, err := svc.ImportPlayers(ctx, strings.NewReader(samplePlayersCSV))
		So(err, ShouldBeNil)

		Convey("When computing drops", func() {
			drops, err := svc.ComputeDrops(ctx, 3)

			Convey("Then nothing is scored and no error is raised", func() {
				So(err, ShouldBeNil)
				So(drops, ShouldBeEmpty)
			})
		})
	})
}

func TestServiceImportValidation(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService(t)
		ctx := context.Background()

		_, err := svc.ImportPlayers(ctx, strings.NewReader(samplePlayersCSV))
		So(err, ShouldBeNil)

		Convey("When importing a CSV with bad rows", func() {
			bad := "name,position,team,projected_points\nGood Player,RB,SF,200\n,QB,KC,100\n"
			_, err := svc.ImportPlayers(ctx, strings.NewReader(bad))

			Convey("Then the upload is rejected with row errors", func() {
				var verr *importer.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(len(verr.Rows), ShouldEqual, 1)
			})

			Convey("And the existing pool is untouched", func() {
				players, err := svc.ListPlayers(ctx)
				So(err, ShouldBeNil)
				So(len(players), ShouldEqual, 9)
			})
		})
	})
}

func TestServiceSettings(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService(t)
		ctx := context.Background()

		Convey("When no settings exist yet", func() {
			_, err := svc.Settings(ctx)

			Convey("Then ErrNoConfig surfaces", func() {
				So(errors.Is(err, repository.ErrNoConfig), ShouldBeTrue)
			})
		})

		Convey("When patching settings for the first time", func() {
			got, err := svc.UpdateSettings(ctx, service.SettingsUpdate{Teams: intPtr(10)})
			So(err, ShouldBeNil)

			Convey("Then defaults fill the unspecified fields", func() {
				So(got.Teams, ShouldEqual, 10)
				So(got.RBSlots, ShouldEqual, 2)
				So(got.FlexEligible, ShouldResemble, []string{"QB", "RB", "WR"})
			})
		})

		Convey("When patching with out-of-range values", func() {
			_, err := svc.UpdateSettings(ctx, service.SettingsUpdate{Teams: intPtr(99)})

			Convey("Then validation rejects the patch", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When restricting FLEX eligibility", func() {
			_, err := svc.UpdateSettings(ctx, service.SettingsUpdate{FlexEligible: []string{"RB", "WR"}})
			So(err, ShouldBeNil)

			got, err := svc.Settings(ctx)
			So(err, ShouldBeNil)
			So(got.FlexEligible, ShouldResemble, []string{"RB", "WR"})

			Convey("And kickers can never be FLEX", func() {
				_, err := svc.UpdateSettings(ctx, service.SettingsUpdate{FlexEligible: []string{"K"}})
				So(err, ShouldNotBeNil)
			})
		})
	})
}
