package router

import (
	"github.com/labstack/echo/v4"

	"haven/pkg/middleware"
)

type wizardCtrl interface {
	Get(echo.Context) error
	PutData(echo.Context) error
	Advance(echo.Context) error
	Retreat(echo.Context) error
	Resume(echo.Context) error
	Discard(echo.Context) error
	Finish(echo.Context) error
	Dismiss(echo.Context) error
}

type communityCtrl interface {
	List(echo.Context) error
	Get(echo.Context) error
	Patch(echo.Context) error
	ChangeRole(echo.Context) error
	RemoveMember(echo.Context) error
	Invite(echo.Context) error
	AcceptInvitation(echo.Context) error
}

type eventCtrl interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	RSVP(echo.Context) error
}

type alertCtrl interface {
	Send(echo.Context) error
	List(echo.Context) error
}

type guideCtrl interface {
	List(echo.Context) error
	Get(echo.Context) error
	Save(echo.Context) error
	SaveWithTemplate(echo.Context) error
	Delete(echo.Context) error
	Customize(echo.Context) error
	IngestText(echo.Context) error
	IngestURL(echo.Context) error
	Sources(echo.Context) error
}

type sopCtrl interface {
	UpsertTemplate(echo.Context) error
	Templates(echo.Context) error
	TemplateTasks(echo.Context) error
	Activate(echo.Context) error
	Get(echo.Context) error
	ListByCommunity(echo.Context) error
	Close(echo.Context) error
	CycleStatus(echo.Context) error
	Skip(echo.Context) error
	Assign(echo.Context) error
	Reorder(echo.Context) error
	AddNote(echo.Context) error
	Notes(echo.Context) error
	Stream(echo.Context) error
}

type authCtrl interface {
	DevLogin(echo.Context) error
	WhoAmI(echo.Context) error
	GetProfile(echo.Context) error
	UpdateProfile(echo.Context) error
}

func New(
	e *echo.Echo,
	strictAuth bool,
	wiz wizardCtrl,
	com communityCtrl,
	rosterImport func(echo.Context) error,
	ev eventCtrl,
	al alertCtrl,
	gd guideCtrl,
	sop sopCtrl,
	auth authCtrl,
	health interface{ Health(echo.Context) error },
) *echo.Echo {
	if strictAuth {
		e.Use(middleware.StrictAuth(true))
	} else {
		e.Use(middleware.DevLogin())
	}
	api := e.Group("")

	api.GET("/whoami", auth.WhoAmI)
	api.GET("/devlogin", auth.DevLogin)
	api.GET("/profile", auth.GetProfile)
	api.PUT("/profile", auth.UpdateProfile)
	e.GET("/health", health.Health)

	// community setup wizard
	w := e.Group("/wizard")
	w.GET("", wiz.Get)
	w.PUT("/data", wiz.PutData)
	w.POST("/advance", wiz.Advance)
	w.POST("/retreat", wiz.Retreat)
	w.POST("/resume", wiz.Resume)
	w.POST("/discard", wiz.Discard)
	w.POST("/finish", wiz.Finish)
	w.POST("/dismiss", wiz.Dismiss)

	api.GET("/communities", com.List)
	api.GET("/communities/:id", com.Get)
	api.PATCH("/communities/:id", com.Patch)
	api.POST("/communities/:id/invitations", com.Invite)
	api.POST("/invitations/accept", com.AcceptInvitation)
	api.PATCH("/members/:member_id/role", com.ChangeRole)
	api.DELETE("/members/:member_id", com.RemoveMember)

	api.POST("/communities/:id/roster/import", rosterImport)

	api.POST("/communities/:id/events", ev.Create)
	api.GET("/communities/:id/events", ev.List)
	api.GET("/events/:event_id", ev.Get)
	api.PATCH("/event-invites/:invite_id", ev.RSVP)

	api.POST("/communities/:id/alerts", al.Send)
	api.GET("/communities/:id/alerts", al.List)

	api.GET("/communities/:id/guides", gd.List)
	api.POST("/guides", gd.Save)
	api.POST("/guides/with-template", gd.SaveWithTemplate)
	api.GET("/guides/:id", gd.Get)
	api.DELETE("/guides/:id", gd.Delete)
	api.POST("/guides/:id/customize", gd.Customize)
	api.POST("/guides/ingest", gd.IngestText)
	api.POST("/guides/ingest/url", gd.IngestURL)
	api.GET("/guides/sources", gd.Sources)

	s := e.Group("/sop")
	s.POST("/templates", sop.UpsertTemplate)
	s.GET("/templates", sop.Templates)
	s.GET("/templates/:id/tasks", sop.TemplateTasks)
	s.POST("/activations", sop.Activate)
	s.GET("/activations/:id", sop.Get)
	s.POST("/activations/:id/close", sop.Close)
	s.POST("/activations/:id/reorder", sop.Reorder)
	s.GET("/activations/:id/stream", sop.Stream)
	s.POST("/tasks/:task_id/cycle", sop.CycleStatus)
	s.POST("/tasks/:task_id/skip", sop.Skip)
	s.POST("/tasks/:task_id/assign", sop.Assign)
	s.POST("/tasks/:task_id/notes", sop.AddNote)
	s.GET("/tasks/:task_id/notes", sop.Notes)
	api.GET("/communities/:id/sop/activations", sop.ListByCommunity)

	return e
}
