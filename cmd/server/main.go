package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"haven/config"
	"haven/database"
	"haven/pkg/ai"
	"haven/pkg/feed"
	"haven/pkg/notify"
	"haven/pkg/wizard"
	"haven/router"

	alertCtrlImp "haven/pkg/alert/controllerImp"
	alertRepoImp "haven/pkg/alert/repositoryImp"
	alertSvcImp "haven/pkg/alert/serviceImp"

	communityCtrlImp "haven/pkg/community/controllerImp"
	communityRepoImp "haven/pkg/community/repositoryImp"
	communitySvcImp "haven/pkg/community/serviceImp"

	eventCtrlImp "haven/pkg/event/controllerImp"
	eventRepoImp "haven/pkg/event/repositoryImp"
	eventSvcImp "haven/pkg/event/serviceImp"

	guideCtrlImp "haven/pkg/guide/controllerImp"
	guideRepoImp "haven/pkg/guide/repositoryImp"
	guideSvcImp "haven/pkg/guide/serviceImp"

	rosterCtrlImp "haven/pkg/roster/controllerImp"
	rosterSvcImp "haven/pkg/roster/serviceImp"

	sopCtrlImp "haven/pkg/sop/controllerImp"
	sopRepoImp "haven/pkg/sop/repositoryImp"
	sopSvcImp "haven/pkg/sop/serviceImp"

	wizardCtrlImp "haven/pkg/wizard/controllerImp"

	authCtrlImp "haven/pkg/auth/controllerImp"
	healthCtrlImp "haven/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// LLM with mock fallback
	var llm ai.Client
	llmLive := cfg.LLMEndpoint != "" && cfg.LLMAPIKey != ""
	if llmLive {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("WARN: no LLM endpoint configured, using the mock client")
		llm = ai.NewMock()
	}

	notifier := notify.NewLog(cfg.EmailFrom, cfg.SMSSender)

	comRepo := communityRepoImp.New(db)
	comSvc := communitySvcImp.New(comRepo, notifier)
	comCtrl := communityCtrlImp.New(comSvc)

	// the community service doubles as the wizard's creation call
	mgr := wizard.NewManager(wizard.NewGormStore(db), comSvc, ai.NewWizardEnricher(llm))
	wizCtrl := wizardCtrlImp.New(mgr)

	rosterCtrl := rosterCtrlImp.New(rosterSvcImp.New(comSvc))

	evSvc := eventSvcImp.New(eventRepoImp.New(db), comRepo, notifier)
	evCtrl := eventCtrlImp.New(evSvc)

	alSvc := alertSvcImp.New(alertRepoImp.New(db), comRepo, notifier)
	alCtrl := alertCtrlImp.New(alSvc)

	gdSvc := guideSvcImp.New(guideRepoImp.New(db), comRepo, llm)
	gdCtrl := guideCtrlImp.New(gdSvc)

	changes := feed.New()
	sopSvc := sopSvcImp.New(sopRepoImp.New(db), changes)
	sopCtrl := sopCtrlImp.New(sopSvc, changes)

	authCtrl := authCtrlImp.NewAuthController(db)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, llmLive)

	r := router.New(
		e,
		cfg.StrictAuth,
		wizCtrl,
		comCtrl,
		rosterCtrl.Import,
		evCtrl,
		alCtrl,
		gdCtrl,
		sopCtrl,
		authCtrl,
		hCtrl,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
