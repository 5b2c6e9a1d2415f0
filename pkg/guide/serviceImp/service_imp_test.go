package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/ai"
	communityRepo "haven/pkg/community/repositoryImp"
	"haven/pkg/guide/repositoryImp"
	svc "haven/pkg/guide/service"
)

type failingClient struct{}

func (failingClient) AnalyzeRisks(string, []string, *float64, *float64) (string, error) {
	return "", assert.AnError
}
func (failingClient) CustomizeGuide(string, string, []string) (string, error) {
	return "", assert.AnError
}
func (failingClient) PromoContent(string, string, []string) (string, string, error) {
	return "", "", assert.AnError
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Community{},
		&entities.Guide{},
		&entities.GuideSource{},
		&entities.SOPTemplate{},
		&entities.SOPTemplateTask{},
	))
	return db
}

func newTestService(t *testing.T, llm ai.Client) (svc.GuideService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return New(repositoryImp.New(db), communityRepo.New(db), llm), db
}

func seedCommunity(t *testing.T, db *gorm.DB) entities.Community {
	t.Helper()
	c := entities.Community{Name: "Riverside Watch", Hazards: []string{"flood"}}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func TestSaveValidation(t *testing.T) {
	s, _ := newTestService(t, ai.NewMock())

	_, err := s.Save(svc.GuideInput{ContentMD: "body"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = s.Save(svc.GuideInput{Title: "Flood basics"})
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = s.Save(svc.GuideInput{Title: "Flood basics", ContentMD: "body", Source: "wiki"})
	assert.ErrorIs(t, err, ErrBadSource)
}

func TestSaveDefaultsToCustomSource(t *testing.T) {
	s, _ := newTestService(t, ai.NewMock())
	g, err := s.Save(svc.GuideInput{Title: "Flood basics", ContentMD: "body"})
	require.NoError(t, err)
	assert.Equal(t, "custom", g.Source)
	assert.NotZero(t, g.GuideID)
}

func TestSaveWithTemplateStoresChecklist(t *testing.T) {
	s, db := newTestService(t, ai.NewMock())
	com := seedCommunity(t, db)

	g, err := s.SaveWithTemplate(
		svc.GuideInput{CommunityID: com.CommunityID, Hazard: "flood", Title: "Flood response", ContentMD: "body"},
		svc.TemplateInput{Tasks: []svc.TemplateTaskInput{
			{Title: "Sound the siren"},
			{Title: "   "}, // blank titles are dropped
			{Title: "Open the shelter", Role: "lead"},
		}},
	)
	require.NoError(t, err)

	var tpl entities.SOPTemplate
	require.NoError(t, db.Where("guide_id = ?", g.GuideID).First(&tpl).Error)
	assert.Equal(t, "Flood response", tpl.Name, "template name falls back to guide title")

	var tasks []entities.SOPTemplateTask
	require.NoError(t, db.Where("template_id = ?", tpl.TemplateID).Order("ord ASC").Find(&tasks).Error)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Sound the siren", tasks[0].Title)
	assert.Equal(t, "lead", tasks[1].Role)
}

func TestSaveWithTemplateReplacesOldTasks(t *testing.T) {
	s, db := newTestService(t, ai.NewMock())
	com := seedCommunity(t, db)

	in := svc.GuideInput{CommunityID: com.CommunityID, Title: "Flood response", ContentMD: "body"}
	g, err := s.SaveWithTemplate(in, svc.TemplateInput{Tasks: []svc.TemplateTaskInput{
		{Title: "Old step one"}, {Title: "Old step two"},
	}})
	require.NoError(t, err)

	var tpl entities.SOPTemplate
	require.NoError(t, db.Where("guide_id = ?", g.GuideID).First(&tpl).Error)

	in.GuideID = g.GuideID
	_, err = s.SaveWithTemplate(in, svc.TemplateInput{Tasks: []svc.TemplateTaskInput{
		{Title: "New step"},
	}})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.SOPTemplate{}).Where("guide_id = ?", g.GuideID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "resaving keeps a single template per guide")

	var tasks []entities.SOPTemplateTask
	require.NoError(t, db.Where("template_id = ?", tpl.TemplateID).Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, "New step", tasks[0].Title)
}

func TestCustomizeRewritesContent(t *testing.T) {
	s, db := newTestService(t, ai.NewMock())
	com := seedCommunity(t, db)

	g, err := s.Save(svc.GuideInput{CommunityID: com.CommunityID, Title: "Flood basics", ContentMD: "base text"})
	require.NoError(t, err)

	out, err := s.Customize(g.GuideID)
	require.NoError(t, err)
	assert.Contains(t, out.ContentMD, "base text")
	assert.Contains(t, out.ContentMD, com.Name)
	assert.Equal(t, "ai", out.Source)

	stored, err := s.Get(g.GuideID)
	require.NoError(t, err)
	assert.Equal(t, out.ContentMD, stored.ContentMD)
}

func TestCustomizeFailureKeepsStoredGuide(t *testing.T) {
	s, db := newTestService(t, failingClient{})
	com := seedCommunity(t, db)

	g, err := s.Save(svc.GuideInput{CommunityID: com.CommunityID, Title: "Flood basics", ContentMD: "base text"})
	require.NoError(t, err)

	out, err := s.Customize(g.GuideID)
	require.NoError(t, err)
	assert.Equal(t, "base text", out.ContentMD)
	assert.Equal(t, "custom", out.Source)
}

func TestIngestText(t *testing.T) {
	s, _ := newTestService(t, ai.NewMock())

	_, err := s.IngestText("", "flood", "some text", "")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = s.IngestText("Sandbag how-to", "flood", "  ", "")
	assert.ErrorIs(t, err, ErrTextRequired)

	src, err := s.IngestText("Sandbag how-to", "flood", "stack them in a brick pattern", "https://example.org/sandbags")
	require.NoError(t, err)
	assert.NotZero(t, src.SourceID)

	got, err := s.Sources("flood")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sandbag how-to", got[0].Title)

	other, err := s.Sources("quake")
	require.NoError(t, err)
	assert.Empty(t, other)
}
