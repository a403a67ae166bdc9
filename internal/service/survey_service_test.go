package service

import (
	"errors"
	"testing"

	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/ltmthao/surveyhub/internal/model"
)

func TestCreateSurveyNestedTree(t *testing.T) {
	surveyRepo := &stubSurveyRepo{}
	svc := NewSurveyService(surveyRepo)

	created, err := svc.CreateSurvey(dto.SurveyCreateDTO{
		Title:       "Customer feedback",
		Description: "Q3",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Pick one", Type: model.QuestionTypeMultiple, Options: []string{"A", "B"}},
			{Text: "Rate us", Type: model.QuestionTypeScale},
		},
	})
	if err != nil {
		t.Fatalf("CreateSurvey: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created survey has no id")
	}
	if len(created.Questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(created.Questions))
	}
	if len(created.Questions[0].Options) != 2 {
		t.Errorf("option count = %d, want 2", len(created.Questions[0].Options))
	}
	if created.Questions[0].Options[0].Label != "A" || created.Questions[0].Options[1].Label != "B" {
		t.Errorf("option labels = %+v", created.Questions[0].Options)
	}
	// Omitted options array creates no option rows.
	if len(created.Questions[1].Options) != 0 {
		t.Errorf("SCALE question must have no options: %+v", created.Questions[1].Options)
	}

	// The id is stable across subsequent reads.
	reread, err := svc.GetSurveyByID(created.ID)
	if err != nil {
		t.Fatalf("GetSurveyByID: %v", err)
	}
	if reread.ID != created.ID || len(reread.Questions) != 2 {
		t.Errorf("reread survey = %+v", reread)
	}
}

func TestCreateSurveyZeroQuestions(t *testing.T) {
	svc := NewSurveyService(&stubSurveyRepo{})

	// Accepted, not rejected: zero questions is a flagged-but-allowed case.
	created, err := svc.CreateSurvey(dto.SurveyCreateDTO{
		Title:     "Empty",
		Questions: []dto.QuestionCreateDTO{},
	})
	if err != nil {
		t.Fatalf("CreateSurvey: %v", err)
	}
	if len(created.Questions) != 0 {
		t.Errorf("question count = %d, want 0", len(created.Questions))
	}
}

func TestGetSurveyByIDNotFound(t *testing.T) {
	svc := NewSurveyService(&stubSurveyRepo{})

	_, err := svc.GetSurveyByID(12345)
	if !errors.Is(err, ErrSurveyNotFound) {
		t.Fatalf("expected ErrSurveyNotFound, got %v", err)
	}
	if !IsNotFound(err) {
		t.Error("ErrSurveyNotFound must classify as not-found")
	}
}

func TestGetAllSurveysPreservesStoreOrder(t *testing.T) {
	// The repository returns newest-first; the service must not reorder.
	surveyRepo := &stubSurveyRepo{surveys: []model.Survey{
		{ID: 2, Title: "newer"},
		{ID: 1, Title: "older"},
	}}
	svc := NewSurveyService(surveyRepo)

	surveys, err := svc.GetAllSurveys()
	if err != nil {
		t.Fatalf("GetAllSurveys: %v", err)
	}
	if len(surveys) != 2 || surveys[0].Title != "newer" || surveys[1].Title != "older" {
		t.Errorf("surveys = %+v", surveys)
	}
}

func TestGetAllSurveysStoreFailure(t *testing.T) {
	svc := NewSurveyService(&stubSurveyRepo{findErr: errors.New("connection reset")})

	_, err := svc.GetAllSurveys()
	if err == nil || IsNotFound(err) || IsCallerFault(err) {
		t.Fatalf("store failure must surface as a server fault, got %v", err)
	}
}
