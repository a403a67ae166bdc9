package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/ltmthao/surveyhub/internal/model"
	"github.com/ltmthao/surveyhub/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestGetSurveyResultsNotFound(t *testing.T) {
	svc := NewResultService(&stubSurveyRepo{}, &stubResultRepo{})

	_, err := svc.GetSurveyResults(42)
	if !errors.Is(err, ErrSurveyNotFound) {
		t.Fatalf("expected ErrSurveyNotFound, got %v", err)
	}
}

func TestGetSurveyResultsScaleWithoutResponses(t *testing.T) {
	surveyRepo := &stubSurveyRepo{surveys: []model.Survey{{
		ID:    1,
		Title: "Empty scale",
		Questions: []model.Question{
			{ID: 10, SurveyID: 1, Text: "Rate us", Type: model.QuestionTypeScale},
		},
	}}}
	svc := NewResultService(surveyRepo, &stubResultRepo{})

	doc, err := svc.GetSurveyResults(1)
	if err != nil {
		t.Fatalf("GetSurveyResults: %v", err)
	}
	if len(doc.Results) != 1 {
		t.Fatalf("expected 1 result entry, got %d", len(doc.Results))
	}
	scale, ok := doc.Results[0].Results.(dto.ScaleResultDTO)
	if !ok {
		t.Fatalf("expected ScaleResultDTO, got %T", doc.Results[0].Results)
	}
	if scale.Count != 0 {
		t.Errorf("count = %d, want 0", scale.Count)
	}
	if scale.Average != 0 {
		t.Errorf("average = %v, want 0", scale.Average)
	}
}

func TestGetSurveyResultsScaleAverage(t *testing.T) {
	surveyRepo := &stubSurveyRepo{surveys: []model.Survey{{
		ID:    1,
		Title: "Ratings",
		Questions: []model.Question{
			{ID: 10, SurveyID: 1, Text: "Rate us", Type: model.QuestionTypeScale},
		},
	}}}
	// Responses [2,4,6]: count 3, average 4.
	resultRepo := &stubResultRepo{
		scales: map[uint]repository.ScaleAggregate{10: {Count: 3, Average: 4}},
	}
	svc := NewResultService(surveyRepo, resultRepo)

	doc, err := svc.GetSurveyResults(1)
	if err != nil {
		t.Fatalf("GetSurveyResults: %v", err)
	}
	scale := doc.Results[0].Results.(dto.ScaleResultDTO)
	if scale.Count != 3 || scale.Average != 4 {
		t.Errorf("got count=%d average=%v, want count=3 average=4", scale.Count, scale.Average)
	}
}

func TestGetSurveyResultsMultipleDistribution(t *testing.T) {
	surveyRepo := &stubSurveyRepo{surveys: []model.Survey{{
		ID:    1,
		Title: "Choices",
		Questions: []model.Question{
			{ID: 10, SurveyID: 1, Text: "Pick one", Type: model.QuestionTypeMultiple, Options: []model.Option{
				{ID: 101, QuestionID: 10, Label: "A"},
				{ID: 102, QuestionID: 10, Label: "B"},
			}},
		},
	}}}
	resultRepo := &stubResultRepo{
		optionCounts: map[uint]map[uint]int64{10: {101: 2, 102: 0}},
	}
	svc := NewResultService(surveyRepo, resultRepo)

	doc, err := svc.GetSurveyResults(1)
	if err != nil {
		t.Fatalf("GetSurveyResults: %v", err)
	}
	distribution, ok := doc.Results[0].Results.([]dto.OptionCountDTO)
	if !ok {
		t.Fatalf("expected []OptionCountDTO, got %T", doc.Results[0].Results)
	}
	want := []dto.OptionCountDTO{
		{OptionID: 101, Label: "A", Count: 2},
		{OptionID: 102, Label: "B", Count: 0},
	}
	if len(distribution) != len(want) {
		t.Fatalf("distribution length = %d, want %d", len(distribution), len(want))
	}
	for i := range want {
		if distribution[i] != want[i] {
			t.Errorf("distribution[%d] = %+v, want %+v", i, distribution[i], want[i])
		}
	}
}

func TestGetSurveyResultsTextComments(t *testing.T) {
	surveyRepo := &stubSurveyRepo{surveys: []model.Survey{{
		ID:    1,
		Title: "Feedback",
		Questions: []model.Question{
			{ID: 10, SurveyID: 1, Text: "Anything else?", Type: model.QuestionTypeText},
		},
	}}}
	now := time.Now()
	resultRepo := &stubResultRepo{
		texts: map[uint][]model.Response{10: {
			{ID: 3, QuestionID: 10, AnswerString: strPtr("newest"), CreatedAt: now},
			{ID: 2, QuestionID: 10, AnswerString: strPtr("older"), CreatedAt: now.Add(-time.Hour)},
			{ID: 1, QuestionID: 10, AnswerString: nil, CreatedAt: now.Add(-2 * time.Hour)},
		}},
	}
	svc := NewResultService(surveyRepo, resultRepo)

	doc, err := svc.GetSurveyResults(1)
	if err != nil {
		t.Fatalf("GetSurveyResults: %v", err)
	}
	comments := doc.Results[0].Results.([]dto.CommentDTO)
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments (nil text excluded), got %d", len(comments))
	}
	if comments[0].Text != "newest" || comments[1].Text != "older" {
		t.Errorf("comments out of order: %+v", comments)
	}
	if len(resultRepo.textLimits) != 1 || resultRepo.textLimits[0] != 100 {
		t.Errorf("text sample limit = %v, want [100]", resultRepo.textLimits)
	}
}

// A mixed survey exercises the slot bookkeeping: the MULTIPLE question
// consumes one slot per option, and every entry must still land on its own
// question in original order.
func TestGetSurveyResultsMixedSurvey(t *testing.T) {
	surveyRepo := &stubSurveyRepo{surveys: []model.Survey{{
		ID:    7,
		Title: "Mixed",
		Questions: []model.Question{
			{ID: 1, SurveyID: 7, Text: "Rate", Type: model.QuestionTypeScale},
			{ID: 2, SurveyID: 7, Text: "Pick", Type: model.QuestionTypeMultiple, Options: []model.Option{
				{ID: 21, QuestionID: 2, Label: "Yes"},
				{ID: 22, QuestionID: 2, Label: "No"},
			}},
			{ID: 3, SurveyID: 7, Text: "Comment", Type: model.QuestionTypeText},
		},
	}}}
	resultRepo := &stubResultRepo{
		scales:       map[uint]repository.ScaleAggregate{1: {Count: 2, Average: 3.5}},
		optionCounts: map[uint]map[uint]int64{2: {21: 5, 22: 1}},
		texts: map[uint][]model.Response{3: {
			{ID: 9, QuestionID: 3, AnswerString: strPtr("fine")},
		}},
	}
	svc := NewResultService(surveyRepo, resultRepo)

	doc, err := svc.GetSurveyResults(7)
	if err != nil {
		t.Fatalf("GetSurveyResults: %v", err)
	}
	if doc.Survey.ID != 7 || doc.Survey.Title != "Mixed" {
		t.Errorf("survey header = %+v", doc.Survey)
	}
	if len(doc.Results) != 3 {
		t.Fatalf("expected 3 result entries, got %d", len(doc.Results))
	}
	if resultRepo.batchedCalls != 1 {
		t.Errorf("plan executed in %d batches, want 1", resultRepo.batchedCalls)
	}

	if doc.Results[0].QuestionID != 1 || doc.Results[1].QuestionID != 2 || doc.Results[2].QuestionID != 3 {
		t.Fatalf("results out of question order: %+v", doc.Results)
	}
	scale := doc.Results[0].Results.(dto.ScaleResultDTO)
	if scale.Count != 2 || scale.Average != 3.5 {
		t.Errorf("scale entry = %+v", scale)
	}
	distribution := doc.Results[1].Results.([]dto.OptionCountDTO)
	if distribution[0].Count != 5 || distribution[1].Count != 1 {
		t.Errorf("distribution misattributed: %+v", distribution)
	}
	comments := doc.Results[2].Results.([]dto.CommentDTO)
	if len(comments) != 1 || comments[0].Text != "fine" {
		t.Errorf("comments misattributed: %+v", comments)
	}
}
