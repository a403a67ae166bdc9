package service

import (
	"github.com/ltmthao/surveyhub/internal/model"
	"github.com/ltmthao/surveyhub/internal/repository"
	"gorm.io/gorm"
)

// Stub repositories shared by the service tests. They keep everything in
// memory and hand out copies so tests cannot alias internal state.

type stubSurveyRepo struct {
	surveys   []model.Survey
	createErr error
	findErr   error
}

func (s *stubSurveyRepo) Create(survey *model.Survey) error {
	if s.createErr != nil {
		return s.createErr
	}
	survey.ID = uint(len(s.surveys) + 1)
	for i := range survey.Questions {
		survey.Questions[i].ID = survey.ID*100 + uint(i) + 1
		survey.Questions[i].SurveyID = survey.ID
		for j := range survey.Questions[i].Options {
			survey.Questions[i].Options[j].ID = survey.Questions[i].ID*10 + uint(j) + 1
			survey.Questions[i].Options[j].QuestionID = survey.Questions[i].ID
		}
	}
	s.surveys = append(s.surveys, *survey)
	return nil
}

func (s *stubSurveyRepo) FindByID(id uint) (*model.Survey, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.surveys {
		if s.surveys[i].ID == id {
			survey := s.surveys[i]
			survey.Questions = nil
			return &survey, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSurveyRepo) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.surveys {
		if s.surveys[i].ID == id {
			survey := s.surveys[i]
			return &survey, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSurveyRepo) FindAllWithQuestions() ([]model.Survey, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return append([]model.Survey{}, s.surveys...), nil
}

type stubResponseRepo struct {
	existing     bool
	existsCalled bool
	existsErr    error
	batchErr     error
	created      []model.Response
	batchUserID  *uint
}

func (r *stubResponseRepo) ExistsForUser(surveyID, userID uint) (bool, error) {
	r.existsCalled = true
	return r.existing, r.existsErr
}

func (r *stubResponseRepo) CreateBatch(surveyID uint, userID *uint, responses []model.Response) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for i := range responses {
		responses[i].ID = uint(i) + 1
	}
	r.created = append([]model.Response{}, responses...)
	r.batchUserID = userID
	return nil
}

type stubResultRepo struct {
	scales       map[uint]repository.ScaleAggregate
	optionCounts map[uint]map[uint]int64
	texts        map[uint][]model.Response
	textLimits   []int
	batchedCalls int
}

func (r *stubResultRepo) ScaleAggregate(questionID uint) (*repository.ScaleAggregate, error) {
	agg := r.scales[questionID]
	return &agg, nil
}

func (r *stubResultRepo) OptionCount(questionID, optionID uint) (int64, error) {
	return r.optionCounts[questionID][optionID], nil
}

func (r *stubResultRepo) LatestTextResponses(questionID uint, limit int) ([]model.Response, error) {
	r.textLimits = append(r.textLimits, limit)
	responses := r.texts[questionID]
	if len(responses) > limit {
		responses = responses[:limit]
	}
	return append([]model.Response{}, responses...), nil
}

func (r *stubResultRepo) Batched(fn func(repository.ResultRepository) error) error {
	r.batchedCalls++
	return fn(r)
}

type stubUserRepo struct {
	users     []model.User
	createErr error
	findErr   error
}

func (u *stubUserRepo) Create(user *model.User) error {
	if u.createErr != nil {
		return u.createErr
	}
	user.ID = uint(len(u.users) + 1)
	u.users = append(u.users, *user)
	return nil
}

func (u *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	if u.findErr != nil {
		return nil, u.findErr
	}
	for i := range u.users {
		if u.users[i].Email == email {
			user := u.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (u *stubUserRepo) FindAll() ([]model.User, error) {
	if u.findErr != nil {
		return nil, u.findErr
	}
	return append([]model.User{}, u.users...), nil
}
