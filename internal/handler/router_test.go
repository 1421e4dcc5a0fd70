package handler

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"CareMatch-App/internal/auth"
	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
	"CareMatch-App/internal/domain/service"
	"CareMatch-App/internal/usecase"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

// ---- インメモリリポジトリ ----

type fakeUsersRepository struct {
	users map[string]*model.User
}

func (f *fakeUsersRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, model.ErrUnauthenticated
	}
	return user, nil
}

type fakeFacilitiesRepository struct {
	facilities map[string]*model.Facility
}

func (f *fakeFacilitiesRepository) GetByID(ctx context.Context, id string) (*model.Facility, error) {
	facility, ok := f.facilities[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return facility, nil
}

func (f *fakeFacilitiesRepository) GetByOrgID(ctx context.Context, orgID string) (*model.Facility, error) {
	for _, facility := range f.facilities {
		if facility.OrgID == orgID {
			return facility, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeFacilitiesRepository) UpdateProfile(ctx context.Context, orgID string, input *model.UpdateProfileInput) (*model.Facility, error) {
	facility, err := f.GetByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if input.Bio != nil {
		facility.Bio = *input.Bio
	}
	if input.Images != nil {
		facility.Images = *input.Images
	}
	if input.Insurances != nil {
		facility.Insurances = *input.Insurances
	}
	if input.Services != nil {
		facility.Services = *input.Services
	}
	facility.UpdatedAt = time.Now().UTC()
	return facility, nil
}

type fakeAreasRepository struct {
	areas  map[string]model.ServiceArea
	nextID int
}

func (f *fakeAreasRepository) ListByFacilityID(ctx context.Context, facilityID string) ([]model.ServiceArea, error) {
	result := []model.ServiceArea{}
	for _, area := range f.areas {
		if area.FacilityID == facilityID {
			result = append(result, area)
		}
	}
	return result, nil
}

func (f *fakeAreasRepository) GetByID(ctx context.Context, id string) (*model.ServiceArea, error) {
	area, ok := f.areas[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &area, nil
}

func (f *fakeAreasRepository) ReplaceAll(ctx context.Context, facilityID string, inputs []model.CircleInput) ([]model.ServiceArea, error) {
	for id, area := range f.areas {
		if area.FacilityID == facilityID {
			delete(f.areas, id)
		}
	}
	inserted := []model.ServiceArea{}
	for _, in := range inputs {
		f.nextID++
		id := fmt.Sprintf("sa%d", f.nextID)
		if in.ID != nil && *in.ID != "" {
			id = *in.ID
		}
		area := model.ServiceArea{
			ID: id, FacilityID: facilityID,
			Lat: *in.Lat, Lng: *in.Lng, RadiusMiles: *in.RadiusMiles,
			City: in.City, State: in.State,
		}
		f.areas[id] = area
		inserted = append(inserted, area)
	}
	return inserted, nil
}

func (f *fakeAreasRepository) UpdateOne(ctx context.Context, input *model.UpdateAreaInput) (*model.ServiceArea, error) {
	area, ok := f.areas[input.ID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if input.Lat != nil {
		area.Lat = *input.Lat
	}
	if input.Lng != nil {
		area.Lng = *input.Lng
	}
	if input.RadiusMiles != nil {
		area.RadiusMiles = *input.RadiusMiles
	}
	f.areas[input.ID] = area
	return &area, nil
}

func (f *fakeAreasRepository) DeleteOne(ctx context.Context, id string) error {
	if _, ok := f.areas[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.areas, id)
	return nil
}

type fakeConversationsRepository struct {
	conversations map[string]*model.Conversation
	messages      map[string][]model.Message
}

func (f *fakeConversationsRepository) ListByFacilityID(ctx context.Context, facilityID string) ([]model.Conversation, error) {
	result := []model.Conversation{}
	for _, conv := range f.conversations {
		if conv.HasMember(facilityID) {
			result = append(result, *conv)
		}
	}
	return result, nil
}

func (f *fakeConversationsRepository) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	conv, ok := f.conversations[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return conv, nil
}

func (f *fakeConversationsRepository) ListMessages(ctx context.Context, conversationID string, limit int) ([]model.Message, error) {
	msgs := f.messages[conversationID]
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (f *fakeConversationsRepository) AppendMessage(ctx context.Context, conversationID string, msg *model.Message) error {
	conv, ok := f.conversations[conversationID]
	if !ok {
		return model.ErrNotFound
	}
	f.messages[conversationID] = append(f.messages[conversationID], *msg)
	conv.LastMessage = msg.Body
	conv.LastMessageAt = msg.SentAt
	return nil
}

type fakeMatchesRepository struct {
	lastQuery repository.MatchesQuery
	matches   []model.Match
}

func (f *fakeMatchesRepository) List(ctx context.Context, q repository.MatchesQuery) ([]model.Match, error) {
	f.lastQuery = q
	return f.matches, nil
}

// ---- テスト用ルーター ----

type testFixture struct {
	router        *gin.Engine
	users         *fakeUsersRepository
	facilities    *fakeFacilitiesRepository
	areas         *fakeAreasRepository
	matches       *fakeMatchesRepository
	conversations *fakeConversationsRepository
}

// setupTestRouter 本番のcmd/main.goと同じ配線をインメモリリポジトリで組む
func setupTestRouter() *testFixture {
	gin.SetMode(gin.TestMode)

	org1 := "org1"
	org2 := "org2"
	fixture := &testFixture{
		users: &fakeUsersRepository{users: map[string]*model.User{
			"admin1":   {ID: "admin1", Role: model.RoleAdmin},
			"orgadmin": {ID: "orgadmin", Role: model.RoleOrgAdmin, OrgID: &org1},
			"member":   {ID: "member", Role: model.RoleUser, OrgID: &org1},
			"outsider": {ID: "outsider", Role: model.RoleOrgAdmin, OrgID: &org2},
		}},
		facilities: &fakeFacilitiesRepository{facilities: map[string]*model.Facility{
			"f1": {ID: "f1", OrgID: "org1", Name: "Sunrise Care", Bio: "original"},
			"f2": {ID: "f2", OrgID: "org2", Name: "Valley Rehab"},
		}},
		areas:   &fakeAreasRepository{areas: map[string]model.ServiceArea{}},
		matches: &fakeMatchesRepository{},
		conversations: &fakeConversationsRepository{
			conversations: map[string]*model.Conversation{},
			messages:      map[string][]model.Message{},
		},
	}

	guard := service.NewAccessGuard(fixture.facilities)
	serviceAreasHandler := NewServiceAreasHandler(usecase.NewServiceAreaUseCase(guard, fixture.areas))
	profileHandler := NewProfileHandler(usecase.NewProfileUseCase(fixture.facilities))
	matchesHandler := NewMatchesHandler(usecase.NewMatchesUseCase(fixture.matches))
	conversationsHandler := NewConversationsHandler(usecase.NewConversationUseCase(guard, fixture.conversations))

	r := gin.New()
	api := r.Group("/api")
	api.Use(auth.RequireSession(fixture.users, testSecret))
	{
		api.GET("/service-areas", serviceAreasHandler.List)
		api.GET("/service-areas/covering", serviceAreasHandler.Covering)
		api.POST("/service-areas", serviceAreasHandler.ReplaceAll)
		api.PUT("/service-areas", serviceAreasHandler.UpdateOne)
		api.DELETE("/service-areas", serviceAreasHandler.DeleteOne)
		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)
		api.GET("/matches", matchesHandler.List)
		api.GET("/conversations", conversationsHandler.List)
		api.GET("/conversations/:id/messages", conversationsHandler.Messages)
		api.POST("/conversations/:id/messages", conversationsHandler.Post)
	}

	fixture.router = r
	return fixture
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// doRequest 認証付きリクエストを実行する（userID空なら匿名）
func doRequest(t *testing.T, fixture *testFixture, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID))
	}

	w := httptest.NewRecorder()
	fixture.router.ServeHTTP(w, req)
	return w
}
