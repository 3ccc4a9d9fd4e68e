package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xpsc-club/xpsc-server/cache"
	"github.com/xpsc-club/xpsc-server/handlers"
	"github.com/xpsc-club/xpsc-server/realtime"
	"github.com/xpsc-club/xpsc-server/services"
)

const testSecret = "test-secret"

type testServer struct {
	*httptest.Server
	users    *memAllUsers
	members  *memClubUsers
	contests *memContests
	results  *memResults
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		users:    &memAllUsers{},
		members:  &memClubUsers{},
		contests: &memContests{},
		results:  &memResults{},
	}

	tokens := services.NewTokenService(testSecret, time.Hour)
	userService := services.NewAllUserService(ts.users, cache.NewNopRoleCache(), logger)
	events := services.NewNopPublisher()

	router := chi.NewRouter()
	SetupRoutes(router, Dependencies{
		Logger:               logger,
		Tokens:               tokens,
		Admins:               userService,
		AllowedOrigins:       []string{"http://localhost:5173"},
		AuthHandler:          handlers.NewAuthHandler(tokens),
		AllUserHandler:       handlers.NewAllUserHandler(userService),
		ClubUserHandler:      handlers.NewClubUserHandler(services.NewClubUserService(ts.members, nil, events, logger)),
		ContestHandler:       handlers.NewContestHandler(services.NewContestService(ts.contests)),
		ContestResultHandler: handlers.NewContestResultHandler(services.NewContestResultService(ts.results, events)),
		WebSocketHandler:     handlers.NewWebSocketHandler(realtime.NewHub(logger), nil, logger),
	})

	ts.Server = httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}

func (ts *testServer) token(t *testing.T, email string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": email})
	if status != http.StatusOK {
		t.Fatalf("POST /jwt status = %d, body %s", status, body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, body, &resp)
	if resp.Token == "" {
		t.Fatalf("POST /jwt returned no token: %s", body)
	}
	return resp.Token
}

// adminToken registers an administrator and returns a credential for it.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	ts.do(t, http.MethodPost, "/allUsers", "", map[string]string{"email": "admin@x.com", "role": "admin", "name": "Admin"})
	return ts.token(t, "admin@x.com")
}

func decode(t *testing.T, body []byte, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func insertedID(t *testing.T, body []byte) string {
	t.Helper()
	var ack struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	decode(t, body, &ack)
	if !ack.Acknowledged || ack.InsertedID == "" {
		t.Fatalf("unexpected insert ack %s", body)
	}
	return ack.InsertedID
}

var adminRoutes = []struct {
	method string
	path   string
	body   interface{}
}{
	{http.MethodGet, "/allUsers", nil},
	{http.MethodPatch, "/allUsers/65f1a2b3c4d5e6f708192a3b", map[string]string{"name": "x"}},
	{http.MethodDelete, "/allUsers/65f1a2b3c4d5e6f708192a3b", nil},
	{http.MethodGet, "/clubUsers", nil},
	{http.MethodPost, "/clubUsers", map[string]string{"name": "x"}},
	{http.MethodPatch, "/clubUsers/65f1a2b3c4d5e6f708192a3b", map[string]string{"name": "x"}},
	{http.MethodDelete, "/clubUsers/65f1a2b3c4d5e6f708192a3b", nil},
	{http.MethodPost, "/codeforcesContestList", map[string]int{"contestId": 1}},
	{http.MethodPatch, "/codeforcesContestList/65f1a2b3c4d5e6f708192a3b", map[string]string{"contestName": "x"}},
	{http.MethodDelete, "/codeforcesContestList/65f1a2b3c4d5e6f708192a3b", nil},
	{http.MethodGet, "/codeforcesContestAllUserResultCountByContestId/42", nil},
	{http.MethodGet, "/codeforcesContestIndividualUserResult?contestId=42&codeforcesHandle=tourist", nil},
	{http.MethodPost, "/codeforcesContestIndividualUserResult", map[string]interface{}{"contestId": 42, "userName": "tourist"}},
	{http.MethodDelete, "/codeforcesContestAllUserResult/42", nil},
	{http.MethodDelete, "/codeforcesContestIndividualUserResult/tourist", nil},
}

func TestAdminRoutesRejectMissingCredential(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range adminRoutes {
		status, body := ts.do(t, tc.method, tc.path, "", tc.body)
		if status != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", tc.method, tc.path, status)
			continue
		}
		if !strings.Contains(string(body), "unauthorized access") {
			t.Errorf("%s %s body = %s", tc.method, tc.path, body)
		}
	}

	writes := ts.users.writeCount() + ts.members.writeCount() + ts.contests.writeCount() + ts.results.writeCount()
	if writes != 0 {
		t.Fatalf("expected no writes without a credential, got %d", writes)
	}
}

func TestAdminRoutesRejectInvalidCredential(t *testing.T) {
	ts := newTestServer(t)

	other := services.NewTokenService("other-secret", time.Hour)
	foreign, err := other.Issue(map[string]interface{}{"email": "admin@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, token := range []string{foreign, "garbage"} {
		status, _ := ts.do(t, http.MethodGet, "/clubUsers", token, nil)
		if status != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", status)
		}
	}
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPost, "/allUsers", "", map[string]string{"email": "member@x.com", "role": "member"})

	tokens := map[string]string{
		"member":  ts.token(t, "member@x.com"),
		"unknown": ts.token(t, "nobody@x.com"),
	}
	writesBefore := ts.members.writeCount() + ts.contests.writeCount() + ts.results.writeCount()

	for name, token := range tokens {
		for _, tc := range adminRoutes {
			status, body := ts.do(t, tc.method, tc.path, token, tc.body)
			if status != http.StatusForbidden {
				t.Errorf("%s: %s %s status = %d, want 403", name, tc.method, tc.path, status)
				continue
			}
			if !strings.Contains(string(body), "forbidden access") {
				t.Errorf("%s: %s %s body = %s", name, tc.method, tc.path, body)
			}
		}
	}

	if after := ts.members.writeCount() + ts.contests.writeCount() + ts.results.writeCount(); after != writesBefore {
		t.Fatalf("forbidden requests wrote to the store")
	}
}

func TestCredentialRoutesAcceptAnyValidToken(t *testing.T) {
	ts := newTestServer(t)

	status, _ := ts.do(t, http.MethodGet, "/leaderboard?page=0&size=10", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("leaderboard without credential status = %d, want 401", status)
	}

	token := ts.token(t, "someone@x.com")
	for _, path := range []string{
		"/leaderboard?page=0&size=10",
		"/codeforcesContestParticipantsResultsByContestId?contestId=1&page=0&size=10",
		"/codeforcesContestNonParticipantsResultsByContestId?contestId=1&page=0&size=10",
	} {
		status, body := ts.do(t, http.MethodGet, path, token, nil)
		if status != http.StatusOK {
			t.Errorf("GET %s status = %d, body %s", path, status, body)
		}
		if strings.TrimSpace(string(body)) != "[]" {
			t.Errorf("GET %s body = %s, want []", path, body)
		}
	}
}

func TestIssueTokenAndAdminCheck(t *testing.T) {
	ts := newTestServer(t)
	ts.token(t, "a@x.com")

	var resp map[string]bool
	status, body := ts.do(t, http.MethodGet, "/allUsers/admin/a@x.com", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	decode(t, body, &resp)
	if admin, ok := resp["admin"]; !ok || admin {
		t.Fatalf("expected {admin:false}, got %s", body)
	}

	ts.do(t, http.MethodPost, "/allUsers", "", map[string]string{"email": "a@x.com", "role": "admin"})
	_, body = ts.do(t, http.MethodGet, "/allUsers/admin/a@x.com", "", nil)
	decode(t, body, &resp)
	if !resp["admin"] {
		t.Fatalf("expected {admin:true} after registering the admin, got %s", body)
	}
}

func TestCountOnEmptyResults(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/codeforcesContestParticipantsResultsCountByContestId/42",
		"/codeforcesContestNonParticipantsResultsCountByContestId/42",
		"/clubUsersCount",
	} {
		status, body := ts.do(t, http.MethodGet, path, "", nil)
		if status != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, status)
		}
		var resp map[string]int64
		decode(t, body, &resp)
		if n, ok := resp["result"]; !ok || n != 0 {
			t.Fatalf("GET %s = %s, want {result: 0}", path, body)
		}
	}
}

func TestResultPartitions(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	for _, r := range []map[string]interface{}{
		{"contestId": 42, "userName": "b", "participate": 1, "globalStandings": 20},
		{"contestId": 42, "userName": "a", "participate": 1, "globalStandings": 10},
		{"contestId": 42, "userName": "c", "participate": 0, "globalStandings": 0},
		{"contestId": 7, "userName": "a", "participate": 1, "globalStandings": 1},
	} {
		status, body := ts.do(t, http.MethodPost, "/codeforcesContestIndividualUserResult", admin, r)
		if status != http.StatusOK {
			t.Fatalf("insert status = %d, body %s", status, body)
		}
	}

	counts := map[string]int64{
		"/codeforcesContestParticipantsResultsCountByContestId/42":    2,
		"/codeforcesContestNonParticipantsResultsCountByContestId/42": 1,
		"/codeforcesContestAllUserResultCountByContestId/42":          3,
	}
	for path, want := range counts {
		_, body := ts.do(t, http.MethodGet, path, admin, nil)
		var resp map[string]int64
		decode(t, body, &resp)
		if resp["result"] != want {
			t.Errorf("GET %s = %s, want %d", path, body, want)
		}
	}

	_, body := ts.do(t, http.MethodGet, "/codeforcesContestParticipantsResultsByContestId?contestId=42&page=0&size=10", admin, nil)
	var listed []map[string]interface{}
	decode(t, body, &listed)
	if len(listed) != 2 || listed[0]["userName"] != "a" || listed[1]["userName"] != "b" {
		t.Fatalf("expected participants ordered by standing, got %s", body)
	}

	_, body = ts.do(t, http.MethodGet, "/codeforcesContestIndividualUserResult?contestId=7&codeforcesHandle=a", admin, nil)
	var single map[string]interface{}
	decode(t, body, &single)
	if single["globalStandings"] != float64(1) {
		t.Fatalf("unexpected individual result %s", body)
	}

	_, body = ts.do(t, http.MethodDelete, "/codeforcesContestIndividualUserResult/a", admin, nil)
	var ack map[string]interface{}
	decode(t, body, &ack)
	if ack["deletedCount"] != float64(2) {
		t.Fatalf("expected handle delete to remove 2 results, got %s", body)
	}

	_, body = ts.do(t, http.MethodDelete, "/codeforcesContestAllUserResult/42", admin, nil)
	decode(t, body, &ack)
	if ack["deletedCount"] != float64(2) {
		t.Fatalf("expected contest delete to remove 2 results, got %s", body)
	}
}

func TestLeaderboardPagination(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	for i, rating := range []int{1500, 2100, 1800} {
		member := map[string]interface{}{"name": string(rune('a' + i)), "codeforcesMaxRating": rating}
		if status, body := ts.do(t, http.MethodPost, "/clubUsers", admin, member); status != http.StatusOK {
			t.Fatalf("create status = %d, body %s", status, body)
		}
	}

	var first []map[string]interface{}
	_, body := ts.do(t, http.MethodGet, "/leaderboard?page=0&size=10", admin, nil)
	decode(t, body, &first)
	if len(first) != 3 {
		t.Fatalf("expected 3 members, got %s", body)
	}
	for i, want := range []float64{2100, 1800, 1500} {
		if first[i]["codeforcesMaxRating"] != want {
			t.Fatalf("leaderboard not sorted by max rating desc: %s", body)
		}
	}

	status, body := ts.do(t, http.MethodGet, "/leaderboard?page=1&size=10", admin, nil)
	if status != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("page past the end = %d %s, want empty list", status, body)
	}

	var second []map[string]interface{}
	_, body = ts.do(t, http.MethodGet, "/leaderboard?page=1&size=2", admin, nil)
	decode(t, body, &second)
	if len(second) != 1 || second[0]["codeforcesMaxRating"] != float64(1500) {
		t.Fatalf("unexpected second page %s", body)
	}
}

func TestClubUserRoundTripAndFullReplace(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	member := map[string]interface{}{
		"name":                    "Alice",
		"email":                   "alice@x.com",
		"mobileNumber":            "0123",
		"discordUsername":         "alice#1",
		"codeforcesHandle":        "alice",
		"codeforcesCurrentRating": 1400,
		"codeforcesMaxRating":     1600,
		"image":                   "https://img/alice.png",
	}
	_, body := ts.do(t, http.MethodPost, "/clubUsers", admin, member)
	id := insertedID(t, body)

	status, body := ts.do(t, http.MethodGet, "/clubUsers/"+id, "", nil)
	if status != http.StatusOK {
		t.Fatalf("get status = %d", status)
	}
	var got map[string]interface{}
	decode(t, body, &got)
	for k, v := range member {
		want := v
		if n, ok := v.(int); ok {
			want = float64(n)
		}
		if got[k] != want {
			t.Errorf("field %s = %v, want %v", k, got[k], want)
		}
	}

	status, body = ts.do(t, http.MethodPatch, "/clubUsers/"+id, admin, map[string]string{"name": "Alicia"})
	if status != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", status, body)
	}
	var ack map[string]interface{}
	decode(t, body, &ack)
	if ack["matchedCount"] != float64(1) {
		t.Fatalf("unexpected update ack %s", body)
	}

	_, body = ts.do(t, http.MethodGet, "/clubUsers/"+id, "", nil)
	got = nil
	decode(t, body, &got)
	if got["name"] != "Alicia" {
		t.Fatalf("name not replaced: %s", body)
	}
	for _, field := range []string{"email", "mobileNumber", "discordUsername", "codeforcesHandle", "codeforcesCurrentRating", "codeforcesMaxRating", "image"} {
		if v, ok := got[field]; !ok || v != nil {
			t.Errorf("field %s = %v, want null after full replace", field, v)
		}
	}
}

func TestPatchStoresValuesAsSent(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	_, body := ts.do(t, http.MethodPost, "/clubUsers", admin, map[string]interface{}{"name": "Bob", "codeforcesMaxRating": 1500})
	memberID := insertedID(t, body)

	status, body := ts.do(t, http.MethodPatch, "/clubUsers/"+memberID, admin, map[string]interface{}{
		"codeforcesMaxRating":     "1600",
		"codeforcesCurrentRating": 1550.5,
	})
	if status != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", status, body)
	}
	_, body = ts.do(t, http.MethodGet, "/clubUsers/"+memberID, "", nil)
	var member map[string]interface{}
	decode(t, body, &member)
	if member["codeforcesMaxRating"] != "1600" || member["codeforcesCurrentRating"] != 1550.5 {
		t.Fatalf("ratings not stored as sent: %s", body)
	}

	_, body = ts.do(t, http.MethodPost, "/codeforcesContestList", admin, map[string]interface{}{"contestId": 1900, "contestDuration": 120})
	contestID := insertedID(t, body)

	status, body = ts.do(t, http.MethodPatch, "/codeforcesContestList/"+contestID, admin, map[string]interface{}{
		"contestId":       1900,
		"contestDuration": 150,
	})
	if status != http.StatusOK {
		t.Fatalf("contest patch status = %d, body %s", status, body)
	}
	_, body = ts.do(t, http.MethodGet, "/codeforcesContstList/"+contestID, "", nil)
	var contest map[string]interface{}
	decode(t, body, &contest)
	if contest["contestDuration"] != float64(150) || contest["contestId"] != float64(1900) {
		t.Fatalf("contest fields not stored as sent: %s", body)
	}
}

func TestPatchWithEmptyBodyNullsFieldSet(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	_, body := ts.do(t, http.MethodPost, "/codeforcesContestList", admin, map[string]interface{}{"contestId": 1900, "contestName": "Round"})
	id := insertedID(t, body)

	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/codeforcesContestList/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty patch status = %d", resp.StatusCode)
	}

	_, body = ts.do(t, http.MethodGet, "/codeforcesContstList/"+id, "", nil)
	var got map[string]interface{}
	decode(t, body, &got)
	for _, field := range []string{"contestId", "contestName", "contestDate", "contestStartTime", "contestEndTime", "contestDuration"} {
		if v, ok := got[field]; !ok || v != nil {
			t.Errorf("field %s = %v, want null", field, v)
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	_, body := ts.do(t, http.MethodPost, "/codeforcesContestList", admin, map[string]interface{}{"contestId": 1900, "contestName": "Round"})
	id := insertedID(t, body)

	for i, want := range []float64{1, 0, 0} {
		status, body := ts.do(t, http.MethodDelete, "/codeforcesContestList/"+id, admin, nil)
		if status != http.StatusOK {
			t.Fatalf("delete #%d status = %d", i, status)
		}
		var ack map[string]interface{}
		decode(t, body, &ack)
		if ack["deletedCount"] != want {
			t.Fatalf("delete #%d = %s, want deletedCount %v", i, body, want)
		}
	}
}

func TestContestLookups(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	_, body := ts.do(t, http.MethodPost, "/codeforcesContestList", admin, map[string]interface{}{"contestId": 1900, "contestName": "Round 900"})
	id := insertedID(t, body)

	var contest map[string]interface{}
	_, body = ts.do(t, http.MethodGet, "/codeforcesContstList/"+id, "", nil)
	decode(t, body, &contest)
	if contest["contestName"] != "Round 900" {
		t.Fatalf("lookup by id = %s", body)
	}

	contest = nil
	_, body = ts.do(t, http.MethodGet, "/codeforcesSingleContestName?contestId=1900", "", nil)
	decode(t, body, &contest)
	if contest["_id"] != id {
		t.Fatalf("lookup by contestId = %s", body)
	}

	var list []map[string]interface{}
	_, body = ts.do(t, http.MethodGet, "/codeforcesContestList", "", nil)
	decode(t, body, &list)
	if len(list) != 1 {
		t.Fatalf("list = %s", body)
	}
}

func TestMissesReturnNull(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/allUsers/nobody@x.com",
		"/clubUsers/65f1a2b3c4d5e6f708192a3b",
		"/codeforcesContstList/65f1a2b3c4d5e6f708192a3b",
		"/codeforcesSingleContestName?contestId=5",
	} {
		status, body := ts.do(t, http.MethodGet, path, "", nil)
		if status != http.StatusOK || strings.TrimSpace(string(body)) != "null" {
			t.Errorf("GET %s = %d %s, want 200 null", path, status, body)
		}
	}
}

func TestMalformedParametersAreBadRequests(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	cases := []struct {
		method string
		path   string
		token  string
	}{
		{http.MethodGet, "/codeforcesContestParticipantsResultsCountByContestId/abc", ""},
		{http.MethodGet, "/codeforcesSingleContestName?contestId=", ""},
		{http.MethodGet, "/clubUsers/not-an-id", ""},
		{http.MethodGet, "/codeforcesContstList/zzz", ""},
		{http.MethodGet, "/leaderboard?page=x&size=10", admin},
		{http.MethodGet, "/leaderboard?page=0&size=0", admin},
		{http.MethodGet, "/leaderboard?page=-1&size=10", admin},
		{http.MethodGet, "/leaderboard", admin},
		{http.MethodGet, "/leaderboard?page=9223372036854775807&size=2", admin},
		{http.MethodGet, "/codeforcesContestParticipantsResultsByContestId?contestId=42&page=4611686018427387904&size=2", admin},
		{http.MethodDelete, "/clubUsers/123", admin},
		{http.MethodDelete, "/codeforcesContestAllUserResult/4x2", admin},
		{http.MethodGet, "/codeforcesContestIndividualUserResult?contestId=42", admin},
	}
	for _, tc := range cases {
		status, body := ts.do(t, tc.method, tc.path, tc.token, nil)
		if status != http.StatusBadRequest {
			t.Errorf("%s %s = %d %s, want 400", tc.method, tc.path, status, body)
		}
	}
}

func TestMalformedBodiesAreBadRequests(t *testing.T) {
	ts := newTestServer(t)

	for _, raw := range []string{"", "{", "[1,2]", "null", `{"a":1}{"b":2}`} {
		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/allUsers", strings.NewReader(raw))
		resp, err := ts.Client().Do(req)
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q status = %d, want 400", raw, resp.StatusCode)
		}
	}
	if ts.users.writeCount() != 0 {
		t.Fatalf("malformed bodies reached the store")
	}
}

func TestImageUploadWithoutStorage(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	var buf bytes.Buffer
	buf.WriteString("--boundary\r\n")
	buf.WriteString("Content-Disposition: form-data; name=\"image\"; filename=\"a.png\"\r\n")
	buf.WriteString("Content-Type: image/png\r\n\r\n")
	buf.WriteString("png-bytes\r\n--boundary--\r\n")

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/clubUsers/65f1a2b3c4d5e6f708192a3b/image", &buf)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")
	req.Header.Set("Authorization", "Bearer "+admin)

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestRootAndCORS(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/", "", nil)
	if status != http.StatusOK || string(body) != "XPSC server is running" {
		t.Fatalf("GET / = %d %q", status, body)
	}

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/clubUsers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allowed origin header = %q", got)
	}

	req, _ = http.NewRequest(http.MethodOptions, ts.URL+"/clubUsers", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err = ts.Client().Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}
