package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

func Test_progressApi_progressRecord(t *testing.T) {
	app := newTestApp(t, nil)
	usr := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	token := app.getToken(t, usr)

	body := []byte(`{"lessonId":"lsn-1","courseId":"crs-1","completionPct":40,"timeSpent":120}`)

	rec := app.do(t, httpTest{method: http.MethodPost, path: "/api/progress", token: token, body: body})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var row progress.UserProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &row))
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, usr.ID, row.UserID)
	assert.Equal(t, 40, row.CompletionPct)
	assert.False(t, row.Completed)
	assert.Nil(t, row.CompletedAt)

	// re-submitting the same (user, lesson) pair updates the same row
	rec = app.do(t, httpTest{
		method: http.MethodPost, path: "/api/progress", token: token,
		body: []byte(`{"lessonId":"lsn-1","courseId":"crs-1","completed":true,"timeSpent":300}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var updated progress.UserProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, row.ID, updated.ID)
	assert.True(t, updated.Completed)
	assert.Equal(t, 100, updated.CompletionPct) // completion implies 100% unless stated
	require.NotNil(t, updated.CompletedAt)

	// still a single row
	rec = app.do(t, httpTest{path: "/api/progress", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []progress.UserProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID, rows[0].ID)
}

func Test_progressApi_progressRecord_validation(t *testing.T) {
	app := newTestApp(t, nil)
	usr := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	token := app.getToken(t, usr)

	tests := []httpTest{
		{name: "auth required", method: http.MethodPost, path: "/api/progress", body: []byte(`{}`), wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "lessonId required", method: http.MethodPost, path: "/api/progress", token: token,
			body:     []byte(`{"courseId":"crs-1"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "completionPct bounded", method: http.MethodPost, path: "/api/progress", token: token,
			body:     []byte(`{"lessonId":"lsn-1","courseId":"crs-1","completionPct":140}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, tt)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_progressApi_identityCrossCheck(t *testing.T) {
	app := newTestApp(t, nil)
	usr := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	other := app.createUser(t, "Thandi", "Ncube", "thandi@test.co.za", user.RoleStudent, true)
	admin := app.createUser(t, "Root", "Admin", "admin@test.co.za", user.RoleAdmin, true)

	writeFor := func(userID string) []byte {
		return []byte(fmt.Sprintf(`{"userId":%q,"lessonId":"lsn-1","courseId":"crs-1","completionPct":10}`, userID))
	}

	tests := []httpTest{
		{
			name: "own id is accepted", method: http.MethodPost, path: "/api/progress",
			token: app.getToken(t, usr), body: writeFor(usr.ID), wantCode: http.StatusCreated,
		},
		{
			name: "someone else's id is rejected", method: http.MethodPost, path: "/api/progress",
			token: app.getToken(t, usr), body: writeFor(other.ID),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "admin may write on behalf of a user", method: http.MethodPost, path: "/api/progress",
			token: app.getToken(t, admin), body: writeFor(other.ID), wantCode: http.StatusCreated,
		},
		{
			name: "read is scoped to the session user", path: "/api/progress?userId=" + other.ID,
			token:    app.getToken(t, usr),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, tt)
			checkCodeAndData(t, tt, rec)
		})
	}
}
