package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

func Test_projectApi_roundTrip(t *testing.T) {
	app := newTestApp(t, nil)
	usr := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	token := app.getToken(t, usr)

	// create
	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/api/projects", token: token,
		body: []byte(`{"title":"My Game","codeContent":"print('hi')","language":"python"}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var proj project.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proj))
	assert.NotEmpty(t, proj.ID)
	assert.Equal(t, usr.ID, proj.UserID)
	assert.False(t, proj.CreatedAt.IsZero())
	assert.False(t, proj.IsPublic)

	// list own
	rec = app.do(t, httpTest{path: "/api/projects", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []project.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, proj.ID, projects[0].ID)

	// update
	rec = app.do(t, httpTest{
		method: http.MethodPut, path: "/api/projects/" + proj.ID, token: token,
		body: []byte(`{"title":"My Better Game","isPublic":true}`),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated project.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "My Better Game", updated.Title)
	assert.Equal(t, "print('hi')", updated.CodeContent) // untouched fields keep their value
	assert.True(t, updated.IsPublic)
}

func Test_projectApi_authz(t *testing.T) {
	app := newTestApp(t, nil)
	owner := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	intruder := app.createUser(t, "Thandi", "Ncube", "thandi@test.co.za", user.RoleStudent, true)

	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/api/projects", token: app.getToken(t, owner),
		body: []byte(`{"title":"Mine"}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var proj project.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proj))

	tests := []httpTest{
		{name: "auth required", method: http.MethodPost, path: "/api/projects", body: []byte(`{"title":"X"}`), wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "title required", method: http.MethodPost, path: "/api/projects",
			token: app.getToken(t, owner), body: []byte(`{}`), wantCode: http.StatusBadRequest,
		},
		{
			name: "only the owner may update", method: http.MethodPut, path: "/api/projects/" + proj.ID,
			token: app.getToken(t, intruder), body: []byte(`{"title":"Stolen"}`),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "unknown project", method: http.MethodPut, path: "/api/projects/nope",
			token: app.getToken(t, owner), body: []byte(`{"title":"X"}`),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
		{
			name: "other users' lists stay empty", path: "/api/projects",
			token: app.getToken(t, intruder), wantData: []byte(`[]`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, tt)
			checkCodeAndData(t, tt, rec)
		})
	}
}
