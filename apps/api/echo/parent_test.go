package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

func Test_parentApi_roleRequired(t *testing.T) {
	app := newTestApp(t, nil)
	student := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	tchr := app.createUser(t, "Nomsa", "Khumalo", "nomsa@test.co.za", user.RoleTeacher, true)

	tests := []httpTest{
		{name: "anonymous", path: "/api/parent/children", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "student", path: "/api/parent/children", token: app.getToken(t, student), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "teacher", path: "/api/parent/children", token: app.getToken(t, tchr), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, tt)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_parentApi_linkAndListChildren(t *testing.T) {
	app := newTestApp(t, nil)
	parentUsr := app.createUser(t, "Mary", "Dube", "mary@test.co.za", user.RoleParent, true)
	child := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	app.createUser(t, "Nomsa", "Khumalo", "nomsa@test.co.za", user.RoleTeacher, true)
	token := app.getToken(t, parentUsr)

	// no links yet
	tt := httpTest{path: "/api/parent/children", token: token, wantData: []byte(`[]`)}
	checkCodeAndData(t, tt, app.do(t, tt))

	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/api/parent/children", token: token,
		body: []byte(`{"childEmail":"sipho@test.co.za"}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var rel parent.Relationship
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rel))
	assert.Equal(t, parentUsr.ID, rel.ParentID)
	assert.Equal(t, child.ID, rel.ChildID)
	assert.Equal(t, "parent", rel.RelationshipType) // defaulted

	tests := []httpTest{
		{
			name: "unknown child email", method: http.MethodPost, path: "/api/parent/children", token: token,
			body:     []byte(`{"childEmail":"nobody@test.co.za"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "linked account must be a student", method: http.MethodPost, path: "/api/parent/children", token: token,
			body:     []byte(`{"childEmail":"nomsa@test.co.za"}`),
			wantCode: http.StatusBadRequest,
		},
		{name: "children listed", path: "/api/parent/children", token: token, wantData: marchallList(t, child)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, tt)
			checkCodeAndData(t, tt, rec)
		})
	}
}
