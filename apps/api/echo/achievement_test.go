package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

func Test_achievementApi_achievementQuery(t *testing.T) {
	app := newTestApp(t, nil)
	usr := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	other := app.createUser(t, "Thandi", "Ncube", "thandi@test.co.za", user.RoleStudent, true)
	token := app.getToken(t, usr)

	ctx := context.Background()
	svc := achievement.NewService(app.achievementRepo)
	firstSteps, err := svc.Create(ctx, "First Steps", "Completed a first lesson", `{"lessons":1}`)
	require.NoError(t, err)
	streak, err := svc.Create(ctx, "Streak", "Practised five days in a row", `{"days":5}`)
	require.NoError(t, err)

	// nothing earned yet
	tt := httpTest{path: "/api/achievements", token: token, wantData: []byte(`[]`)}
	checkCodeAndData(t, tt, app.do(t, tt))

	_, err = svc.Award(ctx, usr.ID, firstSteps.ID)
	require.NoError(t, err)
	_, err = svc.Award(ctx, usr.ID, streak.ID)
	require.NoError(t, err)
	_, err = svc.Award(ctx, other.ID, firstSteps.ID)
	require.NoError(t, err)

	// awarding twice does not duplicate
	_, err = svc.Award(ctx, usr.ID, firstSteps.ID)
	require.NoError(t, err)

	rec := app.do(t, httpTest{path: "/api/achievements", token: token})
	require.Equal(t, http.StatusOK, rec.Code)

	var earned []achievement.Earned
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &earned))
	require.Len(t, earned, 2)
	// newest first
	assert.Equal(t, streak.ID, earned[0].AchievementID)
	assert.Equal(t, "Streak", earned[0].Title)
	assert.Equal(t, firstSteps.ID, earned[1].AchievementID)

	// auth required
	tt = httpTest{path: "/api/achievements", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
	checkCodeAndData(t, tt, app.do(t, tt))
}
