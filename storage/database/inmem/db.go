package inmemdb

import (
	"sync"

	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
	"github.com/reubenc-bit/WiseEdu-sub001/core/course"
	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

// DB is a mutex-guarded in-memory store backing the repositories for tests
// and local development.
type DB struct {
	mutex sync.RWMutex

	users            map[string]*user.User
	courses          map[string]*course.Course
	lessons          map[string]*course.Lesson
	progress         map[string]*progress.UserProgress // keyed by userID+"\x00"+lessonID
	projects         map[string]*project.Project
	achievements     map[string]*achievement.Achievement
	userAchievements map[string]*achievement.UserAchievement // keyed by userID+"\x00"+achievementID
	certifications   map[string]*teacher.Certification
	enrollments      map[string]*teacher.Enrollment // keyed by teacherID+"\x00"+studentID+"\x00"+courseID
	relationships    map[string]*parent.Relationship // keyed by parentID+"\x00"+childID
}

func Open() *DB {
	return &DB{
		users:            make(map[string]*user.User),
		courses:          make(map[string]*course.Course),
		lessons:          make(map[string]*course.Lesson),
		progress:         make(map[string]*progress.UserProgress),
		projects:         make(map[string]*project.Project),
		achievements:     make(map[string]*achievement.Achievement),
		userAchievements: make(map[string]*achievement.UserAchievement),
		certifications:   make(map[string]*teacher.Certification),
		enrollments:      make(map[string]*teacher.Enrollment),
		relationships:    make(map[string]*parent.Relationship),
	}
}

const keySep = "\x00"

func pairKey(a, b string) string { return a + keySep + b }

func tripleKey(a, b, c string) string { return a + keySep + b + keySep + c }
