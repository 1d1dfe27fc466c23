package service_test

import (
	"testing"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/repository"
	"github.com/Baaaki/trainergo/internal/service"
	"github.com/Baaaki/trainergo/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CourseServiceTestSuite struct {
	dbSuite
	courseService *service.CourseService
}

func (s *CourseServiceTestSuite) SetupSuite() {
	s.dbSuite.SetupSuite()
	s.courseService = service.NewCourseService(repository.NewCourseRepository(s.testDB.DB))
}

func courseInput(name string) service.CourseInput {
	return service.CourseInput{
		Name:         name,
		Instructor:   "Coach A",
		Schedule:     "Tue/Thu 19:00",
		Description:  "Strength basics",
		PriceMonthly: 50,
	}
}

func (s *CourseServiceTestSuite) TestCreate_OwnerFromCaller() {
	coach, caller := s.user(models.RoleCoach, "A", "a@example.com")

	course, err := s.courseService.Create(s.ctx, caller, courseInput("Yoga"))
	s.Require().NoError(err)
	s.Equal(coach.ID, course.CoachID)
	s.NotEqual(uuid.Nil, course.ID)
	s.Equal(models.DefaultPriceType, course.PriceType)
}

func (s *CourseServiceTestSuite) TestCreate_CustomPriceType() {
	_, caller := s.user(models.RoleCoach, "A", "a@example.com")

	in := courseInput("Yoga")
	in.PriceType = "Per Session"
	course, err := s.courseService.Create(s.ctx, caller, in)
	s.Require().NoError(err)
	s.Equal("Per Session", course.PriceType)
}

func (s *CourseServiceTestSuite) TestCreate_RequiresCoach() {
	_, user := s.user(models.RoleUser, "U", "u@example.com")

	_, err := s.courseService.Create(s.ctx, user, courseInput("Yoga"))
	s.ErrorIs(err, service.ErrForbidden)
}

func (s *CourseServiceTestSuite) TestCreate_Validation() {
	_, caller := s.user(models.RoleCoach, "A", "a@example.com")

	_, err := s.courseService.Create(s.ctx, caller, courseInput(""))
	s.requireKind(err, service.KindValidation)

	in := courseInput("Yoga")
	in.PriceMonthly = -1
	_, err = s.courseService.Create(s.ctx, caller, in)
	s.requireKind(err, service.KindValidation)
}

func (s *CourseServiceTestSuite) TestList_CoachSeesOwnOthersSeeAll() {
	coachA, callerA := s.user(models.RoleCoach, "A", "a@example.com")
	coachB, _ := s.user(models.RoleCoach, "B", "b@example.com")
	_, athlete := s.user(models.RoleUser, "U", "u@example.com")

	testutil.CreateCourse(s.T(), s.testDB.DB, coachA.ID, "A1")
	testutil.CreateCourse(s.T(), s.testDB.DB, coachA.ID, "A2")
	testutil.CreateCourse(s.T(), s.testDB.DB, coachB.ID, "B1")

	own, err := s.courseService.List(s.ctx, callerA)
	s.Require().NoError(err)
	s.Len(own, 2)
	for _, c := range own {
		s.Equal(coachA.ID, c.CoachID)
	}

	all, err := s.courseService.List(s.ctx, athlete)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *CourseServiceTestSuite) TestUpdate_KeepsOwner() {
	coach, caller := s.user(models.RoleCoach, "A", "a@example.com")
	course := testutil.CreateCourse(s.T(), s.testDB.DB, coach.ID, "Old")

	updated, err := s.courseService.Update(s.ctx, caller, course.ID, courseInput("New"))
	s.Require().NoError(err)
	s.Equal("New", updated.Name)
	s.Equal(coach.ID, updated.CoachID)

	var stored models.Course
	s.Require().NoError(s.testDB.DB.First(&stored, "id = ?", course.ID).Error)
	s.Equal("New", stored.Name)
	s.Equal(coach.ID, stored.CoachID)
}

func (s *CourseServiceTestSuite) TestUpdate_OtherCoachForbidden() {
	coachA, _ := s.user(models.RoleCoach, "A", "a@example.com")
	_, callerB := s.user(models.RoleCoach, "B", "b@example.com")
	course := testutil.CreateCourse(s.T(), s.testDB.DB, coachA.ID, "Yoga")

	_, err := s.courseService.Update(s.ctx, callerB, course.ID, courseInput("Hijacked"))
	s.ErrorIs(err, service.ErrForbidden)

	var stored models.Course
	s.Require().NoError(s.testDB.DB.First(&stored, "id = ?", course.ID).Error)
	s.Equal("Yoga", stored.Name)
}

func (s *CourseServiceTestSuite) TestUpdate_NotFound() {
	_, caller := s.user(models.RoleCoach, "A", "a@example.com")

	_, err := s.courseService.Update(s.ctx, caller, uuid.New(), courseInput("X"))
	s.ErrorIs(err, service.ErrCourseNotFound)
}

func (s *CourseServiceTestSuite) TestDelete_OwnerRemovesEnrollments() {
	coach, caller := s.user(models.RoleCoach, "A", "a@example.com")
	athlete, _ := s.user(models.RoleUser, "U", "u@example.com")
	course := testutil.CreateCourse(s.T(), s.testDB.DB, coach.ID, "Yoga")
	testutil.CreateEnrollment(s.T(), s.testDB.DB, athlete.ID, course.ID)

	s.Require().NoError(s.courseService.Delete(s.ctx, caller, course.ID))

	var courses, enrollments int64
	s.testDB.DB.Model(&models.Course{}).Count(&courses)
	s.testDB.DB.Model(&models.Enrollment{}).Count(&enrollments)
	s.Zero(courses)
	s.Zero(enrollments)
}

func (s *CourseServiceTestSuite) TestDelete_Permissions() {
	coachA, _ := s.user(models.RoleCoach, "A", "a@example.com")
	_, callerB := s.user(models.RoleCoach, "B", "b@example.com")
	_, admin := s.user(models.RoleAdmin, "Root", "root@example.com")
	course := testutil.CreateCourse(s.T(), s.testDB.DB, coachA.ID, "Yoga")

	s.ErrorIs(s.courseService.Delete(s.ctx, callerB, course.ID), service.ErrForbidden)
	s.NoError(s.courseService.Delete(s.ctx, admin, course.ID))
	s.ErrorIs(s.courseService.Delete(s.ctx, admin, course.ID), service.ErrCourseNotFound)
}

func TestCourseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CourseServiceTestSuite))
}
