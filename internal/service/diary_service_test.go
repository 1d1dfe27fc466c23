package service_test

import (
	"testing"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/repository"
	"github.com/Baaaki/trainergo/internal/service"
	"github.com/Baaaki/trainergo/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type DiaryServiceTestSuite struct {
	dbSuite
	diaryService *service.DiaryService
}

func (s *DiaryServiceTestSuite) SetupSuite() {
	s.dbSuite.SetupSuite()
	s.diaryService = service.NewDiaryService(
		repository.NewDiaryRepository(s.testDB.DB),
		repository.NewAthleteRepository(s.testDB.DB),
	)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func (s *DiaryServiceTestSuite) TestLogWorkout_AthleteFromCaller() {
	ann, annCaller := s.user(models.RoleUser, "Ann", "ann@example.com")

	entry, err := s.diaryService.LogWorkout(s.ctx, annCaller, service.WorkoutInput{
		ExerciseName: "Deadlift",
		Sets:         3,
		Reps:         5,
		WeightLifted: 100,
		EffortLevel:  intPtr(8),
	})
	s.Require().NoError(err)
	s.Equal(ann.ID, entry.AthleteID)
	s.False(entry.Date.IsZero())

	logs, err := s.diaryService.Workouts(s.ctx, annCaller, ann.ID)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal("Deadlift", logs[0].ExerciseName)
	s.Require().NotNil(logs[0].EffortLevel)
	s.Equal(8, *logs[0].EffortLevel)
}

func (s *DiaryServiceTestSuite) TestLogWorkout_Validation() {
	_, annCaller := s.user(models.RoleUser, "Ann", "ann@example.com")

	_, err := s.diaryService.LogWorkout(s.ctx, annCaller, service.WorkoutInput{})
	s.requireKind(err, service.KindValidation)

	_, err = s.diaryService.LogWorkout(s.ctx, annCaller, service.WorkoutInput{ExerciseName: "Row", EffortLevel: intPtr(11)})
	s.requireKind(err, service.KindValidation)
}

func (s *DiaryServiceTestSuite) TestLogMeasurement() {
	ann, annCaller := s.user(models.RoleUser, "Ann", "ann@example.com")

	m, err := s.diaryService.LogMeasurement(s.ctx, annCaller, service.MeasurementInput{
		Weight:            64.2,
		BodyFatPercentage: floatPtr(21.5),
	})
	s.Require().NoError(err)
	s.Equal(ann.ID, m.AthleteID)
	s.Nil(m.Notes)

	_, err = s.diaryService.LogMeasurement(s.ctx, annCaller, service.MeasurementInput{Weight: 0})
	s.requireKind(err, service.KindValidation)

	out, err := s.diaryService.Measurements(s.ctx, annCaller, ann.ID)
	s.Require().NoError(err)
	s.Len(out, 1)
}

func (s *DiaryServiceTestSuite) TestRead_FollowingCoachOnly() {
	coachA, callerA := s.user(models.RoleCoach, "A", "a@example.com")
	_, callerB := s.user(models.RoleCoach, "B", "b@example.com")
	ann, annCaller := s.user(models.RoleUser, "Ann", "ann@example.com")
	_, bea := s.user(models.RoleUser, "Bea", "bea@example.com")
	testutil.CreateProfile(s.T(), s.testDB.DB, coachA.ID, ann.ID)

	_, err := s.diaryService.LogWorkout(s.ctx, annCaller, service.WorkoutInput{ExerciseName: "Squat", Sets: 5, Reps: 5})
	s.Require().NoError(err)

	logs, err := s.diaryService.Workouts(s.ctx, callerA, ann.ID)
	s.Require().NoError(err)
	s.Len(logs, 1)

	_, err = s.diaryService.Workouts(s.ctx, callerB, ann.ID)
	s.ErrorIs(err, service.ErrForbidden)

	_, err = s.diaryService.Measurements(s.ctx, bea, ann.ID)
	s.ErrorIs(err, service.ErrForbidden)
}

// The diary is read-only for coaches and admins.
func (s *DiaryServiceTestSuite) TestLog_AthletesOnly() {
	_, coach := s.user(models.RoleCoach, "A", "a@example.com")
	_, admin := s.user(models.RoleAdmin, "Root", "root@example.com")

	_, err := s.diaryService.LogWorkout(s.ctx, coach, service.WorkoutInput{ExerciseName: "Squat", Sets: 5, Reps: 5})
	s.ErrorIs(err, service.ErrForbidden)

	_, err = s.diaryService.LogMeasurement(s.ctx, admin, service.MeasurementInput{Weight: 80})
	s.ErrorIs(err, service.ErrForbidden)

	var workouts, measurements int64
	s.testDB.DB.Model(&models.TrainingLog{}).Count(&workouts)
	s.testDB.DB.Model(&models.AthleteMeasurement{}).Count(&measurements)
	s.Zero(workouts)
	s.Zero(measurements)
}

func TestDiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiaryServiceTestSuite))
}
