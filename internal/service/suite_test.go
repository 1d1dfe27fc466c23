package service_test

import (
	"context"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/service"
	"github.com/Baaaki/trainergo/internal/testutil"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/stretchr/testify/suite"
)

// dbSuite gives every service suite a migrated SQLite database that is emptied before each test.
type dbSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	ctx    context.Context
}

func (s *dbSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.ctx = context.Background()
}

func (s *dbSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *dbSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *dbSuite) user(role models.RoleName, name, email string) (*models.User, service.Caller) {
	u := testutil.CreateUser(s.T(), s.testDB.DB, role, name, email)
	return u, service.Caller{UserID: u.ID, Role: role}
}

// requireKind asserts err is a domain error of the given kind.
func (s *dbSuite) requireKind(err error, kind service.Kind) {
	s.Require().Error(err)
	got, ok := service.KindOf(err)
	s.Require().True(ok, "expected domain error, got %v", err)
	s.Equal(kind, got, "unexpected kind for %v", err)
}
