package owner

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hostbay/console/pkg/model"
)

type ResolverSuite struct {
	suite.Suite
	DB       *gorm.DB
	mock     sqlmock.Sqlmock
	resolver *Resolver
}

func (s *ResolverSuite) SetupSuite() {
	var (
		db  *sql.DB
		err error
	)

	db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(s.T(), err)

	s.resolver = NewResolver(s.DB, Default())
}

func (s *ResolverSuite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestResolver(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) TestResolveOwnerUser() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "user_t" WHERE id = $1 ORDER BY "user_t"."id" LIMIT 1`)).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email_addr_text"}).
			AddRow(42, "alice@example.com"))

	entity, err := s.resolver.ResolveOwner(42, model.OwnerTypeUser)
	require.NoError(s.T(), err)

	user, ok := entity.(*model.User)
	require.True(s.T(), ok)
	assert.Equal(s.T(), uint(42), user.ID)
	assert.Equal(s.T(), "alice@example.com", user.Email)
}

func (s *ResolverSuite) TestResolveOwnerClusterResolvesClusterRow() {
	// Cluster ownership links through the assignment table, but resolving
	// the owner still lands on the cluster row itself.
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "cluster_t" WHERE id = $1 ORDER BY "cluster_t"."id" LIMIT 1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cluster_id_text"}).
			AddRow(5, "c-east-1"))

	entity, err := s.resolver.ResolveOwner(5, model.OwnerTypeCluster)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "cluster_t", entity.TableName())
}

func (s *ResolverSuite) TestResolveOwnerZeroID() {
	_, err := s.resolver.ResolveOwner(0, model.OwnerTypeUser)
	assert.ErrorIs(s.T(), err, ErrOwnerNotFound)
}

func (s *ResolverSuite) TestResolveOwnerMissingRow() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "user_t" WHERE id = $1 ORDER BY "user_t"."id" LIMIT 1`)).
		WithArgs(777).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.resolver.ResolveOwner(777, model.OwnerTypeUser)
	assert.ErrorIs(s.T(), err, ErrOwnerNotFound)
}

func (s *ResolverSuite) TestResolveOwnerUnknownType() {
	_, err := s.resolver.ResolveOwner(1, model.OwnerType(999))
	assert.ErrorIs(s.T(), err, ErrInvalidOwnerType)
}

func (s *ResolverSuite) TestOwnerTypeOf() {
	ownerType, err := s.resolver.OwnerTypeOf(&model.User{ID: 1})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.OwnerTypeUser, ownerType)

	ownerType, err = s.resolver.OwnerTypeOf(&model.ServiceUser{ID: 2, OwnerTypeNbr: model.OwnerTypeDashboard})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.OwnerTypeDashboard, ownerType)

	// Snapshots belong to users but are not themselves an owner kind.
	_, err = s.resolver.OwnerTypeOf(&model.Snapshot{ID: 3, UserID: 1})
	assert.ErrorIs(s.T(), err, ErrAmbiguousOwnerType)
}

func (s *ResolverSuite) TestAssociateDirect() {
	mount := &model.Mount{ID: 10}

	ok, err := s.resolver.Associate(mount, 42, model.OwnerTypeUser)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)

	id, ownerType, bound := mount.OwnerRef()
	assert.True(s.T(), bound)
	assert.Equal(s.T(), uint(42), id)
	assert.Equal(s.T(), model.OwnerTypeUser, ownerType)
}

func (s *ResolverSuite) TestAssociateAssociative() {
	s.mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO cluster_server_asgn_t (cluster_id, server_id) VALUES ($1, $2)`)).
		WithArgs(5, 20).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := s.resolver.Associate(&model.Server{ID: 20}, 5, model.OwnerTypeCluster)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func (s *ResolverSuite) TestDisassociateAssociative() {
	s.mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM cluster_server_asgn_t WHERE cluster_id = $1 AND server_id = $2`)).
		WithArgs(5, 20).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := s.resolver.Disassociate(&model.Server{ID: 20}, 5, model.OwnerTypeCluster)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func (s *ResolverSuite) TestDisassociateAssociativeNoRow() {
	s.mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM cluster_server_asgn_t WHERE cluster_id = $1 AND server_id = $2`)).
		WithArgs(5, 21).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.resolver.Disassociate(&model.Server{ID: 21}, 5, model.OwnerTypeCluster)
	require.NoError(s.T(), err)
	assert.False(s.T(), ok, "no assignment row means nothing was detached")
}

func (s *ResolverSuite) TestDisassociateDirect() {
	mount := &model.Mount{ID: 10}
	mount.AssignOwner(42, model.OwnerTypeUser)

	ok, err := s.resolver.Disassociate(mount, 42, model.OwnerTypeUser)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)

	_, _, bound := mount.OwnerRef()
	assert.False(s.T(), bound)
}

func (s *ResolverSuite) TestAssociateRejectsNonAssignableChild() {
	// Users don't carry owner columns, so a direct assignment to one is a
	// caller error.
	_, err := s.resolver.Associate(&model.User{ID: 1}, 42, model.OwnerTypeUser)
	assert.Error(s.T(), err)
}

func (s *ResolverSuite) TestWithDBSharesRegistry() {
	other := s.resolver.WithDB(s.DB)
	assert.Same(s.T(), s.resolver.Registry(), other.Registry())
}
