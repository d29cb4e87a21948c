package keymaster

import (
	"context"
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
	"github.com/hostbay/console/pkg/owner"
)

type KeyMasterSuite struct {
	suite.Suite
	DB     *gorm.DB
	mock   sqlmock.Sqlmock
	signer *Signer
	km     *KeyMaster
}

func (s *KeyMasterSuite) SetupSuite() {
	var (
		db  *sql.DB
		err error
	)

	db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(s.T(), err)

	s.signer, err = NewSigner("sha256", "test-server-secret")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.DB.Use(NewPlugin(WithSigner(s.signer))))

	resolver := owner.NewResolver(s.DB, owner.Default())
	s.km = New(s.DB, resolver, s.signer)
}

func (s *KeyMasterSuite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestKeyMaster(t *testing.T) {
	suite.Run(t, new(KeyMasterSuite))
}

func (s *KeyMasterSuite) expectOwnerLookup(table string, id uint) {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "`+table+`" WHERE id = $1 ORDER BY "`+table+`"."id" LIMIT 1`)).
		WithArgs(int64(id)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func (s *KeyMasterSuite) expectKeyInsert(newID uint) {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO "app_key_t"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))
	s.mock.ExpectCommit()
}

func (s *KeyMasterSuite) TestCreateKeyForUser() {
	s.expectOwnerLookup("user_t", 42)
	s.expectKeyInsert(1)

	key, err := s.km.CreateKey(context.Background(), 42, model.OwnerTypeUser, Fields{Label: "primary"})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), model.KeyClassUser, key.KeyClassNbr)
	assert.Equal(s.T(), "primary", key.Label)
	assert.True(s.T(), key.Active)

	id, ownerType, ok := key.Owner()
	require.True(s.T(), ok)
	assert.Equal(s.T(), uint(42), id)
	assert.Equal(s.T(), model.OwnerTypeUser, ownerType)

	// Credentials were derived on insert by the plugin.
	assert.Len(s.T(), key.ClientID, 64)
	assert.Len(s.T(), key.ClientSecret, 64)
	assert.Equal(s.T(), "test-server-secret", key.ServerSecret)
}

func (s *KeyMasterSuite) TestCreateKeyClassOverride() {
	s.expectOwnerLookup("user_t", 42)
	s.expectKeyInsert(2)

	key, err := s.km.CreateKey(context.Background(), 42, model.OwnerTypeUser, Fields{KeyClass: model.KeyClassOther})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.KeyClassOther, key.KeyClassNbr)
}

func (s *KeyMasterSuite) TestCreateKeyOwnerMissing() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "user_t" WHERE id = $1 ORDER BY "user_t"."id" LIMIT 1`)).
		WithArgs(777).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.km.CreateKey(context.Background(), 777, model.OwnerTypeUser, Fields{})
	assert.ErrorIs(s.T(), err, owner.ErrOwnerNotFound)
}

func (s *KeyMasterSuite) TestCreateKeyInvalidOwnerType() {
	_, err := s.km.CreateKey(context.Background(), 1, model.OwnerType(999), Fields{})
	assert.ErrorIs(s.T(), err, owner.ErrInvalidOwnerType)
}

func (s *KeyMasterSuite) TestCreateKeyForEntityUserWritesTokenBack() {
	user := &model.User{ID: 42, Email: "alice@example.com"}

	s.expectOwnerLookup("user_t", 42)
	s.expectKeyInsert(3)
	s.mock.ExpectBegin()
	s.mock.ExpectExec(`UPDATE "user_t" SET "api_token_text"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	key, err := s.km.CreateKeyForEntity(context.Background(), user)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), key)

	assert.Equal(s.T(), model.KeyClassUser, key.KeyClassNbr)
	assert.Equal(s.T(), key.ClientID, user.APIToken, "the client id is denormalized onto the user")
}

func (s *KeyMasterSuite) TestCreateKeyForEntityServiceUser() {
	serviceUser := &model.ServiceUser{ID: 7, OwnerTypeNbr: model.OwnerTypeServiceUser}

	s.expectOwnerLookup("service_user_t", 7)
	s.expectKeyInsert(4)

	key, err := s.km.CreateKeyForEntity(context.Background(), serviceUser)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), key)

	assert.Equal(s.T(), model.KeyClassServiceUser, key.KeyClassNbr)
	id, ownerType, ok := key.Owner()
	require.True(s.T(), ok)
	assert.Equal(s.T(), uint(7), id)
	assert.Equal(s.T(), model.OwnerTypeServiceUser, ownerType)
}

func (s *KeyMasterSuite) TestCreateKeyForEntityOverrideType() {
	serviceUser := &model.ServiceUser{ID: 8, OwnerTypeNbr: model.OwnerTypeServiceUser}

	s.expectOwnerLookup("service_user_t", 8)
	s.expectKeyInsert(5)

	key, err := s.km.CreateKeyForEntity(context.Background(), serviceUser, model.OwnerTypeConsole)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), key)

	_, ownerType, ok := key.Owner()
	require.True(s.T(), ok)
	assert.Equal(s.T(), model.OwnerTypeConsole, ownerType)
	assert.Equal(s.T(), model.KeyClassOther, key.KeyClassNbr, "platform owners have no dedicated class")
}

func (s *KeyMasterSuite) TestCreateKeyForEntityArchiveRowGetsNoKey() {
	key, err := s.km.CreateKeyForEntity(context.Background(), &model.ArchivedInstance{ID: 9, UserID: 42})
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), key)
}

func (s *KeyMasterSuite) TestCreateKeyForEntitySnapshotGetsNoKey() {
	// Snapshots have no owner type of their own, so issuance does not apply.
	key, err := s.km.CreateKeyForEntity(context.Background(), &model.Snapshot{ID: 3, UserID: 42})
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), key)
}

func (s *KeyMasterSuite) expectKeyDelete(ownerID uint, ownerType model.OwnerType, affected int64) {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "app_key_t" WHERE owner_id = $1 AND owner_type_nbr = $2`)).
		WithArgs(int64(ownerID), int64(ownerType)).
		WillReturnResult(sqlmock.NewResult(0, affected))
	s.mock.ExpectCommit()
}

func (s *KeyMasterSuite) TestDestroyKeysInstance() {
	// Deleting an instance removes the keys bound to the instance itself,
	// not the provisioning user's keys.
	s.expectKeyDelete(100, model.OwnerTypeInstance, 2)

	count, err := s.km.DestroyKeys(context.Background(), &model.Instance{ID: 100, UserID: 9})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)
}

func (s *KeyMasterSuite) TestDestroyKeysSnapshotFallsBackToUser() {
	s.expectKeyDelete(42, model.OwnerTypeUser, 1)

	count, err := s.km.DestroyKeys(context.Background(), &model.Snapshot{ID: 3, UserID: 42})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), count)
}

func (s *KeyMasterSuite) TestDestroyKeysMountUsesOwnerColumns() {
	mount := &model.Mount{ID: 10}
	mount.AssignOwner(5, model.OwnerTypeCluster)

	s.expectKeyDelete(5, model.OwnerTypeCluster, 1)

	count, err := s.km.DestroyKeys(context.Background(), mount)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), count)
}

func (s *KeyMasterSuite) TestDestroyKeysArchiveRowIsNoop() {
	count, err := s.km.DestroyKeys(context.Background(), &model.ArchivedInstance{ID: 9, UserID: 42})
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}

func (s *KeyMasterSuite) TestDestroyKeysUnownedEntityIsNoop() {
	count, err := s.km.DestroyKeys(context.Background(), &model.Snapshot{ID: 3})
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}

func (s *KeyMasterSuite) TestRevokeKeys() {
	s.expectKeyDelete(42, model.OwnerTypeUser, 3)

	count, err := s.km.RevokeKeys(context.Background(), 42, model.OwnerTypeUser)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), count)
}

func (s *KeyMasterSuite) TestGetKey() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "app_key_t" WHERE owner_id = $1 AND owner_type_nbr = $2 ORDER BY "app_key_t"."id" LIMIT 1`)).
		WithArgs(42, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key_class_nbr", "client_id", "owner_id", "owner_type_nbr"}).
			AddRow(1, 1, "abc123", 42, 0))

	key, err := s.km.GetKey(context.Background(), 42, model.OwnerTypeUser)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "abc123", key.ClientID)
	assert.Equal(s.T(), model.KeyClassUser, key.KeyClassNbr)
}

func (s *KeyMasterSuite) TestGetKeyNotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "app_key_t" WHERE owner_id = $1 AND owner_type_nbr = $2 ORDER BY "app_key_t"."id" LIMIT 1`)).
		WithArgs(42, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.km.GetKey(context.Background(), 42, model.OwnerTypeUser)
	assert.ErrorIs(s.T(), err, ErrKeyNotFound)
}

func (s *KeyMasterSuite) TestKeysFilteredByClass() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "app_key_t" WHERE owner_id = $1 AND owner_type_nbr = $2 AND key_class_nbr IN ($3)`)).
		WithArgs(42, 0, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key_class_nbr", "owner_id", "owner_type_nbr"}).
			AddRow(1, 1, 42, 0))

	keys, err := s.km.Keys(context.Background(), 42, model.OwnerTypeUser, model.KeyClassUser)
	require.NoError(s.T(), err)
	require.Len(s.T(), keys, 1)
	assert.Equal(s.T(), model.KeyClassUser, keys[0].KeyClassNbr)
}

func (s *KeyMasterSuite) TestUserKeysForSnapshotIsEmpty() {
	keys, err := s.km.UserKeys(context.Background(), &model.Snapshot{ID: 3, UserID: 42})
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), keys)
}

func (s *KeyMasterSuite) TestOwnerWalkback() {
	key := &model.AppKey{ID: 1}
	key.BindOwner(42, model.OwnerTypeUser)

	s.expectOwnerLookup("user_t", 42)

	entity, err := s.km.Owner(key)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "user_t", entity.TableName())
	assert.Equal(s.T(), uint(42), entity.EntityID())
}

func (s *KeyMasterSuite) TestOwnerOfUnownedKey() {
	_, err := s.km.Owner(&model.AppKey{ID: 1})
	assert.ErrorIs(s.T(), err, owner.ErrOwnerNotFound)
}

func TestKeyClassForOwnerType(t *testing.T) {
	assert.Equal(t, model.KeyClassUser, KeyClassForOwnerType(model.OwnerTypeUser))
	assert.Equal(t, model.KeyClassApplication, KeyClassForOwnerType(model.OwnerTypeApplication))
	assert.Equal(t, model.KeyClassService, KeyClassForOwnerType(model.OwnerTypeService))
	assert.Equal(t, model.KeyClassServiceUser, KeyClassForOwnerType(model.OwnerTypeServiceUser))
	assert.Equal(t, model.KeyClassOther, KeyClassForOwnerType(model.OwnerTypeCluster))
	assert.Equal(t, model.KeyClassOther, KeyClassForOwnerType(model.OwnerTypeConsole))
}
