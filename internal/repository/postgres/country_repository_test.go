package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/repository/postgres/testhelpers"
)

func TestRowToFeature(t *testing.T) {
	row := countryRow{
		Code:     "AAA",
		Name:     "Alpha",
		Geometry: `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,0]]]}`,
		CenterX:  sql.NullFloat64{Float64: 1, Valid: true},
		CenterY:  sql.NullFloat64{Float64: 0, Valid: true},
		CenterZ:  sql.NullFloat64{Float64: 0, Valid: true},
	}

	f, err := rowToFeature(row)
	require.NoError(t, err)
	assert.Equal(t, "AAA", f.Code)
	assert.Equal(t, domain.GeometryPolygon, f.Geometry.Type)
	require.NotNil(t, f.Center)
	assert.Equal(t, 1.0, f.Center.X)

	row.CenterZ.Valid = false
	row.Geometry = "broken"
	f, err = rowToFeature(row)
	assert.Error(t, err)
	assert.Nil(t, f.Center, "partial center is ignored")
	assert.Equal(t, domain.GeometryType(""), f.Geometry.Type)
}

func TestNewCountryRepository_RejectsUnsafeTable(t *testing.T) {
	db := NewDBForTest(nil, zap.NewNop())

	_, err := NewCountryRepository(db, "countries; DROP TABLE x")
	assert.Error(t, err)

	_, err = NewCountryRepository(db, "public.countries")
	assert.NoError(t, err)
}

// CountryRepositoryTestSuite runs against a real PostGIS instance
type CountryRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.FeatureRepository
	ctx    context.Context
}

func (s *CountryRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())

	s.Require().NoError(s.testDB.ApplyMigrations(s.ctx, "../../../migrations"))
	s.testDB.Truncate(s.ctx, "countries")

	_, err := s.testDB.DB.ExecContext(s.ctx, `
		INSERT INTO countries (code, name, geom, center_x, center_y, center_z) VALUES
		('AAA', 'Alpha', ST_GeomFromText('POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))', 4326), NULL, NULL, NULL),
		('BBB', 'Beta',  ST_GeomFromText('MULTIPOLYGON(((20 0, 30 0, 30 10, 20 0)))', 4326), 0.5, 0.5, 0.5),
		('AAA', 'Alpha again', ST_GeomFromText('POLYGON((40 0, 50 0, 50 10, 40 0))', 4326), NULL, NULL, NULL)
	`)
	s.Require().NoError(err)

	repo, err := NewCountryRepository(NewDBForTest(s.testDB.DB, s.testDB.Logger), "countries")
	s.Require().NoError(err)
	s.repo = repo
}

func (s *CountryRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Truncate(s.ctx, "countries")
		s.testDB.Close()
	}
}

func (s *CountryRepositoryTestSuite) TestList_KeepsInsertOrderAndDuplicates() {
	features, err := s.repo.List(s.ctx)

	s.NoError(err)
	s.Require().Len(features, 3)
	s.Equal([]string{"AAA", "BBB", "AAA"}, []string{features[0].Code, features[1].Code, features[2].Code})
	s.Equal(domain.GeometryMultiPolygon, features[1].Geometry.Type)
	s.NotNil(features[1].Center)
	s.Nil(features[0].Center)
}

func (s *CountryRepositoryTestSuite) TestListByCodes() {
	features, err := s.repo.ListByCodes(s.ctx, []string{"BBB"})

	s.NoError(err)
	s.Require().Len(features, 1)
	s.Equal("Beta", features[0].Name)
}

func (s *CountryRepositoryTestSuite) TestListByCodes_Empty() {
	features, err := s.repo.ListByCodes(s.ctx, nil)

	s.NoError(err)
	s.Empty(features)
}

func TestCountryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CountryRepositoryTestSuite))
}
