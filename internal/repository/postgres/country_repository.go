package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/lib/pq"
	orbjson "github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/repository/geojson"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

type countryRow struct {
	Code     string          `db:"code"`
	Name     string          `db:"name"`
	Geometry string          `db:"geometry_json"`
	CenterX  sql.NullFloat64 `db:"center_x"`
	CenterY  sql.NullFloat64 `db:"center_y"`
	CenterZ  sql.NullFloat64 `db:"center_z"`
}

type countryRepository struct {
	db     *DB
	table  string
	logger *zap.Logger
}

// NewCountryRepository создает источник стран из PostGIS таблицы
func NewCountryRepository(db *DB, table string) (repository.FeatureRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, errors.ErrInvalidArgument.WithMessage("invalid countries table name %q", table)
	}
	return &countryRepository{
		db:     db,
		table:  table,
		logger: db.logger,
	}, nil
}

func (r *countryRepository) selectQuery() string {
	return fmt.Sprintf(`
		SELECT
			code,
			COALESCE(name, '') AS name,
			ST_AsGeoJSON(geom) AS geometry_json,
			center_x, center_y, center_z
		FROM %s
	`, r.table)
}

// List возвращает страны в порядке вставки
func (r *countryRepository) List(ctx context.Context) ([]domain.Feature, error) {
	query := r.selectQuery() + " ORDER BY id"

	var rows []countryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list countries", zap.String("table", r.table), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.toFeatures(rows), nil
}

// ListByCodes возвращает страны с указанными кодами
func (r *countryRepository) ListByCodes(ctx context.Context, codes []string) ([]domain.Feature, error) {
	if len(codes) == 0 {
		return []domain.Feature{}, nil
	}
	query := r.selectQuery() + " WHERE code = ANY($1) ORDER BY id"

	var rows []countryRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(codes)); err != nil {
		r.logger.Error("Failed to list countries by codes",
			zap.Strings("codes", codes),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.toFeatures(rows), nil
}

func (r *countryRepository) toFeatures(rows []countryRow) []domain.Feature {
	features := make([]domain.Feature, 0, len(rows))
	for _, row := range rows {
		f, err := rowToFeature(row)
		if err != nil {
			// the registry reports it as malformed geometry
			r.logger.Warn("Country geometry is not valid GeoJSON",
				zap.String("code", row.Code),
				zap.Error(err))
		}
		features = append(features, f)
	}
	return features
}

func rowToFeature(row countryRow) (domain.Feature, error) {
	f := domain.Feature{Code: row.Code, Name: row.Name}

	if row.CenterX.Valid && row.CenterY.Valid && row.CenterZ.Valid {
		f.Center = &domain.SpherePoint{X: row.CenterX.Float64, Y: row.CenterY.Float64, Z: row.CenterZ.Float64}
	}

	g, err := orbjson.UnmarshalGeometry([]byte(row.Geometry))
	if err != nil {
		return f, err
	}
	f.Geometry = geojson.ToGeometry(g.Geometry())
	return f, nil
}
