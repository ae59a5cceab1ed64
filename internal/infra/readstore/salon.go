package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"
)

type SalonReadQueries interface {
	GetSalonByID(ctx context.Context, db query.DBTX, id int64) (query.Salon, error)
	ListSalons(ctx context.Context, db query.DBTX, arg query.ListSalonsParams) ([]query.Salon, error)
}

type SalonReadStore struct {
	queries SalonReadQueries
	db      query.DBTX
}

func NewSalonReadStore(queries SalonReadQueries, db query.DBTX) *SalonReadStore {
	return &SalonReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SalonReadStore) FindByID(ctx context.Context, id int64) (*queries.SalonView, error) {
	row, err := r.queries.GetSalonByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find salon by ID", err)
	}
	return toSalonView(row)
}

func (r *SalonReadStore) List(ctx context.Context, filter queries.SalonFilter) ([]*queries.SalonView, error) {
	params := query.ListSalonsParams{
		City:        pgconv.StringPtrToPgtype(filter.City),
		OfferStatus: pgconv.StringPtrToPgtype(filter.OfferStatus),
		OwnerID:     pgconv.Int8PtrToPgtype(filter.OwnerID),
		SortBy:      filter.SortBy,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	}

	rows, err := r.queries.ListSalons(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list salons", err)
	}

	result := make([]*queries.SalonView, 0, len(rows))
	for _, row := range rows {
		v, err := toSalonView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func toSalonView(row query.Salon) (*queries.SalonView, error) {
	minPrice, err := pgconv.Float64FromNumeric(row.MinServicePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid min service price", err)
	}
	maxPrice, err := pgconv.Float64FromNumeric(row.MaxServicePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid max service price", err)
	}

	return &queries.SalonView{
		ID:                 row.ID,
		OwnerID:            row.OwnerID,
		Name:               row.Name,
		Description:        row.Description,
		Address:            row.Address,
		City:               row.City,
		State:              row.State,
		Zip:                row.Zip,
		Latitude:           pgconv.Float8PtrFromPgtype(row.Latitude),
		Longitude:          pgconv.Float8PtrFromPgtype(row.Longitude),
		LocationName:       row.LocationName,
		WorkingDays:        row.WorkingDays,
		StartTime:          row.StartTime,
		EndTime:            row.EndTime,
		BreakStartTime:     pgconv.StringPtrFromPgtype(row.BreakStartTime),
		BreakEndTime:       pgconv.StringPtrFromPgtype(row.BreakEndTime),
		SlotDuration:       int(row.SlotDuration),
		MaxBookingsPerSlot: int(row.MaxBookingsPerSlot),
		MinServicePrice:    minPrice,
		MaxServicePrice:    maxPrice,
		OfferStatus:        row.OfferStatus,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
