package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/models"
	"communityHub/internal/storage"
)

const (
	listingColumns = `id, seller_id, title, description, category, is_free, price, status, created_at, updated_at`
	requestColumns = `id, listing_id, buyer_id, status, message, created_at, updated_at`
)

func scanListing(row scanner) (*models.MarketListing, error) {
	var l models.MarketListing
	err := row.Scan(
		&l.ID,
		&l.SellerID,
		&l.Title,
		&l.Description,
		&l.Category,
		&l.IsFree,
		&l.Price,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanRequest(row scanner) (*models.MarketRequest, error) {
	var r models.MarketRequest
	if err := row.Scan(&r.ID, &r.ListingID, &r.BuyerID, &r.Status, &r.Message, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (q *queries) CreateListing(ctx context.Context, listing *models.MarketListing) error {
	const op = "storage.postgres.CreateListing"

	query := `
		INSERT INTO market_listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := q.db.ExecContext(ctx, query,
		listing.ID,
		listing.SellerID,
		listing.Title,
		listing.Description,
		listing.Category,
		listing.IsFree,
		listing.Price,
		listing.Status,
		listing.CreatedAt,
		listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (q *queries) getListing(ctx context.Context, op, query, id string) (*models.MarketListing, error) {
	listing, err := scanListing(q.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrListingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return listing, nil
}

func (q *queries) GetListing(ctx context.Context, id string) (*models.MarketListing, error) {
	return q.getListing(ctx, "storage.postgres.GetListing",
		`SELECT `+listingColumns+` FROM market_listings WHERE id = $1`, id)
}

func (q *queries) GetListingForUpdate(ctx context.Context, id string) (*models.MarketListing, error) {
	return q.getListing(ctx, "storage.postgres.GetListingForUpdate",
		`SELECT `+listingColumns+` FROM market_listings WHERE id = $1 FOR UPDATE`, id)
}

func (q *queries) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.MarketListing, error) {
	const op = "storage.postgres.ListListings"

	limit, offset := storage.Page(filter.Limit, filter.Offset)

	query := `
		SELECT ` + listingColumns + `
		FROM market_listings
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR category = $2)
		  AND ($3 = '' OR seller_id = $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`

	rows, err := q.db.QueryContext(ctx, query, string(filter.Status), filter.Category, filter.SellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var listings []models.MarketListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan listing: %w", op, err)
		}
		listings = append(listings, *listing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating listings: %w", op, err)
	}

	return listings, nil
}

func (q *queries) UpdateListing(ctx context.Context, listing *models.MarketListing) error {
	const op = "storage.postgres.UpdateListing"

	query := `
		UPDATE market_listings
		SET title = $2, description = $3, category = $4, is_free = $5, price = $6,
		    status = $7, updated_at = $8
		WHERE id = $1`

	res, err := q.db.ExecContext(ctx, query,
		listing.ID,
		listing.Title,
		listing.Description,
		listing.Category,
		listing.IsFree,
		listing.Price,
		listing.Status,
		listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrListingNotFound)
}

func (q *queries) SetListingStatus(ctx context.Context, id string, status models.ListingStatus) error {
	const op = "storage.postgres.SetListingStatus"

	res, err := q.db.ExecContext(ctx,
		`UPDATE market_listings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrListingNotFound)
}

func (q *queries) CreateRequest(ctx context.Context, req *models.MarketRequest) error {
	const op = "storage.postgres.CreateRequest"

	query := `
		INSERT INTO market_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.db.ExecContext(ctx, query,
		req.ID, req.ListingID, req.BuyerID, req.Status, req.Message, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrRequestExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (q *queries) queryRequest(ctx context.Context, op, query string, args ...any) (*models.MarketRequest, error) {
	req, err := scanRequest(q.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRequestNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return req, nil
}

func (q *queries) GetRequest(ctx context.Context, id string) (*models.MarketRequest, error) {
	return q.queryRequest(ctx, "storage.postgres.GetRequest",
		`SELECT `+requestColumns+` FROM market_requests WHERE id = $1`, id)
}

func (q *queries) GetRequestByBuyer(ctx context.Context, listingID, buyerID string) (*models.MarketRequest, error) {
	return q.queryRequest(ctx, "storage.postgres.GetRequestByBuyer",
		`SELECT `+requestColumns+` FROM market_requests WHERE listing_id = $1 AND buyer_id = $2`,
		listingID, buyerID)
}

func (q *queries) ListRequests(ctx context.Context, listingID string) ([]models.MarketRequest, error) {
	const op = "storage.postgres.ListRequests"

	rows, err := q.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM market_requests
		WHERE listing_id = $1
		ORDER BY created_at ASC, id ASC`,
		listingID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var reqs []models.MarketRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan request: %w", op, err)
		}
		reqs = append(reqs, *req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating requests: %w", op, err)
	}

	return reqs, nil
}

func (q *queries) SetRequestStatus(ctx context.Context, id string, status models.RequestStatus) error {
	const op = "storage.postgres.SetRequestStatus"

	res, err := q.db.ExecContext(ctx,
		`UPDATE market_requests SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrRequestNotFound)
}

func (q *queries) DeleteRequest(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteRequest"

	res, err := q.db.ExecContext(ctx, `DELETE FROM market_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrRequestNotFound)
}
