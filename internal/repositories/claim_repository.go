package repositories

import (
	"context"
	"database/sql"
	"time"

	"founditBack/internal/models"
)

type ClaimRepository struct {
	DB *sql.DB
}

func (r *ClaimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	query := `INSERT INTO claims (item_id, claim_by, status, date_reported) VALUES (?, ?, ?, ?)`
	result, err := r.DB.ExecContext(ctx, query, claim.ItemID, claim.ClaimBy, claim.Status, claim.DateReported)
	if err != nil {
		return models.Claim{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Claim{}, err
	}
	claim.ID = models.EntityID(id)
	return claim, nil
}

func (r *ClaimRepository) GetClaimByID(ctx context.Context, id models.EntityID) (models.Claim, error) {
	query := `
		SELECT cl.id, cl.item_id, i.name, cl.claim_by, CONCAT(u.name, ' ', u.surname), cl.status, cl.date_reported
		FROM claims cl
		JOIN items i ON cl.item_id = i.id
		JOIN users u ON cl.claim_by = u.id
		WHERE cl.id = ?
	`
	var claim models.Claim
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&claim.ID, &claim.ItemID, &claim.ItemName, &claim.ClaimBy, &claim.ClaimantName, &claim.Status, &claim.DateReported,
	)
	if err == sql.ErrNoRows {
		return models.Claim{}, models.ErrClaimNotFound
	}
	if err != nil {
		return models.Claim{}, err
	}
	return claim, nil
}

func (r *ClaimRepository) GetClaims(ctx context.Context) ([]models.Claim, error) {
	query := `
		SELECT cl.id, cl.item_id, i.name, cl.claim_by, CONCAT(u.name, ' ', u.surname), cl.status, cl.date_reported
		FROM claims cl
		JOIN items i ON cl.item_id = i.id
		JOIN users u ON cl.claim_by = u.id
		ORDER BY cl.date_reported DESC
	`
	return r.queryClaims(ctx, query)
}

func (r *ClaimRepository) GetClaimsByUser(ctx context.Context, userID models.EntityID) ([]models.Claim, error) {
	query := `
		SELECT cl.id, cl.item_id, i.name, cl.claim_by, CONCAT(u.name, ' ', u.surname), cl.status, cl.date_reported
		FROM claims cl
		JOIN items i ON cl.item_id = i.id
		JOIN users u ON cl.claim_by = u.id
		WHERE cl.claim_by = ?
		ORDER BY cl.date_reported DESC
	`
	return r.queryClaims(ctx, query, userID)
}

// AcceptClaim commits the whole accept sequence as one transaction: the
// target claim becomes accepted, every sibling pending claim on the same item
// becomes rejected, and the item is marked returned to the claimant. The item
// row is locked before any write, so two concurrent accepts on claims of the
// same item serialize and the loser sees its claim already rejected.
func (r *ClaimRepository) AcceptClaim(ctx context.Context, id models.EntityID, now time.Time) (models.Claim, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Claim{}, err
	}
	defer tx.Rollback()

	var claim models.Claim
	err = tx.QueryRowContext(ctx,
		`SELECT id, item_id, claim_by, status, date_reported FROM claims WHERE id = ?`, id,
	).Scan(&claim.ID, &claim.ItemID, &claim.ClaimBy, &claim.Status, &claim.DateReported)
	if err == sql.ErrNoRows {
		return models.Claim{}, models.ErrClaimNotFound
	}
	if err != nil {
		return models.Claim{}, err
	}

	// Lock order is item first, then claim. Every verification on this item
	// queues on the item row, so claim rows are never locked by two
	// transactions in opposite order.
	var item models.Item
	err = tx.QueryRowContext(ctx,
		`SELECT id, status FROM items WHERE id = ? FOR UPDATE`, claim.ItemID,
	).Scan(&item.ID, &item.Status)
	if err == sql.ErrNoRows {
		return models.Claim{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Claim{}, err
	}
	if item.Status == models.StatusReturned {
		return models.Claim{}, models.ErrItemAlreadyReturned
	}

	// Re-read under the item lock: if a concurrent accept won the race this
	// claim is no longer pending.
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM claims WHERE id = ? FOR UPDATE`, id,
	).Scan(&claim.Status)
	if err != nil {
		return models.Claim{}, err
	}
	if claim.Status != models.ClaimPending {
		return models.Claim{}, models.ErrClaimAlreadyDecided
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE claims SET status = ? WHERE id = ?`, models.ClaimAccepted, id,
	); err != nil {
		return models.Claim{}, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE claims SET status = ? WHERE item_id = ? AND id <> ? AND status = ?`,
		models.ClaimRejected, claim.ItemID, id, models.ClaimPending,
	); err != nil {
		return models.Claim{}, err
	}

	item.MarkReturned(claim.ClaimBy, now)
	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET status = ?, returned_to = ?, returned_on = ?, returned_to_owner = ? WHERE id = ?`,
		item.Status, item.ReturnedTo, item.ReturnedOn, item.ReturnedToOwner, item.ID,
	); err != nil {
		return models.Claim{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Claim{}, err
	}
	// Re-read through the joined query so the caller gets the item and
	// claimant names, not just the bare claims row.
	return r.GetClaimByID(ctx, id)
}

// RejectClaim flips only the target claim; siblings and the item stay
// untouched. The same pending re-check applies.
func (r *ClaimRepository) RejectClaim(ctx context.Context, id models.EntityID) (models.Claim, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Claim{}, err
	}
	defer tx.Rollback()

	var claim models.Claim
	err = tx.QueryRowContext(ctx,
		`SELECT id, item_id, claim_by, status, date_reported FROM claims WHERE id = ? FOR UPDATE`, id,
	).Scan(&claim.ID, &claim.ItemID, &claim.ClaimBy, &claim.Status, &claim.DateReported)
	if err == sql.ErrNoRows {
		return models.Claim{}, models.ErrClaimNotFound
	}
	if err != nil {
		return models.Claim{}, err
	}
	if claim.Status != models.ClaimPending {
		return models.Claim{}, models.ErrClaimAlreadyDecided
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE claims SET status = ? WHERE id = ?`, models.ClaimRejected, id,
	); err != nil {
		return models.Claim{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Claim{}, err
	}
	return r.GetClaimByID(ctx, id)
}

func (r *ClaimRepository) queryClaims(ctx context.Context, query string, params ...any) ([]models.Claim, error) {
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []models.Claim{}
	for rows.Next() {
		var claim models.Claim
		if err := rows.Scan(
			&claim.ID, &claim.ItemID, &claim.ItemName, &claim.ClaimBy, &claim.ClaimantName, &claim.Status, &claim.DateReported,
		); err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}
	return claims, rows.Err()
}
