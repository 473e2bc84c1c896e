package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

const cutColumns = `
	id, cut_number, cut_date, status, is_manual,
	pos_efectivo, pos_transferencia, pos_debito, pos_credito, pos_mixto, pos_transactions, pos_commissions, pos_total,
	abonos_efectivo, abonos_transferencia, abonos_debito, abonos_credito, abonos_mixto, abonos_transactions, abonos_commissions, abonos_total,
	membership_efectivo, membership_transferencia, membership_debito, membership_credito, membership_mixto, membership_transactions, membership_commissions, membership_total,
	total_efectivo, total_transferencia, total_debito, total_credito, total_mixto,
	total_transactions, total_commissions, grand_total,
	expenses_amount, final_balance,
	created_by, creator_name, notes, created_at, updated_at`

// CutRepository implements usecase.CutRepository.
type CutRepository struct {
	pool *pgxpool.Pool
}

// NewCutRepository creates a new CutRepository.
func NewCutRepository(pool *pgxpool.Pool) *CutRepository {
	return &CutRepository{pool: pool}
}

// Create inserts a cut inside the given transaction.
func (r *CutRepository) Create(ctx context.Context, tx usecase.Transaction, cut *domain.CutRecord) error {
	query := `
		INSERT INTO cuts (` + cutColumns + `)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32, $33, $34,
			$35, $36, $37,
			$38, $39,
			$40, $41, $42, $43, $44
		)
	`

	_, err := tx.(*Tx).PgxTx().Exec(ctx, query, cutArgs(cut)...)
	return err
}

// GetByID retrieves a cut by ID.
func (r *CutRepository) GetByID(ctx context.Context, id string) (*domain.CutRecord, error) {
	query := `SELECT ` + cutColumns + ` FROM cuts WHERE id = $1`

	cut, err := scanCut(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCutNotFound
		}
		return nil, err
	}

	return cut, nil
}

// GetByDate retrieves the cut for a calendar day.
func (r *CutRepository) GetByDate(ctx context.Context, date time.Time) (*domain.CutRecord, error) {
	query := `SELECT ` + cutColumns + ` FROM cuts WHERE cut_date = $1`

	cut, err := scanCut(r.pool.QueryRow(ctx, query, domain.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCutNotFound
		}
		return nil, err
	}

	return cut, nil
}

// Update persists the full cut record. Every column is written so the
// stored row always carries the latest recomputed totals.
func (r *CutRepository) Update(ctx context.Context, cut *domain.CutRecord) error {
	query := `
		UPDATE cuts SET
			cut_number = $2, cut_date = $3, status = $4, is_manual = $5,
			pos_efectivo = $6, pos_transferencia = $7, pos_debito = $8, pos_credito = $9, pos_mixto = $10,
			pos_transactions = $11, pos_commissions = $12, pos_total = $13,
			abonos_efectivo = $14, abonos_transferencia = $15, abonos_debito = $16, abonos_credito = $17, abonos_mixto = $18,
			abonos_transactions = $19, abonos_commissions = $20, abonos_total = $21,
			membership_efectivo = $22, membership_transferencia = $23, membership_debito = $24, membership_credito = $25, membership_mixto = $26,
			membership_transactions = $27, membership_commissions = $28, membership_total = $29,
			total_efectivo = $30, total_transferencia = $31, total_debito = $32, total_credito = $33, total_mixto = $34,
			total_transactions = $35, total_commissions = $36, grand_total = $37,
			expenses_amount = $38, final_balance = $39,
			created_by = $40, creator_name = $41, notes = $42, created_at = $43, updated_at = $44
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, cutArgs(cut)...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCutNotFound
	}

	return nil
}

// Delete removes a cut.
func (r *CutRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cuts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCutNotFound
	}

	return nil
}

// List lists cuts with pagination, most recent day first.
func (r *CutRepository) List(ctx context.Context, limit, offset int) ([]*domain.CutRecord, error) {
	query := `SELECT ` + cutColumns + ` FROM cuts ORDER BY cut_date DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cuts []*domain.CutRecord
	for rows.Next() {
		cut, err := scanCut(rows)
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, cut)
	}

	return cuts, rows.Err()
}

// NextCutNumber reserves the next sequential cut number inside the given
// transaction.
func (r *CutRepository) NextCutNumber(ctx context.Context, tx usecase.Transaction) (int64, error) {
	var number int64
	err := tx.(*Tx).PgxTx().QueryRow(ctx, `SELECT nextval('cut_number_seq')`).Scan(&number)
	return number, err
}

func cutArgs(cut *domain.CutRecord) []any {
	return []any{
		cut.ID,
		cut.CutNumber,
		domain.DateOnly(cut.CutDate),
		string(cut.Status),
		cut.IsManual,

		decimalToNumeric(cut.POS.Efectivo),
		decimalToNumeric(cut.POS.Transferencia),
		decimalToNumeric(cut.POS.Debito),
		decimalToNumeric(cut.POS.Credito),
		decimalToNumeric(cut.POS.Mixto),
		cut.POS.Transactions,
		decimalToNumeric(cut.POS.Commissions),
		decimalToNumeric(cut.POSTotal),

		decimalToNumeric(cut.Abonos.Efectivo),
		decimalToNumeric(cut.Abonos.Transferencia),
		decimalToNumeric(cut.Abonos.Debito),
		decimalToNumeric(cut.Abonos.Credito),
		decimalToNumeric(cut.Abonos.Mixto),
		cut.Abonos.Transactions,
		decimalToNumeric(cut.Abonos.Commissions),
		decimalToNumeric(cut.AbonosTotal),

		decimalToNumeric(cut.Membership.Efectivo),
		decimalToNumeric(cut.Membership.Transferencia),
		decimalToNumeric(cut.Membership.Debito),
		decimalToNumeric(cut.Membership.Credito),
		decimalToNumeric(cut.Membership.Mixto),
		cut.Membership.Transactions,
		decimalToNumeric(cut.Membership.Commissions),
		decimalToNumeric(cut.MembershipTotal),

		decimalToNumeric(cut.Totals.Efectivo),
		decimalToNumeric(cut.Totals.Transferencia),
		decimalToNumeric(cut.Totals.Debito),
		decimalToNumeric(cut.Totals.Credito),
		decimalToNumeric(cut.Totals.Mixto),

		cut.TotalTransactions,
		decimalToNumeric(cut.TotalCommissions),
		decimalToNumeric(cut.GrandTotal),

		decimalToNumeric(cut.ExpensesAmount),
		decimalToNumeric(cut.FinalBalance),

		cut.CreatedBy,
		cut.CreatorName,
		cut.Notes,
		timeToPgTimestamptz(cut.CreatedAt),
		timeToPgTimestamptz(cut.UpdatedAt),
	}
}

func scanCut(row pgx.Row) (*domain.CutRecord, error) {
	var (
		cut        domain.CutRecord
		status     string
		cutDate    pgtype.Date
		numerics   [30]pgtype.Numeric
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&cut.ID, &cut.CutNumber, &cutDate, &status, &cut.IsManual,
		&numerics[0], &numerics[1], &numerics[2], &numerics[3], &numerics[4], &cut.POS.Transactions, &numerics[5], &numerics[6],
		&numerics[7], &numerics[8], &numerics[9], &numerics[10], &numerics[11], &cut.Abonos.Transactions, &numerics[12], &numerics[13],
		&numerics[14], &numerics[15], &numerics[16], &numerics[17], &numerics[18], &cut.Membership.Transactions, &numerics[19], &numerics[20],
		&numerics[21], &numerics[22], &numerics[23], &numerics[24], &numerics[25],
		&cut.TotalTransactions, &numerics[26], &numerics[27],
		&numerics[28], &numerics[29],
		&cut.CreatedBy, &cut.CreatorName, &cut.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cut.CutDate = cutDate.Time
	cut.Status = domain.CutStatus(status)
	cut.CreatedAt = createdAt.Time
	cut.UpdatedAt = updatedAt.Time

	cut.POS.Efectivo = numericToDecimal(numerics[0])
	cut.POS.Transferencia = numericToDecimal(numerics[1])
	cut.POS.Debito = numericToDecimal(numerics[2])
	cut.POS.Credito = numericToDecimal(numerics[3])
	cut.POS.Mixto = numericToDecimal(numerics[4])
	cut.POS.Commissions = numericToDecimal(numerics[5])
	cut.POSTotal = numericToDecimal(numerics[6])

	cut.Abonos.Efectivo = numericToDecimal(numerics[7])
	cut.Abonos.Transferencia = numericToDecimal(numerics[8])
	cut.Abonos.Debito = numericToDecimal(numerics[9])
	cut.Abonos.Credito = numericToDecimal(numerics[10])
	cut.Abonos.Mixto = numericToDecimal(numerics[11])
	cut.Abonos.Commissions = numericToDecimal(numerics[12])
	cut.AbonosTotal = numericToDecimal(numerics[13])

	cut.Membership.Efectivo = numericToDecimal(numerics[14])
	cut.Membership.Transferencia = numericToDecimal(numerics[15])
	cut.Membership.Debito = numericToDecimal(numerics[16])
	cut.Membership.Credito = numericToDecimal(numerics[17])
	cut.Membership.Mixto = numericToDecimal(numerics[18])
	cut.Membership.Commissions = numericToDecimal(numerics[19])
	cut.MembershipTotal = numericToDecimal(numerics[20])

	cut.Totals.Efectivo = numericToDecimal(numerics[21])
	cut.Totals.Transferencia = numericToDecimal(numerics[22])
	cut.Totals.Debito = numericToDecimal(numerics[23])
	cut.Totals.Credito = numericToDecimal(numerics[24])
	cut.Totals.Mixto = numericToDecimal(numerics[25])

	cut.TotalCommissions = numericToDecimal(numerics[26])
	cut.GrandTotal = numericToDecimal(numerics[27])

	cut.ExpensesAmount = numericToDecimal(numerics[28])
	cut.FinalBalance = numericToDecimal(numerics[29])

	return &cut, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
