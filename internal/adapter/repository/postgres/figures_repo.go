package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymops/cashcut/internal/domain"
)

// FigureRepository implements usecase.FigureSource by aggregating the
// day's recorded point-of-sale sales, layaway payments, and membership
// payments per payment method.
type FigureRepository struct {
	pool *pgxpool.Pool
}

// NewFigureRepository creates a new FigureRepository.
func NewFigureRepository(pool *pgxpool.Pool) *FigureRepository {
	return &FigureRepository{pool: pool}
}

// FiguresForDate aggregates a day's transactional records into per-channel
// figures. Days with no activity produce zeroed channels, not errors.
func (r *FigureRepository) FiguresForDate(ctx context.Context, date time.Time) (*domain.DayFigures, error) {
	day := domain.DateOnly(date)

	pos, err := r.channelFigures(ctx, "pos_sales", "sale_date", day)
	if err != nil {
		return nil, err
	}

	abonos, err := r.channelFigures(ctx, "layaway_payments", "payment_date", day)
	if err != nil {
		return nil, err
	}

	membership, err := r.channelFigures(ctx, "membership_payments", "payment_date", day)
	if err != nil {
		return nil, err
	}

	return &domain.DayFigures{
		Date:       day,
		POS:        pos,
		Abonos:     abonos,
		Membership: membership,
	}, nil
}

func (r *FigureRepository) channelFigures(ctx context.Context, table, dateColumn string, day time.Time) (domain.ChannelFigures, error) {
	// table and dateColumn come from the fixed call sites above, never
	// from user input.
	query := `
		SELECT payment_method, COALESCE(SUM(amount), 0), COALESCE(SUM(commission), 0), COUNT(*)
		FROM ` + table + `
		WHERE ` + dateColumn + ` = $1
		GROUP BY payment_method
	`

	rows, err := r.pool.Query(ctx, query, day)
	if err != nil {
		return domain.ChannelFigures{}, err
	}
	defer rows.Close()

	var figures domain.ChannelFigures
	for rows.Next() {
		var (
			method     string
			amount     pgtype.Numeric
			commission pgtype.Numeric
			count      int
		)
		if err := rows.Scan(&method, &amount, &commission, &count); err != nil {
			return domain.ChannelFigures{}, err
		}

		switch domain.Method(method) {
		case domain.MethodEfectivo:
			figures.Efectivo = numericToDecimal(amount)
		case domain.MethodTransferencia:
			figures.Transferencia = numericToDecimal(amount)
		case domain.MethodDebito:
			figures.Debito = numericToDecimal(amount)
		case domain.MethodCredito:
			figures.Credito = numericToDecimal(amount)
		case domain.MethodMixto:
			figures.Mixto = numericToDecimal(amount)
		default:
			// Unknown methods are dropped rather than misfiled
			continue
		}

		figures.Commissions = figures.Commissions.Add(numericToDecimal(commission))
		figures.Transactions += count
	}

	return figures, rows.Err()
}
