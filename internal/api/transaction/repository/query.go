package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			description,
			amount,
			transaction_date,
			category_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:description,
			:amount,
			:transaction_date,
			:category_id,
			:created_at,
			:updated_at
		)
	`

	querySelectTransaction = `
		SELECT
			t.id,
			t.description,
			t.amount,
			t.transaction_date,
			t.category_id,
			c.name AS category_name,
			c.type AS category_type,
			t.created_at,
			t.updated_at
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
	`

	queryGetTransactionByID = querySelectTransaction + `
		WHERE t.id = :id
	`

	queryGetTransactions = querySelectTransaction + `
		ORDER BY t.transaction_date DESC, t.created_at DESC
	`

	queryGetTransactionsByDateRange = querySelectTransaction + `
		WHERE t.transaction_date BETWEEN :start_date AND :end_date
		ORDER BY t.transaction_date DESC, t.created_at DESC
	`

	queryGetTransactionsByCategory = querySelectTransaction + `
		WHERE t.category_id = :category_id
		ORDER BY t.transaction_date DESC, t.created_at DESC
	`

	queryGetRecentTransactions = querySelectTransaction + `
		ORDER BY t.created_at DESC
		LIMIT :limit
	`

	querySumAmountByDirectionAndRange = `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE COALESCE(c.direction, 'expense') = :direction
		  AND t.transaction_date BETWEEN :start_date AND :end_date
	`

	queryCountByDateRange = `
		SELECT COUNT(*)
		FROM transactions t
		WHERE t.transaction_date BETWEEN :start_date AND :end_date
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			description = :description,
			amount = :amount,
			transaction_date = :transaction_date,
			category_id = :category_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
