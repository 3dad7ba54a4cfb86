package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			name,
			type,
			direction,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:type,
			:direction,
			:created_at,
			:updated_at
		)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id
	`

	queryGetCategoryByName = `
		SELECT
			id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		WHERE LOWER(name) = LOWER(:name)
	`

	queryGetCategories = `
		SELECT
			id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		ORDER BY name ASC
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			type = :type,
			direction = :direction,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`

	queryCountTransactionsByCategory = `
		SELECT COUNT(*)
		FROM transactions
		WHERE category_id = :category_id
	`
)
