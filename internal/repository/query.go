package repository

const (
	selectExpense = `SELECT
		id,
		doc_id,
		name,
		date,
		value,
		currency,
		comments,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	FROM expenses`

	selectService = `SELECT
		id,
		name,
		organisation_id,
		api_type,
		base_url,
		use_proxy,
		proxy,
		username,
		password,
		token_type,
		access_token,
		token_expiry,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	FROM payment_services`

	selectOrganisation = `SELECT
		id,
		name,
		acronym,
		website,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	FROM organisations`

	selectDocument = `SELECT
		id,
		doc_id,
		name,
		file_url,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	FROM documents`
)
