package user

const (
	// duplicate emails are possible; pick the earliest record
	SelectUserByEmail = `
		SELECT id, uuid, full_name, email, password_hash, created_at
		FROM users
		WHERE email = $1
		ORDER BY id
		LIMIT 1
	`
	InsertUser = `
		INSERT INTO users (full_name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING
		  id, uuid, full_name, email, password_hash, created_at
	`
)
