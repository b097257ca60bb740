package file

const (
	// insertion order == non-decreasing uploaded_at on a single node
	SelectFiles = `
		SELECT id, uuid, file_name, storage_path, size_bytes, download_url, uploaded_at
		FROM files
		ORDER BY id
	`
	InsertFile = `
		INSERT INTO files (file_name, storage_path, size_bytes, download_url)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, file_name, storage_path, size_bytes, download_url, uploaded_at
	`
)
