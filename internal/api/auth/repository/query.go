package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, name, email, password, is_admin, created_at)
VALUES (:id, :name, :email, :password, :is_admin, :created_at)`

	queryGetByID = `
SELECT id, name, email, password, is_admin, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, name, email, password, is_admin, created_at, updated_at
FROM users
    WHERE email = :email`

	queryUpdateUserPassword = `
		UPDATE users
SET password = :password, updated_at = :updated_at
WHERE email = :email`
)
