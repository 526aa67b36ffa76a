package database

import (
	"context"
)

const getUserByID = `
SELECT id, login FROM github_users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (GithubUser, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	var i GithubUser
	err := row.Scan(&i.ID, &i.Login)
	return i, err
}

const getUserByLogin = `
SELECT id, login FROM github_users
WHERE login = $1
`

func (q *Queries) GetUserByLogin(ctx context.Context, login string) (GithubUser, error) {
	row := q.db.QueryRowContext(ctx, getUserByLogin, login)
	var i GithubUser
	err := row.Scan(&i.ID, &i.Login)
	return i, err
}

const getUsersByLogins = `
SELECT id, login FROM github_users
WHERE login = ANY($1::text[])
ORDER BY login
`

// GetUsersByLogins полагается на драйвер pgx, который кодирует []string как text[].
func (q *Queries) GetUsersByLogins(ctx context.Context, logins []string) ([]GithubUser, error) {
	rows, err := q.db.QueryContext(ctx, getUsersByLogins, logins)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GithubUser
	for rows.Next() {
		var i GithubUser
		if err := rows.Scan(&i.ID, &i.Login); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertUser = `
INSERT INTO github_users (id, login)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET login = EXCLUDED.login
`

type UpsertUserParams struct {
	ID    int64
	Login string
}

func (q *Queries) UpsertUser(ctx context.Context, arg UpsertUserParams) error {
	_, err := q.db.ExecContext(ctx, upsertUser, arg.ID, arg.Login)
	return err
}
