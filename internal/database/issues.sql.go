package database

import (
	"context"
)

const getIssueByID = `
SELECT id, repository, number FROM issues
WHERE id = $1
`

func (q *Queries) GetIssueByID(ctx context.Context, id int64) (Issue, error) {
	row := q.db.QueryRowContext(ctx, getIssueByID, id)
	var i Issue
	err := row.Scan(&i.ID, &i.Repository, &i.Number)
	return i, err
}

const lockIssue = `
SELECT id FROM issues
WHERE id = $1
FOR UPDATE
`

// LockIssue берет блокировку строки issue до конца транзакции.
func (q *Queries) LockIssue(ctx context.Context, id int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, lockIssue, id)
	var lockedID int64
	err := row.Scan(&lockedID)
	return lockedID, err
}

const upsertIssue = `
INSERT INTO issues (repository, number)
VALUES ($1, $2)
ON CONFLICT (repository, number) DO UPDATE
SET repository = EXCLUDED.repository
RETURNING id, repository, number
`

type UpsertIssueParams struct {
	Repository string
	Number     int32
}

func (q *Queries) UpsertIssue(ctx context.Context, arg UpsertIssueParams) (Issue, error) {
	row := q.db.QueryRowContext(ctx, upsertIssue, arg.Repository, arg.Number)
	var i Issue
	err := row.Scan(&i.ID, &i.Repository, &i.Number)
	return i, err
}

const getIssueLabels = `
SELECT label FROM issue_labels
WHERE issue_id = $1
ORDER BY position
`

func (q *Queries) GetIssueLabels(ctx context.Context, issueID int64) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getIssueLabels, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		items = append(items, label)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteIssueLabels = `
DELETE FROM issue_labels
WHERE issue_id = $1
`

func (q *Queries) DeleteIssueLabels(ctx context.Context, issueID int64) error {
	_, err := q.db.ExecContext(ctx, deleteIssueLabels, issueID)
	return err
}

const insertIssueLabel = `
INSERT INTO issue_labels (issue_id, position, label)
VALUES ($1, $2, $3)
`

type InsertIssueLabelParams struct {
	IssueID  int64
	Position int32
	Label    string
}

func (q *Queries) InsertIssueLabel(ctx context.Context, arg InsertIssueLabelParams) error {
	_, err := q.db.ExecContext(ctx, insertIssueLabel, arg.IssueID, arg.Position, arg.Label)
	return err
}
