package database

import (
	"context"
	"database/sql"
)

const getFeedbackRequest = `
SELECT id, issue_id, initiator_id, requested_id, feedback_comment_id
FROM feedback_requests
WHERE issue_id = $1 AND requested_id = $2
`

type GetFeedbackRequestParams struct {
	IssueID     int64
	RequestedID int64
}

func (q *Queries) GetFeedbackRequest(ctx context.Context, arg GetFeedbackRequestParams) (FeedbackRequest, error) {
	row := q.db.QueryRowContext(ctx, getFeedbackRequest, arg.IssueID, arg.RequestedID)
	var i FeedbackRequest
	err := row.Scan(
		&i.ID,
		&i.IssueID,
		&i.InitiatorID,
		&i.RequestedID,
		&i.FeedbackCommentID,
	)
	return i, err
}

const listOutstandingFeedbackRequests = `
SELECT id, issue_id, initiator_id, requested_id, feedback_comment_id
FROM feedback_requests
WHERE issue_id = $1 AND feedback_comment_id IS NULL
ORDER BY id
`

func (q *Queries) ListOutstandingFeedbackRequests(ctx context.Context, issueID int64) ([]FeedbackRequest, error) {
	rows, err := q.db.QueryContext(ctx, listOutstandingFeedbackRequests, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FeedbackRequest
	for rows.Next() {
		var i FeedbackRequest
		if err := rows.Scan(
			&i.ID,
			&i.IssueID,
			&i.InitiatorID,
			&i.RequestedID,
			&i.FeedbackCommentID,
		); err != nil {
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

const createFeedbackRequest = `
INSERT INTO feedback_requests (issue_id, initiator_id, requested_id)
VALUES ($1, $2, $3)
RETURNING id, issue_id, initiator_id, requested_id, feedback_comment_id
`

type CreateFeedbackRequestParams struct {
	IssueID     int64
	InitiatorID int64
	RequestedID int64
}

func (q *Queries) CreateFeedbackRequest(ctx context.Context, arg CreateFeedbackRequestParams) (FeedbackRequest, error) {
	row := q.db.QueryRowContext(ctx, createFeedbackRequest, arg.IssueID, arg.InitiatorID, arg.RequestedID)
	var i FeedbackRequest
	err := row.Scan(
		&i.ID,
		&i.IssueID,
		&i.InitiatorID,
		&i.RequestedID,
		&i.FeedbackCommentID,
	)
	return i, err
}

const fulfillFeedbackRequest = `
UPDATE feedback_requests
SET feedback_comment_id = $2
WHERE id = $1 AND feedback_comment_id IS NULL
`

type FulfillFeedbackRequestParams struct {
	ID                int64
	FeedbackCommentID sql.NullInt64
}

func (q *Queries) FulfillFeedbackRequest(ctx context.Context, arg FulfillFeedbackRequestParams) error {
	_, err := q.db.ExecContext(ctx, fulfillFeedbackRequest, arg.ID, arg.FeedbackCommentID)
	return err
}
