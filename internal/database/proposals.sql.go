package database

import (
	"context"
	"database/sql"
)

const getActiveProposal = `
SELECT id, issue_id, initiator_id, initiating_comment_id, disposition, created_at
FROM fcp_proposals
WHERE issue_id = $1
`

func (q *Queries) GetActiveProposal(ctx context.Context, issueID int64) (FcpProposal, error) {
	row := q.db.QueryRowContext(ctx, getActiveProposal, issueID)
	var i FcpProposal
	err := row.Scan(
		&i.ID,
		&i.IssueID,
		&i.InitiatorID,
		&i.InitiatingCommentID,
		&i.Disposition,
		&i.CreatedAt,
	)
	return i, err
}

const listActiveProposals = `
SELECT id, issue_id, initiator_id, initiating_comment_id, disposition, created_at
FROM fcp_proposals
ORDER BY id
`

func (q *Queries) ListActiveProposals(ctx context.Context) ([]FcpProposal, error) {
	rows, err := q.db.QueryContext(ctx, listActiveProposals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FcpProposal
	for rows.Next() {
		var i FcpProposal
		if err := rows.Scan(
			&i.ID,
			&i.IssueID,
			&i.InitiatorID,
			&i.InitiatingCommentID,
			&i.Disposition,
			&i.CreatedAt,
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

const createProposal = `
INSERT INTO fcp_proposals (issue_id, initiator_id, initiating_comment_id, disposition)
VALUES ($1, $2, $3, $4)
RETURNING id, issue_id, initiator_id, initiating_comment_id, disposition, created_at
`

type CreateProposalParams struct {
	IssueID             int64
	InitiatorID         int64
	InitiatingCommentID int64
	Disposition         string
}

func (q *Queries) CreateProposal(ctx context.Context, arg CreateProposalParams) (FcpProposal, error) {
	row := q.db.QueryRowContext(ctx, createProposal,
		arg.IssueID,
		arg.InitiatorID,
		arg.InitiatingCommentID,
		arg.Disposition,
	)
	var i FcpProposal
	err := row.Scan(
		&i.ID,
		&i.IssueID,
		&i.InitiatorID,
		&i.InitiatingCommentID,
		&i.Disposition,
		&i.CreatedAt,
	)
	return i, err
}

const deleteProposal = `
DELETE FROM fcp_proposals
WHERE id = $1
`

func (q *Queries) DeleteProposal(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteProposal, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteReviewRequestsByProposal = `
DELETE FROM fcp_review_requests
WHERE proposal_id = $1
`

func (q *Queries) DeleteReviewRequestsByProposal(ctx context.Context, proposalID int64) error {
	_, err := q.db.ExecContext(ctx, deleteReviewRequestsByProposal, proposalID)
	return err
}

const deleteConcernsByProposal = `
DELETE FROM fcp_concerns
WHERE proposal_id = $1
`

func (q *Queries) DeleteConcernsByProposal(ctx context.Context, proposalID int64) error {
	_, err := q.db.ExecContext(ctx, deleteConcernsByProposal, proposalID)
	return err
}

const createReviewRequest = `
INSERT INTO fcp_review_requests (proposal_id, reviewer_id)
VALUES ($1, $2)
ON CONFLICT (proposal_id, reviewer_id) DO NOTHING
`

type CreateReviewRequestParams struct {
	ProposalID int64
	ReviewerID int64
}

func (q *Queries) CreateReviewRequest(ctx context.Context, arg CreateReviewRequestParams) error {
	_, err := q.db.ExecContext(ctx, createReviewRequest, arg.ProposalID, arg.ReviewerID)
	return err
}

const getReviewRequest = `
SELECT id, proposal_id, reviewer_id, reviewed_comment_id
FROM fcp_review_requests
WHERE proposal_id = $1 AND reviewer_id = $2
`

type GetReviewRequestParams struct {
	ProposalID int64
	ReviewerID int64
}

func (q *Queries) GetReviewRequest(ctx context.Context, arg GetReviewRequestParams) (FcpReviewRequest, error) {
	row := q.db.QueryRowContext(ctx, getReviewRequest, arg.ProposalID, arg.ReviewerID)
	var i FcpReviewRequest
	err := row.Scan(
		&i.ID,
		&i.ProposalID,
		&i.ReviewerID,
		&i.ReviewedCommentID,
	)
	return i, err
}

const listReviewRequests = `
SELECT id, proposal_id, reviewer_id, reviewed_comment_id
FROM fcp_review_requests
WHERE proposal_id = $1
ORDER BY id
`

func (q *Queries) ListReviewRequests(ctx context.Context, proposalID int64) ([]FcpReviewRequest, error) {
	rows, err := q.db.QueryContext(ctx, listReviewRequests, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FcpReviewRequest
	for rows.Next() {
		var i FcpReviewRequest
		if err := rows.Scan(
			&i.ID,
			&i.ProposalID,
			&i.ReviewerID,
			&i.ReviewedCommentID,
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

const markReviewed = `
UPDATE fcp_review_requests
SET reviewed_comment_id = $2
WHERE id = $1
`

type MarkReviewedParams struct {
	ID                int64
	ReviewedCommentID sql.NullInt64
}

func (q *Queries) MarkReviewed(ctx context.Context, arg MarkReviewedParams) error {
	_, err := q.db.ExecContext(ctx, markReviewed, arg.ID, arg.ReviewedCommentID)
	return err
}

const getConcern = `
SELECT id, proposal_id, initiator_id, name, resolved_comment_id
FROM fcp_concerns
WHERE proposal_id = $1 AND name = $2
`

type GetConcernParams struct {
	ProposalID int64
	Name       string
}

func (q *Queries) GetConcern(ctx context.Context, arg GetConcernParams) (FcpConcern, error) {
	row := q.db.QueryRowContext(ctx, getConcern, arg.ProposalID, arg.Name)
	var i FcpConcern
	err := row.Scan(
		&i.ID,
		&i.ProposalID,
		&i.InitiatorID,
		&i.Name,
		&i.ResolvedCommentID,
	)
	return i, err
}

const listConcerns = `
SELECT id, proposal_id, initiator_id, name, resolved_comment_id
FROM fcp_concerns
WHERE proposal_id = $1
ORDER BY id
`

func (q *Queries) ListConcerns(ctx context.Context, proposalID int64) ([]FcpConcern, error) {
	rows, err := q.db.QueryContext(ctx, listConcerns, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FcpConcern
	for rows.Next() {
		var i FcpConcern
		if err := rows.Scan(
			&i.ID,
			&i.ProposalID,
			&i.InitiatorID,
			&i.Name,
			&i.ResolvedCommentID,
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

const createConcern = `
INSERT INTO fcp_concerns (proposal_id, initiator_id, name)
VALUES ($1, $2, $3)
RETURNING id, proposal_id, initiator_id, name, resolved_comment_id
`

type CreateConcernParams struct {
	ProposalID  int64
	InitiatorID int64
	Name        string
}

func (q *Queries) CreateConcern(ctx context.Context, arg CreateConcernParams) (FcpConcern, error) {
	row := q.db.QueryRowContext(ctx, createConcern, arg.ProposalID, arg.InitiatorID, arg.Name)
	var i FcpConcern
	err := row.Scan(
		&i.ID,
		&i.ProposalID,
		&i.InitiatorID,
		&i.Name,
		&i.ResolvedCommentID,
	)
	return i, err
}

const resolveConcern = `
UPDATE fcp_concerns
SET resolved_comment_id = $2
WHERE id = $1
`

type ResolveConcernParams struct {
	ID                int64
	ResolvedCommentID sql.NullInt64
}

func (q *Queries) ResolveConcern(ctx context.Context, arg ResolveConcernParams) error {
	_, err := q.db.ExecContext(ctx, resolveConcern, arg.ID, arg.ResolvedCommentID)
	return err
}
