// Package api содержит модели и маршруты HTTP API из openapi.yaml.
// Файл поддерживается в том виде, в котором его выдает oapi-codegen (echo-server, models).
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for Disposition.
const (
	Close    Disposition = "close"
	Merge    Disposition = "merge"
	Postpone Disposition = "postpone"
)

// Defines values for ErrorResponseErrorCode.
const (
	INTERNALERROR  ErrorResponseErrorCode = "INTERNAL_ERROR"
	INVALIDREQUEST ErrorResponseErrorCode = "INVALID_REQUEST"
	NOTFOUND       ErrorResponseErrorCode = "NOT_FOUND"
	PROPOSALEXISTS ErrorResponseErrorCode = "PROPOSAL_EXISTS"
)

// BatchResult defines model for BatchResult.
type BatchResult struct {
	Commands  int              `json:"commands"`
	Dropped   int              `json:"dropped"`
	Processed int              `json:"processed"`
	Signals   []FinalizeSignal `json:"signals"`
}

// Concern defines model for Concern.
type Concern struct {
	InitiatorId       int64  `json:"initiator_id"`
	Name              string `json:"name"`
	ResolvedCommentId *int64 `json:"resolved_comment_id,omitempty"`
}

// Disposition defines model for Disposition.
type Disposition string

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// ErrorResponseErrorCode defines model for ErrorResponse.Error.Code.
type ErrorResponseErrorCode string

// FeedbackRequest defines model for FeedbackRequest.
type FeedbackRequest struct {
	InitiatorId int64 `json:"initiator_id"`
	RequestedId int64 `json:"requested_id"`
}

// FinalizeSignal defines model for FinalizeSignal.
type FinalizeSignal struct {
	AutoClose    bool        `json:"auto_close"`
	AutoPostpone bool        `json:"auto_postpone"`
	Disposition  Disposition `json:"disposition"`
	IssueId      int64       `json:"issue_id"`
	IssueNumber  int32       `json:"issue_number"`
	ProposalId   int64       `json:"proposal_id"`
	Repository   string      `json:"repository"`
}

// GitHubUser defines model for GitHubUser.
type GitHubUser struct {
	Id    int64  `json:"id"`
	Login string `json:"login"`
}

// IncomingComment defines model for IncomingComment.
type IncomingComment struct {
	Author    GitHubUser `json:"author"`
	Body      string     `json:"body"`
	CommentId int64      `json:"comment_id"`
	CreatedAt time.Time  `json:"created_at"`
	Issue     IssueRef   `json:"issue"`
}

// IssueRef defines model for IssueRef.
type IssueRef struct {
	Labels     *[]string `json:"labels,omitempty"`
	Number     int32     `json:"number"`
	Repository string    `json:"repository"`
}

// NagResult defines model for NagResult.
type NagResult struct {
	Signals []FinalizeSignal `json:"signals"`
}

// Proposal defines model for Proposal.
type Proposal struct {
	CreatedAt           time.Time   `json:"created_at"`
	Disposition         Disposition `json:"disposition"`
	Id                  int64       `json:"id"`
	InitiatingCommentId int64       `json:"initiating_comment_id"`
	InitiatorId         int64       `json:"initiator_id"`
	IssueId             int64       `json:"issue_id"`
}

// ProposalStatus defines model for ProposalStatus.
type ProposalStatus struct {
	Concerns         []Concern         `json:"concerns"`
	FeedbackRequests []FeedbackRequest `json:"feedback_requests"`
	Proposal         Proposal          `json:"proposal"`
	Ready            bool              `json:"ready"`
	ReviewRequests   []ReviewRequest   `json:"review_requests"`
}

// RepositoryBehavior defines model for RepositoryBehavior.
type RepositoryBehavior struct {
	AutoClose                  bool     `json:"auto_close"`
	AutoPostpone               bool     `json:"auto_postpone"`
	ProhibitedCommentReactions []string `json:"prohibited_comment_reactions"`
	ProhibitedIssueReactions   []string `json:"prohibited_issue_reactions"`
	Repository                 string   `json:"repository"`
}

// ReviewRequest defines model for ReviewRequest.
type ReviewRequest struct {
	ReviewedCommentId *int64 `json:"reviewed_comment_id,omitempty"`
	ReviewerId        int64  `json:"reviewer_id"`
}

// PostCommentsProcessJSONBody defines parameters for PostCommentsProcess.
type PostCommentsProcessJSONBody struct {
	Comments []IncomingComment `json:"comments"`
}

// GetProposalGetParams defines parameters for GetProposalGet.
type GetProposalGetParams struct {
	IssueId int64 `form:"issue_id" json:"issue_id"`
}

// GetRepositoryBehaviorParams defines parameters for GetRepositoryBehavior.
type GetRepositoryBehaviorParams struct {
	Repository string `form:"repository" json:"repository"`
}

// PostCommentsProcessJSONRequestBody defines body for PostCommentsProcess for application/json ContentType.
type PostCommentsProcessJSONRequestBody PostCommentsProcessJSONBody

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Record a batch of new comments and run the command pipeline
	// (POST /comments/process)
	PostCommentsProcess(ctx echo.Context) error
	// Evaluate active proposals and forward finalize signals
	// (POST /nag/evaluate)
	PostNagEvaluate(ctx echo.Context) error
	// Active proposal of an issue with reviews, concerns and outstanding feedback requests
	// (GET /proposal/get)
	GetProposalGet(ctx echo.Context, params GetProposalGetParams) error
	// FCP behavior flags and prohibited reactions of a repository
	// (GET /repository/behavior)
	GetRepositoryBehavior(ctx echo.Context, params GetRepositoryBehaviorParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// PostCommentsProcess converts echo context to params.
func (w *ServerInterfaceWrapper) PostCommentsProcess(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostCommentsProcess(ctx)
	return err
}

// PostNagEvaluate converts echo context to params.
func (w *ServerInterfaceWrapper) PostNagEvaluate(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostNagEvaluate(ctx)
	return err
}

// GetProposalGet converts echo context to params.
func (w *ServerInterfaceWrapper) GetProposalGet(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetProposalGetParams
	// ------------- Required query parameter "issue_id" -------------

	err = runtime.BindQueryParameter("form", true, true, "issue_id", ctx.QueryParams(), &params.IssueId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter issue_id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetProposalGet(ctx, params)
	return err
}

// GetRepositoryBehavior converts echo context to params.
func (w *ServerInterfaceWrapper) GetRepositoryBehavior(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetRepositoryBehaviorParams
	// ------------- Required query parameter "repository" -------------

	err = runtime.BindQueryParameter("form", true, true, "repository", ctx.QueryParams(), &params.Repository)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter repository: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRepositoryBehavior(ctx, params)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/comments/process", wrapper.PostCommentsProcess)
	router.POST(baseURL+"/nag/evaluate", wrapper.PostNagEvaluate)
	router.GET(baseURL+"/proposal/get", wrapper.GetProposalGet)
	router.GET(baseURL+"/repository/behavior", wrapper.GetRepositoryBehavior)

}
