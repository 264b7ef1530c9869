package handlers

import "net/http"

const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgInvalidJSON      = "Invalid JSON in request"
	msgMissingFields    = "Missing required fields"
	msgMissingConfig    = "Server configuration error - missing Telegram credentials"
	msgSendFailed       = "Failed to send to Telegram"
	msgInternal         = "Internal server error"
	msgSent             = "Order sent to Telegram successfully"
)

// Outcome buckets a handled request for logs and metrics.
type Outcome string

const (
	OutcomeSent          Outcome = "sent"
	OutcomeInvalidInput  Outcome = "invalid_input"
	OutcomeMisconfigured Outcome = "misconfigured"
	OutcomeRejected      Outcome = "rejected"
	OutcomeFailed        Outcome = "failed"
)

// SuccessResponse is written when the provider accepted the message.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is written for every failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Result is the single exit value of the order pipeline. Exactly one of
// Success and Failure is set.
type Result struct {
	Outcome Outcome
	Status  int
	Success *SuccessResponse
	Failure *ErrorResponse
}

// Body returns whichever response is set.
func (r Result) Body() interface{} {
	if r.Success != nil {
		return r.Success
	}
	return r.Failure
}

func sent() Result {
	return Result{
		Outcome: OutcomeSent,
		Status:  http.StatusOK,
		Success: &SuccessResponse{Success: true, Message: msgSent},
	}
}

func failed(outcome Outcome, status int, msg, details string) Result {
	return Result{
		Outcome: outcome,
		Status:  status,
		Failure: &ErrorResponse{Error: msg, Details: details},
	}
}
