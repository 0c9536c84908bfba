package errors

// Garden failures shared by the ledger, the orchestrator and the sprite field.
// Each carries the values a client needs to explain the refusal.

// InsufficientFunds reports a debit larger than the balance
func InsufficientFunds(currency string, balance, required int64) *Error {
	return Newf(CodeFailedPrecondition, "insufficient %s", currency).
		WithMeta("currency", currency).
		WithMeta("balance", balance).
		WithMeta("required", required)
}

// SessionNotFound reports an unknown or ended session
func SessionNotFound(sessionID string) *Error {
	return Newf(CodeNotFound, "session %s not found", sessionID).
		WithMeta("session_id", sessionID)
}

// OutOfBounds reports a grid position outside a width x height grid
func OutOfBounds(row, col, width, height int) *Error {
	return Newf(CodeInvalidArgument, "position %d,%d outside the %dx%d grid", row, col, width, height).
		WithMeta("row", row).
		WithMeta("col", col).
		WithMeta("width", width).
		WithMeta("height", height)
}
