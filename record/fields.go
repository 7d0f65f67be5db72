package record

// Shared field groups. Each operation-scoped variant composes one of
// these with its operation-specific extras, mirroring how the log format
// repeats the same header fields across differently-shaped lines.
//
// Optional scalars are pointers: nil means the field was absent from the
// line, which is distinct from present-but-empty. List fields default to
// an empty slice rather than nil semantics mattering; order follows the
// line.

// RequestFields carries the header shared by every operation request.
// The requester DN is typically absent before authentication completes,
// e.g. on BIND requests.
type RequestFields struct {
	ConnectionID              *int64
	OperationID               *int64
	MessageID                 *int
	Origin                    *string
	RequesterIP               *string
	RequesterDN               *string
	IntermediateClientRequest *string
	OperationPurpose          *string
}

// ForwardFields extends the request header with the backend server the
// operation was forwarded to.
type ForwardFields struct {
	RequestFields

	TargetHost     *string
	TargetPort     *int
	TargetProtocol *string
}

// ForwardFailedFields records a failed forward. The result code here is
// deliberately the raw integer from the line: forward failures are never
// canonicalized against the result-code table.
type ForwardFailedFields struct {
	ForwardFields

	ResultCode        *int
	DiagnosticMessage *string
}

// ResultFields carries the final response for an operation. Unlike
// forward failures, the result code is resolved through the canonical
// result-code table (falling back to an unrecognized wrapper).
type ResultFields struct {
	RequestFields

	ResultCode               *ResultCode
	DiagnosticMessage        *string
	AdditionalInformation    *string
	MatchedDN                *string
	ProcessingTimeMillis     *float64
	QueueTimeMillis          *float64
	IntermediateClientResult *string
	ReferralURLs             []string
	AlternateAuthorizationDN *string
}

// AssuranceFields extends a result with the assured replication outcome
// reported once replication reached (or timed out at) the configured
// level.
type AssuranceFields struct {
	ResultFields

	LocalLevel                 *AssuranceLevel
	RemoteLevel                *AssuranceLevel
	TimeoutMillis              *int64
	ResponseDelayedByAssurance *bool
	LocalAssuranceSatisfied    *bool
	RemoteAssuranceSatisfied   *bool
	ServerResults              []string
}

// EntryFields describes a single entry returned for a search.
type EntryFields struct {
	ConnectionID *int64
	OperationID  *int64
	Origin       *string
	DN           *string
}

// ReferenceFields describes a search result reference.
type ReferenceFields struct {
	ConnectionID *int64
	OperationID  *int64
	Origin       *string
	ReferralURLs []string
}

// IntermediateResponseFields describes an intermediate response returned
// mid-operation.
type IntermediateResponseFields struct {
	ConnectionID        *int64
	OperationID         *int64
	Origin              *string
	OID                 *string
	Name                *string
	ValueString         *string
	ResponseControlOIDs []string
}
