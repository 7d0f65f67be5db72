package record

// Concrete message variants. One struct per registered discriminator
// combination, built from the shared field groups plus the extras each
// operation contributes. Construction happens in the parser package; the
// structs themselves stay dumb and read-only.

//
// Connection-scoped messages
//

type Connect struct {
	Base

	ConnectionID  *int64
	SourceAddress *string
	TargetAddress *string
	ProtocolName  *string
}

type Disconnect struct {
	Base

	ConnectionID     *int64
	DisconnectReason *string
	Message          *string
}

type ClientCertificate struct {
	Base

	ConnectionID  *int64
	PeerSubject   *string
	IssuerSubject *string
}

type SecurityNegotiation struct {
	Base

	ConnectionID *int64
	Protocol     *string
	Cipher       *string
}

// RebalancingFields is shared between the entry rebalancing request and
// result lines. These administrative messages carry no connection ID of
// their own; the triggering connection is referenced instead.
type RebalancingFields struct {
	RebalancingOperationID *int64
	TriggeringConnectionID *int64
	TriggeringOperationID  *int64
	SubtreeBaseDN          *string
	SizeLimit              *int
	SourceBackendSetName   *string
	SourceBackendServer    *string
	TargetBackendSetName   *string
	TargetBackendServer    *string
}

type EntryRebalancingRequest struct {
	Base
	RebalancingFields
}

type EntryRebalancingResult struct {
	Base
	RebalancingFields

	ResultCode               *ResultCode
	ErrorMessage             *string
	AdminActionRequired      *string
	SourceAltered            *bool
	TargetAltered            *bool
	EntriesReadFromSource    *int64
	EntriesAddedToTarget     *int64
	EntriesDeletedFromSource *int64
}

//
// Abandon
//

type AbandonRequest struct {
	Base
	RequestFields

	MessageIDToAbandon *int
}

type AbandonForward struct {
	Base
	ForwardFields

	MessageIDToAbandon *int
}

type AbandonResult struct {
	Base
	ResultFields

	MessageIDToAbandon *int
}

//
// Add
//

type AddRequest struct {
	Base
	RequestFields

	DN *string
}

type AddForward struct {
	Base
	ForwardFields

	DN *string
}

type AddForwardFailed struct {
	Base
	ForwardFailedFields

	DN *string
}

type AddResult struct {
	Base
	ResultFields

	DN *string
}

type AddAssuranceComplete struct {
	Base
	AssuranceFields

	DN *string
}

//
// Bind
//

type BindRequest struct {
	Base
	RequestFields

	ProtocolVersion    *string
	DN                 *string
	AuthenticationType *AuthenticationType
	SASLMechanismName  *string
}

type BindForward struct {
	Base
	ForwardFields

	ProtocolVersion    *string
	DN                 *string
	AuthenticationType *AuthenticationType
	SASLMechanismName  *string
}

type BindForwardFailed struct {
	Base
	ForwardFailedFields

	ProtocolVersion    *string
	DN                 *string
	AuthenticationType *AuthenticationType
	SASLMechanismName  *string
}

type BindResult struct {
	Base
	ResultFields

	ProtocolVersion    *string
	DN                 *string
	AuthenticationType *AuthenticationType
	SASLMechanismName  *string

	AuthenticationDN            *string
	AuthorizationDN             *string
	AuthenticationFailureID     *int64
	AuthenticationFailureReason *string
}

//
// Compare
//

type CompareRequest struct {
	Base
	RequestFields

	DN            *string
	AttributeName *string
}

type CompareForward struct {
	Base
	ForwardFields

	DN            *string
	AttributeName *string
}

type CompareForwardFailed struct {
	Base
	ForwardFailedFields

	DN            *string
	AttributeName *string
}

type CompareResult struct {
	Base
	ResultFields

	DN            *string
	AttributeName *string
}

//
// Delete
//

type DeleteRequest struct {
	Base
	RequestFields

	DN *string
}

type DeleteForward struct {
	Base
	ForwardFields

	DN *string
}

type DeleteForwardFailed struct {
	Base
	ForwardFailedFields

	DN *string
}

type DeleteResult struct {
	Base
	ResultFields

	DN *string
}

type DeleteAssuranceComplete struct {
	Base
	AssuranceFields

	DN *string
}

//
// Extended
//

type ExtendedRequest struct {
	Base
	RequestFields

	RequestOID *string
}

type ExtendedForward struct {
	Base
	ForwardFields

	RequestOID *string
}

type ExtendedForwardFailed struct {
	Base
	ForwardFailedFields

	RequestOID *string
}

type ExtendedResult struct {
	Base
	ResultFields

	ResponseOID *string
}

//
// Modify
//

type ModifyRequest struct {
	Base
	RequestFields

	DN *string
}

type ModifyForward struct {
	Base
	ForwardFields

	DN *string
}

type ModifyForwardFailed struct {
	Base
	ForwardFailedFields

	DN *string
}

type ModifyResult struct {
	Base
	ResultFields

	DN *string
}

type ModifyAssuranceComplete struct {
	Base
	AssuranceFields

	DN *string
}

//
// Modify DN
//

type ModifyDNRequest struct {
	Base
	RequestFields

	DN            *string
	NewRDN        *string
	DeleteOldRDN  *bool
	NewSuperiorDN *string
}

type ModifyDNForward struct {
	Base
	ForwardFields

	DN            *string
	NewRDN        *string
	DeleteOldRDN  *bool
	NewSuperiorDN *string
}

type ModifyDNForwardFailed struct {
	Base
	ForwardFailedFields

	DN            *string
	NewRDN        *string
	DeleteOldRDN  *bool
	NewSuperiorDN *string
}

type ModifyDNResult struct {
	Base
	ResultFields

	DN            *string
	NewRDN        *string
	DeleteOldRDN  *bool
	NewSuperiorDN *string
}

type ModifyDNAssuranceComplete struct {
	Base
	AssuranceFields

	DN            *string
	NewRDN        *string
	DeleteOldRDN  *bool
	NewSuperiorDN *string
}

//
// Search
//

// RequestedAttributes preserves the order attributes appeared on the
// line. The literal value "ALL" is a sentinel for an unspecified
// attribute list and produces an empty slice, not a one-element list.
type SearchRequest struct {
	Base
	RequestFields

	BaseDN              *string
	Scope               *SearchScope
	Filter              *string
	RequestedAttributes []string
}

type SearchForward struct {
	Base
	ForwardFields

	BaseDN              *string
	Scope               *SearchScope
	Filter              *string
	RequestedAttributes []string
}

type SearchForwardFailed struct {
	Base
	ForwardFailedFields

	BaseDN              *string
	Scope               *SearchScope
	Filter              *string
	RequestedAttributes []string
}

type SearchResult struct {
	Base
	ResultFields

	BaseDN              *string
	Scope               *SearchScope
	Filter              *string
	RequestedAttributes []string
}

type SearchEntry struct {
	Base
	EntryFields
}

type SearchReference struct {
	Base
	ReferenceFields
}

//
// Unbind
//

type UnbindRequest struct {
	Base
	RequestFields
}

//
// Intermediate response
//

// IntermediateResponse serves every operation type; the operation is
// available through OperationType() on the embedded Base.
type IntermediateResponse struct {
	Base
	IntermediateResponseFields
}
