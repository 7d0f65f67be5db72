package record

// MessageType identifies the shape of a single access log line.
// Connection-scoped types appear alone after the timestamp while
// operation-scoped types follow an operation type token.
type MessageType int

const (
	MessageTypeConnect MessageType = iota
	MessageTypeDisconnect
	MessageTypeClientCertificate
	MessageTypeSecurityNegotiation
	MessageTypeEntryRebalancingRequest
	MessageTypeEntryRebalancingResult
	MessageTypeRequest
	MessageTypeForward
	MessageTypeForwardFailed
	MessageTypeResult
	MessageTypeAssuranceComplete
	MessageTypeEntry
	MessageTypeReference
	MessageTypeIntermediateResponse
)

var messageTypeTokens = map[MessageType]string{
	MessageTypeConnect:                 "CONNECT",
	MessageTypeDisconnect:              "DISCONNECT",
	MessageTypeClientCertificate:       "CLIENT-CERTIFICATE",
	MessageTypeSecurityNegotiation:     "SECURITY-NEGOTIATION",
	MessageTypeEntryRebalancingRequest: "ENTRY-REBALANCING-REQUEST",
	MessageTypeEntryRebalancingResult:  "ENTRY-REBALANCING-RESULT",
	MessageTypeRequest:                 "REQUEST",
	MessageTypeForward:                 "FORWARD",
	MessageTypeForwardFailed:           "FORWARD-FAILED",
	MessageTypeResult:                  "RESULT",
	MessageTypeAssuranceComplete:       "ASSURANCE-COMPLETE",
	MessageTypeEntry:                   "ENTRY",
	MessageTypeReference:               "REFERENCE",
	MessageTypeIntermediateResponse:    "INTERMEDIATE-RESPONSE",
}

var messageTypeLookup = make(map[string]MessageType)

func init() {
	for messageType, token := range messageTypeTokens {
		messageTypeLookup[token] = messageType
	}
}

func (t MessageType) String() string {
	return messageTypeTokens[t]
}

// MessageTypeForToken resolves a discriminator token to its message type.
// Unlike field-level enums there is no fallback: an unknown token means
// the line cannot establish its identity and the parse must fail.
func MessageTypeForToken(token string) (MessageType, bool) {
	t, ok := messageTypeLookup[token]
	return t, ok
}

// OperationType identifies which LDAP operation an operation-scoped
// message belongs to.
type OperationType int

const (
	OperationNone OperationType = iota
	OperationAbandon
	OperationAdd
	OperationBind
	OperationCompare
	OperationDelete
	OperationExtended
	OperationModify
	OperationModifyDN
	OperationSearch
	OperationUnbind
)

var operationTypeTokens = map[OperationType]string{
	OperationAbandon:  "ABANDON",
	OperationAdd:      "ADD",
	OperationBind:     "BIND",
	OperationCompare:  "COMPARE",
	OperationDelete:   "DELETE",
	OperationExtended: "EXTENDED",
	OperationModify:   "MODIFY",
	OperationModifyDN: "MODDN",
	OperationSearch:   "SEARCH",
	OperationUnbind:   "UNBIND",
}

var operationTypeLookup = make(map[string]OperationType)

func init() {
	for operationType, token := range operationTypeTokens {
		operationTypeLookup[token] = operationType
	}
}

func (t OperationType) String() string {
	if t == OperationNone {
		return ""
	}
	return operationTypeTokens[t]
}

// OperationTypeForToken resolves a discriminator token to its operation
// type. Like the message type token, an unknown value is a hard failure
// for the caller.
func OperationTypeForToken(token string) (OperationType, bool) {
	t, ok := operationTypeLookup[token]
	return t, ok
}

// SearchScope holds the numeric scope from a SEARCH line. Values outside
// the four defined scopes are preserved as-is rather than rejected.
type SearchScope int

const (
	ScopeBaseObject         SearchScope = 0
	ScopeSingleLevel        SearchScope = 1
	ScopeWholeSubtree       SearchScope = 2
	ScopeSubordinateSubtree SearchScope = 3
)

func (s SearchScope) String() string {
	switch s {
	case ScopeBaseObject:
		return "baseObject"
	case ScopeSingleLevel:
		return "singleLevel"
	case ScopeWholeSubtree:
		return "wholeSubtree"
	case ScopeSubordinateSubtree:
		return "subordinateSubtree"
	default:
		return "unknown"
	}
}

// AuthenticationType is the bind authentication mechanism. Unrecognized
// values keep the raw token so nothing on the line is lost.
type AuthenticationType string

const (
	AuthSimple   AuthenticationType = "SIMPLE"
	AuthSASL     AuthenticationType = "SASL"
	AuthInternal AuthenticationType = "INTERNAL"
)

func (t AuthenticationType) Known() bool {
	switch t {
	case AuthSimple, AuthSASL, AuthInternal:
		return true
	}
	return false
}

// AssuranceLevel is a reported assured replication level. The parser only
// surfaces the value; it computes none of the replication semantics.
// Unrecognized values keep the raw token.
type AssuranceLevel string

const (
	AssuranceNone                       AssuranceLevel = "NONE"
	AssuranceReceivedAnyServer          AssuranceLevel = "RECEIVED_ANY_SERVER"
	AssuranceProcessedAllServers        AssuranceLevel = "PROCESSED_ALL_SERVERS"
	AssuranceReceivedAnyRemoteLocation  AssuranceLevel = "RECEIVED_ANY_REMOTE_LOCATION"
	AssuranceReceivedAllRemoteLocations AssuranceLevel = "RECEIVED_ALL_REMOTE_LOCATIONS"
	AssuranceProcessedAllRemoteServers  AssuranceLevel = "PROCESSED_ALL_REMOTE_SERVERS"
)

func (l AssuranceLevel) Known() bool {
	switch l {
	case AssuranceNone, AssuranceReceivedAnyServer, AssuranceProcessedAllServers,
		AssuranceReceivedAnyRemoteLocation, AssuranceReceivedAllRemoteLocations,
		AssuranceProcessedAllRemoteServers:
		return true
	}
	return false
}
