package parser

import (
	"github.com/pingidentity/ldapsdk-sub019/internal"
	"github.com/pingidentity/ldapsdk-sub019/record"

	"github.com/pkg/errors"
)

// The registry maps validated discriminator tokens to variant
// constructors. Registration happens once at package load; the maps are
// never mutated afterwards. Not every operation carries every message
// type: UNBIND only ever logs a request, ABANDON never fails a forward,
// and only the operations that change data complete assurance.

type constructor func(record.Base) record.Message

type pairKey struct {
	operation record.OperationType
	message   record.MessageType
}

var connectionRegistry = map[record.MessageType]constructor{
	record.MessageTypeConnect:                 newConnect,
	record.MessageTypeDisconnect:              newDisconnect,
	record.MessageTypeClientCertificate:       newClientCertificate,
	record.MessageTypeSecurityNegotiation:     newSecurityNegotiation,
	record.MessageTypeEntryRebalancingRequest: newEntryRebalancingRequest,
	record.MessageTypeEntryRebalancingResult:  newEntryRebalancingResult,
}

var operationRegistry = make(map[pairKey]constructor)

func register(op record.OperationType, mt record.MessageType, create constructor) {
	operationRegistry[pairKey{op, mt}] = create
}

func init() {
	register(record.OperationAbandon, record.MessageTypeRequest, newAbandonRequest)
	register(record.OperationAbandon, record.MessageTypeForward, newAbandonForward)
	register(record.OperationAbandon, record.MessageTypeResult, newAbandonResult)

	register(record.OperationAdd, record.MessageTypeRequest, newAddRequest)
	register(record.OperationAdd, record.MessageTypeForward, newAddForward)
	register(record.OperationAdd, record.MessageTypeForwardFailed, newAddForwardFailed)
	register(record.OperationAdd, record.MessageTypeResult, newAddResult)
	register(record.OperationAdd, record.MessageTypeAssuranceComplete, newAddAssuranceComplete)

	register(record.OperationBind, record.MessageTypeRequest, newBindRequest)
	register(record.OperationBind, record.MessageTypeForward, newBindForward)
	register(record.OperationBind, record.MessageTypeForwardFailed, newBindForwardFailed)
	register(record.OperationBind, record.MessageTypeResult, newBindResult)

	register(record.OperationCompare, record.MessageTypeRequest, newCompareRequest)
	register(record.OperationCompare, record.MessageTypeForward, newCompareForward)
	register(record.OperationCompare, record.MessageTypeForwardFailed, newCompareForwardFailed)
	register(record.OperationCompare, record.MessageTypeResult, newCompareResult)

	register(record.OperationDelete, record.MessageTypeRequest, newDeleteRequest)
	register(record.OperationDelete, record.MessageTypeForward, newDeleteForward)
	register(record.OperationDelete, record.MessageTypeForwardFailed, newDeleteForwardFailed)
	register(record.OperationDelete, record.MessageTypeResult, newDeleteResult)
	register(record.OperationDelete, record.MessageTypeAssuranceComplete, newDeleteAssuranceComplete)

	register(record.OperationExtended, record.MessageTypeRequest, newExtendedRequest)
	register(record.OperationExtended, record.MessageTypeForward, newExtendedForward)
	register(record.OperationExtended, record.MessageTypeForwardFailed, newExtendedForwardFailed)
	register(record.OperationExtended, record.MessageTypeResult, newExtendedResult)

	register(record.OperationModify, record.MessageTypeRequest, newModifyRequest)
	register(record.OperationModify, record.MessageTypeForward, newModifyForward)
	register(record.OperationModify, record.MessageTypeForwardFailed, newModifyForwardFailed)
	register(record.OperationModify, record.MessageTypeResult, newModifyResult)
	register(record.OperationModify, record.MessageTypeAssuranceComplete, newModifyAssuranceComplete)

	register(record.OperationModifyDN, record.MessageTypeRequest, newModifyDNRequest)
	register(record.OperationModifyDN, record.MessageTypeForward, newModifyDNForward)
	register(record.OperationModifyDN, record.MessageTypeForwardFailed, newModifyDNForwardFailed)
	register(record.OperationModifyDN, record.MessageTypeResult, newModifyDNResult)
	register(record.OperationModifyDN, record.MessageTypeAssuranceComplete, newModifyDNAssuranceComplete)

	register(record.OperationSearch, record.MessageTypeRequest, newSearchRequest)
	register(record.OperationSearch, record.MessageTypeForward, newSearchForward)
	register(record.OperationSearch, record.MessageTypeForwardFailed, newSearchForwardFailed)
	register(record.OperationSearch, record.MessageTypeResult, newSearchResult)
	register(record.OperationSearch, record.MessageTypeEntry, newSearchEntry)
	register(record.OperationSearch, record.MessageTypeReference, newSearchReference)

	register(record.OperationUnbind, record.MessageTypeRequest, newUnbindRequest)

	// Every operation can produce intermediate responses.
	for op := range map[record.OperationType]bool{
		record.OperationAbandon: true, record.OperationAdd: true,
		record.OperationBind: true, record.OperationCompare: true,
		record.OperationDelete: true, record.OperationExtended: true,
		record.OperationModify: true, record.OperationModifyDN: true,
		record.OperationSearch: true, record.OperationUnbind: true,
	} {
		register(op, record.MessageTypeIntermediateResponse, newIntermediateResponse)
	}
}

// dispatch validates the discriminator tokens independently and then
// requires the combination to be registered: a valid message type token
// paired with an invalid operation token still fails, as does a known
// pair that no variant claims.
func dispatch(base record.Base) (record.Message, error) {
	switch len(base.Tokens) {
	case 1:
		messageType, ok := record.MessageTypeForToken(base.Tokens[0])
		if !ok {
			return nil, errors.Wrapf(internal.MessageTypeUnrecognized, "%q", base.Tokens[0])
		}
		create, ok := connectionRegistry[messageType]
		if !ok {
			return nil, errors.Wrapf(internal.MessageTypeUnregistered,
				"%q requires an operation type", base.Tokens[0])
		}
		base.Type = messageType
		return create(base), nil

	case 2:
		operationType, ok := record.OperationTypeForToken(base.Tokens[0])
		if !ok {
			return nil, errors.Wrapf(internal.OperationTypeUnrecognized, "%q", base.Tokens[0])
		}
		messageType, ok := record.MessageTypeForToken(base.Tokens[1])
		if !ok {
			return nil, errors.Wrapf(internal.MessageTypeUnrecognized, "%q", base.Tokens[1])
		}
		create, ok := operationRegistry[pairKey{operationType, messageType}]
		if !ok {
			return nil, errors.Wrapf(internal.MessageTypeUnregistered,
				"%q %q", base.Tokens[0], base.Tokens[1])
		}
		base.Type = messageType
		base.Operation = operationType
		return create(base), nil

	default:
		return nil, errors.Wrap(internal.MessageTypeUnrecognized, "no discriminator tokens")
	}
}

//
// Connection-scoped constructors
//

func newConnect(b record.Base) record.Message {
	return record.Connect{
		Base:          b,
		ConnectionID:  optLong(b, "conn"),
		SourceAddress: optString(b, "from"),
		TargetAddress: optString(b, "to"),
		ProtocolName:  optString(b, "protocol"),
	}
}

func newDisconnect(b record.Base) record.Message {
	return record.Disconnect{
		Base:             b,
		ConnectionID:     optLong(b, "conn"),
		DisconnectReason: optString(b, "reason"),
		Message:          optString(b, "msg"),
	}
}

func newClientCertificate(b record.Base) record.Message {
	return record.ClientCertificate{
		Base:          b,
		ConnectionID:  optLong(b, "conn"),
		PeerSubject:   optString(b, "peerSubject"),
		IssuerSubject: optString(b, "issuerSubject"),
	}
}

func newSecurityNegotiation(b record.Base) record.Message {
	return record.SecurityNegotiation{
		Base:         b,
		ConnectionID: optLong(b, "conn"),
		Protocol:     optString(b, "protocol"),
		Cipher:       optString(b, "cipher"),
	}
}

func newEntryRebalancingRequest(b record.Base) record.Message {
	return record.EntryRebalancingRequest{
		Base:              b,
		RebalancingFields: rebalancingFields(b),
	}
}

func newEntryRebalancingResult(b record.Base) record.Message {
	return record.EntryRebalancingResult{
		Base:                     b,
		RebalancingFields:        rebalancingFields(b),
		ResultCode:               optResultCode(b, "resultCode"),
		ErrorMessage:             optString(b, "errorMessage"),
		AdminActionRequired:      optString(b, "adminActionRequired"),
		SourceAltered:            optBool(b, "sourceAltered"),
		TargetAltered:            optBool(b, "targetAltered"),
		EntriesReadFromSource:    optLong(b, "entriesReadFromSource"),
		EntriesAddedToTarget:     optLong(b, "entriesAddedToTarget"),
		EntriesDeletedFromSource: optLong(b, "entriesDeletedFromSource"),
	}
}

//
// Abandon
//

func newAbandonRequest(b record.Base) record.Message {
	return record.AbandonRequest{Base: b, RequestFields: requestFields(b),
		MessageIDToAbandon: optInt(b, "idToAbandon")}
}

func newAbandonForward(b record.Base) record.Message {
	return record.AbandonForward{Base: b, ForwardFields: forwardFields(b),
		MessageIDToAbandon: optInt(b, "idToAbandon")}
}

func newAbandonResult(b record.Base) record.Message {
	return record.AbandonResult{Base: b, ResultFields: resultFields(b),
		MessageIDToAbandon: optInt(b, "idToAbandon")}
}

//
// Add
//

func newAddRequest(b record.Base) record.Message {
	return record.AddRequest{Base: b, RequestFields: requestFields(b), DN: optString(b, "dn")}
}

func newAddForward(b record.Base) record.Message {
	return record.AddForward{Base: b, ForwardFields: forwardFields(b), DN: optString(b, "dn")}
}

func newAddForwardFailed(b record.Base) record.Message {
	return record.AddForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b), DN: optString(b, "dn")}
}

func newAddResult(b record.Base) record.Message {
	return record.AddResult{Base: b, ResultFields: resultFields(b), DN: optString(b, "dn")}
}

func newAddAssuranceComplete(b record.Base) record.Message {
	return record.AddAssuranceComplete{Base: b, AssuranceFields: assuranceFields(b), DN: optString(b, "dn")}
}

//
// Bind
//

func newBindRequest(b record.Base) record.Message {
	return record.BindRequest{Base: b, RequestFields: requestFields(b),
		ProtocolVersion:    optString(b, "version"),
		DN:                 optString(b, "dn"),
		AuthenticationType: optAuthenticationType(b, "authType"),
		SASLMechanismName:  optString(b, "saslMechanism"),
	}
}

func newBindForward(b record.Base) record.Message {
	return record.BindForward{Base: b, ForwardFields: forwardFields(b),
		ProtocolVersion:    optString(b, "version"),
		DN:                 optString(b, "dn"),
		AuthenticationType: optAuthenticationType(b, "authType"),
		SASLMechanismName:  optString(b, "saslMechanism"),
	}
}

func newBindForwardFailed(b record.Base) record.Message {
	return record.BindForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b),
		ProtocolVersion:    optString(b, "version"),
		DN:                 optString(b, "dn"),
		AuthenticationType: optAuthenticationType(b, "authType"),
		SASLMechanismName:  optString(b, "saslMechanism"),
	}
}

func newBindResult(b record.Base) record.Message {
	return record.BindResult{Base: b, ResultFields: resultFields(b),
		ProtocolVersion:             optString(b, "version"),
		DN:                          optString(b, "dn"),
		AuthenticationType:          optAuthenticationType(b, "authType"),
		SASLMechanismName:           optString(b, "saslMechanism"),
		AuthenticationDN:            optString(b, "authDN"),
		AuthorizationDN:             optString(b, "authzDN"),
		AuthenticationFailureID:     optLong(b, "authFailureID"),
		AuthenticationFailureReason: optString(b, "authFailureReason"),
	}
}

//
// Compare
//

func newCompareRequest(b record.Base) record.Message {
	return record.CompareRequest{Base: b, RequestFields: requestFields(b),
		DN: optString(b, "dn"), AttributeName: optString(b, "attr")}
}

func newCompareForward(b record.Base) record.Message {
	return record.CompareForward{Base: b, ForwardFields: forwardFields(b),
		DN: optString(b, "dn"), AttributeName: optString(b, "attr")}
}

func newCompareForwardFailed(b record.Base) record.Message {
	return record.CompareForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b),
		DN: optString(b, "dn"), AttributeName: optString(b, "attr")}
}

func newCompareResult(b record.Base) record.Message {
	return record.CompareResult{Base: b, ResultFields: resultFields(b),
		DN: optString(b, "dn"), AttributeName: optString(b, "attr")}
}

//
// Delete
//

func newDeleteRequest(b record.Base) record.Message {
	return record.DeleteRequest{Base: b, RequestFields: requestFields(b), DN: optString(b, "dn")}
}

func newDeleteForward(b record.Base) record.Message {
	return record.DeleteForward{Base: b, ForwardFields: forwardFields(b), DN: optString(b, "dn")}
}

func newDeleteForwardFailed(b record.Base) record.Message {
	return record.DeleteForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b), DN: optString(b, "dn")}
}

func newDeleteResult(b record.Base) record.Message {
	return record.DeleteResult{Base: b, ResultFields: resultFields(b), DN: optString(b, "dn")}
}

func newDeleteAssuranceComplete(b record.Base) record.Message {
	return record.DeleteAssuranceComplete{Base: b, AssuranceFields: assuranceFields(b), DN: optString(b, "dn")}
}

//
// Extended
//

func newExtendedRequest(b record.Base) record.Message {
	return record.ExtendedRequest{Base: b, RequestFields: requestFields(b),
		RequestOID: optString(b, "requestOID")}
}

func newExtendedForward(b record.Base) record.Message {
	return record.ExtendedForward{Base: b, ForwardFields: forwardFields(b),
		RequestOID: optString(b, "requestOID")}
}

func newExtendedForwardFailed(b record.Base) record.Message {
	return record.ExtendedForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b),
		RequestOID: optString(b, "requestOID")}
}

func newExtendedResult(b record.Base) record.Message {
	return record.ExtendedResult{Base: b, ResultFields: resultFields(b),
		ResponseOID: optString(b, "responseOID")}
}

//
// Modify
//

func newModifyRequest(b record.Base) record.Message {
	return record.ModifyRequest{Base: b, RequestFields: requestFields(b), DN: optString(b, "dn")}
}

func newModifyForward(b record.Base) record.Message {
	return record.ModifyForward{Base: b, ForwardFields: forwardFields(b), DN: optString(b, "dn")}
}

func newModifyForwardFailed(b record.Base) record.Message {
	return record.ModifyForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b), DN: optString(b, "dn")}
}

func newModifyResult(b record.Base) record.Message {
	return record.ModifyResult{Base: b, ResultFields: resultFields(b), DN: optString(b, "dn")}
}

func newModifyAssuranceComplete(b record.Base) record.Message {
	return record.ModifyAssuranceComplete{Base: b, AssuranceFields: assuranceFields(b), DN: optString(b, "dn")}
}

//
// Modify DN
//

func newModifyDNRequest(b record.Base) record.Message {
	return record.ModifyDNRequest{Base: b, RequestFields: requestFields(b),
		DN: optString(b, "dn"), NewRDN: optString(b, "newRDN"),
		DeleteOldRDN: optBool(b, "deleteOldRDN"), NewSuperiorDN: optString(b, "newSuperior")}
}

func newModifyDNForward(b record.Base) record.Message {
	return record.ModifyDNForward{Base: b, ForwardFields: forwardFields(b),
		DN: optString(b, "dn"), NewRDN: optString(b, "newRDN"),
		DeleteOldRDN: optBool(b, "deleteOldRDN"), NewSuperiorDN: optString(b, "newSuperior")}
}

func newModifyDNForwardFailed(b record.Base) record.Message {
	return record.ModifyDNForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b),
		DN: optString(b, "dn"), NewRDN: optString(b, "newRDN"),
		DeleteOldRDN: optBool(b, "deleteOldRDN"), NewSuperiorDN: optString(b, "newSuperior")}
}

func newModifyDNResult(b record.Base) record.Message {
	return record.ModifyDNResult{Base: b, ResultFields: resultFields(b),
		DN: optString(b, "dn"), NewRDN: optString(b, "newRDN"),
		DeleteOldRDN: optBool(b, "deleteOldRDN"), NewSuperiorDN: optString(b, "newSuperior")}
}

func newModifyDNAssuranceComplete(b record.Base) record.Message {
	return record.ModifyDNAssuranceComplete{Base: b, AssuranceFields: assuranceFields(b),
		DN: optString(b, "dn"), NewRDN: optString(b, "newRDN"),
		DeleteOldRDN: optBool(b, "deleteOldRDN"), NewSuperiorDN: optString(b, "newSuperior")}
}

//
// Search
//

func newSearchRequest(b record.Base) record.Message {
	return record.SearchRequest{Base: b, RequestFields: requestFields(b),
		BaseDN: optString(b, "base"), Scope: optScope(b, "scope"),
		Filter: optString(b, "filter"), RequestedAttributes: requestedAttributes(b)}
}

func newSearchForward(b record.Base) record.Message {
	return record.SearchForward{Base: b, ForwardFields: forwardFields(b),
		BaseDN: optString(b, "base"), Scope: optScope(b, "scope"),
		Filter: optString(b, "filter"), RequestedAttributes: requestedAttributes(b)}
}

func newSearchForwardFailed(b record.Base) record.Message {
	return record.SearchForwardFailed{Base: b, ForwardFailedFields: forwardFailedFields(b),
		BaseDN: optString(b, "base"), Scope: optScope(b, "scope"),
		Filter: optString(b, "filter"), RequestedAttributes: requestedAttributes(b)}
}

func newSearchResult(b record.Base) record.Message {
	return record.SearchResult{Base: b, ResultFields: resultFields(b),
		BaseDN: optString(b, "base"), Scope: optScope(b, "scope"),
		Filter: optString(b, "filter"), RequestedAttributes: requestedAttributes(b)}
}

func newSearchEntry(b record.Base) record.Message {
	return record.SearchEntry{Base: b, EntryFields: entryFields(b)}
}

func newSearchReference(b record.Base) record.Message {
	return record.SearchReference{Base: b, ReferenceFields: referenceFields(b)}
}

//
// Unbind
//

func newUnbindRequest(b record.Base) record.Message {
	return record.UnbindRequest{Base: b, RequestFields: requestFields(b)}
}

//
// Intermediate response
//

func newIntermediateResponse(b record.Base) record.Message {
	return record.IntermediateResponse{Base: b,
		IntermediateResponseFields: intermediateResponseFields(b)}
}
