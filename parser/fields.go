package parser

import "github.com/pingidentity/ldapsdk-sub019/record"

// Projections from the tokenized line onto the shared field groups. Each
// one reads the immutable named value map exactly once per field; the
// concrete variant constructors compose them with per-operation extras.

func requestFields(b record.Base) record.RequestFields {
	return record.RequestFields{
		ConnectionID:              optLong(b, "conn"),
		OperationID:               optLong(b, "op"),
		MessageID:                 optInt(b, "msgID"),
		Origin:                    optString(b, "origin"),
		RequesterIP:               optString(b, "requesterIP"),
		RequesterDN:               optString(b, "requesterDN"),
		IntermediateClientRequest: optString(b, "via"),
		OperationPurpose:          optString(b, "opPurpose"),
	}
}

func forwardFields(b record.Base) record.ForwardFields {
	return record.ForwardFields{
		RequestFields:  requestFields(b),
		TargetHost:     optString(b, "targetHost"),
		TargetPort:     optInt(b, "targetPort"),
		TargetProtocol: optString(b, "targetProtocol"),
	}
}

// forwardFailedFields keeps the result code as the raw integer from the
// line. Forward failures never resolve through the canonical table.
func forwardFailedFields(b record.Base) record.ForwardFailedFields {
	return record.ForwardFailedFields{
		ForwardFields:     forwardFields(b),
		ResultCode:        optInt(b, "resultCode"),
		DiagnosticMessage: optString(b, "message"),
	}
}

func resultFields(b record.Base) record.ResultFields {
	return record.ResultFields{
		RequestFields:            requestFields(b),
		ResultCode:               optResultCode(b, "resultCode"),
		DiagnosticMessage:        optString(b, "message"),
		AdditionalInformation:    optString(b, "additionalInfo"),
		MatchedDN:                optString(b, "matchedDN"),
		ProcessingTimeMillis:     optDouble(b, "etime"),
		QueueTimeMillis:          optDouble(b, "qtime"),
		IntermediateClientResult: optString(b, "from"),
		ReferralURLs:             optList(b, "referralURLs"),
		AlternateAuthorizationDN: optString(b, "authzDN"),
	}
}

func assuranceFields(b record.Base) record.AssuranceFields {
	return record.AssuranceFields{
		ResultFields:               resultFields(b),
		LocalLevel:                 optAssuranceLevel(b, "localAssuranceLevel"),
		RemoteLevel:                optAssuranceLevel(b, "remoteAssuranceLevel"),
		TimeoutMillis:              optLong(b, "assuranceTimeoutMillis"),
		ResponseDelayedByAssurance: optBool(b, "responseDelayedByAssurance"),
		LocalAssuranceSatisfied:    optBool(b, "localAssuranceSatisfied"),
		RemoteAssuranceSatisfied:   optBool(b, "remoteAssuranceSatisfied"),
		ServerResults:              optList(b, "serverAssuranceResults"),
	}
}

func entryFields(b record.Base) record.EntryFields {
	return record.EntryFields{
		ConnectionID: optLong(b, "conn"),
		OperationID:  optLong(b, "op"),
		Origin:       optString(b, "origin"),
		DN:           optString(b, "dn"),
	}
}

func referenceFields(b record.Base) record.ReferenceFields {
	return record.ReferenceFields{
		ConnectionID: optLong(b, "conn"),
		OperationID:  optLong(b, "op"),
		Origin:       optString(b, "origin"),
		ReferralURLs: optList(b, "referralURLs"),
	}
}

func intermediateResponseFields(b record.Base) record.IntermediateResponseFields {
	return record.IntermediateResponseFields{
		ConnectionID:        optLong(b, "conn"),
		OperationID:         optLong(b, "op"),
		Origin:              optString(b, "origin"),
		OID:                 optString(b, "oid"),
		Name:                optString(b, "name"),
		ValueString:         optString(b, "value"),
		ResponseControlOIDs: optList(b, "responseControls"),
	}
}

func rebalancingFields(b record.Base) record.RebalancingFields {
	return record.RebalancingFields{
		RebalancingOperationID: optLong(b, "rebalancingOp"),
		TriggeringConnectionID: optLong(b, "triggeredByConn"),
		TriggeringOperationID:  optLong(b, "triggeredByOp"),
		SubtreeBaseDN:          optString(b, "base"),
		SizeLimit:              optInt(b, "sizeLimit"),
		SourceBackendSetName:   optString(b, "sourceBackendSet"),
		SourceBackendServer:    optString(b, "sourceServer"),
		TargetBackendSetName:   optString(b, "targetBackendSet"),
		TargetBackendServer:    optString(b, "targetServer"),
	}
}

// requestedAttributes handles the "ALL" sentinel on search lines: it
// stands for an unspecified attribute list, not an attribute named ALL.
func requestedAttributes(b record.Base) []string {
	raw, ok := b.Value("attrs")
	if !ok {
		return nil
	}
	if raw == "ALL" {
		return []string{}
	}
	return toStringList(raw)
}
